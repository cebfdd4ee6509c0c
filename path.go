package pathedit

import (
	"strconv"
	"strings"
)

// SplitPath splits a path into its segments. An empty delimiter falls back to DefaultDelimiter.
// Empty segments are kept: "a//b" addresses the key "" under "a".
func SplitPath(path, delimiter string) []string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return strings.Split(path, delimiter)
}

// JoinPath is the inverse of SplitPath.
func JoinPath(segments []string, delimiter string) string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return strings.Join(segments, delimiter)
}

// Get returns the value stored at path inside structure.
// The value is returned as is, without copying; callers must not mutate it if they
// want structure to stay untouched.
//
// Every prefix of the path must resolve. The first one that does not is reported as a
// *PathNotFoundError carrying that prefix.
func Get(structure map[string]interface{}, path string, opts ...Option) (interface{}, error) {
	o := newOptions(opts)
	return resolve(structure, SplitPath(path, o.delimiter), o.delimiter)
}

// Has reports whether Get would succeed.
func Has(structure map[string]interface{}, path string, opts ...Option) bool {
	_, err := Get(structure, path, opts...)
	return err == nil
}

func resolve(root map[string]interface{}, segments []string, delimiter string) (interface{}, error) {
	var current interface{} = root
	for i, seg := range segments {
		next, ok := child(current, seg)
		if !ok {
			return nil, &PathNotFoundError{Path: JoinPath(segments[:i+1], delimiter)}
		}
		current = next
	}
	return current, nil
}

// child looks seg up inside v. Mappings are keyed by name, sequences by decimal index;
// scalars have no children.
func child(v interface{}, seg string) (interface{}, bool) {
	switch tv := v.(type) {
	case map[string]interface{}:
		val, ok := tv[seg]
		return val, ok
	case []interface{}:
		idx, ok := parseIndex(seg)
		if !ok || idx >= len(tv) {
			return nil, false
		}
		return tv[idx], true
	default:
		return nil, false
	}
}

func parseIndex(seg string) (int, bool) {
	if seg == "" || (len(seg) > 1 && seg[0] == '0') {
		return 0, false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return i, true
}
