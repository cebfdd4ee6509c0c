package pathedit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// JSON Patch (RFC-6902) and JSON Merge Patch (RFC-7386)
// --------------------------------------------------------------------------------------

// ApplyJSONPatch applies an RFC-6902 patch to a copy of structure and returns the copy.
// Numbers in the result are int when integral and float64 otherwise.
func ApplyJSONPatch(structure map[string]interface{}, patchJSON []byte) (map[string]interface{}, error) {
	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("pathedit: invalid JSON Patch: %w", err)
	}
	if len(patch) == 0 {
		return nil, errors.New("pathedit: empty JSON Patch")
	}
	doc, err := marshalDoc(structure)
	if err != nil {
		return nil, err
	}
	out, err := patch.ApplyWithOptions(doc, jsonpatch.NewApplyOptions())
	if err != nil {
		return nil, fmt.Errorf("pathedit: apply JSON Patch: %w", err)
	}
	return unmarshalDoc(out)
}

// ApplyJSONPatchAtPath applies patchJSON to the mapping stored at basePath, treating
// each op's path as relative to it. An empty basePath is the root.
func ApplyJSONPatchAtPath(structure map[string]interface{}, patchJSON []byte, basePath string, opts ...Option) (map[string]interface{}, error) {
	if basePath == "" {
		return ApplyJSONPatch(structure, patchJSON)
	}
	v, err := Get(structure, basePath, opts...)
	if err != nil {
		return nil, err
	}
	sub, ok := v.(map[string]interface{})
	if !ok {
		return nil, &TypeCollisionError{Path: basePath, Type: typeName(v)}
	}
	patched, err := ApplyJSONPatch(sub, patchJSON)
	if err != nil {
		return nil, err
	}
	return Set(structure, basePath, patched, opts...)
}

// ApplyMergePatch applies an RFC-7386 merge patch to a copy of structure.
func ApplyMergePatch(structure map[string]interface{}, mergeJSON []byte) (map[string]interface{}, error) {
	doc, err := marshalDoc(structure)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(doc, mergeJSON)
	if err != nil {
		return nil, fmt.Errorf("pathedit: apply merge patch: %w", err)
	}
	return unmarshalDoc(out)
}

// CreateMergePatch returns the RFC-7386 merge patch that turns original into modified.
func CreateMergePatch(original, modified map[string]interface{}) ([]byte, error) {
	a, err := marshalDoc(original)
	if err != nil {
		return nil, err
	}
	b, err := marshalDoc(modified)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("pathedit: create merge patch: %w", err)
	}
	return out, nil
}

// JSONPointer converts a delimited path into an RFC-6901 JSON Pointer, e.g.
// "a/b~c" becomes "/a/b~0c" and, with WithDelimiter("."), "a.b/c" becomes "/a/b~1c".
func JSONPointer(path string, opts ...Option) string {
	o := newOptions(opts)
	var sb strings.Builder
	for _, seg := range SplitPath(path, o.delimiter) {
		sb.WriteByte('/')
		sb.WriteString(strings.ReplaceAll(strings.ReplaceAll(seg, "~", "~0"), "/", "~1"))
	}
	return sb.String()
}

func marshalDoc(structure map[string]interface{}) ([]byte, error) {
	if structure == nil {
		structure = map[string]interface{}{}
	}
	b, err := json.Marshal(structure)
	if err != nil {
		return nil, fmt.Errorf("pathedit: encode document: %w", err)
	}
	return b, nil
}

func unmarshalDoc(b []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("pathedit: decode document: %w", err)
	}
	m, ok := normalizeJSON(v).(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("pathedit: document root is %s, not an object", typeName(v))
	}
	return m, nil
}

// normalizeJSON turns json.Number into int or float64, recursively.
func normalizeJSON(v interface{}) interface{} {
	switch t := v.(type) {
	case json.Number:
		if !strings.ContainsAny(string(t), ".eE") {
			if i, err := t.Int64(); err == nil {
				return int(i)
			}
		}
		f, _ := t.Float64()
		return f
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = normalizeJSON(e)
		}
		return out
	case map[string]interface{}:
		for k, e := range t {
			t[k] = normalizeJSON(e)
		}
		return t
	default:
		return t
	}
}
