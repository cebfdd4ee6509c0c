package pathedit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	gyaml "github.com/goccy/go-yaml"
	"gopkg.in/yaml.v3"
)

// DefaultIndent is the indentation MarshalYAML uses when given a non-positive indent.
const DefaultIndent = 2

// ParseYAML decodes a YAML document into a nested structure usable with Get, Set and Delete.
// Mappings become map[string]interface{}, sequences []interface{}, and scalars int, float64,
// bool, nil or string. Empty input yields an empty mapping.
func ParseYAML(data []byte) (map[string]interface{}, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]interface{}{}, nil
	}
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(false)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]interface{}{}, nil
		}
		return nil, fmt.Errorf("pathedit: parse YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return map[string]interface{}{}, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return map[string]interface{}{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("pathedit: top-level YAML must be a mapping")
	}
	v, err := nodeToValue(root)
	if err != nil {
		return nil, err
	}
	return v.(map[string]interface{}), nil
}

// ParseValue decodes a single YAML value, e.g. a command-line argument: "3" becomes 3,
// "true" becomes true and "[a, b]" a sequence. Empty input is the empty string.
func ParseValue(data []byte) (interface{}, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return string(data), nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("pathedit: parse value: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	return nodeToValue(doc.Content[0])
}

func nodeToValue(n *yaml.Node) (interface{}, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return nodeToValue(n.Alias)
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return nil, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, fmt.Errorf("pathedit: line %d: %w", n.Line, err)
			}
			return b, nil
		case "!!int":
			var i int
			if err := n.Decode(&i); err == nil {
				return i, nil
			}
			var f float64
			if err := n.Decode(&f); err != nil {
				return nil, fmt.Errorf("pathedit: line %d: %w", n.Line, err)
			}
			return f, nil
		case "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return nil, fmt.Errorf("pathedit: line %d: %w", n.Line, err)
			}
			return f, nil
		default:
			return n.Value, nil
		}
	case yaml.MappingNode:
		m := make(map[string]interface{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind == yaml.AliasNode {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("pathedit: line %d: mapping keys must be scalars", k.Line)
			}
			val, err := nodeToValue(v)
			if err != nil {
				return nil, err
			}
			m[k.Value] = val
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := nodeToValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("pathedit: line %d: unsupported YAML node kind %v", n.Line, n.Kind)
	}
}

// MarshalYAML encodes v with mapping keys in sorted order so the output is stable.
func MarshalYAML(v interface{}, indent int) ([]byte, error) {
	if indent <= 0 {
		indent = DefaultIndent
	}
	out, err := gyaml.MarshalWithOptions(toOrdered(v), gyaml.Indent(indent), gyaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("pathedit: encode YAML: %w", err)
	}
	return out, nil
}

// toOrdered replaces every map[string]interface{} with a key-sorted MapSlice.
func toOrdered(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ms := make(gyaml.MapSlice, 0, len(keys))
		for _, k := range keys {
			ms = append(ms, gyaml.MapItem{Key: k, Value: toOrdered(t[k])})
		}
		return ms
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = toOrdered(e)
		}
		return out
	default:
		return t
	}
}
