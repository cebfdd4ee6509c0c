package pathedit

// Set returns a deep copy of structure with value stored at path.
// Missing intermediate segments are created as empty mappings. An intermediate segment
// that already holds a sequence or a scalar (nil included) is a *TypeCollisionError;
// nothing is overwritten in that case and no structure is returned.
//
// value itself is stored as given, not copied.
func Set(structure map[string]interface{}, path string, value interface{}, opts ...Option) (map[string]interface{}, error) {
	o := newOptions(opts)
	result := cloneMap(structure)
	segments := SplitPath(path, o.delimiter)
	parents, last := segments[:len(segments)-1], segments[len(segments)-1]

	current := result
	for i, seg := range parents {
		existing, ok := current[seg]
		if !ok {
			created := map[string]interface{}{}
			current[seg] = created
			current = created
			continue
		}
		m, isMap := existing.(map[string]interface{})
		if !isMap {
			return nil, &TypeCollisionError{
				Path: JoinPath(segments[:i+1], o.delimiter),
				Type: typeName(existing),
			}
		}
		current = m
	}
	current[last] = value
	return result, nil
}
