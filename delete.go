package pathedit

// Delete returns a deep copy of structure without the key at path.
//
// When pruning is enabled (the default, see WithPrune) and the deletion leaves the
// parent mapping empty, the parent is deleted too, and so on upwards. The root mapping
// itself is never removed, and pruning stops at an ancestor that is a sequence.
//
// Deleting a key that is absent from an existing parent is not an error. A missing
// parent is reported as a *PathNotFoundError, and a parent that is not a mapping as a
// *TypeCollisionError. That includes sequences: "list/0" is rejected rather than
// removing or blanking the element, since either would shift or alter indexes other
// paths rely on. Use Set to replace a sequence wholesale.
func Delete(structure map[string]interface{}, path string, opts ...Option) (map[string]interface{}, error) {
	o := newOptions(opts)
	result := cloneMap(structure)
	segments := SplitPath(path, o.delimiter)

	for pruning := false; ; pruning = true {
		parentPath, last := segments[:len(segments)-1], segments[len(segments)-1]
		parent := result
		if len(parentPath) > 0 {
			v, err := resolve(result, parentPath, o.delimiter)
			if err != nil {
				return nil, err
			}
			m, ok := v.(map[string]interface{})
			if !ok {
				if pruning {
					break
				}
				return nil, &TypeCollisionError{Path: JoinPath(parentPath, o.delimiter), Type: typeName(v)}
			}
			parent = m
		}
		delete(parent, last)

		if !o.prune || len(parentPath) == 0 || len(parent) > 0 {
			break
		}
		segments = parentPath
	}
	return result, nil
}
