package pathedit

// cloneMap deep-copies a mapping. Nested mappings and sequences are copied; every other
// value is shared, which is safe for the scalar leaves this package deals with.
func cloneMap(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return map[string]interface{}{}
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneSlice(in []interface{}) []interface{} {
	if in == nil {
		return nil
	}
	out := make([]interface{}, len(in))
	for i, e := range in {
		out[i] = cloneValue(e)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch tv := v.(type) {
	case map[string]interface{}:
		return cloneMap(tv)
	case []interface{}:
		return cloneSlice(tv)
	default:
		return tv
	}
}
