package domain

import "strconv"

// BranchFromTree locates the id sequence and attributes map inside a parent
// tree node, using the schema's field names. The second return is false when
// either field is missing or has an unusable shape. Values are cloned; the
// tree stays untouched.
func BranchFromTree(tree map[string]any, schema Schema) (BranchState, bool) {
	schema = schema.Normalize()
	ids, ok := idsFromTreeValue(tree[schema.ArrayField])
	if !ok {
		return BranchState{}, false
	}
	attrs, ok := attributesFromTreeValue(tree[schema.MapField])
	if !ok {
		return BranchState{}, false
	}
	return BranchState{IDs: ids, Attributes: attrs}, true
}

// TreeFromBranch embeds a branch state under the schema's field names,
// producing the node a parent tree stores for this branch.
func TreeFromBranch(state BranchState, schema Schema) map[string]any {
	schema = schema.Normalize()
	cloned := state.Clone()
	return map[string]any{
		schema.ArrayField: cloned.IDs,
		schema.MapField:   cloned.Attributes,
	}
}

func idsFromTreeValue(v any) ([]ID, bool) {
	switch seq := v.(type) {
	case []ID:
		return append([]ID(nil), seq...), true
	case []any:
		ids := make([]ID, 0, len(seq))
		for _, raw := range seq {
			id, ok := CoerceID(raw)
			if !ok {
				return nil, false
			}
			ids = append(ids, id)
		}
		return ids, true
	default:
		return nil, false
	}
}

func attributesFromTreeValue(v any) (map[ID]Attributes, bool) {
	switch m := v.(type) {
	case map[ID]Attributes:
		out := make(map[ID]Attributes, len(m))
		for id, attrs := range m {
			out[id] = attrs.Clone()
		}
		return out, true
	case map[string]any:
		// JSON-decoded trees carry stringified id keys.
		out := make(map[ID]Attributes, len(m))
		for key, raw := range m {
			n, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				return nil, false
			}
			fields, ok := raw.(map[string]any)
			if !ok {
				return nil, false
			}
			out[ID(n)] = Attributes(fields).Clone()
		}
		return out, true
	default:
		return nil, false
	}
}
