package domain

import "reflect"

// Matcher decides whether an entity satisfies a lookup. Implementations must
// treat the lookup as a set of constraints over the full-entity view.
type Matcher interface {
	Match(lookup Attributes, entity FullEntity, schema Schema) bool
}

// SubsetMatcher matches when every key in the lookup is present on the entity
// with an equal value. It is a subset test, not full equality: entity fields
// absent from the lookup are ignored.
type SubsetMatcher struct{}

// Match implements Matcher.
func (SubsetMatcher) Match(lookup Attributes, entity FullEntity, schema Schema) bool {
	for key, want := range lookup {
		if key == schema.IDAttribute {
			id, ok := CoerceID(want)
			if !ok || id != entity.ID {
				return false
			}
			continue
		}
		got, ok := entity.Get(schema, key)
		if !ok {
			return false
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// CoerceID converts the numeric representations callers commonly supply in
// lookups into an ID. Fractional floats do not coerce.
func CoerceID(v any) (ID, bool) {
	switch n := v.(type) {
	case ID:
		return n, true
	case int:
		return ID(n), true
	case int64:
		return ID(n), true
	case uint:
		return ID(n), true
	case uint64:
		return ID(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return ID(n), true
	default:
		return 0, false
	}
}
