// Package domain defines the value types and consumed contracts for a
// normalized branch store: an ordered id sequence plus an id-to-attributes
// map, transformed by an ordered log of queued mutations.
package domain

// ID identifies one entity within a branch.
type ID int64

// Attributes holds the fields of an entity, excluding its id.
type Attributes map[string]any

// Clone returns an independent shallow copy of the attribute map.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	cp := make(Attributes, len(a))
	for k, v := range a {
		cp[k] = v
	}
	return cp
}

// FullEntity is the derived read-only view of one record: its attributes
// merged with the id under the schema's id attribute name. It is never
// stored; it is always computed on demand from branch state.
type FullEntity struct {
	ID         ID         `json:"id"`
	Attributes Attributes `json:"attributes"`
}

// Get returns the value of an attribute, treating the id attribute name as a
// readable key alongside the stored attributes.
func (e FullEntity) Get(schema Schema, key string) (any, bool) {
	if key == schema.IDAttribute {
		return e.ID, true
	}
	v, ok := e.Attributes[key]
	return v, ok
}

// BranchState is the two-field value a manager owns and transforms: the
// ordered id sequence and the attributes keyed by id. Order of IDs is
// meaningful and externally visible.
type BranchState struct {
	IDs        []ID              `json:"ids"`
	Attributes map[ID]Attributes `json:"attributesById"`
}

// NewBranchState returns an empty, well-formed branch state.
func NewBranchState() BranchState {
	return BranchState{IDs: []ID{}, Attributes: map[ID]Attributes{}}
}

// Clone returns a deep copy of the branch state. Attribute values are copied
// shallowly; the sequence and both map levels are independent of the source.
func (s BranchState) Clone() BranchState {
	cloned := BranchState{
		IDs:        make([]ID, len(s.IDs)),
		Attributes: make(map[ID]Attributes, len(s.Attributes)),
	}
	copy(cloned.IDs, s.IDs)
	for id, attrs := range s.Attributes {
		cloned.Attributes[id] = attrs.Clone()
	}
	return cloned
}

// Wellformed reports whether the id sequence and attributes map agree: no
// duplicate ids, and the same key set on both sides.
func (s BranchState) Wellformed() bool {
	if len(s.IDs) != len(s.Attributes) {
		return false
	}
	seen := make(map[ID]struct{}, len(s.IDs))
	for _, id := range s.IDs {
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
		if _, ok := s.Attributes[id]; !ok {
			return false
		}
	}
	return true
}
