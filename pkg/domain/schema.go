package domain

// Default field names and id origin applied by Schema.Normalize.
const (
	DefaultIDAttribute = "id"
	DefaultArrayField  = "items"
	DefaultMapField    = "itemsById"
	DefaultOrigin      = ID(1)
)

// Schema describes the layout of one branch: the attribute name ids are
// embedded under in full-entity views, the field names locating the id
// sequence and attributes map inside the parent tree, and the origin id used
// when allocating against an empty sequence. Branch specialization is done by
// composing a schema value into a manager, never by subtyping.
type Schema struct {
	IDAttribute string
	ArrayField  string
	MapField    string
	Origin      ID

	// DefaultState supplies the starting branch state when a manager is
	// constructed without one. Nil means an empty state.
	DefaultState func() BranchState
}

// Normalize returns a copy of the schema with zero-valued fields replaced by
// defaults.
func (s Schema) Normalize() Schema {
	if s.IDAttribute == "" {
		s.IDAttribute = DefaultIDAttribute
	}
	if s.ArrayField == "" {
		s.ArrayField = DefaultArrayField
	}
	if s.MapField == "" {
		s.MapField = DefaultMapField
	}
	if s.Origin == 0 {
		s.Origin = DefaultOrigin
	}
	return s
}

// InitialState returns the schema's default branch state, or an empty state
// when no factory is configured.
func (s Schema) InitialState() BranchState {
	if s.DefaultState != nil {
		return s.DefaultState()
	}
	return NewBranchState()
}
