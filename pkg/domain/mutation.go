package domain

// Mutation is one queued write record in a manager's log. Reduction
// dispatches on the concrete record type and silently ignores records it does
// not recognize, leaving room for future record kinds.
type Mutation interface {
	// Kind names the record type for logging and diagnostics.
	Kind() string
}

// Kind names for the built-in mutation records.
const (
	KindCreate  = "create"
	KindUpdate  = "update"
	KindDelete  = "delete"
	KindReorder = "reorder"
)

// CreateMutation queues insertion of a new entity. The id is allocated during
// reduction, against the sequence as it stands after earlier records in the
// same fold.
type CreateMutation struct {
	attributes Attributes
}

// NewCreateMutation builds a create record. The attributes are cloned so the
// record stays immutable after append.
func NewCreateMutation(attributes Attributes) CreateMutation {
	return CreateMutation{attributes: attributes.Clone()}
}

// Attributes returns a copy of the queued attributes.
func (m CreateMutation) Attributes() Attributes { return m.attributes.Clone() }

// Kind implements Mutation.
func (CreateMutation) Kind() string { return KindCreate }

// UpdateMutation queues an update of the given ids. Ids absent at reduction
// time are skipped silently.
type UpdateMutation struct {
	ids     []ID
	updater Updater
}

// NewUpdateMutation builds an update record scoped to the given ids.
func NewUpdateMutation(ids []ID, updater Updater) UpdateMutation {
	return UpdateMutation{ids: cloneIDs(ids), updater: updater}
}

// IDs returns a copy of the targeted id sequence.
func (m UpdateMutation) IDs() []ID { return cloneIDs(m.ids) }

// Updater returns the queued updater.
func (m UpdateMutation) Updater() Updater { return m.updater }

// Kind implements Mutation.
func (UpdateMutation) Kind() string { return KindUpdate }

// DeleteMutation queues removal of the given ids. Ids absent at reduction
// time are skipped silently.
type DeleteMutation struct {
	ids []ID
}

// NewDeleteMutation builds a delete record scoped to the given ids.
func NewDeleteMutation(ids []ID) DeleteMutation {
	return DeleteMutation{ids: cloneIDs(ids)}
}

// IDs returns a copy of the targeted id sequence.
func (m DeleteMutation) IDs() []ID { return cloneIDs(m.ids) }

// Kind implements Mutation.
func (DeleteMutation) Kind() string { return KindDelete }

// ReorderMutation queues a re-sort of the id sequence by the given attribute
// names, applied left to right as tie-breakers. The attributes map is
// untouched.
type ReorderMutation struct {
	sortKeys []string
}

// NewReorderMutation builds a reorder record.
func NewReorderMutation(sortKeys []string) ReorderMutation {
	return ReorderMutation{sortKeys: append([]string(nil), sortKeys...)}
}

// SortKeys returns a copy of the sort key list.
func (m ReorderMutation) SortKeys() []string {
	return append([]string(nil), m.sortKeys...)
}

// Kind implements Mutation.
func (ReorderMutation) Kind() string { return KindReorder }

func cloneIDs(ids []ID) []ID {
	return append([]ID(nil), ids...)
}
