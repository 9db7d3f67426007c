package branch

import "branchstore/pkg/domain"

// Entity is a point-in-time view of one record: an id, a cloned attributes
// snapshot, and the owning manager for delegated writes. The snapshot is
// taken at construction and does not track later mutations; staleness after
// an update or reduce is expected.
type Entity struct {
	manager    *Manager
	id         domain.ID
	attributes domain.Attributes
}

func newEntity(m *Manager, id domain.ID, attributes domain.Attributes) Entity {
	return Entity{manager: m, id: id, attributes: attributes.Clone()}
}

// ID returns the entity's identifier. Ids of entities returned by Create are
// provisional until the log is reduced.
func (e Entity) ID() domain.ID {
	return e.id
}

// Attributes returns a copy of the snapshot attributes.
func (e Entity) Attributes() domain.Attributes {
	return e.attributes.Clone()
}

// Get reads one attribute from the snapshot. The schema's id attribute name
// resolves to the entity's id.
func (e Entity) Get(key string) (any, bool) {
	return e.Full().Get(e.manager.schema, key)
}

// Full returns the merged id+attributes view of the snapshot.
func (e Entity) Full() domain.FullEntity {
	return domain.FullEntity{ID: e.id, Attributes: e.attributes.Clone()}
}

// Update queues an update scoped to exactly this entity's id.
func (e Entity) Update(updater domain.Updater) {
	e.manager.enqueueUpdate([]domain.ID{e.id}, updater)
}

// Delete queues deletion of exactly this entity's id.
func (e Entity) Delete() {
	e.manager.enqueueDelete([]domain.ID{e.id})
}
