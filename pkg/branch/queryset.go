package branch

import "branchstore/pkg/domain"

// QuerySet is an immutable, ordered id sequence bound to a manager. Narrowing
// operations return a new set and never mutate the receiver; write operations
// append to the owning manager's log, scoped to the set's current ids.
type QuerySet struct {
	manager *Manager
	ids     []domain.ID
}

// IDs returns a copy of the set's id sequence.
func (q QuerySet) IDs() []domain.ID {
	return append([]domain.ID(nil), q.ids...)
}

// Count returns the sequence length.
func (q QuerySet) Count() int {
	return len(q.ids)
}

// Exists reports whether the sequence is non-empty.
func (q QuerySet) Exists() bool {
	return len(q.ids) > 0
}

// Filter keeps only ids whose full entity satisfies the lookup. Together with
// Exclude it partitions the set: no overlap, no loss.
func (q QuerySet) Filter(lookup domain.Attributes) QuerySet {
	return q.narrow(lookup, true)
}

// Exclude keeps only ids whose full entity does not satisfy the lookup.
func (q QuerySet) Exclude(lookup domain.Attributes) QuerySet {
	return q.narrow(lookup, false)
}

func (q QuerySet) narrow(lookup domain.Attributes, keepMatches bool) QuerySet {
	kept := make([]domain.ID, 0, len(q.ids))
	for _, id := range q.ids {
		full, ok := q.manager.FullEntity(id)
		if !ok {
			continue
		}
		if q.manager.matcher.Match(lookup, full, q.manager.schema) == keepMatches {
			kept = append(kept, id)
		}
	}
	return QuerySet{manager: q.manager, ids: kept}
}

// At returns the entity at the given position in sequence order.
func (q QuerySet) At(index int) (Entity, error) {
	if index < 0 || index >= len(q.ids) {
		return Entity{}, domain.IndexOutOfRangeError{Index: index, Length: len(q.ids)}
	}
	id := q.ids[index]
	full, ok := q.manager.FullEntity(id)
	if !ok {
		return Entity{}, domain.IndexOutOfRangeError{Index: index, Length: len(q.ids)}
	}
	return newEntity(q.manager, id, full.Attributes), nil
}

// First returns the first entity in the sequence.
func (q QuerySet) First() (Entity, error) {
	return q.At(0)
}

// Last returns the last entity in the sequence.
func (q QuerySet) Last() (Entity, error) {
	return q.At(len(q.ids) - 1)
}

// Update queues an update of every id in the set.
func (q QuerySet) Update(updater domain.Updater) {
	q.manager.enqueueUpdate(q.ids, updater)
}

// Delete queues deletion of every id in the set.
func (q QuerySet) Delete() {
	q.manager.enqueueDelete(q.ids)
}
