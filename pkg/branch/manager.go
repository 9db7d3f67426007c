// Package branch implements the core of the normalized branch store: a
// manager owning one branch state and a deferred mutation log, a chainable
// query set over ordered ids, and a single-entity snapshot view. Writes never
// touch the branch; they append to the log, which one Reduce call folds into
// the next branch state.
package branch

import (
	"time"

	"branchstore/pkg/domain"
)

// Manager owns the current branch state, the mutation log, id allocation and
// the reduction step. Reads always observe the state the manager was
// constructed with; queued mutations become visible only in the state
// returned by Reduce.
type Manager struct {
	schema  domain.Schema
	state   domain.BranchState
	matcher domain.Matcher
	log     []domain.Mutation
	logger  Logger
	metrics MetricsRecorder
}

// Option configures optional manager collaborators.
type Option func(*Manager)

// WithMatcher replaces the predicate matcher used by Get, Filter and Exclude.
func WithMatcher(matcher domain.Matcher) Option {
	return func(m *Manager) {
		if matcher != nil {
			m.matcher = matcher
		}
	}
}

// WithLogger attaches a structured logger. *slog.Logger satisfies the
// interface directly.
func WithLogger(logger Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithRecorder attaches a metrics recorder observing manager operations.
func WithRecorder(recorder MetricsRecorder) Option {
	return func(m *Manager) {
		if recorder != nil {
			m.metrics = recorder
		}
	}
}

// NewManager constructs a manager over the given branch state. The state is
// cloned; the caller's value is never written to. A zero-valued state falls
// back to the schema's default state.
func NewManager(state domain.BranchState, schema domain.Schema, opts ...Option) *Manager {
	schema = schema.Normalize()
	if state.IDs == nil && state.Attributes == nil {
		state = schema.InitialState()
	}
	m := &Manager{
		schema:  schema,
		state:   state.Clone(),
		matcher: domain.SubsetMatcher{},
		logger:  noopLogger{},
		metrics: noopRecorder{},
	}
	if m.state.Attributes == nil {
		m.state.Attributes = map[domain.ID]domain.Attributes{}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewManagerFromTree constructs a manager over the branch fields embedded in
// a parent tree node, located via the schema's array and map field names. A
// node without usable branch fields falls back to the schema's default state.
func NewManagerFromTree(tree map[string]any, schema domain.Schema, opts ...Option) *Manager {
	schema = schema.Normalize()
	state, ok := domain.BranchFromTree(tree, schema)
	if !ok {
		state = schema.InitialState()
	}
	return NewManager(state, schema, opts...)
}

// Schema returns the normalized schema the manager was built with.
func (m *Manager) Schema() domain.Schema {
	return m.schema
}

// CurrentIDs returns a copy of the original id sequence. Queued mutations are
// not reflected.
func (m *Manager) CurrentIDs() []domain.ID {
	return append([]domain.ID(nil), m.state.IDs...)
}

// CurrentAttributes returns a copy of the original attributes map. Queued
// mutations are not reflected.
func (m *Manager) CurrentAttributes() map[domain.ID]domain.Attributes {
	out := make(map[domain.ID]domain.Attributes, len(m.state.Attributes))
	for id, attrs := range m.state.Attributes {
		out[id] = attrs.Clone()
	}
	return out
}

// FullEntity derives the merged id+attributes view for one id.
func (m *Manager) FullEntity(id domain.ID) (domain.FullEntity, bool) {
	attrs, ok := m.state.Attributes[id]
	if !ok {
		return domain.FullEntity{}, false
	}
	return domain.FullEntity{ID: id, Attributes: attrs.Clone()}, true
}

// AllFullEntities derives the full-entity view for every id, in sequence
// order.
func (m *Manager) AllFullEntities() []domain.FullEntity {
	out := make([]domain.FullEntity, 0, len(m.state.IDs))
	for _, id := range m.state.IDs {
		if full, ok := m.FullEntity(id); ok {
			out = append(out, full)
		}
	}
	return out
}

// AllocateNextID returns one greater than the maximum id currently present,
// or the schema origin when the sequence is empty.
func (m *Manager) AllocateNextID() domain.ID {
	return nextID(m.state.IDs, m.schema.Origin)
}

// Create queues insertion of a new entity and returns a snapshot view built
// from the given attributes. The entity's id is provisional until Reduce
// assigns the real one; it is computed as if every earlier queued create had
// already been folded, so several pending creates carry distinct provisional
// ids.
func (m *Manager) Create(attributes domain.Attributes) Entity {
	start := time.Now()
	pending := domain.ID(0)
	for _, rec := range m.log {
		if _, ok := rec.(domain.CreateMutation); ok {
			pending++
		}
	}
	provisional := m.AllocateNextID() + pending
	m.enqueue(domain.NewCreateMutation(attributes))
	m.metrics.Observe(OpCreate, true, time.Since(start))
	return newEntity(m, provisional, attributes)
}

// Get returns the first entity satisfying the lookup, in sequence order.
// When the lookup carries the id attribute, the id is authoritative and no
// further predicate check runs. An empty branch yields EmptyStoreError; a
// non-empty branch with no match yields EntityNotFoundError.
func (m *Manager) Get(lookup domain.Attributes) (Entity, error) {
	start := time.Now()
	if len(m.state.IDs) == 0 {
		m.metrics.Observe(OpGet, false, time.Since(start))
		return Entity{}, domain.EmptyStoreError{}
	}
	if raw, ok := lookup[m.schema.IDAttribute]; ok {
		if id, valid := domain.CoerceID(raw); valid {
			if attrs, present := m.state.Attributes[id]; present {
				m.metrics.Observe(OpGet, true, time.Since(start))
				return newEntity(m, id, attrs), nil
			}
		}
		m.metrics.Observe(OpGet, false, time.Since(start))
		return Entity{}, domain.EntityNotFoundError{Lookup: lookup.Clone()}
	}
	for _, full := range m.AllFullEntities() {
		if m.matcher.Match(lookup, full, m.schema) {
			m.metrics.Observe(OpGet, true, time.Since(start))
			return newEntity(m, full.ID, full.Attributes), nil
		}
	}
	m.metrics.Observe(OpGet, false, time.Since(start))
	return Entity{}, domain.EntityNotFoundError{Lookup: lookup.Clone()}
}

// SetOrder queues a re-sort of the id sequence by the given attribute names.
func (m *Manager) SetOrder(sortKeys ...string) {
	start := time.Now()
	m.enqueue(domain.NewReorderMutation(sortKeys))
	m.metrics.Observe(OpSetOrder, true, time.Since(start))
}

// All returns a query set over the full current id sequence.
func (m *Manager) All() QuerySet {
	return QuerySet{manager: m, ids: m.CurrentIDs()}
}

// Filter narrows the full id sequence to entities matching the lookup.
func (m *Manager) Filter(lookup domain.Attributes) QuerySet {
	return m.All().Filter(lookup)
}

// Exclude narrows the full id sequence to entities not matching the lookup.
func (m *Manager) Exclude(lookup domain.Attributes) QuerySet {
	return m.All().Exclude(lookup)
}

// First returns the first entity in sequence order.
func (m *Manager) First() (Entity, error) {
	return m.All().First()
}

// Last returns the last entity in sequence order.
func (m *Manager) Last() (Entity, error) {
	return m.All().Last()
}

// At returns the entity at the given position in sequence order.
func (m *Manager) At(index int) (Entity, error) {
	return m.All().At(index)
}

// Exists reports whether the branch holds any entity.
func (m *Manager) Exists() bool {
	return m.All().Exists()
}

// Count returns the number of entities in the branch.
func (m *Manager) Count() int {
	return m.All().Count()
}

// Update queues an update of every entity in the branch.
func (m *Manager) Update(updater domain.Updater) {
	m.All().Update(updater)
}

// Delete queues deletion of every entity in the branch.
func (m *Manager) Delete() {
	m.All().Delete()
}

// Mutations returns a copy of the queued mutation log, in append order.
func (m *Manager) Mutations() []domain.Mutation {
	return append([]domain.Mutation(nil), m.log...)
}

// ResetLog discards queued mutations, starting a fresh session over the same
// branch state.
func (m *Manager) ResetLog() {
	m.log = nil
}

// Reduce folds the mutation log, in append order, over the original branch
// state and returns the next state. The log is consumed; the manager's own
// state is never rewritten, so the caller persists the result upward.
func (m *Manager) Reduce() domain.BranchState {
	start := time.Now()
	next := reduceState(m.state, m.log, m.schema)
	applied := len(m.log)
	m.log = nil
	m.metrics.Observe(OpReduce, true, time.Since(start))
	m.logger.Debug("reduced mutation log", "mutations", applied, "entities", len(next.IDs))
	return next
}

func (m *Manager) enqueue(record domain.Mutation) {
	m.log = append(m.log, record)
	m.logger.Debug("queued mutation", "kind", record.Kind(), "pending", len(m.log))
}

func (m *Manager) enqueueUpdate(ids []domain.ID, updater domain.Updater) {
	start := time.Now()
	m.enqueue(domain.NewUpdateMutation(ids, updater))
	m.metrics.Observe(OpUpdate, true, time.Since(start))
}

func (m *Manager) enqueueDelete(ids []domain.ID) {
	start := time.Now()
	m.enqueue(domain.NewDeleteMutation(ids))
	m.metrics.Observe(OpDelete, true, time.Since(start))
}
