package branch

import (
	"testing"

	"branchstore/pkg/domain"
)

func TestEntitySnapshotAccess(t *testing.T) {
	manager := NewManager(seededState(), testSchema())

	entity, err := manager.Get(domain.Attributes{"id": 2})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if entity.ID() != 2 {
		t.Fatalf("expected id 2, got %d", entity.ID())
	}
	if v, ok := entity.Get("name"); !ok || v != "beta" {
		t.Fatalf("expected name beta, got %v (%v)", v, ok)
	}
	if v, ok := entity.Get("id"); !ok || v != domain.ID(2) {
		t.Fatalf("expected id attribute to resolve, got %v (%v)", v, ok)
	}
	if _, ok := entity.Get("missing"); ok {
		t.Fatalf("expected missing attribute to report absence")
	}

	full := entity.Full()
	if full.ID != 2 || full.Attributes["name"] != "beta" {
		t.Fatalf("unexpected full view %+v", full)
	}

	// Accessors hand out copies.
	entity.Attributes()["name"] = "mutated"
	if v, _ := entity.Get("name"); v != "beta" {
		t.Fatalf("expected snapshot unaffected by accessor mutation, got %v", v)
	}
}

// Entity views are point-in-time snapshots. Queued updates, and even the
// reduced state they produce, must not show through an existing view.
func TestEntitySnapshotGoesStale(t *testing.T) {
	manager := NewManager(seededState(), testSchema())

	entity, err := manager.Get(domain.Attributes{"id": 1})
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	entity.Update(domain.MergePatch{"name": "renamed"})
	if v, _ := entity.Get("name"); v != "alpha" {
		t.Fatalf("expected stale snapshot to keep alpha, got %v", v)
	}

	next := manager.Reduce()
	if next.Attributes[1]["name"] != "renamed" {
		t.Fatalf("expected reduced state to carry the update, got %v", next.Attributes[1])
	}
	if v, _ := entity.Get("name"); v != "alpha" {
		t.Fatalf("expected snapshot to stay stale after reduce, got %v", v)
	}
}

func TestEntityUpdateScopedToOwnID(t *testing.T) {
	manager := NewManager(seededState(), testSchema())

	entity, err := manager.Get(domain.Attributes{"id": 3})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	entity.Update(domain.MergePatch{"kind": "prince"})

	next := manager.Reduce()
	if next.Attributes[3]["kind"] != "prince" {
		t.Fatalf("expected id 3 updated, got %v", next.Attributes[3])
	}
	if next.Attributes[1]["kind"] != "frog" {
		t.Fatalf("expected other entities untouched, got %v", next.Attributes[1])
	}
}

func TestEntityDeleteScopedToOwnID(t *testing.T) {
	manager := NewManager(seededState(), testSchema())

	entity, err := manager.Get(domain.Attributes{"id": 2})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	entity.Delete()

	next := manager.Reduce()
	if len(next.IDs) != 2 {
		t.Fatalf("expected two survivors, got %v", next.IDs)
	}
	if _, ok := next.Attributes[2]; ok {
		t.Fatalf("expected id 2 removed, got %v", next.Attributes)
	}
}

func TestEntityUpdateWithReplaceFunc(t *testing.T) {
	manager := NewManager(seededState(), testSchema())

	entity, err := manager.Get(domain.Attributes{"id": 1})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	entity.Update(domain.ReplaceFunc(func(full domain.FullEntity) domain.Attributes {
		return domain.Attributes{"was": full.Attributes["name"]}
	}))

	next := manager.Reduce()
	if next.Attributes[1]["was"] != "alpha" {
		t.Fatalf("expected replacement derived from full entity, got %v", next.Attributes[1])
	}
	if _, ok := next.Attributes[1]["kind"]; ok {
		t.Fatalf("expected replacement to drop prior attributes, got %v", next.Attributes[1])
	}
}
