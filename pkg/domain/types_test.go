package domain

import "testing"

func TestBranchStateCloneIsIndependent(t *testing.T) {
	state := BranchState{
		IDs: []ID{1, 2},
		Attributes: map[ID]Attributes{
			1: {"name": "alpha"},
			2: {"name": "beta"},
		},
	}

	cloned := state.Clone()
	cloned.IDs[0] = 99
	cloned.Attributes[1]["name"] = "mutated"
	cloned.Attributes[3] = Attributes{"name": "gamma"}

	if state.IDs[0] != 1 {
		t.Fatalf("expected source sequence untouched, got %v", state.IDs)
	}
	if state.Attributes[1]["name"] != "alpha" {
		t.Fatalf("expected source attributes untouched, got %v", state.Attributes[1])
	}
	if _, ok := state.Attributes[3]; ok {
		t.Fatalf("expected no id 3 in source attributes")
	}
}

func TestBranchStateWellformed(t *testing.T) {
	good := BranchState{
		IDs:        []ID{1, 2},
		Attributes: map[ID]Attributes{1: {}, 2: {}},
	}
	if !good.Wellformed() {
		t.Fatalf("expected well-formed state")
	}

	duplicate := BranchState{
		IDs:        []ID{1, 1},
		Attributes: map[ID]Attributes{1: {}, 2: {}},
	}
	if duplicate.Wellformed() {
		t.Fatalf("expected duplicate ids to fail the invariant")
	}

	missing := BranchState{
		IDs:        []ID{1, 2},
		Attributes: map[ID]Attributes{1: {}},
	}
	if missing.Wellformed() {
		t.Fatalf("expected missing map key to fail the invariant")
	}

	orphan := BranchState{
		IDs:        []ID{1},
		Attributes: map[ID]Attributes{1: {}, 2: {}},
	}
	if orphan.Wellformed() {
		t.Fatalf("expected orphan map key to fail the invariant")
	}
}

func TestAttributesCloneNil(t *testing.T) {
	var attrs Attributes
	if cloned := attrs.Clone(); cloned != nil {
		t.Fatalf("expected nil clone for nil attributes, got %v", cloned)
	}
}

func TestSchemaNormalizeDefaults(t *testing.T) {
	schema := Schema{}.Normalize()
	if schema.IDAttribute != DefaultIDAttribute {
		t.Fatalf("expected default id attribute, got %q", schema.IDAttribute)
	}
	if schema.ArrayField != DefaultArrayField || schema.MapField != DefaultMapField {
		t.Fatalf("expected default field names, got %q/%q", schema.ArrayField, schema.MapField)
	}
	if schema.Origin != DefaultOrigin {
		t.Fatalf("expected default origin, got %d", schema.Origin)
	}

	custom := Schema{IDAttribute: "key", ArrayField: "order", MapField: "byKey", Origin: 100}.Normalize()
	if custom.IDAttribute != "key" || custom.ArrayField != "order" || custom.MapField != "byKey" || custom.Origin != 100 {
		t.Fatalf("expected explicit schema fields preserved, got %+v", custom)
	}
}

func TestSchemaInitialState(t *testing.T) {
	plain := Schema{}.Normalize()
	state := plain.InitialState()
	if len(state.IDs) != 0 || len(state.Attributes) != 0 {
		t.Fatalf("expected empty initial state, got %+v", state)
	}

	seeded := Schema{DefaultState: func() BranchState {
		return BranchState{IDs: []ID{7}, Attributes: map[ID]Attributes{7: {"seed": true}}}
	}}.Normalize()
	state = seeded.InitialState()
	if len(state.IDs) != 1 || state.IDs[0] != 7 {
		t.Fatalf("expected seeded initial state, got %+v", state)
	}
}

func TestFullEntityGetResolvesIDAttribute(t *testing.T) {
	schema := Schema{}.Normalize()
	full := FullEntity{ID: 4, Attributes: Attributes{"name": "alpha"}}

	if v, ok := full.Get(schema, "id"); !ok || v != ID(4) {
		t.Fatalf("expected id attribute to resolve to 4, got %v (%v)", v, ok)
	}
	if v, ok := full.Get(schema, "name"); !ok || v != "alpha" {
		t.Fatalf("expected name attribute, got %v (%v)", v, ok)
	}
	if _, ok := full.Get(schema, "missing"); ok {
		t.Fatalf("expected missing attribute to report absence")
	}
}
