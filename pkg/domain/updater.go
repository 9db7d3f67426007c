package domain

// Updater describes how an UpdateMutation rewrites one entity's attributes.
// It is a two-way union: a shallow merge patch, or a replace function fed the
// full-entity view. Dispatch happens on the concrete type, never on runtime
// inspection of caller input.
type Updater interface {
	// Apply produces the next attributes for an entity. current holds the
	// stored attributes, full the merged id+attributes view.
	Apply(current Attributes, full FullEntity) Attributes
}

// MergePatch overwrites the keys it carries and leaves every other attribute
// untouched.
type MergePatch Attributes

// Apply implements Updater.
func (p MergePatch) Apply(current Attributes, _ FullEntity) Attributes {
	next := current.Clone()
	if next == nil {
		next = Attributes{}
	}
	for k, v := range p {
		next[k] = v
	}
	return next
}

// ReplaceFunc computes replacement attributes from the full-entity view. The
// returned map becomes the entity's complete attribute set.
type ReplaceFunc func(FullEntity) Attributes

// Apply implements Updater.
func (f ReplaceFunc) Apply(_ Attributes, full FullEntity) Attributes {
	return f(full).Clone()
}
