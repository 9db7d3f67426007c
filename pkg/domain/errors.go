package domain

import "fmt"

// EmptyStoreError is returned by lookups against a branch with no entities.
type EmptyStoreError struct{}

func (EmptyStoreError) Error() string {
	return "branch store is empty"
}

// EntityNotFoundError is returned when no entity satisfies a lookup.
type EntityNotFoundError struct {
	Lookup Attributes
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("no entity matches lookup %v", map[string]any(e.Lookup))
}

// IndexOutOfRangeError is returned by positional access into an id sequence
// that is empty or shorter than the requested index.
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for sequence of length %d", e.Index, e.Length)
}
