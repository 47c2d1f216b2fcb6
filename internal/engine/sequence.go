package engine

import "slices"

// Sequence is an ordered collection of elements addressed by position.
// The length is the length of the backing slice, so it always matches the
// number of reachable elements.
type Sequence[T any] struct {
	items []T
}

// NewSequence creates a sequence holding a copy of values
func NewSequence[T any](values ...T) *Sequence[T] {
	return &Sequence[T]{items: slices.Clone(values)}
}

// Len returns the number of elements
func (s *Sequence[T]) Len() int {
	return len(s.items)
}

// At returns the element at position and whether it exists
func (s *Sequence[T]) At(position int) (T, bool) {
	if position < 0 || position >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[position], true
}

// Insert splices value in at position, shifting later elements right.
// Returns false without modifying the sequence if position is outside [0, Len].
func (s *Sequence[T]) Insert(position int, value T) bool {
	if position < 0 || position > len(s.items) {
		return false
	}
	s.items = slices.Insert(s.items, position, value)
	return true
}

// Delete removes the element at position, shifting later elements left.
// Returns false without modifying the sequence if position is outside [0, Len-1].
func (s *Sequence[T]) Delete(position int) bool {
	if position < 0 || position >= len(s.items) {
		return false
	}
	s.items = slices.Delete(s.items, position, position+1)
	return true
}

// Clone returns a deep copy that shares no storage with s
func (s *Sequence[T]) Clone() *Sequence[T] {
	return &Sequence[T]{items: slices.Clone(s.items)}
}

// Items returns a copy of the elements in order
func (s *Sequence[T]) Items() []T {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return items
}
