package types

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set is a mutable hash set for comparable types.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts values into the set in place.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes values from the set in place.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Has reports whether val is in the set.
func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// ToIter yields the elements in no particular order.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns the elements in no particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}

// Sorted returns the elements of s in ascending order. Storage lookups use it
// so that batched queries are issued with a stable argument order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(s.ToIter())
}
