package types

import (
	"iter"
	"maps"
)

// DefaultMap is a map that lazily creates a value for missing keys using a
// user supplied constructor. It is handy for grouping, e.g.
//
//	byKind := NewDefaultMap[string](func() Set[string] { return NewSet[string]() })
//	byKind.Get("ADDRESS").Add("0xabc")
type DefaultMap[K comparable, V any] struct {
	data        map[K]V
	defaultFunc func() V
}

// NewDefaultMap creates an empty DefaultMap that uses defaultFunc for missing keys.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value for key, creating and storing a default one first if
// the key is absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	val, ok := d.data[key]
	if ok {
		return val
	}

	val = d.defaultFunc()
	d.data[key] = val
	return val
}

// Set assigns val to key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// Len returns the number of keys present.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}

// All yields every key/value pair in no particular order.
func (d *DefaultMap[K, V]) All() iter.Seq2[K, V] {
	return maps.All(d.data)
}

// ToMap exposes the underlying map. Mutations are visible to the DefaultMap.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
