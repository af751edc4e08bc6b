// Package unorderedmap implements a map over a pair of parallel resizing
// arrays in insertion order.
//
// Every lookup is a linear scan, so the type only suits small maps. It is
// the bucket type behind the chaining hash map, where buckets stay short by
// construction. Keys need nothing beyond comparability.
package unorderedmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"

	"mlib.com/collections/containers/maps"
)

const initCapacity = 4 // default capacity of map

// Assert Map implementation
var _ maps.Map[string, int] = (*Map[string, int])(nil)

// Map holds entries in parallel key and value arrays in insertion order.
type Map[K comparable, V any] struct {
	keys   []K
	values []V
}

// New instantiates an empty map.
func New[K comparable, V any]() *Map[K, V] {
	m, _ := NewCapacity[K, V](initCapacity)
	return m
}

// NewCapacity instantiates an empty map with capacity for the given number
// of entries before resizing.
func NewCapacity[K comparable, V any](capacity int) (*Map[K, V], error) {
	if capacity <= 0 {
		return nil, errors.Errorf("invalid capacity: %d", capacity)
	}

	return &Map[K, V]{
		keys:   make([]K, 0, capacity),
		values: make([]V, 0, capacity),
	}, nil
}

// Size returns the number of entries in the map.
func (m *Map[K, V]) Size() int {
	return len(m.keys)
}

// Empty returns true if the map does not contain any entries.
func (m *Map[K, V]) Empty() bool {
	return m.Size() == 0
}

// Clear removes all entries and resets the map to its initial capacity.
func (m *Map[K, V]) Clear() {
	m.keys = make([]K, 0, initCapacity)
	m.values = make([]V, 0, initCapacity)
}

// Contains checks if key has a value mapped to it.
func (m *Map[K, V]) Contains(key K) bool {
	return m.indexOf(key) >= 0
}

// Get returns the value associated with key, or an error wrapping
// maps.ErrKeyNotFound when key has no mapping.
func (m *Map[K, V]) Get(key K) (V, error) {
	if i := m.indexOf(key); i >= 0 {
		return m.values[i], nil
	}

	var zero V
	return zero, errors.Wrapf(maps.ErrKeyNotFound, "key '%v'", key)
}

// GetOr returns the value associated with key, or fallback when key has no
// mapping.
func (m *Map[K, V]) GetOr(key K, fallback V) V {
	if i := m.indexOf(key); i >= 0 {
		return m.values[i]
	}
	return fallback
}

// Put associates value with key. Reports true iff key was absent and a new
// entry was inserted.
func (m *Map[K, V]) Put(key K, value V) bool {
	if i := m.indexOf(key); i >= 0 {
		m.values[i] = value
		return false
	}

	if len(m.keys) == cap(m.keys) {
		m.resize(cap(m.keys) * 2)
	}

	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
	return true
}

// Delete removes key and its value, preserving the insertion order of the
// remaining entries. Reports true iff an entry was removed.
func (m *Map[K, V]) Delete(key K) bool {
	i := m.indexOf(key)
	if i < 0 {
		return false
	}

	copy(m.keys[i:], m.keys[i+1:])
	copy(m.values[i:], m.values[i+1:])

	last := len(m.keys) - 1
	var zeroK K
	var zeroV V
	m.keys[last] = zeroK
	m.values[last] = zeroV
	m.keys = m.keys[:last]
	m.values = m.values[:last]

	if len(m.keys) == cap(m.keys)/4 && cap(m.keys)/2 >= initCapacity {
		m.resize(cap(m.keys) / 2)
	}
	return true
}

// Copy returns a shallow copy sharing keys and values with the original but
// no backing storage.
func (m *Map[K, V]) Copy() *Map[K, V] {
	cp := &Map[K, V]{
		keys:   make([]K, len(m.keys), m.copyCapacity()),
		values: make([]V, len(m.values), m.copyCapacity()),
	}
	copy(cp.keys, m.keys)
	copy(cp.values, m.values)
	return cp
}

// Deepcopy returns an independent copy whose keys and values are produced by
// the given pure copy functions. Both functions must be non-nil.
func (m *Map[K, V]) Deepcopy(keyCopyFn func(K) K, valueCopyFn func(V) V) (*Map[K, V], error) {
	if keyCopyFn == nil {
		return nil, errors.New("keyCopyFn must not be nil")
	}
	if valueCopyFn == nil {
		return nil, errors.New("valueCopyFn must not be nil")
	}

	cp, _ := NewCapacity[K, V](m.copyCapacity())
	for entry := range m.Entries() {
		cp.Put(keyCopyFn(entry.Key), valueCopyFn(entry.Value))
	}
	return cp, nil
}

// Keys iterates over all keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, key := range m.keys {
			if !yield(key) {
				return
			}
		}
	}
}

// Values iterates over all values in insertion order of their keys.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range m.values {
			if !yield(value) {
				return
			}
		}
	}
}

// Entries iterates over all entries in insertion order.
func (m *Map[K, V]) Entries() iter.Seq[maps.Entry[K, V]] {
	return func(yield func(maps.Entry[K, V]) bool) {
		for i := range m.keys {
			if !yield(maps.Entry[K, V]{Key: m.keys[i], Value: m.values[i]}) {
				return
			}
		}
	}
}

// String returns a string representation of container
func (m *Map[K, V]) String() string {
	if m.Empty() {
		return "[0]{ }"
	}

	items := make([]string, 0, m.Size())
	for entry := range m.Entries() {
		items = append(items, entry.String())
	}
	return fmt.Sprintf("[%d]{ %s }", m.Size(), strings.Join(items, ", "))
}

// indexOf scans for key, returning -1 when absent.
func (m *Map[K, V]) indexOf(key K) int {
	for i, k := range m.keys {
		if k == key {
			return i
		}
	}
	return -1
}

// resize reallocates the backing arrays with the given capacity. The old
// arrays are never aliased afterwards.
func (m *Map[K, V]) resize(capacity int) {
	keys := make([]K, len(m.keys), capacity)
	values := make([]V, len(m.values), capacity)
	copy(keys, m.keys)
	copy(values, m.values)
	m.keys, m.values = keys, values
}

func (m *Map[K, V]) copyCapacity() int {
	if m.Size() >= 2 {
		return m.Size() * 2
	}
	return initCapacity
}
