// Package chainhashmap implements a separate-chaining hash map.
//
// The table is an array of buckets, each bucket a small unorderedmap.Map
// holding the entries that hash to its index. Absent buckets are nil; a
// bucket whose last entry is deleted is dropped outright. The table doubles
// when the entry count reaches the bucket count and halves when it drops to
// a quarter, rehashing every entry either way.
//
// Keys are hashed with a per-map maphash seed, so two maps with the same
// entries will generally lay them out differently. Go's comparability rules
// give structural equality and hashing for free: array-typed keys compare
// and hash element-wise.
package chainhashmap

import (
	"fmt"
	"hash/maphash"
	"iter"
	"strings"

	"github.com/pkg/errors"

	"mlib.com/collections/containers/maps"
	"mlib.com/collections/containers/maps/unorderedmap"
)

const (
	initCapacity   = 4 // default number of buckets
	bucketCapacity = 2 // fresh buckets hold this many entries before resizing
)

// Assert Map implementation
var _ maps.Map[string, int] = (*Map[string, int])(nil)

// Map is a hash table whose buckets are small insertion-order maps.
type Map[K comparable, V any] struct {
	seed    maphash.Seed
	hash    func(maphash.Seed, K) uint64
	buckets []*unorderedmap.Map[K, V]
	length  int
}

// New instantiates an empty map.
func New[K comparable, V any]() *Map[K, V] {
	m, _ := NewCapacity[K, V](initCapacity)
	return m
}

// NewCapacity instantiates an empty map with the given number of buckets.
func NewCapacity[K comparable, V any](capacity int) (*Map[K, V], error) {
	if capacity <= 0 {
		return nil, errors.Errorf("invalid capacity: %d", capacity)
	}

	return &Map[K, V]{
		seed:    maphash.MakeSeed(),
		hash:    maphash.Comparable[K],
		buckets: make([]*unorderedmap.Map[K, V], capacity),
	}, nil
}

// Size returns the number of entries in the map.
func (m *Map[K, V]) Size() int {
	return m.length
}

// Empty returns true if the map does not contain any entries.
func (m *Map[K, V]) Empty() bool {
	return m.Size() == 0
}

// Clear removes all entries and resets the table to its initial capacity.
func (m *Map[K, V]) Clear() {
	m.buckets = make([]*unorderedmap.Map[K, V], initCapacity)
	m.length = 0
}

// Contains checks if key has a value mapped to it.
func (m *Map[K, V]) Contains(key K) bool {
	bucket := m.buckets[m.bucketIndex(key)]
	return bucket != nil && bucket.Contains(key)
}

// Get returns the value associated with key, or an error wrapping
// maps.ErrKeyNotFound when key has no mapping.
func (m *Map[K, V]) Get(key K) (V, error) {
	if bucket := m.buckets[m.bucketIndex(key)]; bucket != nil {
		return bucket.Get(key)
	}

	var zero V
	return zero, errors.Wrapf(maps.ErrKeyNotFound, "key '%v'", key)
}

// GetOr returns the value associated with key, or fallback when key has no
// mapping.
func (m *Map[K, V]) GetOr(key K, fallback V) V {
	if bucket := m.buckets[m.bucketIndex(key)]; bucket != nil {
		return bucket.GetOr(key, fallback)
	}
	return fallback
}

// Put associates value with key. Reports true iff key was absent and a new
// entry was inserted. The growth check runs before the key is hashed so the
// key is never placed in a table about to be replaced.
func (m *Map[K, V]) Put(key K, value V) bool {
	if m.length == len(m.buckets) {
		m.rehash(len(m.buckets) * 2)
	}

	h := m.bucketIndex(key)
	bucket := m.buckets[h]
	if bucket == nil {
		bucket, _ = unorderedmap.NewCapacity[K, V](bucketCapacity)
		m.buckets[h] = bucket
	}

	if !bucket.Put(key, value) {
		return false
	}
	m.length++
	return true
}

// Delete removes key and its value, dropping the bucket when it empties.
// Reports true iff an entry was removed. The shrink check runs before the
// key is hashed, mirroring Put.
func (m *Map[K, V]) Delete(key K) bool {
	if m.length == len(m.buckets)/4 && len(m.buckets)/2 >= initCapacity {
		m.rehash(len(m.buckets) / 2)
	}

	h := m.bucketIndex(key)
	bucket := m.buckets[h]
	if bucket == nil {
		return false
	}
	if !bucket.Delete(key) {
		return false
	}

	if bucket.Empty() {
		m.buckets[h] = nil
	}
	m.length--
	return true
}

// Copy returns a shallow copy sharing keys and values with the original but
// no backing storage.
func (m *Map[K, V]) Copy() *Map[K, V] {
	cp, _ := NewCapacity[K, V](m.copyCapacity())
	for entry := range m.Entries() {
		cp.Put(entry.Key, entry.Value)
	}
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

// Keys iterates over all keys, bucket by bucket, in implementation order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, bucket := range m.buckets {
			if bucket == nil {
				continue
			}
			for key := range bucket.Keys() {
				if !yield(key) {
					return
				}
			}
		}
	}
}

// Values iterates over all values, bucket by bucket, in implementation order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, bucket := range m.buckets {
			if bucket == nil {
				continue
			}
			for value := range bucket.Values() {
				if !yield(value) {
					return
				}
			}
		}
	}
}

// Entries iterates over all entries, bucket by bucket, in implementation
// order.
func (m *Map[K, V]) Entries() iter.Seq[maps.Entry[K, V]] {
	return func(yield func(maps.Entry[K, V]) bool) {
		for _, bucket := range m.buckets {
			if bucket == nil {
				continue
			}
			for entry := range bucket.Entries() {
				if !yield(entry) {
					return
				}
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

func (m *Map[K, V]) bucketIndex(key K) int {
	return int(m.hash(m.seed, key) % uint64(len(m.buckets)))
}

// rehash re-inserts every entry into a fresh bucket array of the given
// capacity. The seed is kept so only the modulus changes. No partial state
// is ever observable: the old array stays in place until the new one is
// fully built.
func (m *Map[K, V]) rehash(capacity int) {
	cp := &Map[K, V]{
		seed:    m.seed,
		hash:    m.hash,
		buckets: make([]*unorderedmap.Map[K, V], capacity),
	}
	for entry := range m.Entries() {
		cp.Put(entry.Key, entry.Value)
	}
	m.buckets = cp.buckets
}

func (m *Map[K, V]) copyCapacity() int {
	if m.length >= initCapacity {
		return m.length
	}
	return initCapacity
}
