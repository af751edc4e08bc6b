// Package sortedmap implements an ordered map over a pair of parallel
// resizing arrays kept in ascending key order.
//
// Lookup is a binary search, so Get, Contains, Floor, Ceil and Rank take
// logarithmic time. Put and Delete additionally shift entries and therefore
// take linear time. The backing arrays grow by a factor of 2 when full and
// shrink by a factor of 2 when occupancy drops to a quarter of capacity.
//
// Keys with a natural ordering use New; any other key type supplies an
// explicit Comparator through NewComparator.
package sortedmap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"

	"mlib.com/collections/containers/maps"
)

const initCapacity = 4 // default capacity of map

// Comparator orders keys: negative if a < b, zero if a == b, positive if a > b.
type Comparator[K any] func(a, b K) int

// Assert OrderedMap implementation
var _ maps.OrderedMap[string, int] = (*Map[string, int])(nil)

// Map holds entries in parallel key and value arrays sorted by key.
type Map[K comparable, V any] struct {
	cmp    Comparator[K]
	keys   []K
	values []V
}

// New instantiates an empty map ordered by the natural ordering of K.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	m, _ := NewComparatorCapacity[K, V](cmp.Compare[K], initCapacity)
	return m
}

// NewCapacity instantiates an empty map ordered by the natural ordering of K,
// with capacity for the given number of entries before resizing.
func NewCapacity[K cmp.Ordered, V any](capacity int) (*Map[K, V], error) {
	return NewComparatorCapacity[K, V](cmp.Compare[K], capacity)
}

// NewComparator instantiates an empty map ordered by comparator.
func NewComparator[K comparable, V any](comparator Comparator[K]) (*Map[K, V], error) {
	return NewComparatorCapacity[K, V](comparator, initCapacity)
}

// NewComparatorCapacity instantiates an empty map ordered by comparator, with
// capacity for the given number of entries before resizing.
func NewComparatorCapacity[K comparable, V any](comparator Comparator[K], capacity int) (*Map[K, V], error) {
	if comparator == nil {
		return nil, errors.New("comparator must not be nil")
	}
	if capacity <= 0 {
		return nil, errors.Errorf("invalid capacity: %d", capacity)
	}

	return &Map[K, V]{
		cmp:    comparator,
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

// Comparator returns the ordering fixed at construction.
func (m *Map[K, V]) Comparator() Comparator[K] {
	return m.cmp
}

// Contains checks if key has a value mapped to it.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.search(key)
	return found
}

// Get returns the value associated with key, or an error wrapping
// maps.ErrKeyNotFound when key has no mapping.
func (m *Map[K, V]) Get(key K) (V, error) {
	if i, found := m.search(key); found {
		return m.values[i], nil
	}

	var zero V
	return zero, errors.Wrapf(maps.ErrKeyNotFound, "key '%v'", key)
}

// GetOr returns the value associated with key, or fallback when key has no
// mapping.
func (m *Map[K, V]) GetOr(key K, fallback V) V {
	if i, found := m.search(key); found {
		return m.values[i]
	}
	return fallback
}

// Put associates value with key, keeping the keys sorted. Reports true iff
// key was absent and a new entry was inserted.
func (m *Map[K, V]) Put(key K, value V) bool {
	i, found := m.search(key)
	if found {
		m.values[i] = value
		return false
	}

	if len(m.keys) == cap(m.keys) {
		m.resize(cap(m.keys) * 2)
	}

	// extend by one and shift [i, len) a slot right
	m.keys = m.keys[:len(m.keys)+1]
	m.values = m.values[:len(m.values)+1]
	copy(m.keys[i+1:], m.keys[i:])
	copy(m.values[i+1:], m.values[i:])

	m.keys[i] = key
	m.values[i] = value
	return true
}

// Delete removes key and its value. Reports true iff an entry was removed.
func (m *Map[K, V]) Delete(key K) bool {
	i, found := m.search(key)
	if !found {
		return false
	}

	m.removeAt(i)
	return true
}

// Min returns the least key, or an error wrapping maps.ErrEmptyMap.
func (m *Map[K, V]) Min() (K, error) {
	if m.Empty() {
		var zero K
		return zero, errors.Wrap(maps.ErrEmptyMap, "can't find minimum")
	}
	return m.keys[0], nil
}

// Max returns the greatest key, or an error wrapping maps.ErrEmptyMap.
func (m *Map[K, V]) Max() (K, error) {
	if m.Empty() {
		var zero K
		return zero, errors.Wrap(maps.ErrEmptyMap, "can't find maximum")
	}
	return m.keys[len(m.keys)-1], nil
}

// Floor returns the greatest key less than or equal to key. The second
// result is false when every key in the map is greater than key.
func (m *Map[K, V]) Floor(key K) (K, bool) {
	if i, ok := m.floorIndex(key); ok {
		return m.keys[i], true
	}
	var zero K
	return zero, false
}

// Ceil returns the least key greater than or equal to key. The second result
// is false when every key in the map is less than key.
func (m *Map[K, V]) Ceil(key K) (K, bool) {
	if i, ok := m.ceilIndex(key); ok {
		return m.keys[i], true
	}
	var zero K
	return zero, false
}

// Rank counts the keys strictly less than key.
func (m *Map[K, V]) Rank(key K) int {
	// the index of a present key and the insertion point of an absent one
	// are both the number of lesser keys
	i, _ := m.search(key)
	return i
}

// Select returns the key with the given rank, or an error wrapping
// maps.ErrRankRange when rank is not in [0, Size()).
func (m *Map[K, V]) Select(rank int) (K, error) {
	if rank < 0 || rank >= len(m.keys) {
		var zero K
		return zero, errors.Wrapf(maps.ErrRankRange, "rank %d not in [0, %d)", rank, len(m.keys))
	}
	return m.keys[rank], nil
}

// DeleteMin removes the entry with the least key, or returns an error
// wrapping maps.ErrEmptyMap.
func (m *Map[K, V]) DeleteMin() error {
	if m.Empty() {
		return errors.Wrap(maps.ErrEmptyMap, "can't delete minimum")
	}
	m.removeAt(0)
	return nil
}

// DeleteMax removes the entry with the greatest key, or returns an error
// wrapping maps.ErrEmptyMap.
func (m *Map[K, V]) DeleteMax() error {
	if m.Empty() {
		return errors.Wrap(maps.ErrEmptyMap, "can't delete maximum")
	}
	m.removeAt(len(m.keys) - 1)
	return nil
}

// Copy returns a shallow copy sharing keys and values with the original but
// no backing storage.
func (m *Map[K, V]) Copy() *Map[K, V] {
	cp := &Map[K, V]{
		cmp:    m.cmp,
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

	cp, _ := NewComparatorCapacity[K, V](m.cmp, m.copyCapacity())
	for entry := range m.Entries() {
		cp.Put(keyCopyFn(entry.Key), valueCopyFn(entry.Value))
	}
	return cp, nil
}

// Keys iterates over all keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return m.keysRange(0, len(m.keys)-1)
}

// KeysBetween iterates over the keys from Ceil(low) to Floor(high) inclusive,
// in ascending order. An inverted or out-of-range window yields an empty
// sequence.
func (m *Map[K, V]) KeysBetween(low, high K) iter.Seq[K] {
	start, stop, ok := m.window(low, high)
	if !ok {
		return func(yield func(K) bool) {}
	}
	return m.keysRange(start, stop)
}

// Values iterates over all values in ascending order of their keys.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range m.values {
			if !yield(value) {
				return
			}
		}
	}
}

// Entries iterates over all entries in ascending key order.
func (m *Map[K, V]) Entries() iter.Seq[maps.Entry[K, V]] {
	return m.entriesRange(0, len(m.keys)-1)
}

// EntriesBetween iterates over the entries whose keys fall between Ceil(low)
// and Floor(high) inclusive, in ascending key order. An inverted or
// out-of-range window yields an empty sequence.
func (m *Map[K, V]) EntriesBetween(low, high K) iter.Seq[maps.Entry[K, V]] {
	start, stop, ok := m.window(low, high)
	if !ok {
		return func(yield func(maps.Entry[K, V]) bool) {}
	}
	return m.entriesRange(start, stop)
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

// search binary-searches the keys. When key is present it returns its index
// and true; otherwise it returns the insertion point and false. The
// insertion point may be 0 or Size().
func (m *Map[K, V]) search(key K) (int, bool) {
	lo, hi := 0, len(m.keys)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c := m.cmp(m.keys[mid], key)
		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}

// floorIndex returns the index of the greatest key <= key.
func (m *Map[K, V]) floorIndex(key K) (int, bool) {
	i, found := m.search(key)
	if found {
		return i, true
	}
	return i - 1, i > 0
}

// ceilIndex returns the index of the least key >= key.
func (m *Map[K, V]) ceilIndex(key K) (int, bool) {
	i, _ := m.search(key)
	return i, i < len(m.keys)
}

// window resolves an inclusive [ceil(low), floor(high)] index range.
func (m *Map[K, V]) window(low, high K) (start, stop int, ok bool) {
	start, okLow := m.ceilIndex(low)
	stop, okHigh := m.floorIndex(high)
	return start, stop, okLow && okHigh && start <= stop
}

func (m *Map[K, V]) keysRange(start, stop int) iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := start; i <= stop; i++ {
			if !yield(m.keys[i]) {
				return
			}
		}
	}
}

func (m *Map[K, V]) entriesRange(start, stop int) iter.Seq[maps.Entry[K, V]] {
	return func(yield func(maps.Entry[K, V]) bool) {
		for i := start; i <= stop; i++ {
			if !yield(maps.Entry[K, V]{Key: m.keys[i], Value: m.values[i]}) {
				return
			}
		}
	}
}

// removeAt deletes the entry at index i, shifting the tail a slot left and
// shrinking the backing arrays when occupancy drops to a quarter of capacity.
func (m *Map[K, V]) removeAt(i int) {
	copy(m.keys[i:], m.keys[i+1:])
	copy(m.values[i:], m.values[i+1:])

	// zero the vacated tail slot so its references are collectable
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
