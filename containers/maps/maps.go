// Package maps provides the associative map contracts shared by the
// implementations in the sub-packages.
//
// In computer science, an associative array, map, symbol table, or dictionary
// is an abstract data type composed of a collection of (key, value) pairs,
// such that each possible key appears just once in the collection.
//
// Three side-by-side implementations of the Map contract are provided:
// a binary-search sorted map (sortedmap), a separate-chaining hash map
// (chainhashmap) and a linear-probing hash map (probehashmap). A fourth,
// unorderedmap, is the linear-scan array map that also serves as the
// chaining map's bucket type.
//
// Reference: https://en.wikipedia.org/wiki/Associative_array
package maps

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"

	"mlib.com/collections/containers"
)

var (
	// ErrKeyNotFound is returned by Get when the key has no mapping.
	ErrKeyNotFound = errors.New("key does not exist in map")

	// ErrEmptyMap is returned by Min, Max, DeleteMin and DeleteMax when the
	// map holds no entries.
	ErrEmptyMap = errors.New("map is empty")

	// ErrRankRange is returned by Select when the rank is not in [0, Size()).
	ErrRankRange = errors.New("rank out of range")
)

// Map interface that all maps implement
type Map[K comparable, V any] interface {
	// Put associates value with key, overwriting any previous value.
	// Reports true iff key was absent and a new entry was inserted.
	Put(key K, value V) bool

	// Get returns the value associated with key, or an error wrapping
	// ErrKeyNotFound when key has no mapping.
	Get(key K) (V, error)

	// GetOr returns the value associated with key, or fallback when key has
	// no mapping.
	GetOr(key K, fallback V) V

	// Delete removes key and its value. Reports true iff an entry was removed.
	Delete(key K) bool

	Contains(key K) bool

	// Keys, Values and Entries return lazy, restartable sequences over the
	// map. A fresh sequence is produced on every call. Hash maps yield in
	// implementation order; ordered maps yield in ascending key order.
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
	Entries() iter.Seq[Entry[K, V]]

	containers.Container
}

// OrderedMap interface for maps that keep keys in sorted order (extends the
// Map interface). The active ordering is fixed at construction.
type OrderedMap[K comparable, V any] interface {
	// Min and Max return the least and greatest key. Both return an error
	// wrapping ErrEmptyMap on an empty map.
	Min() (K, error)
	Max() (K, error)

	// Floor returns the greatest key less than or equal to key.
	// Ceil returns the least key greater than or equal to key.
	// The second result is false when no such key exists.
	Floor(key K) (K, bool)
	Ceil(key K) (K, bool)

	// Rank is the count of keys strictly less than key.
	Rank(key K) int

	// Select returns the key with the given rank, or an error wrapping
	// ErrRankRange when rank is not in [0, Size()).
	Select(rank int) (K, error)

	// DeleteMin and DeleteMax remove the least and greatest entry. Both
	// return an error wrapping ErrEmptyMap on an empty map.
	DeleteMin() error
	DeleteMax() error

	// KeysBetween and EntriesBetween iterate from Ceil(low) to Floor(high)
	// inclusive. An inverted or out-of-range window yields an empty sequence.
	KeysBetween(low, high K) iter.Seq[K]
	EntriesBetween(low, high K) iter.Seq[Entry[K, V]]

	Map[K, V]
}

// Entry is a single immutable key-value pair produced by map iteration.
type Entry[K, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// String returns a string representation of the entry
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}
