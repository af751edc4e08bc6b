// Package hashset implements a set backed by the chaining hash map.
//
// Elements are the map's keys; structure is not thread safe.
package hashset

import (
	"fmt"
	"iter"
	"strings"

	"mlib.com/collections/containers/maps/chainhashmap"
	"mlib.com/collections/containers/sets"
)

// Assert Set implementation
var _ sets.Set[int] = (*Set[int])(nil)

// Set holds elements in a chaining hash map
type Set[T comparable] struct {
	items *chainhashmap.Map[T, struct{}]
}

var itemExists = struct{}{}

// New instantiates a new empty set and adds the passed values, if any, to the set
func New[T comparable](values ...T) *Set[T] {
	set := &Set[T]{items: chainhashmap.New[T, struct{}]()}
	if len(values) > 0 {
		set.Add(values...)
	}
	return set
}

// Add adds the items (one or more) to the set.
func (set *Set[T]) Add(items ...T) {
	for _, item := range items {
		set.items.Put(item, itemExists)
	}
}

// Remove removes the items (one or more) from the set.
func (set *Set[T]) Remove(items ...T) {
	for _, item := range items {
		set.items.Delete(item)
	}
}

// Contains check if items (one or more) are present in the set.
// All items have to be present in the set for the method to return true.
// Returns true if no arguments are passed at all, i.e. set is always superset of empty set.
func (set *Set[T]) Contains(items ...T) bool {
	for _, item := range items {
		if !set.items.Contains(item) {
			return false
		}
	}
	return true
}

// Empty returns true if set does not contain any elements.
func (set *Set[T]) Empty() bool {
	return set.Size() == 0
}

// Size returns number of elements within the set.
func (set *Set[T]) Size() int {
	return set.items.Size()
}

// Clear clears all values in the set.
func (set *Set[T]) Clear() {
	set.items.Clear()
}

// Values iterates over all items in the set.
func (set *Set[T]) Values() iter.Seq[T] {
	return set.items.Keys()
}

// String returns a string representation of container
func (set *Set[T]) String() string {
	items := make([]string, 0, set.Size())
	for item := range set.Values() {
		items = append(items, fmt.Sprintf("%v", item))
	}
	return fmt.Sprintf("[%d]{ %s }", set.Size(), strings.Join(items, ", "))
}

// Intersection returns the intersection between two sets.
// The new set consists of all elements that are both in "set" and "another".
// Ref: https://en.wikipedia.org/wiki/Intersection_(set_theory)
func (set *Set[T]) Intersection(another *Set[T]) *Set[T] {
	result := New[T]()

	// Iterate over smaller set (optimization)
	if set.Size() > another.Size() {
		set, another = another, set
	}
	for item := range set.Values() {
		if another.Contains(item) {
			result.Add(item)
		}
	}

	return result
}

// Union returns the union of two sets.
// The new set consists of all elements that are in "set" or "another" (possibly both).
// Ref: https://en.wikipedia.org/wiki/Union_(set_theory)
func (set *Set[T]) Union(another *Set[T]) *Set[T] {
	result := New[T]()
	for item := range set.Values() {
		result.Add(item)
	}
	for item := range another.Values() {
		result.Add(item)
	}

	return result
}

// Difference returns the difference between two sets.
// The new set consists of all elements that are in "set" but not in "another".
// Ref: https://proofwiki.org/wiki/Definition:Set_Difference
func (set *Set[T]) Difference(another *Set[T]) *Set[T] {
	result := New[T]()
	for item := range set.Values() {
		if !another.Contains(item) {
			result.Add(item)
		}
	}
	return result
}
