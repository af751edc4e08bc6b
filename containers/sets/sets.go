// Package sets provides an abstract Set interface.
package sets

import (
	"iter"

	"mlib.com/collections/containers"
)

// Set holds a collection of distinct elements.
type Set[T comparable] interface {
	Add(items ...T)
	Remove(items ...T)
	Contains(items ...T) bool
	Values() iter.Seq[T]

	containers.Container
	// Empty() bool
	// Size() int
	// Clear()
	// String() string
}
