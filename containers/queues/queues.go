// Package queues provides an abstract first-in-first-out Queue interface.
package queues

import (
	"iter"

	"github.com/pkg/errors"

	"mlib.com/collections/containers"
)

// ErrEmptyQueue is returned when a value is requested from an empty queue.
var ErrEmptyQueue = errors.New("queue is empty")

// Queue holds elements in first-in-first-out order.
type Queue[T any] interface {
	Enqueue(value T)
	Dequeue() (T, error)
	Peek() (T, error)
	Values() iter.Seq[T]

	containers.Container
	// Empty() bool
	// Size() int
	// Clear()
	// String() string
}
