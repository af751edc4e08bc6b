// Package arrayqueue implements a queue backed by a circular resizing array.
//
// Elements live in a ring between head and head+length. The array doubles
// when full and halves when occupancy falls to a quarter, so a sequence of n
// queue operations takes amortized constant time each. Structure is not
// thread safe.
package arrayqueue

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"

	"mlib.com/collections/containers/queues"
)

const initCapacity = 4

// Assert Queue implementation
var _ queues.Queue[int] = (*Queue[int])(nil)

// Queue holds elements in a circular resizing array.
type Queue[T any] struct {
	items  []T
	head   int // index of the oldest element
	length int
}

// New instantiates a new empty queue with the default capacity.
func New[T any]() *Queue[T] {
	q, _ := NewCapacity[T](initCapacity)
	return q
}

// NewCapacity instantiates a new empty queue with the given initial capacity.
func NewCapacity[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, errors.Errorf("invalid capacity: %d", capacity)
	}
	return &Queue[T]{items: make([]T, capacity)}, nil
}

// Size returns the number of elements in the queue.
func (q *Queue[T]) Size() int {
	return q.length
}

// Empty returns true if the queue does not contain any elements.
func (q *Queue[T]) Empty() bool {
	return q.Size() == 0
}

// Clear removes all elements and resets the array to its initial capacity.
func (q *Queue[T]) Clear() {
	q.items = make([]T, initCapacity)
	q.head = 0
	q.length = 0
}

// Enqueue adds value to the tail of the queue.
func (q *Queue[T]) Enqueue(value T) {
	if q.length == len(q.items) {
		q.resize(len(q.items) * 2)
	}
	q.items[q.slot(q.length)] = value
	q.length++
}

// Dequeue removes and returns the head of the queue, or an error wrapping
// queues.ErrEmptyQueue when the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.Empty() {
		var zero T
		return zero, errors.WithStack(queues.ErrEmptyQueue)
	}

	var zero T
	value := q.items[q.head]
	q.items[q.head] = zero // release the reference
	q.head = q.slot(1)
	q.length--

	if q.length > 0 && q.length == len(q.items)/4 && len(q.items)/2 >= initCapacity {
		q.resize(len(q.items) / 2)
	}
	return value, nil
}

// Peek returns the head of the queue without removing it, or an error
// wrapping queues.ErrEmptyQueue when the queue is empty.
func (q *Queue[T]) Peek() (T, error) {
	if q.Empty() {
		var zero T
		return zero, errors.WithStack(queues.ErrEmptyQueue)
	}
	return q.items[q.head], nil
}

// Values iterates over the elements from head to tail.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.length; i++ {
			if !yield(q.items[q.slot(i)]) {
				return
			}
		}
	}
}

// String returns a string representation of container
func (q *Queue[T]) String() string {
	if q.Empty() {
		return "[0]{ }"
	}

	items := make([]string, 0, q.Size())
	for value := range q.Values() {
		items = append(items, fmt.Sprintf("%v", value))
	}
	return fmt.Sprintf("[%d]{ %s }", q.Size(), strings.Join(items, ", "))
}

// slot maps an offset from the head onto the ring.
func (q *Queue[T]) slot(offset int) int {
	return (q.head + offset) % len(q.items)
}

// resize unrolls the ring into a fresh array of the given capacity, so the
// head lands back on index zero.
func (q *Queue[T]) resize(capacity int) {
	items := make([]T, capacity)
	for i := 0; i < q.length; i++ {
		items[i] = q.items[q.slot(i)]
	}
	q.items = items
	q.head = 0
}
