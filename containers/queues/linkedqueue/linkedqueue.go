// Package linkedqueue implements a queue backed by a singly-linked list.
//
// Enqueue appends at the tail, dequeue pops the head; both are constant time
// with no resizing involved. Structure is not thread safe.
package linkedqueue

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"

	"mlib.com/collections/containers/queues"
)

// Assert Queue implementation
var _ queues.Queue[int] = (*Queue[int])(nil)

type node[T any] struct {
	value T
	next  *node[T]
}

// Queue holds elements in a singly-linked list with head and tail pointers.
type Queue[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

// New instantiates a new empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Size returns the number of elements in the queue.
func (q *Queue[T]) Size() int {
	return q.length
}

// Empty returns true if the queue does not contain any elements.
func (q *Queue[T]) Empty() bool {
	return q.Size() == 0
}

// Clear removes all elements from the queue.
func (q *Queue[T]) Clear() {
	q.head = nil
	q.tail = nil
	q.length = 0
}

// Enqueue adds value to the tail of the queue.
func (q *Queue[T]) Enqueue(value T) {
	n := &node[T]{value: value}
	if q.Empty() {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.length++
}

// Dequeue removes and returns the head of the queue, or an error wrapping
// queues.ErrEmptyQueue when the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.Empty() {
		var zero T
		return zero, errors.WithStack(queues.ErrEmptyQueue)
	}

	value := q.head.value
	q.head = q.head.next
	q.length--
	if q.head == nil {
		q.tail = nil
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
	return q.head.value, nil
}

// Values iterates over the elements from head to tail.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.value) {
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
