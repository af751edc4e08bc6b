package arrayqueue

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlib.com/collections/containers/queues"
)

func TestNewCapacityValidation(t *testing.T) {
	_, err := NewCapacity[int](0)
	assert.Error(t, err)
	_, err = NewCapacity[int](-1)
	assert.Error(t, err)

	q, err := NewCapacity[int](16)
	require.NoError(t, err)
	assert.True(t, q.Empty())
}

func TestFIFOOrder(t *testing.T) {
	q := New[string]()
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	head, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", head)
	assert.Equal(t, 3, q.Size(), "peek must not remove")

	for _, want := range []string{"a", "b", "c"} {
		got, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.Empty())
}

func TestUnderflow(t *testing.T) {
	q := New[int]()

	_, err := q.Dequeue()
	assert.ErrorIs(t, err, queues.ErrEmptyQueue)
	_, err = q.Peek()
	assert.ErrorIs(t, err, queues.ErrEmptyQueue)
}

func TestOrderSurvivesGrowAndShrink(t *testing.T) {
	q := New[int]()

	// stagger enqueues and dequeues so the ring wraps before growing
	for i := 0; i < 3; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 2; i++ {
		v, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	for i := 3; i < 40; i++ {
		q.Enqueue(i)
	}
	assert.GreaterOrEqual(t, len(q.items), 38, "growth never happened")

	for want := 2; want < 40; want++ {
		got, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, got, "order broken across resize")
	}
	assert.True(t, q.Empty())
	assert.Less(t, len(q.items), 38, "shrink never happened")
}

func TestValues(t *testing.T) {
	q := New[int]()
	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}
	_, err := q.Dequeue()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(q.Values()))
	// restartable
	seq := q.Values()
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
}

func TestClearAndString(t *testing.T) {
	q := New[int]()
	assert.Equal(t, "[0]{ }", q.String())

	q.Enqueue(1)
	q.Enqueue(2)
	assert.Equal(t, "[2]{ 1, 2 }", q.String())

	q.Clear()
	assert.True(t, q.Empty())
	assert.Equal(t, initCapacity, len(q.items))
}

func BenchmarkEnqueueDequeue(b *testing.B) {
	q := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		if i%2 == 1 {
			_, _ = q.Dequeue()
		}
	}
}
