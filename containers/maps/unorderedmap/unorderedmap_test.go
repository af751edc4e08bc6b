package unorderedmap

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlib.com/collections/containers/maps"
)

func TestNewValidation(t *testing.T) {
	_, err := NewCapacity[int, int](0)
	assert.Error(t, err)

	m, err := NewCapacity[int, int](2)
	require.NoError(t, err)
	assert.True(t, m.Empty())
}

func TestPutGetRoundTrip(t *testing.T) {
	m := New[string, int]()

	assert.True(t, m.Put("a", 1))
	assert.True(t, m.Put("b", 2))
	assert.False(t, m.Put("a", 10))

	v, err := m.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	_, err = m.Get("z")
	assert.ErrorIs(t, err, maps.ErrKeyNotFound)
	assert.Equal(t, 7, m.GetOr("z", 7))
	assert.Equal(t, 2, m.Size())
}

func TestDeletePreservesInsertionOrder(t *testing.T) {
	m := New[string, int]()
	for i, k := range []string{"a", "b", "c", "d"} {
		m.Put(k, i)
	}

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("b"))
	assert.Equal(t, []string{"a", "c", "d"}, slices.Collect(m.Keys()))
}

func TestResizeKeepsEntries(t *testing.T) {
	m, err := NewCapacity[int, int](2)
	require.NoError(t, err)

	for i := 0; i < 40; i++ {
		m.Put(i, i)
	}
	for i := 0; i < 40; i++ {
		assert.True(t, m.Contains(i), "key %d lost across growth", i)
	}

	for i := 0; i < 36; i++ {
		m.Delete(i)
	}
	assert.Less(t, cap(m.keys), 40, "shrink never happened")
	for i := 36; i < 40; i++ {
		assert.True(t, m.Contains(i), "key %d lost across shrink", i)
	}
}

func TestIterationMatchesInsertion(t *testing.T) {
	m := New[int, string]()
	m.Put(3, "c")
	m.Put(1, "a")
	m.Put(2, "b")

	assert.Equal(t, []int{3, 1, 2}, slices.Collect(m.Keys()))
	assert.Equal(t, []string{"c", "a", "b"}, slices.Collect(m.Values()))

	var entries []maps.Entry[int, string]
	for entry := range m.Entries() {
		entries = append(entries, entry)
	}
	assert.Len(t, entries, m.Size())
}

func TestCopyAndDeepcopy(t *testing.T) {
	m := New[string, int]()
	m.Put("a", 1)

	cp := m.Copy()
	cp.Put("b", 2)
	assert.Equal(t, 1, m.Size())
	assert.Equal(t, 2, cp.Size())

	_, err := m.Deepcopy(nil, func(v int) int { return v })
	assert.Error(t, err)

	dc, err := m.Deepcopy(strings.Clone, func(v int) int { return v })
	require.NoError(t, err)
	assert.True(t, maps.Equal[string, int](m, dc))
}

func TestClearAndString(t *testing.T) {
	m := New[int, string]()
	assert.Equal(t, "[0]{ }", m.String())

	m.Put(1, "a")
	assert.Equal(t, "[1]{ 1: a }", m.String())

	m.Clear()
	assert.True(t, m.Empty())
}

func TestJSONRoundTrip(t *testing.T) {
	m := New[string, int]()
	m.Put("x", 8)
	m.Put("y", 9)

	data, err := m.ToJSON()
	require.NoError(t, err)

	restored := New[string, int]()
	require.NoError(t, restored.FromJSON(data))
	assert.True(t, maps.Equal[string, int](m, restored))
}
