package lru

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	_, err := New[int, int](0, nil)
	assert.Error(t, err)
	_, err = New[int, int](-1, nil)
	assert.Error(t, err)
}

func TestAddEvictsOldest(t *testing.T) {
	var evicted []int
	c, err := New(2, func(key int, _ string) {
		evicted = append(evicted, key)
	})
	require.NoError(t, err)

	assert.False(t, c.Add(1, "a"))
	assert.False(t, c.Add(2, "b"))
	assert.True(t, c.Add(3, "c"), "exceeding the size must evict")

	assert.Equal(t, []int{1}, evicted)
	assert.False(t, c.Contains(1))
	assert.True(t, c.Contains(2))
	assert.True(t, c.Contains(3))
	assert.Equal(t, 2, c.Len())
}

func TestGetRefreshesRecency(t *testing.T) {
	c, err := New[int, string](2, nil)
	require.NoError(t, err)

	c.Add(1, "a")
	c.Add(2, "b")

	v, ok := c.Get(1) // 2 is now the oldest
	require.True(t, ok)
	assert.Equal(t, "a", v)

	c.Add(3, "c")
	assert.True(t, c.Contains(1))
	assert.False(t, c.Contains(2))
}

func TestPeekDoesNotRefresh(t *testing.T) {
	c, err := New[int, string](2, nil)
	require.NoError(t, err)

	c.Add(1, "a")
	c.Add(2, "b")

	v, ok := c.Peek(1)
	require.True(t, ok)
	assert.Equal(t, "a", v)

	c.Add(3, "c")
	assert.False(t, c.Contains(1), "peek must not protect from eviction")
}

func TestAddExistingUpdatesInPlace(t *testing.T) {
	c, err := New[int, string](2, nil)
	require.NoError(t, err)

	c.Add(1, "a")
	c.Add(2, "b")
	assert.False(t, c.Add(1, "A"), "overwrite must not evict")

	v, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "A", v)
	assert.Equal(t, 2, c.Len())

	// 1 was refreshed by the overwrite
	key, _, ok := c.GetOldest()
	require.True(t, ok)
	assert.Equal(t, 2, key)
}

func TestRemove(t *testing.T) {
	c, err := New[int, string](4, nil)
	require.NoError(t, err)

	c.Add(1, "a")
	c.Add(2, "b")

	assert.True(t, c.Remove(1))
	assert.False(t, c.Remove(1))
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get(1)
	assert.False(t, ok)
}

func TestRemoveOldestOrder(t *testing.T) {
	c, err := New[int, string](4, nil)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		c.Add(i, "v")
	}

	key, _, ok := c.RemoveOldest()
	require.True(t, ok)
	assert.Equal(t, 1, key)

	key, _, ok = c.RemoveOldest()
	require.True(t, ok)
	assert.Equal(t, 2, key)

	c.RemoveOldest()
	_, _, ok = c.RemoveOldest()
	assert.False(t, ok, "empty cache has no oldest entry")
}

func TestKeysAndValuesOldestFirst(t *testing.T) {
	c, err := New[int, string](4, nil)
	require.NoError(t, err)

	c.Add(1, "a")
	c.Add(2, "b")
	c.Add(3, "c")
	c.Get(1) // refresh 1 to the front

	assert.Equal(t, []int{2, 3, 1}, slices.Collect(c.Keys()))
	assert.Equal(t, []string{"b", "c", "a"}, slices.Collect(c.Values()))
}

func TestResize(t *testing.T) {
	c, err := New[int, string](4, nil)
	require.NoError(t, err)

	for i := 1; i <= 4; i++ {
		c.Add(i, "v")
	}

	assert.Equal(t, 2, c.Resize(2))
	assert.Equal(t, 2, c.Len())
	assert.False(t, c.Contains(1))
	assert.False(t, c.Contains(2))

	assert.Equal(t, 0, c.Resize(8))
	c.Add(5, "v")
	assert.Equal(t, 3, c.Len())
}

func TestPurge(t *testing.T) {
	count := 0
	c, err := New(4, func(int, string) { count++ })
	require.NoError(t, err)

	c.Add(1, "a")
	c.Add(2, "b")
	c.Purge()

	assert.Equal(t, 2, count)
	assert.Equal(t, 0, c.Len())
	_, _, ok := c.GetOldest()
	assert.False(t, ok)
}

func BenchmarkAddGet(b *testing.B) {
	c, err := New[int, int](8192, nil)
	if err != nil {
		b.Fatalf("err: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Add(i%32768, i)
		c.Get((i + 1) % 32768)
	}
}
