package hashset

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRemoveContains(t *testing.T) {
	set := New(1, 2, 3)
	assert.Equal(t, 3, set.Size())

	set.Add(3) // no duplicates
	assert.Equal(t, 3, set.Size())

	assert.True(t, set.Contains(1, 2, 3))
	assert.True(t, set.Contains(), "every set is a superset of the empty set")
	assert.False(t, set.Contains(1, 4))

	set.Remove(2, 3)
	assert.Equal(t, 1, set.Size())
	assert.False(t, set.Contains(2))

	set.Remove(2) // absent, no-op
	assert.Equal(t, 1, set.Size())
}

func TestValues(t *testing.T) {
	set := New("a", "b", "c")

	values := slices.Collect(set.Values())
	slices.Sort(values)
	assert.Equal(t, []string{"a", "b", "c"}, values)
}

func TestIntersection(t *testing.T) {
	a := New(1, 2, 3, 4)
	b := New(3, 4, 5)

	got := slices.Collect(a.Intersection(b).Values())
	slices.Sort(got)
	assert.Equal(t, []int{3, 4}, got)

	swapped := slices.Collect(b.Intersection(a).Values())
	slices.Sort(swapped)
	assert.Equal(t, got, swapped)

	assert.True(t, a.Intersection(New[int]()).Empty())
}

func TestUnion(t *testing.T) {
	a := New(1, 2)
	b := New(2, 3)

	got := slices.Collect(a.Union(b).Values())
	slices.Sort(got)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestDifference(t *testing.T) {
	a := New(1, 2, 3)
	b := New(2, 3, 4)

	got := slices.Collect(a.Difference(b).Values())
	assert.Equal(t, []int{1}, got)
	assert.Equal(t, []int{4}, slices.Collect(b.Difference(a).Values()))
}

func TestJSONRoundTrip(t *testing.T) {
	set := New("a", "b", "c")

	data, err := set.ToJSON()
	require.NoError(t, err)

	restored := New[string]()
	require.NoError(t, restored.FromJSON(data))
	assert.Equal(t, 3, restored.Size())
	assert.True(t, restored.Contains("a", "b", "c"))

	var zero Set[string]
	require.NoError(t, json.Unmarshal(data, &zero))
	assert.True(t, zero.Contains("a", "b", "c"), "a zero-value set is a valid unmarshal target")

	assert.Error(t, restored.FromJSON([]byte("not json")))
}

func TestClearAndEmpty(t *testing.T) {
	set := New[int]()
	assert.True(t, set.Empty())
	assert.Equal(t, "[0]{ }", set.String())

	set.Add(7)
	assert.Equal(t, "[1]{ 7 }", set.String())

	set.Clear()
	assert.True(t, set.Empty())
}
