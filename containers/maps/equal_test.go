package maps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlib.com/collections/containers/maps"
	"mlib.com/collections/containers/maps/chainhashmap"
	"mlib.com/collections/containers/maps/probehashmap"
	"mlib.com/collections/containers/maps/sortedmap"
)

func populate(t *testing.T, pairs map[string]int) []maps.Map[string, int] {
	t.Helper()

	probing, err := probehashmap.New[string, int]()
	require.NoError(t, err)
	all := []maps.Map[string, int]{
		sortedmap.New[string, int](),
		chainhashmap.New[string, int](),
		probing,
	}

	for _, m := range all {
		for k, v := range pairs {
			m.Put(k, v)
		}
	}
	return all
}

func TestEqualAcrossImplementations(t *testing.T) {
	all := populate(t, map[string]int{"a": 1, "b": 2, "c": 3})

	for _, x := range all {
		for _, y := range all {
			assert.True(t, maps.Equal[string, int](x, y), "%T vs %T", x, y)
		}
	}
}

func TestEqualDetectsValueMismatch(t *testing.T) {
	all := populate(t, map[string]int{"a": 1, "b": 2})
	all[1].Put("b", 99)

	assert.False(t, maps.Equal[string, int](all[0], all[1]))
	assert.False(t, maps.Equal[string, int](all[1], all[0]), "mismatch must be symmetric")
	assert.True(t, maps.Equal[string, int](all[0], all[2]))
}

func TestEqualDetectsSizeMismatch(t *testing.T) {
	all := populate(t, map[string]int{"a": 1, "b": 2})
	all[2].Delete("b")

	assert.False(t, maps.Equal[string, int](all[0], all[2]))
	assert.False(t, maps.Equal[string, int](all[2], all[0]))
}

func TestEqualNil(t *testing.T) {
	all := populate(t, map[string]int{"a": 1})

	assert.True(t, maps.Equal[string, int](nil, nil))
	assert.False(t, maps.Equal[string, int](all[0], nil))
	assert.False(t, maps.Equal[string, int](nil, all[0]))
}

func TestEqualEmpty(t *testing.T) {
	all := populate(t, map[string]int{})
	assert.True(t, maps.Equal[string, int](all[0], all[1]))
}

func TestEntryString(t *testing.T) {
	e := maps.Entry[string, int]{Key: "a", Value: 7}
	assert.Equal(t, "a: 7", e.String())
}
