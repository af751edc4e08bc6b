package maps

import "reflect"

// Equal reports whether a and b hold exactly the same entries, regardless of
// which map implementation either side is. Values are compared by deep
// structural equality. The relation is symmetric: every key of a must map to
// a deeply-equal value in b, and equal sizes guarantee the converse.
func Equal[K comparable, V any](a, b Map[K, V]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Size() != b.Size() {
		return false
	}

	for entry := range a.Entries() {
		value, err := b.Get(entry.Key)
		if err != nil {
			return false
		}
		if !reflect.DeepEqual(entry.Value, value) {
			return false
		}
	}
	return true
}
