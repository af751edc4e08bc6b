package hashset

import (
	"encoding/json"

	"mlib.com/collections/containers"
	"mlib.com/collections/containers/maps/chainhashmap"
)

// Assert Serialization implementation
var _ containers.JSONSerializer = (*Set[string])(nil)
var _ containers.JSONDeserializer = (*Set[string])(nil)

// ToJSON outputs the JSON representation of the set's items as an array.
func (set *Set[T]) ToJSON() ([]byte, error) {
	items := make([]T, 0, set.Size())
	for item := range set.Values() {
		items = append(items, item)
	}
	return json.Marshal(items)
}

// FromJSON populates the set from the input JSON representation, replacing
// any existing items. A zero-value set is usable as an unmarshal target.
func (set *Set[T]) FromJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	if set.items == nil {
		set.items = chainhashmap.New[T, struct{}]()
	}
	set.Clear()
	set.Add(items...)
	return nil
}

// UnmarshalJSON @implements json.Unmarshaler
func (set *Set[T]) UnmarshalJSON(bytes []byte) error {
	return set.FromJSON(bytes)
}

// MarshalJSON @implements json.Marshaler
func (set *Set[T]) MarshalJSON() ([]byte, error) {
	return set.ToJSON()
}
