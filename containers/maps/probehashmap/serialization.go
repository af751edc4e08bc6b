package probehashmap

import (
	"encoding/json"
	"hash/maphash"

	"mlib.com/collections/containers"
	"mlib.com/collections/containers/maps"
)

// Assert Serialization implementation
var _ containers.JSONSerializer = (*Map[string, int])(nil)
var _ containers.JSONDeserializer = (*Map[string, int])(nil)

// ToJSON outputs the JSON representation of the map's entries in slot order.
func (m *Map[K, V]) ToJSON() ([]byte, error) {
	entries := make([]maps.Entry[K, V], 0, m.Size())
	for entry := range m.Entries() {
		entries = append(entries, entry)
	}
	return json.Marshal(entries)
}

// FromJSON populates the map from the input JSON representation, replacing
// any existing entries. The load factor fixed at construction is kept. A
// zero-value map is usable as an unmarshal target and gets the defaults.
func (m *Map[K, V]) FromJSON(data []byte) error {
	var entries []maps.Entry[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	if m.hash == nil {
		m.seed = maphash.MakeSeed()
		m.hash = maphash.Comparable[K]
		m.loadFactor = defaultLoadFactor
	}
	m.Clear()
	for _, entry := range entries {
		m.Put(entry.Key, entry.Value)
	}
	return nil
}

// UnmarshalJSON @implements json.Unmarshaler
func (m *Map[K, V]) UnmarshalJSON(bytes []byte) error {
	return m.FromJSON(bytes)
}

// MarshalJSON @implements json.Marshaler
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	return m.ToJSON()
}
