package linearmap

import "iter"

// Map is an associative container backed by a single flat slot array, using
// open addressing with linear probing. It grows by doubling whenever the
// occupied-plus-tombstone count crosses the load factor threshold, so puts
// stay usable at any size. Deleted slots become tombstones to keep probe
// chains intact; a grow drops them wholesale.
// Not safe for concurrent use; callers needing that must wrap it.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new map with at least the given capacity. A non-positive
// capacity means DefaultCapacity; a capacity of 1 is clamped to 2.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(capacity, opts...)

	return &m
}

// Looks a key up. The second return reports presence; an absent key is not
// an error.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// Puts a key in the map, overwriting the value in place if the key is
// already present. May grow the table before returning.
func (m *Map[K, V]) Put(key K, value V) {
	m.put(key, value)
}

// Deletes a key from the map. Returns whether the key was present.
func (m *Map[K, V]) Delete(key K) bool {
	return m.delete(key)
}

// Number of entries currently in the map.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Current capacity of the backing array.
func (m *Map[K, V]) Cap() int {
	return m.capacity
}

// Empties the map. Capacity and the growth threshold are retained.
func (m *Map[K, V]) Clear() {
	m.reset()
}

// Collects every key in slot order. The order is not insertion order and
// changes across grows.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for i := range m.slots {
		if m.slots[i].state == slotOccupied {
			keys = append(keys, m.slots[i].key)
		}
	}

	return keys
}

// Collects every value in slot order, index-aligned with Keys.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for i := range m.slots {
		if m.slots[i].state == slotOccupied {
			values = append(values, m.slots[i].value)
		}
	}

	return values
}

// All ranges over every entry in slot order, each exactly once. Mutating
// the map during iteration is undefined.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.slots {
			if m.slots[i].state != slotOccupied {
				continue
			}
			if !yield(m.slots[i].key, m.slots[i].value) {
				return
			}
		}
	}
}

// Snapshot of the table's bookkeeping.
func (m *Map[K, V]) Stats() Stats {
	return Stats{
		Size:            m.size,
		Capacity:        m.capacity,
		Tombstones:      m.tombstones,
		GrowthThreshold: m.growthThreshold,
		LoadFactor:      m.loadFactor,
	}
}
