package linearmap

import "hash/maphash"

const (
	slotEmpty uint8 = iota
	slotTombstone
	slotOccupied
)

const (
	// Capacity used when New is given a non-positive hint.
	DefaultCapacity = 256

	// Minimum backing array length. Smaller hints are clamped, not rejected.
	minCapacity = 2

	// Growth trigger as a fraction of capacity. Overridable per table
	// with WithLoadFactor.
	DefaultLoadFactor = 0.7
)

type slot[K comparable, V any] struct {
	state uint8
	key   K
	value V
}

type table[K comparable, V any] struct {
	slots []slot[K, V]

	capacity int
	// Occupied slots only. Tombstones are tracked separately but both
	// count toward the growth threshold, which bounds probe length.
	size       int
	tombstones int

	loadFactor      float64
	growthThreshold int

	hashFunc HashFunc[K]

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Override the growth trigger. Values outside (0, 1) are ignored and the
// default is kept.
func WithLoadFactor[K comparable, V any](f float64) Option[K, V] {
	return func(t *table[K, V]) {
		if f > 0 && f < 1 {
			t.loadFactor = f
		}
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if capacity < minCapacity {
		capacity = minCapacity
	}

	t.loadFactor = DefaultLoadFactor

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	t.slots = make([]slot[K, V], capacity)
	t.capacity = capacity
	t.growthThreshold = int(float64(capacity) * t.loadFactor)
}

func (t *table[K, V]) homeIndex(key K) int {
	return int(t.hashFunc(key) % uint64(t.capacity))
}

func (t *table[K, V]) get(key K) (V, bool) {
	idx := t.homeIndex(key)

	// One full cycle at most. A tombstone keeps the probe alive; only a
	// truly empty slot terminates it.
	for p := 0; p < t.capacity; p++ {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			return t.emptyV, false
		case slotOccupied:
			if s.key == key {
				return s.value, true
			}
		}

		idx++
		if idx == t.capacity {
			idx = 0
		}
	}

	return t.emptyV, false
}

func (t *table[K, V]) put(key K, value V) {
	if t.store(key, value) {
		t.grow()
	}
}

// store writes key/value without checking the growth threshold afterwards.
// It reports whether the write pushed the table over the threshold; the
// public put acts on that, the migration path ignores it.
func (t *table[K, V]) store(key K, value V) bool {
	var (
		idx = t.homeIndex(key)

		// First tombstone on the probe path. Reusing it keeps chains
		// from accreting across delete/put cycles.
		reuse      = -1
		foundReuse bool
	)

	for p := 0; p < t.capacity; p++ {
		s := &t.slots[idx]

		switch s.state {
		case slotOccupied:
			if s.key == key {
				s.value = value
				return false
			}
		case slotTombstone:
			if !foundReuse {
				reuse = idx
				foundReuse = true
			}
		case slotEmpty:
			if !foundReuse {
				reuse = idx
				foundReuse = true
			}
			return t.fill(reuse, key, value)
		}

		idx++
		if idx == t.capacity {
			idx = 0
		}
	}

	// Full cycle without an empty slot. The threshold invariant leaves at
	// least one reusable slot, and the cycle already ruled out the key.
	return t.fill(reuse, key, value)
}

func (t *table[K, V]) fill(idx int, key K, value V) bool {
	s := &t.slots[idx]
	if s.state == slotTombstone {
		t.tombstones--
	}

	s.state = slotOccupied
	s.key = key
	s.value = value
	t.size++

	return t.size+t.tombstones > t.growthThreshold
}

func (t *table[K, V]) delete(key K) bool {
	idx := t.homeIndex(key)

	for p := 0; p < t.capacity; p++ {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			return false
		case slotOccupied:
			if s.key == key {
				// Tombstone, not empty, so probe chains running
				// through this slot stay intact.
				*s = slot[K, V]{state: slotTombstone}
				t.size--
				t.tombstones++

				return true
			}
		}

		idx++
		if idx == t.capacity {
			idx = 0
		}
	}

	return false
}

// grow doubles the backing array and re-inserts every live entry through
// store, which skips the threshold check, so a migration can never trigger
// another resize mid-flight. Tombstones are not migrated.
func (t *table[K, V]) grow() {
	old := t.slots

	t.capacity *= 2
	t.slots = make([]slot[K, V], t.capacity)
	t.growthThreshold = int(float64(t.capacity) * t.loadFactor)
	t.size = 0
	t.tombstones = 0

	for i := range old {
		if old[i].state == slotOccupied {
			t.store(old[i].key, old[i].value)
		}
	}
}

func (t *table[K, V]) reset() {
	clear(t.slots)
	t.size = 0
	t.tombstones = 0
}
