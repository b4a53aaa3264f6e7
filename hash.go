package linearmap

import "hash/maphash"

type HashFunc[K comparable] func(K) uint64

// Builds the default hash function around the given seed. Seeds are
// per-table, so two tables hash the same key to different digests.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}
