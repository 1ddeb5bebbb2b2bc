package utils

import "strings"

// HashJenkins implements the one-at-a-time string hash used by the
// shader runtime. Input is lowercased before hashing, so lookups are
// case-insensitive. Hashes are referenced externally via "hash_XXXXXXXX"
// tokens, so the exact bit sequence must not change.
func HashJenkins(str string) uint32 {
	var hash uint32
	for _, c := range []byte(strings.ToLower(str)) {
		hash += uint32(c)
		hash += hash << 10
		hash ^= hash >> 6
	}
	hash += hash << 3
	hash ^= hash >> 11
	hash += hash << 15

	return hash
}
