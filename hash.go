package chainmap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher maps a key to a 64-bit hash code. A hasher must be
// deterministic and consistent with key equality: a == b implies
// hash(a) == hash(b). Distinct keys may share a hash code; the map
// resolves such collisions by comparing full keys within a chain.
type Hasher[K any] func(K) uint64

// HashString hashes a string key with xxHash.
func HashString(s string) uint64 { return xxhash.Sum64String(s) }

// HashBytes hashes raw bytes with xxHash. It is the building block for
// hashers over key types with a natural byte encoding.
func HashBytes(b []byte) uint64 { return xxhash.Sum64(b) }

// HashInt hashes an integer key of any width by encoding it as a fixed
// 8-byte little-endian value and hashing the result with xxHash.
func HashInt[T constraints.Integer](v T) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return xxhash.Sum64(buf[:])
}
