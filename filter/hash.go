package filter

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
)

// Hasher is implemented by light sources, inputs and primitive kinds.
type Hasher interface {
	Hash(h hash.Hash)
}

// Key returns a 64-bit FNV-1a key for v. Values whose float fields differ
// in bit pattern (including NaN payloads and the sign of zero) get
// different keys.
func Key(v Hasher) uint64 {
	h := fnv.New64a()
	v.Hash(h)
	return h.Sum64()
}

func writeFloat(h hash.Hash, f float64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
	_, _ = h.Write(buf[:])
}

func writeByte(h hash.Hash, b byte) {
	_, _ = h.Write([]byte{b})
}

func writeString(h hash.Hash, s string) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(s))
}
