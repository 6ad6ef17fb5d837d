package grouping

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source is the randomness used by Partition and Sample.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed draws the seed from the
// OS entropy pool; any other seed gives a reproducible stream.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		var b [16]byte
		if _, err := crand.Read(b[:]); err == nil {
			return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
		}
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
