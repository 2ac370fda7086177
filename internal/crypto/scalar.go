package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"math"
)

// RandomScalar draws a uniform value from [min, max] inclusive using
// rejection sampling over crypto/rand.
func RandomScalar(min, max uint64) (uint64, error) {
	span := max - min + 1
	var buf [8]byte
	if span == 0 {
		// [0, 2^64-1]: every 8-byte read is already uniform.
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, err
		}
		return binary.BigEndian.Uint64(buf[:]), nil
	}
	// Largest multiple of span representable below 2^64; values at or
	// above it would bias the modulo reduction.
	limit := math.MaxUint64 - math.MaxUint64%span
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v >= limit {
			continue
		}
		return min + v%span, nil
	}
}
