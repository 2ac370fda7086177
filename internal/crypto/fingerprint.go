package crypto

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2s"
)

// Fingerprint returns a short hex fingerprint of a derived channel secret,
// for operators to compare out-of-band.
//
// It hashes with BLAKE2s and truncates to 8 bytes (16 hex chars). The
// fingerprint is display-only and never goes on the wire.
func Fingerprint(secret uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], secret)
	sum := blake2s.Sum256(buf[:])
	return hex.EncodeToString(sum[:8])
}
