// Package crypto exposes the minimal primitives used by streamchat.
//
// Contents
//
//   - Modular exponentiation over uint64 operands with 128-bit
//     intermediates (ModPow)
//   - Uniform random scalar generation for ephemeral private keys
//     (RandomScalar)
//   - Short channel fingerprints for display (Fingerprint)
//
// # Notes
//
// None of this is real-world cryptography: the chat protocol runs over a
// fixed 64-bit modulus and a linear-congruential keystream by design. The
// primitives here are exact, but the security level is a teaching toy.
package crypto
