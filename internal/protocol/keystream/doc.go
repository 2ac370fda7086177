// Package keystream implements the linear-congruential keystream and the
// XOR stream transform that encrypts chat payloads.
//
// A Generator advances state = (A*state + C) mod 2^32 once per emitted
// byte and returns the low 8 bits, so its output is fully determined by
// the seed and the call count. Each direction of a connection owns exactly
// one Generator, seeded once from the shared secret at session start and
// never reseeded: both peers must advance a direction's generator by
// exactly one step per byte carried in that direction, or decryption
// desynchronizes for the remainder of the connection.
//
// This is a teaching-grade cipher with the usual LCG weaknesses (short
// period, cycling low bits). It is kept deliberately; do not swap in a
// real cipher here.
package keystream
