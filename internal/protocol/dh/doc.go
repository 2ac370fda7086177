// Package dh implements the one-round Diffie-Hellman exchange that keys a
// chat session.
//
// Both peers share fixed public domain parameters (a 64-bit modulus and a
// small generator) compiled into the binary. Each side generates an
// ephemeral key pair, exchanges raw 8-byte big-endian public values over
// the connection, and derives the same shared secret independently.
//
// The exchange ordering is role-asymmetric and load-bearing: the initiator
// writes its public value before reading, the responder reads before
// writing. Two peers picking the same ordering deadlock, since neither
// side's read completes until the other writes. The two orderings are
// exposed as separate functions so a session commits to one at start.
//
// Received public values are not range-checked; an out-of-range value is
// processed like any other. This teaching-grade protocol is deliberately
// permissive: garbage in, garbage out.
package dh
