// Package session drives one secure chat over one established connection.
//
// A Session moves through Handshaking, Established and Closed. During the
// handshake it runs the role-ordered Diffie-Hellman exchange; at
// establishment it seeds one keystream generator per direction from the
// shared secret. The turn loop then alternates strictly between sending
// and receiving length-framed envelopes, with the role deciding which
// turn comes first: the initiator sends first, the responder receives
// first.
//
// Each direction's generator is owned by the session and advanced by
// exactly one step per byte carried in that direction, never reseeded.
// A skipped or duplicated turn therefore desynchronizes that direction
// permanently; it shows up as garbled plaintext, not a detected error.
//
// A session is single-threaded and blocking by design: no timeouts, no
// concurrent turns, no retries. The peer closing the connection, or local
// input ending, terminates the session cleanly on the next blocking call.
package session
