// Package transcript renders the human-readable session narration: domain
// parameters, exchanged values, keystream previews, and per-turn hex dumps
// of plaintext, keystream and ciphertext.
//
// The transcript is observability only. It is not part of the wire
// protocol and has no effect on correctness; tests silence it by passing
// io.Discard.
package transcript

import (
	"fmt"
	"io"

	"streamchat/internal/domain"
	"streamchat/internal/protocol/keystream"
)

// dumpLimit caps per-turn hex dumps so a long line stays readable.
const dumpLimit = 32

// Printer writes the session transcript to a single output.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Params announces the fixed public domain parameters.
func (p *Printer) Params(prime, generator uint64) {
	fmt.Fprintf(p.w, "[dh] p = %X (public modulus)\n", prime)
	fmt.Fprintf(p.w, "[dh] g = %d (public generator)\n", generator)
}

// KeyPair announces the freshly generated ephemeral pair. Printing the
// private scalar is deliberate; this is a teaching channel, not a secure one.
func (p *Printer) KeyPair(kp domain.KeyPair) {
	fmt.Fprintf(p.w, "[dh] private = %X\n", kp.Private)
	fmt.Fprintf(p.w, "[dh] public  = g^private mod p = %X\n", kp.Public)
}

// Exchange records the public value exchange in the order the role
// performed it.
func (p *Printer) Exchange(role domain.Role, ourPublic, peerPublic uint64) {
	send := fmt.Sprintf("[dh] -> sent our public:      %X\n", ourPublic)
	recv := fmt.Sprintf("[dh] <- received peer public: %X\n", peerPublic)
	if role == domain.Initiator {
		io.WriteString(p.w, send)
		io.WriteString(p.w, recv)
	} else {
		io.WriteString(p.w, recv)
		io.WriteString(p.w, send)
	}
}

// SharedSecret records the derived session secret.
func (p *Printer) SharedSecret(peerPublic, secret uint64) {
	fmt.Fprintf(p.w, "[dh] secret = %X^private mod p = %X\n", peerPublic, secret)
}

// KeystreamPreview prints the first n bytes the keystream will produce
// from seed. It uses a throwaway generator so the session's per-direction
// generators stay untouched.
func (p *Printer) KeystreamPreview(seed uint64, n int) {
	g := keystream.New(seed)
	fmt.Fprintf(p.w, "[stream] lcg a=%d c=%d m=2^32, keystream:", keystream.A, keystream.C)
	for i := 0; i < n; i++ {
		fmt.Fprintf(p.w, " %02X", g.Next())
	}
	fmt.Fprintln(p.w, " ...")
}

// Established marks the channel as ready and shows its fingerprint.
func (p *Printer) Established(fingerprint string) {
	fmt.Fprintf(p.w, "secure channel established, fingerprint %s\n", fingerprint)
}

// Prompt asks the operator for the next line.
func (p *Printer) Prompt() {
	fmt.Fprint(p.w, "> ")
}

// SendTurn dumps one outbound message: plaintext, the keystream bytes it
// consumed, and the ciphertext that went on the wire.
func (p *Printer) SendTurn(plain, cipher []byte) {
	fmt.Fprintf(p.w, "[encrypt] %d bytes\n", len(plain))
	p.dump("plain ", plain)
	p.dumpKey(plain, cipher)
	p.dump("cipher", cipher)
}

// RecvTurn dumps one inbound message the same way, wire order first.
func (p *Printer) RecvTurn(cipher, plain []byte) {
	fmt.Fprintf(p.w, "[decrypt] %d bytes\n", len(cipher))
	p.dump("cipher", cipher)
	p.dumpKey(plain, cipher)
	p.dump("plain ", plain)
}

// Closed marks the end of the session.
func (p *Printer) Closed() {
	fmt.Fprintln(p.w, "connection closed")
}

func (p *Printer) dump(label string, b []byte) {
	fmt.Fprintf(p.w, "  %s:", label)
	for i, v := range b {
		if i == dumpLimit {
			fmt.Fprint(p.w, " ...")
			break
		}
		fmt.Fprintf(p.w, " %02x", v)
	}
	fmt.Fprintln(p.w)
}

// dumpKey recovers the consumed keystream bytes from the XOR relation, so
// the live generators are never advanced for display.
func (p *Printer) dumpKey(plain, cipher []byte) {
	key := make([]byte, len(plain))
	for i := range plain {
		key[i] = plain[i] ^ cipher[i]
	}
	p.dump("key   ", key)
}
