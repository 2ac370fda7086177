package dh

import (
	"encoding/binary"
	"fmt"
	"io"

	"streamchat/internal/crypto"
	"streamchat/internal/domain"
)

// Fixed domain parameters. Both peers must compile in the same values;
// they are never negotiated or transmitted.
const (
	// P is the public 64-bit modulus.
	P uint64 = 0xD87FA3E291B4C7F3
	// G is the public generator.
	G uint64 = 2
)

// NewKeyPair draws an ephemeral private scalar uniformly from [2, P-2] and
// derives the matching public value.
func NewKeyPair() (domain.KeyPair, error) {
	priv, err := crypto.RandomScalar(2, P-2)
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("drawing private scalar: %w", err)
	}
	return domain.KeyPair{
		Private: priv,
		Public:  crypto.ModPow(G, priv, P),
	}, nil
}

// ExchangeInitiator writes our public value, then reads the peer's.
func ExchangeInitiator(rw io.ReadWriter, kp domain.KeyPair) (peerPublic uint64, err error) {
	if err := writePublic(rw, kp.Public); err != nil {
		return 0, err
	}
	return readPublic(rw)
}

// ExchangeResponder reads the peer's public value, then writes ours.
func ExchangeResponder(rw io.ReadWriter, kp domain.KeyPair) (peerPublic uint64, err error) {
	peerPublic, err = readPublic(rw)
	if err != nil {
		return 0, err
	}
	if err := writePublic(rw, kp.Public); err != nil {
		return 0, err
	}
	return peerPublic, nil
}

// SharedSecret derives the session secret from the peer's public value and
// our private scalar. Commutativity of modular exponentiation guarantees
// both peers compute the same value.
func SharedSecret(peerPublic, ourPrivate uint64) uint64 {
	return crypto.ModPow(peerPublic, ourPrivate, P)
}

func writePublic(w io.Writer, pub uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], pub)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("sending public value: %w", err)
	}
	return nil
}

func readPublic(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("receiving public value: %w", err)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}
