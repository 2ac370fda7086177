// Package wire implements the chat envelope framing.
//
// Format, all integers big-endian:
//
//	4 bytes: ciphertext length
//	N bytes: ciphertext
//
// The length names the wire length of the payload. Zero-length envelopes
// are valid and decode to an empty payload.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxPayload limits a single envelope payload, so a corrupt length header
// fails fast instead of allocating gigabytes.
const MaxPayload = 1 << 20 // 1 MiB

var ErrPayloadTooLarge = errors.New("wire: envelope payload too large")

// WriteEnvelope frames payload and writes it in one call.
func WriteEnvelope(w io.Writer, payload []byte) error {
	if len(payload) > MaxPayload {
		return ErrPayloadTooLarge
	}
	buf := make([]byte, 4+len(payload))
	binary.BigEndian.PutUint32(buf[:4], uint32(len(payload)))
	copy(buf[4:], payload)
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("writing envelope: %w", err)
	}
	return nil
}

// ReadEnvelope reads one framed payload. It reads from r directly without
// buffering, so interleaving with other reads on the same stream is safe.
// A stream that ends before a full length header arrives surfaces as
// io.EOF or io.ErrUnexpectedEOF from the header read.
func ReadEnvelope(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if n > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, n)
	}
	payload := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, fmt.Errorf("reading %d-byte payload: %w", n, err)
		}
	}
	return payload, nil
}
