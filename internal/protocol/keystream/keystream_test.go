package keystream_test

import (
	"bytes"
	"testing"

	"streamchat/internal/protocol/keystream"
)

func TestNextKnownValues(t *testing.T) {
	// First step from seed 0: state = 12345, low byte 0x39.
	if got := keystream.New(0).Next(); got != 0x39 {
		t.Fatalf("Next from seed 0 = %#02x, want 0x39", got)
	}
	// First step from seed 1: state = 1103515245 + 12345 = 0x41C67EA6.
	if got := keystream.New(1).Next(); got != 0xA6 {
		t.Fatalf("Next from seed 1 = %#02x, want 0xa6", got)
	}
}

func TestDeterminism(t *testing.T) {
	const seed = 0xD87FA3E291B4C7F3 // a full 64-bit seed, as sessions use
	a := keystream.New(seed)
	b := keystream.New(seed)
	for i := 0; i < 10000; i++ {
		if ab, bb := a.Next(), b.Next(); ab != bb {
			t.Fatalf("step %d: %#02x vs %#02x", i, ab, bb)
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	plaintexts := [][]byte{
		nil,
		{},
		[]byte("hi"),
		[]byte("a longer line of chat text, still one turn"),
		bytes.Repeat([]byte{0x00, 0xFF}, 512),
	}
	for _, plain := range plaintexts {
		enc := keystream.New(99)
		dec := keystream.New(99)
		cipher := enc.Transform(plain)
		if len(cipher) != len(plain) {
			t.Fatalf("Transform changed length: %d -> %d", len(plain), len(cipher))
		}
		back := dec.Transform(cipher)
		if !bytes.Equal(back, plain) {
			t.Fatalf("round trip mismatch: %x -> %x", plain, back)
		}
	}
}

func TestOutputIndependentOfCallSplit(t *testing.T) {
	// n steps from one seed yield the same bytes no matter how the calls
	// are split across Transform invocations.
	const seed = 424242
	whole := keystream.New(seed)
	want := whole.Transform(make([]byte, 64)) // zero input exposes raw keystream

	split := keystream.New(seed)
	var got []byte
	for _, n := range []int{1, 0, 7, 13, 2, 41} {
		got = append(got, split.Transform(make([]byte, n))...)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("split keystream diverges:\n got %x\nwant %x", got, want)
	}
}

func TestSkippedBytesDesynchronize(t *testing.T) {
	// Consuming one extra step on one side permanently offsets decryption.
	enc := keystream.New(7)
	dec := keystream.New(7)
	dec.Next()

	plain := []byte("hello")
	back := dec.Transform(enc.Transform(plain))
	if bytes.Equal(back, plain) {
		t.Fatal("offset generators still round-tripped; expected garbled output")
	}
}
