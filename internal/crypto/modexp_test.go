package crypto_test

import (
	"math/big"
	"math/rand"
	"testing"

	"streamchat/internal/crypto"
)

// refModPow is the arbitrary-precision reference.
func refModPow(base, exponent, modulus uint64) uint64 {
	if modulus == 1 {
		return 0
	}
	b := new(big.Int).SetUint64(base)
	e := new(big.Int).SetUint64(exponent)
	m := new(big.Int).SetUint64(modulus)
	return new(big.Int).Exp(b, e, m).Uint64()
}

func TestModPowEdgeCases(t *testing.T) {
	cases := []struct {
		base, exponent, modulus, want uint64
	}{
		{0, 0, 7, 1},                  // 0^0 == 1 by convention
		{5, 0, 7, 1},                  // exponent zero
		{5, 3, 1, 0},                  // modulus one
		{0, 10, 7, 0},                 // zero base
		{2, 64, 1<<63 + 1, 1<<63 - 1}, // hits the 128-bit intermediate path
	}
	for _, c := range cases {
		if got := crypto.ModPow(c.base, c.exponent, c.modulus); got != c.want {
			t.Errorf("ModPow(%d, %d, %d) = %d, want %d",
				c.base, c.exponent, c.modulus, got, c.want)
		}
	}
	// Recheck the overflow-prone case against the reference rather than a
	// hand-computed constant.
	if got, want := crypto.ModPow(2, 64, 1<<63+1), refModPow(2, 64, 1<<63+1); got != want {
		t.Errorf("ModPow(2, 64, 2^63+1) = %d, want %d", got, want)
	}
}

func TestModPowMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		base := rng.Uint64()
		exponent := rng.Uint64()
		modulus := rng.Uint64()
		if modulus == 0 {
			modulus = 1
		}
		want := refModPow(base, exponent, modulus)
		if got := crypto.ModPow(base, exponent, modulus); got != want {
			t.Fatalf("ModPow(%d, %d, %d) = %d, want %d",
				base, exponent, modulus, got, want)
		}
	}
}

func TestModPowLargeOperands(t *testing.T) {
	// Operands near 2^64 overflow a 64-bit product; these only pass with
	// genuine 128-bit intermediates.
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		base := ^uint64(0) - uint64(rng.Intn(1000))
		exponent := ^uint64(0) - uint64(rng.Intn(1000))
		modulus := ^uint64(0) - uint64(rng.Intn(1000))
		want := refModPow(base, exponent, modulus)
		if got := crypto.ModPow(base, exponent, modulus); got != want {
			t.Fatalf("ModPow(%d, %d, %d) = %d, want %d",
				base, exponent, modulus, got, want)
		}
	}
}
