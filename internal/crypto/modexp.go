package crypto

import "math/bits"

// ModPow computes base^exponent mod modulus by square and multiply.
// Intermediate products are kept in 128 bits, so it is exact for all
// uint64 operands. modulus == 1 returns 0.
func ModPow(base, exponent, modulus uint64) uint64 {
	if modulus == 1 {
		return 0
	}
	result := uint64(1)
	base %= modulus
	for exponent > 0 {
		if exponent&1 == 1 {
			result = mulMod(result, base, modulus)
		}
		exponent >>= 1
		if exponent > 0 {
			base = mulMod(base, base, modulus)
		}
	}
	return result
}

// mulMod returns a*b mod m using a 128-bit product. Both a and b must
// already be reduced mod m, which keeps the product's high word below m
// as bits.Div64 requires.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}
