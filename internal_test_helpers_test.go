package bignum

import (
	"math/big"
	"math/rand"
)

// toBig converts z to a math/big.Int, used only in tests as an
// independent oracle for the package's own arithmetic.
func toBig(z *BigInt) *big.Int {
	r := new(big.Int)
	base := new(big.Int).SetUint64(uint64(digitBase))
	for i := z.used - 1; i >= 0; i-- {
		r.Mul(r, base)
		r.Add(r, big.NewInt(int64(z.digits[i])))
	}
	if z.sign < 0 {
		r.Neg(r)
	}
	return r
}

// fromBig converts a math/big.Int into a fresh BigInt, used only in
// tests to seed operands from a convenient literal or random source.
func fromBig(b *big.Int) *BigInt {
	z := NewInt(0)
	words := new(big.Int).Abs(b)
	base := new(big.Int).SetUint64(uint64(digitBase))
	mod := new(big.Int)
	var digits []Digit
	for words.Sign() != 0 {
		words.DivMod(words, base, mod)
		digits = append(digits, Digit(mod.Uint64()))
	}
	_ = z.grow(len(digits))
	copy(z.digits, digits)
	z.used = len(digits)
	z.clamp()
	if b.Sign() < 0 && !z.IsZero() {
		z.sign = -1
	}
	return z
}

// randBig returns a random BigInt with up to bits magnitude bits
// (always non-negative), for use as a test operand.
func randBig(rnd *rand.Rand, bits int) *BigInt {
	if bits <= 0 {
		return NewInt(0)
	}
	nbytes := (bits + 7) / 8
	buf := make([]byte, nbytes)
	rnd.Read(buf)
	b := new(big.Int).SetBytes(buf)
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	mask.Sub(mask, big.NewInt(1))
	b.And(b, mask)
	return fromBig(b)
}

// randOddBig returns a random odd BigInt with exactly bits magnitude
// bits (top and bottom bits set), suitable as a modulus for the
// diminished-radix and Montgomery reducers.
func randOddBig(rnd *rand.Rand, bits int) *BigInt {
	b := randBig(rnd, bits)
	b.SetBit(0, 1)
	if bits > 0 {
		b.SetBit(bits-1, 1)
	}
	return b
}
