package bignum

import "math/bits"

// compareMagnitude compares |a| and |b|, returning -1, 0, or +1. It
// first compares used-digit counts, then digits from most- to
// least-significant, per spec.md §4.1.
func compareMagnitude(a, b *BigInt) int {
	if a.used != b.used {
		if a.used < b.used {
			return -1
		}
		return 1
	}
	for i := a.used - 1; i >= 0; i-- {
		if a.digits[i] != b.digits[i] {
			if a.digits[i] < b.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// CmpAbs compares |z| and |x|, returning -1, 0, or +1.
func (z *BigInt) CmpAbs(x *BigInt) int { return compareMagnitude(z, x) }

// Cmp compares z and x as signed integers, returning -1, 0, or +1.
func (z *BigInt) Cmp(x *BigInt) int {
	switch {
	case z.Sign() < x.Sign():
		return -1
	case z.Sign() > x.Sign():
		return 1
	}
	switch z.Sign() {
	case 0:
		return 0
	case 1:
		return compareMagnitude(z, x)
	default:
		return -compareMagnitude(z, x)
	}
}

// shiftLeftDigits sets z = x shifted left by k whole digits (z = x * base^k).
func (z *BigInt) shiftLeftDigits(x *BigInt, k int) error {
	if k < 0 {
		return z.shiftRightDigits(x, -k)
	}
	if x.used == 0 {
		z.setZero()
		return nil
	}
	n := x.used + k
	src := append([]Digit(nil), x.digitsUsed()...)
	sign := x.sign
	if err := z.grow(n); err != nil {
		return err
	}
	for i := 0; i < k; i++ {
		z.digits[i] = 0
	}
	copy(z.digits[k:n], src)
	z.used = n
	z.sign = sign
	z.clamp()
	return nil
}

// shiftRightDigits sets z = x shifted right by k whole digits
// (truncating toward zero for the magnitude; sign is preserved
// unless the result is zero).
func (z *BigInt) shiftRightDigits(x *BigInt, k int) error {
	if k < 0 {
		return z.shiftLeftDigits(x, -k)
	}
	if k >= x.used {
		z.setZero()
		return nil
	}
	n := x.used - k
	src := append([]Digit(nil), x.digits[k:x.used]...)
	sign := x.sign
	if err := z.grow(n); err != nil {
		return err
	}
	copy(z.digits, src)
	z.used = n
	z.sign = sign
	z.clamp()
	return nil
}

// shiftLeftBits sets z = x shifted left by k bits, k >= 0.
func (z *BigInt) shiftLeftBits(x *BigInt, k int) error {
	if k < 0 {
		return z.shiftRightBits(x, -k)
	}
	if x.used == 0 || k == 0 {
		z.Set(x)
		return nil
	}
	digitShift := k / digitBits
	bitShift := uint(k % digitBits)

	src := append([]Digit(nil), x.digitsUsed()...)
	sign := x.sign
	n := x.used + digitShift + 1
	if err := z.grow(n); err != nil {
		return err
	}
	for i := 0; i < digitShift; i++ {
		z.digits[i] = 0
	}
	var carry Digit
	if bitShift == 0 {
		copy(z.digits[digitShift:digitShift+len(src)], src)
		carry = 0
	} else {
		for i, d := range src {
			z.digits[digitShift+i] = (d << bitShift) | carry
			carry = d >> (digitBits - bitShift)
		}
	}
	z.digits[digitShift+len(src)] = carry
	z.used = n
	z.sign = sign
	z.clamp()
	return nil
}

// shiftRightBits sets z = x shifted right by k bits, k >= 0, truncating
// the magnitude toward zero.
func (z *BigInt) shiftRightBits(x *BigInt, k int) error {
	if k < 0 {
		return z.shiftLeftBits(x, -k)
	}
	if x.used == 0 {
		z.setZero()
		return nil
	}
	digitShift := k / digitBits
	bitShift := uint(k % digitBits)
	if digitShift >= x.used {
		z.setZero()
		return nil
	}
	src := append([]Digit(nil), x.digits[digitShift:x.used]...)
	sign := x.sign
	n := len(src)
	if err := z.grow(n); err != nil {
		return err
	}
	if bitShift == 0 {
		copy(z.digits, src)
	} else {
		for i := 0; i < n; i++ {
			var hi Digit
			if i+1 < n {
				hi = src[i+1] << (digitBits - bitShift)
			}
			z.digits[i] = (src[i] >> bitShift) | hi
		}
	}
	z.used = n
	z.sign = sign
	z.clamp()
	return nil
}

// Lsh sets z = x << k (k >= 0 bits) and returns z.
func (z *BigInt) Lsh(x *BigInt, k uint) *BigInt {
	_ = z.shiftLeftBits(x, int(k))
	return z
}

// Rsh sets z = x >> k (k >= 0 bits, truncating toward zero) and
// returns z.
func (z *BigInt) Rsh(x *BigInt, k uint) *BigInt {
	_ = z.shiftRightBits(x, int(k))
	return z
}

// GetBit returns the value (0 or 1) of bit i of |z|, treating z as an
// infinite-width two's-complement-free magnitude (i.e. this reads the
// magnitude, not a two's-complement encoding of a negative z).
func (z *BigInt) GetBit(i int) uint {
	if i < 0 {
		return 0
	}
	d := i / digitBits
	if d >= z.used {
		return 0
	}
	return uint((z.digits[d] >> uint(i%digitBits)) & 1)
}

// SetBit sets bit i of z's magnitude to v (0 or 1) and returns z.
func (z *BigInt) SetBit(i int, v uint) *BigInt {
	if i < 0 {
		return z
	}
	d := i / digitBits
	if d >= z.used {
		if v == 0 {
			return z
		}
		if z.used == 0 {
			z.sign = 1 // a zero value's sign field may still be 0
		}
		_ = z.grow(d + 1)
		for j := z.used; j <= d; j++ {
			z.digits[j] = 0
		}
		z.used = d + 1
	}
	mask := Digit(1) << uint(i%digitBits)
	if v != 0 {
		z.digits[d] |= mask
	} else {
		z.digits[d] &^= mask
	}
	z.clamp()
	return z
}

// CountBits returns the number of bits in |z|'s magnitude (0 for zero).
func (z *BigInt) CountBits() int {
	if z.used == 0 {
		return 0
	}
	top := z.digits[z.used-1]
	return (z.used-1)*digitBits + bits.Len32(top)
}

// BitLen is an alias for CountBits, matching the math/big naming the
// rest of the ecosystem expects.
func (z *BigInt) BitLen() int { return z.CountBits() }

// CountTrailingZeroBits returns the number of trailing zero bits in
// |z|'s magnitude; defined as 0 for zero.
func (z *BigInt) CountTrailingZeroBits() int {
	if z.used == 0 {
		return 0
	}
	for i := 0; i < z.used; i++ {
		if z.digits[i] != 0 {
			return i*digitBits + bits.TrailingZeros32(z.digits[i])
		}
	}
	return 0
}

// Xor sets z = |a| xor |b| treated as unsigned magnitudes (sign of the
// result is always +1, matching the bitwise-on-magnitude contract
// spec.md §4.1 describes).
func (z *BigInt) Xor(a, b *BigInt) *BigInt {
	n := a.used
	if b.used > n {
		n = b.used
	}
	_ = z.grow(n)
	for i := 0; i < n; i++ {
		var da, db Digit
		if i < a.used {
			da = a.digits[i]
		}
		if i < b.used {
			db = b.digits[i]
		}
		z.digits[i] = da ^ db
	}
	z.used = n
	z.sign = 1
	z.clamp()
	return z
}
