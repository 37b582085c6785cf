package bignum

// addMag sets z = |a| + |b|, ignoring both operands' signs. Correct
// when z aliases a or b: the carry chain is computed into a scratch
// destination whenever z shares storage with a source, per spec.md
// §3's aliasing contract.
func addMag(z, a, b *BigInt) error {
	if a.used < b.used {
		a, b = b, a
	}
	n := a.used
	dst := z
	if z == a || z == b {
		dst = new(BigInt)
	}
	if err := dst.grow(n + 1); err != nil {
		return err
	}
	var carry word
	for i := 0; i < n; i++ {
		var bv Digit
		if i < b.used {
			bv = b.digits[i]
		}
		sum := word(a.digits[i]) + word(bv) + carry
		dst.digits[i] = Digit(sum & uint64(digitMask))
		carry = sum >> digitBits
	}
	dst.digits[n] = Digit(carry)
	dst.used = n + 1
	dst.sign = 1
	dst.clamp()
	if dst != z {
		z.swap(dst)
	}
	return nil
}

// subMag sets z = |a| - |b|, requiring |a| >= |b|. Correct when z
// aliases a or b.
func subMag(z, a, b *BigInt) error {
	if compareMagnitude(a, b) < 0 {
		return errInternal("subMag", "|a| < |b|")
	}
	n := a.used
	dst := z
	if z == a || z == b {
		dst = new(BigInt)
	}
	if err := dst.grow(n); err != nil {
		return err
	}
	var borrow word
	for i := 0; i < n; i++ {
		var bv Digit
		if i < b.used {
			bv = b.digits[i]
		}
		diff := word(a.digits[i]) - word(bv) - borrow
		dst.digits[i] = Digit(diff & uint64(digitMask))
		borrow = (diff >> (wordBits - 1)) & 1
	}
	dst.used = n
	dst.sign = 1
	dst.clamp()
	if dst != z {
		z.swap(dst)
	}
	return nil
}

// Add sets z = a + b and returns z, dispatching to addMag/subMag by
// comparing operand signs (spec.md §4.2).
func (z *BigInt) Add(a, b *BigInt) *BigInt {
	if a.Sign() == 0 {
		return z.Set(b)
	}
	if b.Sign() == 0 {
		return z.Set(a)
	}
	// Capture the signs first: z may alias a or b.
	aSign, bSign := a.sign, b.sign
	if aSign == bSign {
		_ = addMag(z, a, b)
		z.sign = aSign
		if z.used == 0 {
			z.sign = 1
		}
		return z
	}
	// Different signs: add is subtract of magnitudes, larger first,
	// inheriting its sign.
	switch compareMagnitude(a, b) {
	case 0:
		z.setZero()
		return z
	case 1:
		_ = subMag(z, a, b)
		z.sign = aSign
	default:
		_ = subMag(z, b, a)
		z.sign = bSign
	}
	return z
}

// Sub sets z = a - b and returns z (subtract is add of the negation).
func (z *BigInt) Sub(a, b *BigInt) *BigInt {
	if b.Sign() == 0 {
		return z.Set(a)
	}
	negB := b.clone()
	if negB.used > 0 {
		negB.sign = -negB.sign
	}
	return z.Add(a, negB)
}

// Neg sets z = -x and returns z.
func (z *BigInt) Neg(x *BigInt) *BigInt {
	z.Set(x)
	if z.used > 0 {
		z.sign = -z.sign
	}
	return z
}

// Abs sets z = |x| and returns z.
func (z *BigInt) Abs(x *BigInt) *BigInt {
	z.Set(x)
	z.sign = 1
	return z
}
