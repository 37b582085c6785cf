package bignum

// BarrettReducer implements Barrett reduction (spec.md §4.6): generic
// modular reduction via a precomputed mu = floor(base^(2k)/m).
type BarrettReducer struct {
	m  BigInt
	mu BigInt
	k  int
}

// truncateLowDigits sets z to x mod base^n (the low n digits of x's
// magnitude).
func truncateLowDigits(z, x *BigInt, n int) {
	if n >= x.used {
		z.Set(x)
		z.sign = 1
		return
	}
	_ = z.grow(n)
	copy(z.digits, x.digits[:n])
	z.used = n
	z.sign = 1
	z.clamp()
}

func (b *BarrettReducer) Setup(m *BigInt) error {
	if m.Sign() <= 0 {
		return errNegativeArgument("BarrettReducer.Setup", "modulus must be positive")
	}
	b.m.Set(m)
	b.k = m.used

	base2k := new(BigInt)
	_ = base2k.shiftLeftDigits(NewInt(1), 2*b.k)
	q, _, err := DivMod(base2k, m)
	if err != nil {
		return err
	}
	b.mu.Set(q)
	return nil
}

func (b *BarrettReducer) Modulus() *BigInt { return &b.m }

func (b *BarrettReducer) Reduce(x *BigInt) error {
	k := b.k
	if x.used < k {
		// Already reduced enough; just ensure canonical range.
		for compareMagnitude(x, &b.m) >= 0 {
			_ = subMag(x, x, &b.m)
		}
		return nil
	}

	q1 := new(BigInt)
	_ = q1.shiftRightDigits(x, k-1)

	q2 := new(BigInt)
	_ = mulMag(q2, q1, &b.mu, 0)

	q3 := new(BigInt)
	_ = q3.shiftRightDigits(q2, k+1)

	r1 := new(BigInt)
	truncateLowDigits(r1, x, k+1)

	q3m := new(BigInt)
	_ = mulMag(q3m, q3, &b.m, 0)
	r2 := new(BigInt)
	truncateLowDigits(r2, q3m, k+1)

	if compareMagnitude(r1, r2) < 0 {
		base := new(BigInt)
		_ = base.shiftLeftDigits(NewInt(1), k+1)
		diff := new(BigInt)
		_ = subMag(diff, r2, r1)
		_ = subMag(r1, base, diff)
	} else {
		_ = subMag(r1, r1, r2)
	}

	for compareMagnitude(r1, &b.m) >= 0 {
		_ = subMag(r1, r1, &b.m)
	}
	x.Set(r1)
	return nil
}

func (b *BarrettReducer) ToResidue(z, x *BigInt) error {
	_, r, err := DivMod(x, &b.m)
	if err != nil {
		return err
	}
	if r.IsNegative() {
		r.Add(r, &b.m)
	}
	z.Set(r)
	return nil
}

func (b *BarrettReducer) FromResidue(z, x *BigInt) error {
	z.Set(x)
	return nil
}

func (b *BarrettReducer) MulMod(z, a, b2 *BigInt) error {
	_ = mulMag(z, a, b2, 0)
	return b.Reduce(z)
}
