package bignum

// DiminishedRadixReducer implements diminished-radix reduction
// (spec.md §4.6), applicable when m is close to a power of two:
// mu = base^bits(m) - m.
type DiminishedRadixReducer struct {
	m    BigInt
	mu   BigInt
	bits int
}

// truncateLowBits sets z to x mod 2^k (the low k bits of x's
// magnitude).
func truncateLowBits(z, x *BigInt, k int) {
	if k <= 0 {
		z.setZero()
		return
	}
	fullDigits := k / digitBits
	extraBits := uint(k % digitBits)
	if fullDigits >= x.used {
		z.Set(x)
		z.sign = 1
		return
	}
	n := fullDigits
	if extraBits > 0 {
		n++
	}
	_ = z.grow(n)
	copy(z.digits, x.digits[:fullDigits])
	if extraBits > 0 {
		mask := Digit(1)<<extraBits - 1
		z.digits[fullDigits] = x.digits[fullDigits] & mask
	}
	z.used = n
	z.sign = 1
	z.clamp()
}

func (d *DiminishedRadixReducer) Setup(m *BigInt) error {
	if m.Sign() <= 0 {
		return errNegativeArgument("DiminishedRadixReducer.Setup", "modulus must be positive")
	}
	d.m.Set(m)
	d.bits = m.CountBits()
	base := new(BigInt)
	_ = base.shiftLeftBits(NewInt(1), d.bits)
	d.mu.Sub(base, m)
	return nil
}

func (d *DiminishedRadixReducer) Modulus() *BigInt { return &d.m }

func (d *DiminishedRadixReducer) Reduce(x *BigInt) error {
	for {
		q := new(BigInt)
		_ = q.shiftRightBits(x, d.bits)
		if q.IsZero() {
			break
		}
		low := new(BigInt)
		truncateLowBits(low, x, d.bits)

		qmu := new(BigInt)
		_ = mulMag(qmu, q, &d.mu, 0)

		x.Add(low, qmu)
	}
	for compareMagnitude(x, &d.m) >= 0 {
		_ = subMag(x, x, &d.m)
	}
	x.sign = 1
	return nil
}

func (d *DiminishedRadixReducer) ToResidue(z, x *BigInt) error {
	tmp := x.clone()
	tmp.sign = 1
	if err := d.Reduce(tmp); err != nil {
		return err
	}
	z.Set(tmp)
	return nil
}

func (d *DiminishedRadixReducer) FromResidue(z, x *BigInt) error {
	z.Set(x)
	return nil
}

func (d *DiminishedRadixReducer) MulMod(z, a, b *BigInt) error {
	_ = mulMag(z, a, b, 0)
	return d.Reduce(z)
}
