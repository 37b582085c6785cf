package bignum

import "math/bits"

// DivMod implements Knuth's schoolbook long division (HAC 14.20),
// reproducing the normalize/shift/refine structure of spec.md §4.5
// digit-for-digit so callers can rely on bit-for-bit compatible
// quotient/remainder digits. It returns q, r such that a == q*b + r
// with 0 <= |r| < |b| and sign(r) == sign(a) (when r != 0).
func DivMod(a, b *BigInt) (q, r *BigInt, err error) {
	if b.used == 0 {
		return nil, nil, errDivideByZero("DivMod")
	}

	q = new(BigInt)
	r = new(BigInt)

	// Fast paths (spec.md §4.5 step 1).
	switch compareMagnitude(a, b) {
	case -1:
		q.setZero()
		r.Set(a)
		return q, r, nil
	case 0:
		sign := a.sign * b.sign
		q.SetInt64(int64(sign))
		r.setZero()
		return q, r, nil
	}

	// Step 2: normalize so y's top digit has its high bit set. Per
	// spec.md §4.5 step 2: s = (W-1) - (bits(|b|) mod W).
	s := (digitBits - 1) - b.CountBits()%digitBits

	aMag := &BigInt{sign: 1, digits: append([]Digit(nil), a.digits[:a.used]...), used: a.used}
	bMag := &BigInt{sign: 1, digits: append([]Digit(nil), b.digits[:b.used]...), used: b.used}

	x := new(BigInt)
	y := new(BigInt)
	_ = x.shiftLeftBits(aMag, s)
	_ = y.shiftLeftBits(bMag, s)

	n := x.used - 1
	t := y.used - 1

	quot := make([]Digit, n-t+1)

	// Step 3: knock out any leading multiples of y shifted to align
	// with x's top digit, so the refine loop below only ever needs a
	// single-digit trial quotient per position.
	shifted := new(BigInt)
	_ = shifted.shiftLeftDigits(y, n-t)
	for compareMagnitude(x, shifted) >= 0 {
		_ = subMag(x, x, shifted)
		quot[n-t]++
	}

	const base word = digitBase

	// Step 4: process remaining digit positions from n down to t+1.
	for i := n; i >= t+1; i-- {
		var qhat word
		xi := digitAt(x, i)
		xi1 := digitAt(x, i-1)
		xi2 := digitAt(x, i-2)
		ytop := digitAt(y, t)
		ynext := digitAt(y, t-1)

		if xi == ytop {
			qhat = uint64(digitMask)
		} else {
			num := xi*base + xi1
			qhat = num / ytop
			if qhat > uint64(digitMask) {
				qhat = uint64(digitMask)
			}
		}

		// Refine: while qhat*(ytop*B + ynext) > xi*B^2 + xi1*B + xi2,
		// decrement qhat.
		rhsHi, rhsLo := xi, xi1*base+xi2
		for {
			lhsHi, lhsLo := bits.Mul64(qhat, ytop*base+ynext)
			if !greater128(lhsHi, lhsLo, rhsHi, rhsLo) {
				break
			}
			qhat--
		}

		// Subtract qhat*y*base^(i-t-1) from x; if that would make x
		// negative, add y*base^(i-t-1) back and decrement qhat.
		qb := new(BigInt)
		qb.SetUint64(qhat)
		prod := new(BigInt)
		_ = mulMag(prod, y, qb, 0)
		shiftedProd := new(BigInt)
		_ = shiftedProd.shiftLeftDigits(prod, i-t-1)

		if compareMagnitude(x, shiftedProd) < 0 {
			diff := new(BigInt)
			_ = subMag(diff, shiftedProd, x)
			yShift := new(BigInt)
			_ = yShift.shiftLeftDigits(y, i-t-1)
			_ = subMag(x, yShift, diff)
			qhat--
		} else {
			_ = subMag(x, x, shiftedProd)
		}
		quot[i-t-1] = Digit(qhat)
	}

	_ = q.grow(len(quot))
	copy(q.digits, quot)
	q.used = len(quot)
	q.sign = a.sign * b.sign
	q.clamp()

	_ = r.shiftRightBits(x, s)
	r.sign = a.sign
	if r.used == 0 {
		r.sign = 1
	}
	return q, r, nil
}

// digitAt returns digit i of x (0 if i is out of range or negative),
// widened to a word for arithmetic.
func digitAt(x *BigInt, i int) word {
	if i < 0 || i >= x.used {
		return 0
	}
	return word(x.digits[i])
}

// greater128 reports whether (aHi:aLo) > (bHi:bLo) as 128-bit values.
func greater128(aHi, aLo, bHi, bLo word) bool {
	if aHi != bHi {
		return aHi > bHi
	}
	return aLo > bLo
}

// Div sets z = a / b (truncating toward zero, i.e. the DivMod
// quotient) and returns z.
func (z *BigInt) Div(a, b *BigInt) (*BigInt, error) {
	q, _, err := DivMod(a, b)
	if err != nil {
		return nil, err
	}
	z.Set(q)
	return z, nil
}

// Mod sets z = a mod b (the DivMod remainder) and returns z.
func (z *BigInt) Mod(a, b *BigInt) (*BigInt, error) {
	_, r, err := DivMod(a, b)
	if err != nil {
		return nil, err
	}
	z.Set(r)
	return z, nil
}

// EuclidMod sets z to the non-negative representative of a mod m
// (0 <= z < m), unlike Mod/DivMod whose remainder sign follows a.
func (z *BigInt) EuclidMod(a, m *BigInt) (*BigInt, error) {
	_, r, err := DivMod(a, m)
	if err != nil {
		return nil, err
	}
	if r.IsNegative() {
		absM := m.clone()
		absM.sign = 1
		r.Add(r, absM)
	}
	z.Set(r)
	return z, nil
}
