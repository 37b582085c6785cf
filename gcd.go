package bignum

// GCD computes the greatest common divisor of |a| and |b| using the
// binary (Stein's) algorithm of spec.md §4.8: repeated halving of
// even operands and subtraction of the smaller from the larger,
// restoring the common power-of-two factor at the end. GCD(0, 0) == 0;
// GCD(a, 0) == |a|.
func GCD(a, b *BigInt) *BigInt {
	if a.IsZero() {
		r := b.clone()
		r.sign = 1
		return r
	}
	if b.IsZero() {
		r := a.clone()
		r.sign = 1
		return r
	}

	u := a.clone()
	u.sign = 1
	v := b.clone()
	v.sign = 1

	shift := 0
	for u.IsEven() && v.IsEven() {
		u.Rsh(u, 1)
		v.Rsh(v, 1)
		shift++
	}
	for u.IsEven() {
		u.Rsh(u, 1)
	}
	for {
		for v.IsEven() {
			v.Rsh(v, 1)
		}
		if compareMagnitude(u, v) > 0 {
			u, v = v, u
		}
		v.Sub(v, u)
		if v.IsZero() {
			break
		}
	}
	u.Lsh(u, uint(shift))
	return u
}

// Lcm computes the least common multiple of |a| and |b|, per
// SPEC_FULL.md §12's supplemented helper. Lcm(a, 0) == 0.
func Lcm(a, b *BigInt) *BigInt {
	if a.IsZero() || b.IsZero() {
		return NewInt(0)
	}
	g := GCD(a, b)
	prod := new(BigInt)
	prod.Mul(a, b)
	prod.sign = 1
	q, _, err := DivMod(prod, g)
	if err != nil {
		// g divides prod exactly by construction; DivMod can only
		// fail here on a zero divisor, which GCD never returns when
		// both a and b are non-zero.
		panic(err)
	}
	return q
}

// extGCD computes the extended Euclidean triple (g, x, y) such that
// a*x + b*y == g == gcd(a, b), via binary extended GCD (spec.md
// §4.8's companion routine to modular inverse): it tracks Bezout
// coefficient pairs alongside the same halving/subtracting walk GCD
// uses, adjusting the coefficients to stay integral whenever a value
// being halved is odd.
func extGCD(a, b *BigInt) (g, x, y *BigInt) {
	if a.IsZero() {
		r := b.clone()
		r.sign = 1
		return r, NewInt(0), NewInt(1)
	}
	if b.IsZero() {
		r := a.clone()
		r.sign = 1
		return r, NewInt(1), NewInt(0)
	}

	aAbs := a.clone()
	aAbs.sign = 1
	bAbs := b.clone()
	bAbs.sign = 1

	// Strip common factors of two; they are restored on g at the end.
	shift := 0
	for aAbs.IsEven() && bAbs.IsEven() {
		aAbs.Rsh(aAbs, 1)
		bAbs.Rsh(bAbs, 1)
		shift++
	}

	u := aAbs.clone()
	v := bAbs.clone()

	// A*u0 + B*u1 == u ; C*u0 + D*u1 == v, where u0 == |a|, u1 == |b|.
	A, B := NewInt(1), NewInt(0)
	C, D := NewInt(0), NewInt(1)

	halve := func(n, coefP, coefQ *BigInt) {
		if coefP.IsOdd() || coefQ.IsOdd() {
			coefP.Add(coefP, bAbs)
			coefQ.Sub(coefQ, aAbs)
		}
		n.Rsh(n, 1)
		coefP.Rsh(coefP, 1)
		coefQ.Rsh(coefQ, 1)
	}

	for u.IsEven() {
		halve(u, A, B)
	}
	for {
		for v.IsEven() {
			halve(v, C, D)
		}
		if compareMagnitude(u, v) > 0 {
			u, v = v, u
			A, C = C, A
			B, D = D, B
		}
		v.Sub(v, u)
		C.Sub(C, A)
		D.Sub(D, B)
		if v.IsZero() {
			break
		}
	}

	u.Lsh(u, uint(shift))
	if a.IsNegative() {
		A.Neg(A)
	}
	if b.IsNegative() {
		B.Neg(B)
	}
	return u, A, B
}

// ExtGCD exposes extGCD: it returns g, x, y with a*x + b*y == g ==
// gcd(a, b).
func ExtGCD(a, b *BigInt) (g, x, y *BigInt) { return extGCD(a, b) }

// ModInverse computes a^-1 mod m via the extended binary GCD,
// returning StatusNoInverse if gcd(a, m) != 1. The result is
// normalized into [0, m), per spec.md §4.8.
func ModInverse(a, m *BigInt) (*BigInt, error) {
	if m.Sign() <= 0 {
		return nil, errNegativeArgument("ModInverse", "modulus must be positive")
	}
	g, x, _ := extGCD(a, m)
	g.sign = 1
	if !g.IsOne() {
		return nil, errNoInverse("ModInverse")
	}
	_, r, err := DivMod(x, m)
	if err != nil {
		return nil, err
	}
	if r.IsNegative() {
		r.Add(r, m)
	}
	return r, nil
}

// NthRoot computes floor(a^(1/n)) for n >= 1 via Newton's method
// (spec.md §4.9's integer-root companion to the arithmetic core),
// iterating x_{k+1} = ((n-1)*x_k + a/x_k^(n-1)) / n from an initial
// guess of 1<<ceil(bitlen(a)/n) until the estimate stops decreasing.
// Negative a is only accepted for odd n, matching real-valued roots.
func NthRoot(a *BigInt, n int) (*BigInt, error) {
	if n <= 0 {
		return nil, errOutOfRange("NthRoot", "root degree must be positive")
	}
	if a.IsNegative() && n%2 == 0 {
		return nil, errNegativeArgument("NthRoot", "even root of a negative value is not real")
	}
	if a.IsZero() {
		return NewInt(0), nil
	}

	neg := a.IsNegative()
	mag := a.clone()
	mag.sign = 1

	if n == 1 {
		if neg {
			mag.Neg(mag)
		}
		return mag, nil
	}

	bitLen := mag.CountBits()
	guessBits := (bitLen + n - 1) / n
	if guessBits < 1 {
		guessBits = 1
	}
	x := new(BigInt)
	x.SetBit(guessBits, 1)

	nBig := NewInt(int64(n))
	nMinus1 := NewInt(int64(n - 1))

	for {
		xPow := new(BigInt)
		xPow.SetInt64(1)
		for i := 0; i < n-1; i++ {
			xPow.Mul(xPow, x)
		}
		if xPow.IsZero() {
			x.SetInt64(1)
			continue
		}
		q, _, err := DivMod(mag, xPow)
		if err != nil {
			return nil, err
		}
		num := new(BigInt)
		num.Mul(nMinus1, x)
		num.Add(num, q)
		next, _, err := DivMod(num, nBig)
		if err != nil {
			return nil, err
		}
		if compareMagnitude(next, x) >= 0 {
			break
		}
		x = next
	}

	// Final correction: Newton's method for integer roots can
	// overshoot by one due to truncation; step down while x^n > a.
	for {
		p := new(BigInt)
		p.SetInt64(1)
		for i := 0; i < n; i++ {
			p.Mul(p, x)
		}
		if compareMagnitude(p, mag) <= 0 {
			break
		}
		x.Sub(x, NewInt(1))
	}

	if neg {
		x.Neg(x)
	}
	return x, nil
}
