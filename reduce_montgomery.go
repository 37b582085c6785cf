package bignum

// MontgomeryReducer implements Montgomery reduction (spec.md §4.6),
// requiring an odd modulus. R = base^(m.used).
type MontgomeryReducer struct {
	m    BigInt
	rho  Digit // -m^-1 mod base
	n    int   // m.used == R's digit count
	rMod BigInt // R mod m, i.e. the Montgomery representation of 1
}

// montgomeryRho computes rho = -m0^-1 mod base, via the doubling
// Newton-Raphson product identity (Dumas, "On Newton-Raphson
// Iteration for Multiplicative Inverses Modulo Prime Powers"):
// k0 = -(2 - m0) * prod_i (t_i + 1), t doubling each round.
func montgomeryRho(m0 Digit) Digit {
	k0 := 2 - m0
	t := m0 - 1
	for i := 1; i < digitBits; i <<= 1 {
		t *= t
		k0 *= t + 1
	}
	return -k0
}

func (r *MontgomeryReducer) Setup(m *BigInt) error {
	if m.Sign() <= 0 {
		return errNegativeArgument("MontgomeryReducer.Setup", "modulus must be positive")
	}
	if m.IsEven() {
		return errOutOfRange("MontgomeryReducer.Setup", "Montgomery reduction requires an odd modulus")
	}
	r.m.Set(m)
	r.n = m.used
	r.rho = montgomeryRho(m.digits[0])

	// rMod = R mod m = base^n mod m, computed by doubling-and-
	// conditionally-subtracting (spec.md §4.6 companion routine).
	one := NewInt(1)
	acc := new(BigInt)
	acc.Set(one)
	for i := 0; i < r.n*digitBits; i++ {
		acc.Add(acc, acc)
		if compareMagnitude(acc, &r.m) >= 0 {
			_ = subMag(acc, acc, &r.m)
		}
	}
	r.rMod.Set(acc)
	return nil
}

func (r *MontgomeryReducer) Modulus() *BigInt { return &r.m }

// Reduce performs Montgomery reduction of x (0 <= x < m*R) in place,
// per spec.md §4.6's digit-at-a-time algorithm.
func (r *MontgomeryReducer) Reduce(x *BigInt) error {
	_ = x.grow(r.n*2 + 1)
	for i := x.used; i < r.n*2+1; i++ {
		x.digits[i] = 0
	}
	if x.used < r.n*2+1 {
		x.used = r.n*2 + 1
	}

	for i := 0; i < r.n; i++ {
		mu := Digit((word(x.digits[i]) * word(r.rho)) & uint64(digitMask))
		// x += mu * m * base^i, propagating carries past i+n.
		var carry word
		for j := 0; j < r.n; j++ {
			var mj Digit
			if j < r.m.used {
				mj = r.m.digits[j]
			}
			p := word(mu)*word(mj) + word(x.digits[i+j]) + carry
			x.digits[i+j] = Digit(p & uint64(digitMask))
			carry = p >> digitBits
		}
		k := i + r.n
		for carry != 0 {
			p := word(x.digits[k]) + carry
			x.digits[k] = Digit(p & uint64(digitMask))
			carry = p >> digitBits
			k++
		}
	}

	x.clamp()
	shifted := new(BigInt)
	_ = shifted.shiftRightDigits(x, r.n)
	x.Set(shifted)
	if compareMagnitude(x, &r.m) >= 0 {
		_ = subMag(x, x, &r.m)
	}
	x.sign = 1
	return nil
}

// ToResidue converts a plain residue x (0 <= x < m) into Montgomery
// form, x*R mod m.
func (r *MontgomeryReducer) ToResidue(z, x *BigInt) error {
	prod := new(BigInt)
	if err := prod.shiftLeftDigits(x, r.n); err != nil {
		return err
	}
	_, rem, err := DivMod(prod, &r.m)
	if err != nil {
		return err
	}
	z.Set(rem)
	return nil
}

// FromResidue converts a Montgomery-form value back to a plain
// residue by reducing it against 1.
func (r *MontgomeryReducer) FromResidue(z, x *BigInt) error {
	tmp := x.clone()
	if err := r.Reduce(tmp); err != nil {
		return err
	}
	z.Set(tmp)
	return nil
}

// MulMod computes the Montgomery product of a and b (both already in
// Montgomery form), i.e. a*b*R^-1 mod m, which is itself in
// Montgomery form.
func (r *MontgomeryReducer) MulMod(z, a, b *BigInt) error {
	prod := new(BigInt)
	_ = mulMag(prod, a, b, 0)
	if err := r.Reduce(prod); err != nil {
		return err
	}
	z.Set(prod)
	return nil
}
