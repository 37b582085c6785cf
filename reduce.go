package bignum

// Reducer is the capability spec.md §9 asks for in place of a
// function-pointer reducer selection inside exponentiation: an object
// supplying Setup (computes a per-modulus constant) and Reduce
// (contracts a value into [0, m)). Implementations: *BarrettReducer,
// *MontgomeryReducer, *DiminishedRadixReducer.
type Reducer interface {
	// Setup precomputes this reducer's per-modulus constant for m.
	Setup(m *BigInt) error
	// Reduce contracts x (0 <= x < m^2, or 0 <= x < m*R for
	// Montgomery) to x mod m in place; Montgomery yields x*R^-1 mod m.
	Reduce(x *BigInt) error
	// Modulus returns the modulus this reducer was set up for.
	Modulus() *BigInt
	// ToResidue converts x (0 <= x < m) into this reducer's internal
	// representation (identity for Barrett/DR, Montgomery form for
	// Montgomery).
	ToResidue(z, x *BigInt) error
	// FromResidue converts an internal-representation value back to
	// a plain residue mod m.
	FromResidue(z, x *BigInt) error
	// MulMod computes z = (a*b) reduced mod m, where a and b are
	// already in this reducer's representation.
	MulMod(z, a, b *BigInt) error
}

// isDiminishedRadixCandidate reports whether m is of the form 2^p - d
// for small d, i.e. at least half its digits equal base-1, per
// spec.md §4.6.
func isDiminishedRadixCandidate(m *BigInt) bool {
	if m.used == 0 {
		return false
	}
	count := 0
	for i := 0; i < m.used; i++ {
		if m.digits[i] == digitMask {
			count++
		}
	}
	return count*2 >= m.used
}

// ChooseReducer implements the pow_mod dispatcher of spec.md §4.7:
// diminished-radix when m qualifies, else Montgomery for odd m, else
// Barrett.
func ChooseReducer(m *BigInt) (Reducer, error) {
	if m.Sign() <= 0 {
		return nil, errNegativeArgument("ChooseReducer", "modulus must be positive")
	}
	var r Reducer
	switch {
	case isDiminishedRadixCandidate(m):
		r = new(DiminishedRadixReducer)
	case m.IsOdd():
		r = new(MontgomeryReducer)
	default:
		r = new(BarrettReducer)
	}
	if err := r.Setup(m); err != nil {
		return nil, err
	}
	return r, nil
}
