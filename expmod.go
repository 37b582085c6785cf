package bignum

// windowSize returns the k-ary sliding-window width for an exponent
// of the given bit length, per spec.md §4.7's table.
func windowSize(bitLen int) int {
	switch {
	case bitLen <= 7:
		return 2
	case bitLen <= 36:
		return 3
	case bitLen <= 140:
		return 4
	case bitLen <= 450:
		return 5
	case bitLen <= 1303:
		return 6
	case bitLen <= 3529:
		return 7
	default:
		return 8
	}
}

// slidingWindowExp computes base^exp, reduced by r, where base is
// already converted to r's residue representation (via
// r.ToResidue). The returned value is still in r's representation;
// callers call r.FromResidue to recover a plain integer.
func slidingWindowExp(r Reducer, baseResidue *BigInt, exp *BigInt) (*BigInt, error) {
	bitLen := exp.CountBits()
	if bitLen == 0 {
		one := NewInt(1)
		result := new(BigInt)
		if err := r.ToResidue(result, one); err != nil {
			return nil, err
		}
		return result, nil
	}

	w := windowSize(bitLen)
	tableSize := 1 << (w - 1)

	table := make([]*BigInt, 1<<w)
	table[1] = baseResidue.clone()

	top := new(BigInt)
	top.Set(baseResidue)
	for i := 0; i < w-1; i++ {
		next := new(BigInt)
		if err := r.MulMod(next, top, top); err != nil {
			return nil, err
		}
		top = next
	}
	table[tableSize] = top

	for x := tableSize + 1; x < 1<<w; x++ {
		next := new(BigInt)
		if err := r.MulMod(next, table[x-1], table[1]); err != nil {
			return nil, err
		}
		table[x] = next
	}

	one := NewInt(1)
	result := new(BigInt)
	if err := r.ToResidue(result, one); err != nil {
		return nil, err
	}

	const (
		modeLeadingZeros = 0
		modeSquareOnly   = 1
		modeWindow       = 2
	)

	mode := modeLeadingZeros
	var buf, bufBits int

	for i := bitLen - 1; i >= 0; i-- {
		bit := exp.GetBit(i)

		switch mode {
		case modeLeadingZeros:
			if bit == 0 {
				continue
			}
			mode = modeWindow
			buf = 1
			bufBits = 1
		case modeSquareOnly:
			if bit == 0 {
				sq := new(BigInt)
				if err := r.MulMod(sq, result, result); err != nil {
					return nil, err
				}
				result = sq
				continue
			}
			mode = modeWindow
			buf = 1
			bufBits = 1
		case modeWindow:
			buf = buf<<1 | int(bit)
			bufBits++
			if bufBits == w {
				for j := 0; j < w; j++ {
					sq := new(BigInt)
					if err := r.MulMod(sq, result, result); err != nil {
						return nil, err
					}
					result = sq
				}
				mul := new(BigInt)
				if err := r.MulMod(mul, result, table[buf]); err != nil {
					return nil, err
				}
				result = mul
				mode = modeSquareOnly
				buf, bufBits = 0, 0
			}
		}
	}

	// Drain any partial window: square once per remaining buffered
	// bit, multiplying in the partial table entry on the way.
	for bufBits > 0 {
		sq := new(BigInt)
		if err := r.MulMod(sq, result, result); err != nil {
			return nil, err
		}
		result = sq
		bufBits--
		if buf>>bufBits&1 == 1 {
			// Multiply by base (table[1]) for this single bit; this
			// degenerates the remaining window to bit-at-a-time,
			// which is correct albeit not maximally efficient.
			mul := new(BigInt)
			if err := r.MulMod(mul, result, table[1]); err != nil {
				return nil, err
			}
			result = mul
		}
	}

	return result, nil
}

// PowMod computes a^e mod m (spec.md §4.7's pow_mod dispatcher):
// diminished-radix when m qualifies, Montgomery for odd m, Barrett
// otherwise; negative exponents invert a first and recurse on |e|.
func PowMod(a, e, m *BigInt) (*BigInt, error) {
	if m.Sign() <= 0 {
		return nil, errNegativeArgument("PowMod", "modulus must be positive")
	}
	if e.Sign() < 0 {
		inv, err := ModInverse(a, m)
		if err != nil {
			return nil, err
		}
		absE := e.clone()
		absE.sign = 1
		return PowMod(inv, absE, m)
	}

	r, err := ChooseReducer(m)
	if err != nil {
		return nil, err
	}

	_, rem, err := DivMod(a, m)
	if err != nil {
		return nil, err
	}
	if rem.IsNegative() {
		rem.Add(rem, m)
	}

	residue := new(BigInt)
	if err := r.ToResidue(residue, rem); err != nil {
		return nil, err
	}

	resultResidue, err := slidingWindowExp(r, residue, e)
	if err != nil {
		return nil, err
	}

	result := new(BigInt)
	if err := r.FromResidue(result, resultResidue); err != nil {
		return nil, err
	}
	return result, nil
}

// PowModSlow computes a^e mod m via plain repeated squaring (no
// reducer capability, no sliding window) for use as a cross-check
// oracle in tests, per spec.md §8's testable property
// "pow_mod(a,e,m) == pow_mod_slow(a,e,m)".
func PowModSlow(a, e, m *BigInt) (*BigInt, error) {
	if m.Sign() <= 0 {
		return nil, errNegativeArgument("PowModSlow", "modulus must be positive")
	}
	if e.Sign() < 0 {
		inv, err := ModInverse(a, m)
		if err != nil {
			return nil, err
		}
		absE := e.clone()
		absE.sign = 1
		return PowModSlow(inv, absE, m)
	}

	result := NewInt(1)
	_, base, err := DivMod(a, m)
	if err != nil {
		return nil, err
	}
	if base.IsNegative() {
		base.Add(base, m)
	}

	bitLen := e.CountBits()
	for i := 0; i < bitLen; i++ {
		if e.GetBit(i) == 1 {
			result.Mul(result, base)
			if _, result, err = DivMod(result, m); err != nil {
				return nil, err
			}
			if result.IsNegative() {
				result.Add(result, m)
			}
		}
		sq := new(BigInt)
		sq.Mul(base, base)
		_, base, err = DivMod(sq, m)
		if err != nil {
			return nil, err
		}
		if base.IsNegative() {
			base.Add(base, m)
		}
	}
	return result, nil
}
