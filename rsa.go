package bignum

// CRTParams bundles the precomputed values an RSA private key in CRT
// form carries, per spec.md §4.11: the two prime factors, the
// exponents reduced modulo (p-1) and (q-1), and q's inverse mod p.
type CRTParams struct {
	P, Q   *BigInt
	DP, DQ *BigInt
	QInv   *BigInt
}

// PowModCRT computes c^d mod (p*q) using the Chinese Remainder
// Theorem recombination of spec.md §4.11: two short modular
// exponentiations modulo the individual primes, recombined via
// h = (m1 - m2) * qInv mod p, result = m2 + h*q. This is
// asymptotically about 4x faster than a single full-modulus
// exponentiation for equal-size p, q.
func PowModCRT(c *BigInt, params *CRTParams) (*BigInt, error) {
	p, q := params.P, params.Q

	m1, err := PowMod(c, params.DP, p)
	if err != nil {
		return nil, err
	}
	m2, err := PowMod(c, params.DQ, q)
	if err != nil {
		return nil, err
	}

	h := new(BigInt)
	h.Sub(m1, m2)
	_, h, err = DivMod(h, p)
	if err != nil {
		return nil, err
	}
	if h.IsNegative() {
		h.Add(h, p)
	}
	h.Mul(h, params.QInv)
	_, h, err = DivMod(h, p)
	if err != nil {
		return nil, err
	}
	if h.IsNegative() {
		h.Add(h, p)
	}

	result := new(BigInt)
	result.Mul(h, q)
	result.Add(result, m2)
	return result, nil
}

// NewCRTParams derives dp, dq, and qInv from the public exponent e
// and the two primes p, q, per spec.md §4.11's key-setup companion
// to PowModCRT: dp = e^-1 mod (p-1), dq = e^-1 mod (q-1),
// qInv = q^-1 mod p.
func NewCRTParams(p, q, e *BigInt) (*CRTParams, error) {
	one := NewInt(1)
	pMinus1 := new(BigInt)
	pMinus1.Sub(p, one)
	qMinus1 := new(BigInt)
	qMinus1.Sub(q, one)

	dp, err := ModInverse(e, pMinus1)
	if err != nil {
		return nil, err
	}
	dq, err := ModInverse(e, qMinus1)
	if err != nil {
		return nil, err
	}
	qInv, err := ModInverse(q, p)
	if err != nil {
		return nil, err
	}

	return &CRTParams{P: p, Q: q, DP: dp, DQ: dq, QInv: qInv}, nil
}
