package bignum

import (
	"math/rand"
	"testing"
)

func TestPowModCRTKnownKey(t *testing.T) {
	// p=61, q=53, n=3233, e=17, d=2753 (textbook RSA example).
	p := NewInt(61)
	q := NewInt(53)
	e := NewInt(17)

	params, err := NewCRTParams(p, q, e)
	if err != nil {
		t.Fatalf("NewCRTParams: %v", err)
	}

	x := NewInt(65)
	n := new(BigInt).Mul(p, q)
	c, err := PowMod(x, e, n)
	if err != nil {
		t.Fatalf("PowMod (encrypt): %v", err)
	}

	got, err := PowModCRT(c, params)
	if err != nil {
		t.Fatalf("PowModCRT: %v", err)
	}
	if got.Cmp(x) != 0 {
		t.Fatalf("PowModCRT round trip = %s, want %s", got.String(), x.String())
	}
}

func TestPowModCRTAgainstDirectExponentiation(t *testing.T) {
	rnd := rand.New(rand.NewSource(40))
	for i := 0; i < 5; i++ {
		p := randomPrimeForTest(t, rnd, 80)
		q := randomPrimeForTest(t, rnd, 80)
		for p.Cmp(q) == 0 {
			q = randomPrimeForTest(t, rnd, 80)
		}
		e := NewInt(65537)

		params, err := NewCRTParams(p, q, e)
		if err != nil {
			t.Fatalf("NewCRTParams: %v", err)
		}

		n := new(BigInt).Mul(p, q)
		x := NewInt(9999)
		c, err := PowMod(x, e, n)
		if err != nil {
			t.Fatalf("PowMod(encrypt): %v", err)
		}

		d, err := ModInverse(e, Lcm(new(BigInt).SubDigit(p, 1), new(BigInt).SubDigit(q, 1)))
		if err != nil {
			t.Fatalf("ModInverse(d): %v", err)
		}
		direct, err := PowMod(c, d, n)
		if err != nil {
			t.Fatalf("PowMod(direct decrypt): %v", err)
		}

		got, err := PowModCRT(c, params)
		if err != nil {
			t.Fatalf("PowModCRT: %v", err)
		}
		if got.Cmp(direct) != 0 {
			t.Fatalf("PowModCRT disagrees with direct exponentiation: %s vs %s", got.String(), direct.String())
		}
		if got.Cmp(x) != 0 {
			t.Fatalf("RSA-CRT round trip = %s, want %s", got.String(), x.String())
		}
	}
}

func randomPrimeForTest(t *testing.T, rnd *rand.Rand, bits int) *BigInt {
	t.Helper()
	cand := randBig(rnd, bits)
	if cand.IsEven() {
		cand.AddDigit(cand, 1)
	}
	p, err := NextPrime(cand)
	if err != nil {
		t.Fatalf("NextPrime: %v", err)
	}
	return p
}
