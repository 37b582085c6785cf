package bignum

import (
	"math/rand"
	"testing"
)

// modReference returns a mod m in [0, m), using DivMod as the oracle.
func modReference(t *testing.T, a, m *BigInt) *BigInt {
	t.Helper()
	_, r, err := DivMod(a, m)
	if err != nil {
		t.Fatalf("DivMod: %v", err)
	}
	if r.IsNegative() {
		r.Add(r, m)
	}
	return r
}

func exerciseReducer(t *testing.T, name string, r Reducer, m *BigInt, rnd *rand.Rand) {
	t.Helper()
	for i := 0; i < 20; i++ {
		a := modReference(t, randBig(rnd, m.CountBits()+64), m)

		residue, err := toResidueOf(r, a)
		if err != nil {
			t.Fatalf("%s ToResidue: %v", name, err)
		}
		back := new(BigInt)
		if err := r.FromResidue(back, residue); err != nil {
			t.Fatalf("%s FromResidue: %v", name, err)
		}
		if back.Cmp(a) != 0 {
			t.Fatalf("%s residue round trip: got %s want %s", name, back.String(), a.String())
		}
	}

	a := modReference(t, randBig(rnd, m.CountBits()+32), m)
	b := modReference(t, randBig(rnd, m.CountBits()+32), m)

	ra, err := toResidueOf(r, a)
	if err != nil {
		t.Fatalf("%s ToResidue(a): %v", name, err)
	}
	rb, err := toResidueOf(r, b)
	if err != nil {
		t.Fatalf("%s ToResidue(b): %v", name, err)
	}
	prodResidue := new(BigInt)
	if err := r.MulMod(prodResidue, ra, rb); err != nil {
		t.Fatalf("%s MulMod: %v", name, err)
	}
	got := new(BigInt)
	if err := r.FromResidue(got, prodResidue); err != nil {
		t.Fatalf("%s FromResidue(product): %v", name, err)
	}

	want := new(BigInt).Mul(a, b)
	want = modReference(t, want, m)
	if got.Cmp(want) != 0 {
		t.Fatalf("%s a*b mod m: got %s want %s", name, got.String(), want.String())
	}
}

func toResidueOf(r Reducer, a *BigInt) (*BigInt, error) {
	z := new(BigInt)
	if err := r.ToResidue(z, a); err != nil {
		return nil, err
	}
	return z, nil
}

func TestBarrettReducer(t *testing.T) {
	rnd := rand.New(rand.NewSource(10))
	m := randBig(rnd, 256)
	m.SetBit(0, 0) // force even, so ChooseReducer would not pick Montgomery
	m.SetBit(255, 1)
	r := new(BarrettReducer)
	if err := r.Setup(m); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	exerciseReducer(t, "barrett", r, m, rnd)
}

func TestMontgomeryReducer(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	m := randOddBig(rnd, 256)
	r := new(MontgomeryReducer)
	if err := r.Setup(m); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	exerciseReducer(t, "montgomery", r, m, rnd)
}

func TestMontgomeryReducerRejectsEvenModulus(t *testing.T) {
	r := new(MontgomeryReducer)
	if err := r.Setup(NewInt(16)); err == nil {
		t.Fatalf("Setup should reject an even modulus")
	}
}

func TestDiminishedRadixReducer(t *testing.T) {
	rnd := rand.New(rand.NewSource(12))
	m := NewUint(uint64(digitMask)) // 2^32 - 1, qualifies as a DR modulus
	r := new(DiminishedRadixReducer)
	if err := r.Setup(m); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	exerciseReducer(t, "dr", r, m, rnd)
}

func TestChooseReducerDispatch(t *testing.T) {
	drCase := NewUint(uint64(digitMask))
	r, err := ChooseReducer(drCase)
	if err != nil {
		t.Fatalf("ChooseReducer(dr case): %v", err)
	}
	if _, ok := r.(*DiminishedRadixReducer); !ok {
		t.Errorf("expected DiminishedRadixReducer for %s, got %T", drCase.String(), r)
	}

	odd := NewInt(1000003)
	r, err = ChooseReducer(odd)
	if err != nil {
		t.Fatalf("ChooseReducer(odd): %v", err)
	}
	if _, ok := r.(*MontgomeryReducer); !ok {
		t.Errorf("expected MontgomeryReducer for odd %s, got %T", odd.String(), r)
	}

	even := NewInt(1000000)
	r, err = ChooseReducer(even)
	if err != nil {
		t.Fatalf("ChooseReducer(even): %v", err)
	}
	if _, ok := r.(*BarrettReducer); !ok {
		t.Errorf("expected BarrettReducer for even %s, got %T", even.String(), r)
	}

	if _, err := ChooseReducer(NewInt(-5)); err == nil {
		t.Errorf("ChooseReducer should reject a non-positive modulus")
	}
}
