package bignum

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestDivModAgainstOracle(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	for i := 0; i < 200; i++ {
		a := randBig(rnd, 400)
		b := randBig(rnd, 200)
		if b.IsZero() {
			b.SetInt64(1)
		}
		if rnd.Intn(2) == 0 {
			a.sign = -1
		}
		if rnd.Intn(2) == 0 {
			b.sign = -1
		}

		q, r, err := DivMod(a, b)
		if err != nil {
			t.Fatalf("DivMod(%s,%s): %v", a.String(), b.String(), err)
		}

		// Reconstruct: a == q*b + r.
		back := new(BigInt).Mul(q, b)
		back.Add(back, r)
		if back.Cmp(a) != 0 {
			t.Fatalf("DivMod(%s,%s): q*b+r = %s, want %s", a.String(), b.String(), back.String(), a.String())
		}

		absR := new(BigInt).Abs(r)
		absB := new(BigInt).Abs(b)
		if !r.IsZero() && absR.Cmp(absB) >= 0 {
			t.Fatalf("|r| >= |b| for DivMod(%s,%s)", a.String(), b.String())
		}

		wantQ, wantR := new(big.Int), new(big.Int)
		wantQ.QuoRem(toBig(a), toBig(b), wantR)
		if toBig(q).Cmp(wantQ) != 0 || toBig(r).Cmp(wantR) != 0 {
			t.Fatalf("DivMod(%s,%s) = (%s,%s), want (%s,%s)", a.String(), b.String(), q.String(), r.String(), wantQ.String(), wantR.String())
		}
	}
}

func TestDivModByZero(t *testing.T) {
	_, _, err := DivMod(NewInt(1), NewInt(0))
	if err == nil {
		t.Fatalf("DivMod by zero should error")
	}
}

func TestDivModDigit(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		x := randBig(rnd, 300)
		if rnd.Intn(2) == 0 && !x.IsZero() {
			x.sign = -1
		}
		d := Digit(rnd.Intn(1<<20) + 1)
		q, r, err := DivModDigit(x, d)
		if err != nil {
			t.Fatalf("DivModDigit: %v", err)
		}
		back := new(BigInt).MulDigit(q, d)
		if x.IsNegative() {
			back.SubDigit(back, r)
		} else {
			back.AddDigit(back, r)
		}
		if back.Cmp(x) != 0 {
			t.Fatalf("DivModDigit(%s,%d): q*d+r = %s, want %s", x.String(), d, back.String(), x.String())
		}
	}
}

func TestDivModDigitByZero(t *testing.T) {
	_, _, err := DivModDigit(NewInt(1), 0)
	if err == nil {
		t.Fatalf("DivModDigit by zero should error")
	}
}

func TestEuclidMod(t *testing.T) {
	a := NewInt(-7)
	m := NewInt(5)
	z := new(BigInt)
	if _, err := z.EuclidMod(a, m); err != nil {
		t.Fatalf("EuclidMod: %v", err)
	}
	if z.Int64() != 3 {
		t.Errorf("EuclidMod(-7,5) = %d, want 3", z.Int64())
	}
}
