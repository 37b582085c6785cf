package bignum

import (
	"math/big"
	"testing"
)

func TestSmallPrimesSanity(t *testing.T) {
	primes := SmallPrimes()
	if len(primes) != len(smallPrimes) {
		t.Fatalf("SmallPrimes() length = %d, want %d", len(primes), len(smallPrimes))
	}
	if primes[0].Int64() != 3 {
		t.Errorf("first small prime = %d, want 3", primes[0].Int64())
	}
	if primes[len(primes)-1].Int64() != 1613 {
		t.Errorf("last small prime = %d, want 1613", primes[len(primes)-1].Int64())
	}
	for _, p := range primes {
		if !p.IsOdd() {
			t.Errorf("small prime %s is even", p.String())
		}
	}
}

func TestIsProbablePrimeKnownValues(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 97, 1019, 7919, 104729}
	for _, p := range primes {
		ok, err := IsProbablePrime(NewInt(p), 0)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", p, err)
		}
		if !ok {
			t.Errorf("IsProbablePrime(%d) = false, want true", p)
		}
	}

	composites := []int64{1, 0, 4, 6, 9, 15, 21, 1001, 1024, 7921}
	for _, c := range composites {
		ok, err := IsProbablePrime(NewInt(c), 0)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", c, err)
		}
		if ok {
			t.Errorf("IsProbablePrime(%d) = true, want false", c)
		}
	}
}

func TestIsProbablePrimeEdgeCases(t *testing.T) {
	cases := []struct {
		n    int64
		want bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
	}
	for _, c := range cases {
		ok, err := IsProbablePrime(NewInt(c.n), 0)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", c.n, err)
		}
		if ok != c.want {
			t.Errorf("IsProbablePrime(%d) = %v, want %v", c.n, ok, c.want)
		}
	}
}

func TestIsProbablePrimeAgainstOracle(t *testing.T) {
	// Exhaustively cross-check a window of odd values against math/big's
	// ProbablyPrime, which is independently implemented.
	for n := int64(1021); n < 1200; n += 2 {
		ok, err := IsProbablePrime(NewInt(n), 0)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", n, err)
		}
		want := big.NewInt(n).ProbablyPrime(20)
		if ok != want {
			t.Errorf("IsProbablePrime(%d) = %v, want %v", n, ok, want)
		}
	}
}

func TestNextPrimeBasic(t *testing.T) {
	cases := []struct {
		n, want int64
	}{
		{0, 2},
		{1, 2},
		{2, 3},
		{7, 11},
		{14, 17},
		// 1021 is prime but ≡ 1 (mod 4); forcing the candidate to
		// ≡ 3 (mod 4) per spec.md §4.9 starts the search at 1023 and
		// skips past it, landing on 1031 instead.
		{1019, 1031},
	}
	for _, c := range cases {
		got, err := NextPrime(NewInt(c.n))
		if err != nil {
			t.Fatalf("NextPrime(%d): %v", c.n, err)
		}
		if got.Int64() != c.want {
			t.Errorf("NextPrime(%d) = %s, want %d", c.n, got.String(), c.want)
		}
	}
}

func TestNextPrimeScenario(t *testing.T) {
	n := fromBig(mustParseBig(t, "21267647932558653966460912964485513216"))
	want := fromBig(mustParseBig(t, "21267647932558653966460912964485513283"))
	got, err := NextPrime(n)
	if err != nil {
		t.Fatalf("NextPrime: %v", err)
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("NextPrime(%s) = %s, want %s", n.String(), got.String(), want.String())
	}
}
