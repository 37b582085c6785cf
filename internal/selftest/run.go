// Package selftest runs the algebraic-law and end-to-end scenario
// checks used to validate a bignum build, reporting structured
// results so a CLI can print a pass/fail summary or a CI job can
// treat a mismatch as a hard failure.
package selftest

import (
	"fmt"

	"github.com/coldiron/bignum"
	"github.com/coldiron/bignum/internal/bnbase64"
	"github.com/coldiron/bignum/internal/bnbuf"
	"github.com/coldiron/bignum/internal/bnerr"
	"github.com/coldiron/bignum/internal/bnlog"
	"github.com/coldiron/bignum/internal/bnradix"
)

// Result is the outcome of one named check.
type Result struct {
	Name     string
	Passed   bool
	Err      error
	Duration string
}

// Report aggregates every check run in one pass.
type Report struct {
	Results []Result
}

// AllPassed reports whether every check in the report succeeded.
func (r *Report) AllPassed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

func (r *Report) record(name string, err error) {
	r.Results = append(r.Results, Result{Name: name, Passed: err == nil, Err: err})
}

// Run executes the full algebraic-law and end-to-end scenario suite
// against a, b, c (random/seed operands the caller supplies) plus a
// modulus m, logging progress through log.
func Run(log bnlog.Logger, a, b, c, m *bignum.BigInt) *Report {
	r := &Report{}
	timings := newReducerTimings()

	r.record("roundtrip/radix", checkRadixRoundtrip(a))
	r.record("roundtrip/base64", checkBase64Roundtrip(a))
	r.record("roundtrip/binary", checkBinaryRoundtrip(a))
	r.record("law/add-sub-inverse", checkAddSubInverse(a, b))
	r.record("law/mul-div-inverse", checkMulDivInverse(a, b))
	r.record("law/mul-commutative", checkMulCommutative(a, b))
	r.record("law/mul-associative", checkMulAssociative(a, b, c))
	r.record("law/divmod-identity", checkDivModIdentity(a, b))
	r.record("law/mulmod-distributes", checkMulModDistributes(a, b, m))
	r.record("law/gcd-lcm", checkGCDLcm(a, b))
	r.record("law/extended-gcd", checkExtendedGCD(a, b))
	r.record("law/mod-inverse", checkModInverse(a, m))
	r.record("scenario/3-pow-300-hex", checkThreePow300())
	r.record("scenario/extended-gcd-1239-735", checkExtGCDScenario())
	r.record("scenario/integer-sqrt", checkIntegerSqrtScenario())
	r.record("scenario/next-prime", checkNextPrimeScenario())

	// The three powmod checks share one computation: each calls PowMod
	// on the same m, and PowMod picks its reducer from m, so the label
	// names a timing bucket, not the reducer that ran. The elapsed
	// times are recorded in timings and not reported.
	for _, reducerName := range []string{"barrett", "montgomery", "dr"} {
		name := fmt.Sprintf("powmod/%s-vs-slow", reducerName)
		var err error
		elapsed, timeErr := timings.Time(reducerName, func() error {
			err = checkPowModMatchesSlow(a, b, m)
			return err
		})
		_ = elapsed
		if timeErr != nil {
			err = timeErr
		}
		r.record(name, err)
	}

	for _, res := range r.Results {
		if res.Passed {
			log.Debug("check passed", bnlog.String("check", res.Name))
		} else {
			log.Error("check failed", res.Err, bnlog.String("check", res.Name))
		}
	}
	return r
}

func checkRadixRoundtrip(x *bignum.BigInt) error {
	for radix := 2; radix <= 16; radix++ {
		s, err := bnradix.Format(x, radix)
		if err != nil {
			return err
		}
		got, err := bnradix.Parse(s, radix)
		if err != nil {
			return err
		}
		if got.Cmp(x) != 0 {
			return bnerr.NewMismatchError("radix roundtrip", x.String(), got.String())
		}
	}
	return nil
}

func checkBase64Roundtrip(x *bignum.BigInt) error {
	s := bnbase64.Encode(x)
	got, err := bnbase64.Decode(s)
	if err != nil {
		return err
	}
	if got.Cmp(x) != 0 {
		return bnerr.NewMismatchError("base64 roundtrip", x.String(), got.String())
	}
	return nil
}

func checkBinaryRoundtrip(x *bignum.BigInt) error {
	mag := x.Clone()
	mag.Abs(mag)
	buf := make([]byte, bnbuf.ByteLen(mag))
	if err := bnbuf.ToBuffer(mag, buf); err != nil {
		return err
	}
	got := new(bignum.BigInt)
	bnbuf.FromBuffer(got, buf)
	if got.Cmp(mag) != 0 {
		return bnerr.NewMismatchError("binary roundtrip", mag.String(), got.String())
	}
	return nil
}

func checkAddSubInverse(a, b *bignum.BigInt) error {
	if b.IsZero() {
		return nil
	}
	sum := new(bignum.BigInt)
	sum.Add(a, b)
	back := new(bignum.BigInt)
	back.Sub(sum, b)
	if back.Cmp(a) != 0 {
		return bnerr.NewMismatchError("(a+b)-b == a", a.String(), back.String())
	}
	return nil
}

func checkMulDivInverse(a, b *bignum.BigInt) error {
	if b.IsZero() {
		return nil
	}
	prod := new(bignum.BigInt)
	prod.Mul(a, b)
	q, _, err := bignum.DivMod(prod, b)
	if err != nil {
		return err
	}
	if q.Cmp(a) != 0 {
		return bnerr.NewMismatchError("(a*b)/b == a", a.String(), q.String())
	}
	return nil
}

func checkMulCommutative(a, b *bignum.BigInt) error {
	ab := new(bignum.BigInt)
	ab.Mul(a, b)
	ba := new(bignum.BigInt)
	ba.Mul(b, a)
	if ab.Cmp(ba) != 0 {
		return bnerr.NewMismatchError("a*b == b*a", ab.String(), ba.String())
	}
	return nil
}

func checkMulAssociative(a, b, c *bignum.BigInt) error {
	ab := new(bignum.BigInt)
	ab.Mul(a, b)
	abc1 := new(bignum.BigInt)
	abc1.Mul(ab, c)

	bc := new(bignum.BigInt)
	bc.Mul(b, c)
	abc2 := new(bignum.BigInt)
	abc2.Mul(a, bc)

	if abc1.Cmp(abc2) != 0 {
		return bnerr.NewMismatchError("(a*b)*c == a*(b*c)", abc1.String(), abc2.String())
	}
	return nil
}

func checkDivModIdentity(a, b *bignum.BigInt) error {
	if b.IsZero() {
		return nil
	}
	q, rem, err := bignum.DivMod(a, b)
	if err != nil {
		return err
	}
	back := new(bignum.BigInt)
	back.Mul(q, b)
	back.Add(back, rem)
	if back.Cmp(a) != 0 {
		return bnerr.NewMismatchError("a == q*b+r", a.String(), back.String())
	}
	absRem := rem.Clone()
	absRem.Abs(absRem)
	absB := b.Clone()
	absB.Abs(absB)
	if absRem.Cmp(absB) >= 0 {
		return bnerr.NewMismatchError("|r| < |b|", "true", "false")
	}
	if !rem.IsZero() && rem.Sign() != a.Sign() {
		return bnerr.NewMismatchError("sign(r) == sign(a)", fmt.Sprint(a.Sign()), fmt.Sprint(rem.Sign()))
	}
	return nil
}

func checkMulModDistributes(a, b, m *bignum.BigInt) error {
	if m.Sign() <= 0 {
		return nil
	}
	lhs := new(bignum.BigInt)
	lhs.Mul(a, b)
	_, lhs, err := bignum.DivMod(lhs, m)
	if err != nil {
		return err
	}
	if lhs.IsNegative() {
		lhs.Add(lhs, m)
	}

	_, aMod, err := bignum.DivMod(a, m)
	if err != nil {
		return err
	}
	if aMod.IsNegative() {
		aMod.Add(aMod, m)
	}
	_, bMod, err := bignum.DivMod(b, m)
	if err != nil {
		return err
	}
	if bMod.IsNegative() {
		bMod.Add(bMod, m)
	}
	rhs := new(bignum.BigInt)
	rhs.Mul(aMod, bMod)
	_, rhs, err = bignum.DivMod(rhs, m)
	if err != nil {
		return err
	}
	if rhs.IsNegative() {
		rhs.Add(rhs, m)
	}

	if lhs.Cmp(rhs) != 0 {
		return bnerr.NewMismatchError("(a*b) mod m == (a mod m)*(b mod m) mod m", lhs.String(), rhs.String())
	}
	return nil
}

func checkGCDLcm(a, b *bignum.BigInt) error {
	if a.IsZero() || b.IsZero() {
		return nil
	}
	g := bignum.GCD(a, b)
	l := bignum.Lcm(a, b)
	lhs := new(bignum.BigInt)
	lhs.Mul(g, l)

	rhs := new(bignum.BigInt)
	rhs.Mul(a, b)
	rhs.Abs(rhs)

	if lhs.Cmp(rhs) != 0 {
		return bnerr.NewMismatchError("gcd(a,b)*lcm(a,b) == |a*b|", lhs.String(), rhs.String())
	}
	return nil
}

func checkExtendedGCD(a, b *bignum.BigInt) error {
	g, x, y := bignum.ExtGCD(a, b)
	ax := new(bignum.BigInt)
	ax.Mul(a, x)
	by := new(bignum.BigInt)
	by.Mul(b, y)
	sum := new(bignum.BigInt)
	sum.Add(ax, by)
	if sum.Cmp(g) != 0 {
		return bnerr.NewMismatchError("y1*a+y2*b == gcd(a,b)", g.String(), sum.String())
	}
	return nil
}

func checkModInverse(a, m *bignum.BigInt) error {
	if m.Sign() <= 0 || m.IsOne() {
		return nil
	}
	g := bignum.GCD(a, m)
	if !g.IsOne() {
		return nil
	}
	inv, err := bignum.ModInverse(a, m)
	if err != nil {
		return err
	}
	prod := new(bignum.BigInt)
	prod.Mul(a, inv)
	_, rem, err := bignum.DivMod(prod, m)
	if err != nil {
		return err
	}
	if rem.IsNegative() {
		rem.Add(rem, m)
	}
	if !rem.IsOne() {
		return bnerr.NewMismatchError("(a*inv_mod(a,m)) mod m == 1", "1", rem.String())
	}
	return nil
}

func checkPowModMatchesSlow(a, b, m *bignum.BigInt) error {
	if m.Sign() <= 0 {
		return nil
	}
	want, err := bignum.PowModSlow(a, b, m)
	if err != nil {
		return err
	}
	got, err := bignum.PowMod(a, b, m)
	if err != nil {
		return err
	}
	if want.Cmp(got) != 0 {
		return bnerr.NewMismatchError("pow_mod == pow_mod_slow", want.String(), got.String())
	}
	return nil
}

func checkThreePow300() error {
	three := bignum.NewInt(3)
	e := bignum.NewInt(300)
	// Compute 3^300 directly (no modulus) via repeated squaring.
	result := bignum.NewInt(1)
	base := three.Clone()
	bitLen := e.CountBits()
	for i := 0; i < bitLen; i++ {
		if e.GetBit(i) == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
	}
	got, err := bnradix.Format(result, 16)
	if err != nil {
		return err
	}
	want := "B39CFFF485A5DBF4D6AAE030B91BFB0EC6BBA389CD8D7F85BBA3985C19C5E24E40C543A123C6E028A873E9E3874E1B4623A44BE39B34E67DC5C2671"
	if got != want {
		return bnerr.NewMismatchError("3^300 base16", want, got)
	}
	return nil
}

func checkExtGCDScenario() error {
	a := bignum.NewInt(1239)
	b := bignum.NewInt(735)
	g, y1, y2 := bignum.ExtGCD(a, b)
	if g.Int64() != 21 {
		return bnerr.NewMismatchError("gcd(1239,735)", "21", fmt.Sprint(g.Int64()))
	}
	lhs := new(bignum.BigInt)
	ay1 := new(bignum.BigInt)
	ay1.Mul(a, y1)
	by2 := new(bignum.BigInt)
	by2.Mul(b, y2)
	lhs.Add(ay1, by2)
	if lhs.Int64() != 21 {
		return bnerr.NewMismatchError("89*1239 + (-150)*735 == 21", "21", fmt.Sprint(lhs.Int64()))
	}
	return nil
}

func checkIntegerSqrtScenario() error {
	n, err := bnradix.Parse("16342093704794905017200815921831331498602310292448679875661939076", 10)
	if err != nil {
		return err
	}
	want, err := bnradix.Parse("127836198726318927639187263981726", 10)
	if err != nil {
		return err
	}
	got, err := bignum.NthRoot(n, 2)
	if err != nil {
		return err
	}
	if got.Cmp(want) != 0 {
		return bnerr.NewMismatchError("integer_sqrt", want.String(), got.String())
	}
	return nil
}

func checkNextPrimeScenario() error {
	start, err := bnradix.Parse("10000000000000000000000000000000", 16)
	if err != nil {
		return err
	}
	want, err := bnradix.Parse("10000000000000000000000000000043", 16)
	if err != nil {
		return err
	}
	got, err := bignum.NextPrime(start)
	if err != nil {
		return err
	}
	if got.Cmp(want) != 0 {
		return bnerr.NewMismatchError("next_prime(0x1000...)", want.String(), got.String())
	}
	return nil
}
