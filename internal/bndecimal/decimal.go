// Package bndecimal implements a fixed-point decimal built on top of
// bignum.BigInt, in the "coefficient * 10^exponent" style of the
// decimal libraries in the wider ecosystem (cockroachdb/apd,
// govalues/decimal, db47h/decimal): an arbitrary-precision integer
// coefficient paired with a base-10 exponent, rather than a
// fixed-width mantissa.
package bndecimal

import (
	"strings"

	"github.com/coldiron/bignum"
	"github.com/coldiron/bignum/internal/bnradix"
)

// Decimal is coefficient * 10^exponent, e.g. coefficient=12345,
// exponent=-2 represents 123.45.
type Decimal struct {
	Coefficient *bignum.BigInt
	Exponent    int
}

// New returns a Decimal equal to coefficient * 10^exponent.
func New(coefficient *bignum.BigInt, exponent int) Decimal {
	return Decimal{Coefficient: coefficient, Exponent: exponent}
}

// NewFromInt64 returns an integral Decimal (exponent 0).
func NewFromInt64(v int64) Decimal {
	return Decimal{Coefficient: bignum.NewInt(v), Exponent: 0}
}

func pow10(n int) *bignum.BigInt {
	ten := bignum.NewInt(10)
	result := bignum.NewInt(1)
	for i := 0; i < n; i++ {
		result.Mul(result, ten)
	}
	return result
}

// rescale returns a's coefficient expressed at exponent target
// (target must be <= a.Exponent; rescaling to a coarser exponent
// would lose precision and is not this helper's job).
func rescale(a Decimal, target int) *bignum.BigInt {
	if a.Exponent == target {
		return a.Coefficient.Clone()
	}
	diff := a.Exponent - target
	scaled := new(bignum.BigInt)
	scaled.Mul(a.Coefficient, pow10(diff))
	return scaled
}

// Add returns a + b, at the finer (more negative) of the two
// exponents.
func Add(a, b Decimal) Decimal {
	exp := a.Exponent
	if b.Exponent < exp {
		exp = b.Exponent
	}
	ca := rescale(a, exp)
	cb := rescale(b, exp)
	sum := new(bignum.BigInt)
	sum.Add(ca, cb)
	return Decimal{Coefficient: sum, Exponent: exp}
}

// Sub returns a - b, at the finer of the two exponents.
func Sub(a, b Decimal) Decimal {
	exp := a.Exponent
	if b.Exponent < exp {
		exp = b.Exponent
	}
	ca := rescale(a, exp)
	cb := rescale(b, exp)
	diff := new(bignum.BigInt)
	diff.Sub(ca, cb)
	return Decimal{Coefficient: diff, Exponent: exp}
}

// Mul returns a * b exactly: coefficient product, exponents summed.
func Mul(a, b Decimal) Decimal {
	prod := new(bignum.BigInt)
	prod.Mul(a.Coefficient, b.Coefficient)
	return Decimal{Coefficient: prod, Exponent: a.Exponent + b.Exponent}
}

// QuoExact returns a / b rounded to the given number of fractional
// digits after the decimal point (scale >= 0), truncating any
// remainder (round-toward-zero, matching bignum.DivMod's own
// truncating convention).
func QuoExact(a, b Decimal, scale int) (Decimal, error) {
	targetExp := -scale
	// Scale the dividend up so the quotient lands at targetExp:
	// (a.Coefficient * 10^shift) / b.Coefficient, at exponent
	// a.Exponent - shift + b.Exponent's contribution removed via the
	// division itself.
	shift := a.Exponent - b.Exponent - targetExp
	num := a.Coefficient.Clone()
	if shift > 0 {
		num = new(bignum.BigInt)
		num.Mul(a.Coefficient, pow10(shift))
	}
	den := b.Coefficient
	if shift < 0 {
		den = new(bignum.BigInt)
		den.Mul(b.Coefficient, pow10(-shift))
	}
	q, _, err := bignum.DivMod(num, den)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{Coefficient: q, Exponent: targetExp}, nil
}

// String renders the decimal in plain (non-exponential) notation.
func (d Decimal) String() string {
	mag := d.Coefficient.Clone()
	mag.Abs(mag)
	digits, err := bnradix.Format(mag, 10)
	if err != nil {
		digits = "0"
	}

	neg := d.Coefficient.IsNegative()
	if d.Exponent >= 0 {
		var sb strings.Builder
		if neg {
			sb.WriteByte('-')
		}
		sb.WriteString(digits)
		sb.WriteString(strings.Repeat("0", d.Exponent))
		return sb.String()
	}

	fracDigits := -d.Exponent
	for len(digits) <= fracDigits {
		digits = "0" + digits
	}
	intPart := digits[:len(digits)-fracDigits]
	fracPart := digits[len(digits)-fracDigits:]

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(intPart)
	sb.WriteByte('.')
	sb.WriteString(fracPart)
	return sb.String()
}
