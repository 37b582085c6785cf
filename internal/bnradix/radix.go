// Package bnradix implements the textual I/O contract spec.md §6
// describes as external to the arithmetic core: radix 2..16 parsing
// and formatting with the standard 0-9A-F alphabet, plus an optional
// custom alphabet for any radix in [2, 256].
package bnradix

import (
	"strings"

	"github.com/coldiron/bignum"
)

const standardAlphabet = "0123456789ABCDEF"

// ParseError reports why a textual integer failed to parse.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return "bnradix: parse " + quote(e.Input) + " at byte " + itoa(e.Pos) + ": " + e.Msg
}

func quote(s string) string { return "\"" + s + "\"" }

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func digitValue(c byte, alphabet string) (int, bool) {
	upper := c
	if c >= 'a' && c <= 'z' {
		upper = c - ('a' - 'A')
	}
	for i := 0; i < len(alphabet); i++ {
		ac := alphabet[i]
		au := ac
		if ac >= 'a' && ac <= 'z' {
			au = ac - ('a' - 'A')
		}
		if au == upper {
			return i, true
		}
	}
	return 0, false
}

// Parse parses s as a signed integer in the given radix (2..16, the
// standard 0-9A-F alphabet, case-insensitive), per spec.md §6. An
// empty string is invalid; a single leading '-' denotes negative.
func Parse(s string, radix int) (*bignum.BigInt, error) {
	if radix < 2 || radix > 16 {
		return nil, &ParseError{Input: s, Pos: 0, Msg: "radix must be in [2, 16]"}
	}
	return ParseAlphabet(s, standardAlphabet[:radix])
}

// ParseAlphabet parses s using a caller-supplied alphabet, supporting
// any radix in [2, 256] via custom digit-to-character mappings, per
// spec.md §6's "optional custom alphabets" extension.
func ParseAlphabet(s string, alphabet string) (*bignum.BigInt, error) {
	if len(s) == 0 {
		return nil, &ParseError{Input: s, Pos: 0, Msg: "empty string is not a valid integer"}
	}
	radix := len(alphabet)
	neg := false
	i := 0
	if s[0] == '-' {
		neg = true
		i = 1
	} else if s[0] == '+' {
		i = 1
	}
	if i == len(s) {
		return nil, &ParseError{Input: s, Pos: i, Msg: "no digits after sign"}
	}

	// Accumulate magnitude only; the leading sign is applied exactly
	// once after the full magnitude is parsed (spec.md §9's
	// documented from_string sign/magnitude mixing defect does not
	// reproduce here: radix and sign never touch the same value).
	result := bignum.NewInt(0)
	radixBig := bignum.NewInt(int64(radix))
	for ; i < len(s); i++ {
		d, ok := digitValue(s[i], alphabet)
		if !ok {
			return nil, &ParseError{Input: s, Pos: i, Msg: "invalid character for this radix/alphabet"}
		}
		result.Mul(result, radixBig)
		result.Add(result, bignum.NewInt(int64(d)))
	}
	if neg && !result.IsZero() {
		result.Neg(result)
	}
	return result, nil
}

// Format renders x in the given radix (2..16), uppercase digits, a
// leading '-' for negative values, and "0" for zero with no sign.
func Format(x *bignum.BigInt, radix int) (string, error) {
	if radix < 2 || radix > 16 {
		return "", &ParseError{Msg: "radix must be in [2, 16]"}
	}
	return FormatAlphabet(x, standardAlphabet[:radix])
}

// FormatAlphabet renders x using a caller-supplied alphabet (radix ==
// len(alphabet), up to 256).
func FormatAlphabet(x *bignum.BigInt, alphabet string) (string, error) {
	radix := len(alphabet)
	if x.IsZero() {
		return string(alphabet[0]), nil
	}

	mag := x.Clone()
	mag.Abs(mag)
	radixBig := bignum.NewInt(int64(radix))

	var digits []byte
	for !mag.IsZero() {
		q, r, err := bignum.DivMod(mag, radixBig)
		if err != nil {
			return "", err
		}
		digits = append(digits, alphabet[r.Uint64()])
		mag = q
	}
	// digits were accumulated least-significant first; reverse.
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}

	var sb strings.Builder
	if x.IsNegative() {
		sb.WriteByte('-')
	}
	sb.Write(digits)
	return sb.String(), nil
}
