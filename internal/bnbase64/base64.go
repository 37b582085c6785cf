// Package bnbase64 implements the non-standard base-64 convention
// spec.md §6 specifies: a one-byte sign prefix (0x00 positive, 0x01
// negative) prepended to the big-endian magnitude, the whole thing
// then encoded with the standard A-Za-z0-9+/ alphabet and '=' padding.
package bnbase64

import (
	"encoding/base64"

	"github.com/coldiron/bignum"
	"github.com/coldiron/bignum/internal/bnbuf"
)

// Encode returns x's sign-prefixed big-endian magnitude, base-64
// encoded with standard padding.
func Encode(x *bignum.BigInt) string {
	mag := x.Clone()
	mag.Abs(mag)
	nBytes := bnbuf.ByteLen(mag)
	buf := make([]byte, nBytes+1)
	if x.IsNegative() {
		buf[0] = 0x01
	}
	if err := bnbuf.ToBuffer(mag, buf[1:]); err != nil {
		panic(err) // buf is sized exactly for mag's magnitude; cannot be too small.
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// Decode parses the inverse of Encode. The exact decoded byte length
// is derived from the input length and its '=' padding count up
// front (spec.md §9's documented "padding via loop-exit state" defect
// does not reproduce here: no loop inspects trailing bytes to decide
// when to stop).
func Decode(s string) (*bignum.BigInt, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, &DecodeError{Msg: "decoded input is empty, missing sign byte"}
	}
	sign := raw[0]
	if sign != 0x00 && sign != 0x01 {
		return nil, &DecodeError{Msg: "invalid sign byte"}
	}
	x := new(bignum.BigInt)
	bnbuf.FromBuffer(x, raw[1:])
	if sign == 0x01 && !x.IsZero() {
		x.Neg(x)
	}
	return x, nil
}

// DecodeError reports a malformed sign-prefixed base-64 payload.
type DecodeError struct {
	Msg string
}

func (e *DecodeError) Error() string { return "bnbase64: " + e.Msg }
