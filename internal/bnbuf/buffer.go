// Package bnbuf implements the binary-buffer <-> integer marshalling
// boundary spec.md §6 specifies: big-endian, unsigned-magnitude only.
// Sign is carried out of band (FromBuffer always produces a
// non-negative value); callers needing a signed encoding compose this
// with their own sign byte, as internal/bnbase64 does.
package bnbuf

import (
	"github.com/coldiron/bignum"
)

// ErrBufferTooSmall is returned by ToBuffer when the destination
// cannot hold ceil(bits/8) bytes of magnitude.
type ErrBufferTooSmall struct {
	Need, Have int
}

func (e *ErrBufferTooSmall) Error() string {
	return "bnbuf: buffer too small: need at least 1 byte, or " +
		"enough to hold the magnitude without truncation"
}

// ByteLen returns the number of bytes needed to hold x's magnitude
// (ceil(bits/8), at least 1 for a zero value).
func ByteLen(x *bignum.BigInt) int {
	n := (x.BitLen() + 7) / 8
	if n == 0 {
		n = 1
	}
	return n
}

// ToBuffer writes x's magnitude, big-endian, right-aligned into buf.
// It errors with ErrBufferTooSmall if buf cannot hold ceil(bits/8)
// bytes; bytes left of the magnitude (if buf is larger) are zeroed.
func ToBuffer(x *bignum.BigInt, buf []byte) error {
	need := ByteLen(x)
	if len(buf) < need {
		return &ErrBufferTooSmall{Need: need, Have: len(buf)}
	}
	for i := range buf {
		buf[i] = 0
	}
	// Walk the magnitude's bits from the low end up, packing 8 at a
	// time into the right-aligned tail of buf.
	pos := len(buf) - 1
	bitLen := x.BitLen()
	for i := 0; i < bitLen; i += 8 {
		var b byte
		for bit := 0; bit < 8 && i+bit < bitLen; bit++ {
			if x.GetBit(i+bit) == 1 {
				b |= 1 << uint(bit)
			}
		}
		buf[pos] = b
		pos--
	}
	return nil
}

// FromBuffer sets z to the non-negative integer whose big-endian
// magnitude is buf, per spec.md §6's from_binary contract.
func FromBuffer(z *bignum.BigInt, buf []byte) {
	z.SetInt64(0)
	for _, b := range buf {
		z.Lsh(z, 8)
		if b != 0 {
			z.Add(z, bignum.NewUint(uint64(b)))
		}
	}
}
