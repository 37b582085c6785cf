// Package bnrand implements the random-source boundary spec.md §6
// describes: a caller-supplied callback fn(ctx, out_buf, n_bytes) ->
// status, with a crypto/rand-backed Secure source and a
// non-cryptographic Insecure one that a caller picks explicitly.
// Insecure returns no warning status; it must never be used for key
// material.
package bnrand

import (
	"context"
	"crypto/rand"
	rand2 "math/rand/v2"

	"fortio.org/safecast"

	"github.com/coldiron/bignum"
)

// Source is the callback contract through which random operands and
// key-generation candidates are drawn. The core's Miller-Rabin test
// does not use it: its witnesses are fixed small primes.
type Source func(ctx context.Context, out []byte) error

// Secure returns a Source backed by crypto/rand, suitable for key
// material.
func Secure() Source {
	return func(_ context.Context, out []byte) error {
		_, err := rand.Read(out)
		return err
	}
}

// insecureState is a package-level PRNG used only by Insecure, seeded
// once at first use from crypto/rand so repeated calls within a
// process are not trivially predictable from process start time, even
// though the generator itself remains non-cryptographic.
var insecureState *rand2.ChaCha8

func insecureSource() *rand2.ChaCha8 {
	if insecureState != nil {
		return insecureState
	}
	var seed [32]byte
	_, _ = rand.Read(seed[:])
	insecureState = rand2.NewChaCha8(seed)
	return insecureState
}

// Insecure returns a Source backed by a non-cryptographic generator.
// Its calls always return nil; nothing raises bignum's
// StatusInsecureRNGWarning for them. This source MUST NOT be used for
// key material.
func Insecure() Source {
	return func(_ context.Context, out []byte) error {
		fillRandomBytes(insecureSource(), out)
		return nil
	}
}

// fillRandomBytes fills out with bytes drawn from src's Uint64 stream;
// math/rand/v2 dropped the io.Reader-style Read method that v1 had.
func fillRandomBytes(src *rand2.ChaCha8, out []byte) {
	for len(out) > 0 {
		v := src.Uint64()
		n := 8
		if len(out) < n {
			n = len(out)
		}
		for i := 0; i < n; i++ {
			out[i] = byte(v)
			v >>= 8
		}
		out = out[n:]
	}
}

// RandomDigit draws a single uniformly-distributed Digit from src, via
// safecast to convert the generic byte buffer without risking a
// silent truncation bug if Digit's width ever changes.
func RandomDigit(ctx context.Context, src Source) (bignum.Digit, error) {
	var buf [4]byte
	if err := src(ctx, buf[:]); err != nil {
		return 0, err
	}
	v := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	d, err := safecast.Conv[bignum.Digit](v)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// RandomBigInt draws a uniformly-distributed non-negative integer with
// exactly bitLen bits (top bit set) from src, for random operands and
// prime candidates in key generation.
func RandomBigInt(ctx context.Context, src Source, bitLen int) (*bignum.BigInt, error) {
	if bitLen <= 0 {
		return bignum.NewInt(0), nil
	}
	nBytes := (bitLen + 7) / 8
	buf := make([]byte, nBytes)
	if err := src(ctx, buf); err != nil {
		return nil, err
	}
	excess := nBytes*8 - bitLen
	if excess > 0 {
		buf[0] &= 0xFF >> uint(excess)
	}
	buf[0] |= 1 << uint((8-excess-1)%8)

	z := bignum.NewInt(0)
	for _, b := range buf {
		z.Lsh(z, 8)
		if b != 0 {
			z.Add(z, bignum.NewUint(uint64(b)))
		}
	}
	return z, nil
}
