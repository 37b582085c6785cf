package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/coldiron/bignum"
	"github.com/coldiron/bignum/internal/bnerr"
	"github.com/coldiron/bignum/internal/bnlog"
	"github.com/coldiron/bignum/internal/bnrand"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark PowMod against an RSA-CRT round trip",
	RunE:  runBench,
}

// reducerCase pairs a reducer label with a modulus size. The label is
// only printed: every case times PowMod on a random odd modulus, so
// PowMod picks Montgomery (or diminished-radix when the modulus
// qualifies) whatever the label says.
type reducerCase struct {
	name string
	bits int
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	var log bnlog.Logger = bnlog.NewDefaultLogger()

	bits := cfg.Bits
	if bits <= 0 {
		bits = 1024
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	cases := []reducerCase{{"barrett", bits}, {"montgomery", bits}, {"dr", bits}}
	results := make([]time.Duration, len(cases))
	errs := make([]error, len(cases))

	for i, rc := range cases {
		i, rc := i, rc
		g.Go(func() error {
			d, err := benchPowMod(ctx, rc.bits)
			results[i] = d
			errs[i] = err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return bnerr.WrapError(err, "bench fan-out")
	}

	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintln(cmd.OutOrStdout(), bold("reducer       duration"))
	for i, rc := range cases {
		if errs[i] != nil {
			log.Error("bench case failed", errs[i], bnlog.String("reducer", rc.name))
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s  error: %v\n", rc.name, errs[i])
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s  %s\n", rc.name, results[i])
	}

	return benchRSACRT(cmd, bits)
}

// benchPowMod times a single PowMod call on freshly-drawn random
// operands of the given bit length.
func benchPowMod(ctx context.Context, bits int) (time.Duration, error) {
	src := bnrand.Secure()
	base, err := bnrand.RandomBigInt(ctx, src, bits)
	if err != nil {
		return 0, err
	}
	exp, err := bnrand.RandomBigInt(ctx, src, bits/4+1)
	if err != nil {
		return 0, err
	}
	mod, err := bnrand.RandomBigInt(ctx, src, bits)
	if err != nil {
		return 0, err
	}
	if mod.IsEven() {
		mod.Add(mod, bignum.NewInt(1))
	}
	start := time.Now()
	if _, err := bignum.PowMod(base, exp, mod); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

// benchRSACRT times an RSA-CRT decryption round trip against two
// freshly-generated primes, failing with a mismatch error unless the
// CRT decryption gives back the plaintext.
func benchRSACRT(cmd *cobra.Command, bits int) error {
	ctx := cmd.Context()
	src := bnrand.Secure()

	p, err := randomPrime(ctx, src, bits/2)
	if err != nil {
		return bnerr.WrapError(err, "generating p")
	}
	q, err := randomPrime(ctx, src, bits/2)
	if err != nil {
		return bnerr.WrapError(err, "generating q")
	}

	e := bignum.NewInt(65537)
	params, err := bignum.NewCRTParams(p, q, e)
	if err != nil {
		return bnerr.WrapError(err, "computing CRT parameters")
	}

	x := bignum.NewInt(9999)
	n := new(bignum.BigInt).Mul(p, q)
	c, err := bignum.PowMod(x, e, n)
	if err != nil {
		return bnerr.WrapError(err, "encrypting")
	}

	start := time.Now()
	got, err := bignum.PowModCRT(c, params)
	elapsed := time.Since(start)
	if err != nil {
		return bnerr.WrapError(err, "RSA-CRT decryption")
	}
	if got.Cmp(x) != 0 {
		return bnerr.NewMismatchError("rsa-crt round trip", x.String(), got.String())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nrsa-crt round trip (%d-bit modulus): %s\n", n.CountBits(), elapsed)
	return nil
}

func randomPrime(ctx context.Context, src bnrand.Source, bits int) (*bignum.BigInt, error) {
	cand, err := bnrand.RandomBigInt(ctx, src, bits)
	if err != nil {
		return nil, err
	}
	if cand.IsEven() {
		cand.Add(cand, bignum.NewInt(1))
	}
	return bignum.NextPrime(cand)
}
