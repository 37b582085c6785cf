package main

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coldiron/bignum"
	"github.com/coldiron/bignum/internal/bnerr"
	"github.com/coldiron/bignum/internal/bnlog"
	"github.com/coldiron/bignum/internal/bnrand"
	"github.com/coldiron/bignum/internal/selftest"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the algebraic-law and end-to-end scenario suite",
	RunE:  runSelftest,
}

func init() {
	selftestCmd.Flags().Bool("insecure-rng", false, "use the non-cryptographic random source instead of crypto/rand")
}

func newColorizer(cmd *cobra.Command) (func(string, ...any) string, func(string, ...any) string) {
	mode, _ := cmd.Flags().GetString("color")
	enabled := mode == "on" || (mode == "auto" && color.NoColor == false)
	if mode == "off" {
		enabled = false
	}
	if !enabled {
		return fmt.Sprintf, fmt.Sprintf
	}
	return color.New(color.FgGreen).SprintfFunc(), color.New(color.FgRed).SprintfFunc()
}

func runSelftest(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var log bnlog.Logger = bnlog.NewDefaultLogger()

	insecure, _ := cmd.Flags().GetBool("insecure-rng")
	src := bnrand.Secure()
	if insecure {
		src = bnrand.Insecure()
		log.Info("using insecure RNG source; not suitable for key material")
	}

	bits := cfg.Bits
	if bits <= 0 {
		bits = 2048
	}

	s := spinner.New(spinner.CharSets[11], 200*time.Millisecond)
	s.Suffix = " drawing operands"
	s.Start()
	a, b, c, m, err := drawOperands(context.Background(), src, bits)
	s.Stop()
	if err != nil {
		return bnerr.WrapError(err, "drawing random operands")
	}

	report := selftest.Run(log, a, b, c, m)
	green, red := newColorizer(cmd)
	for _, res := range report.Results {
		if res.Passed {
			fmt.Fprintln(cmd.OutOrStdout(), green("PASS")+" "+res.Name)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), red("FAIL")+" "+res.Name+": "+res.Err.Error())
		}
	}
	if !report.AllPassed() {
		return bnerr.NewMismatchError("selftest", "all checks pass", "one or more checks failed")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d checks passed\n", len(report.Results))
	return nil
}

// drawOperands draws the four random operands a self-test pass needs:
// a, b, and c for the algebraic laws, plus an odd modulus m. PowMod on
// an odd m uses Montgomery, or diminished-radix when m qualifies;
// Barrett is not reached.
func drawOperands(ctx context.Context, src bnrand.Source, bits int) (a, b, c, m *bignum.BigInt, err error) {
	if a, err = bnrand.RandomBigInt(ctx, src, bits); err != nil {
		return
	}
	if b, err = bnrand.RandomBigInt(ctx, src, bits); err != nil {
		return
	}
	if c, err = bnrand.RandomBigInt(ctx, src, bits/2+1); err != nil {
		return
	}
	if m, err = bnrand.RandomBigInt(ctx, src, bits); err != nil {
		return
	}
	if m.IsEven() {
		m.Add(m, bignum.NewInt(1))
	}
	return
}
