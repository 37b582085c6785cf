// Command bignumctl drives the bignum package from the shell: it runs
// the algebraic-law and end-to-end scenario suite, benchmarks the
// reducer paths, and round-trips golden vectors, wiring the package's
// config, logging, and self-test collaborators together the way a
// production operator would.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/coldiron/bignum/internal/bnerr"
)

var rootCmd = &cobra.Command{
	Use:   "bignumctl",
	Short: "bignumctl drives the bignum multiple-precision arithmetic engine",
	Long:  "bignumctl runs the self-test suite, benchmarks reducer paths, and manages golden vectors for the bignum package.",
}

func main() {
	rootCmd.AddCommand(selftestCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(vectorsCmd)

	rootCmd.PersistentFlags().String("config", "", "path to a TOML config file (optional)")
	rootCmd.PersistentFlags().Int("bits", 0, "operand bit length (0 uses the config default)")
	rootCmd.PersistentFlags().Int("rounds", 0, "Miller-Rabin rounds (stored in the config; no subcommand reads it)")
	rootCmd.PersistentFlags().String("reducer", "", "modular reducer: auto, barrett, montgomery, or dr (validated only; PowMod picks its reducer from the modulus)")
	rootCmd.PersistentFlags().Bool("verbose", false, "debug-level logging (stored in the config; no subcommand reads it)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output: auto, on, or off")
	rootCmd.PersistentFlags().String("golden-vectors-file", "", "path to a msgpack golden vector file (stored in the config; vectors check takes its path as an argument)")

	if err := rootCmd.Execute(); err != nil {
		if bnerr.IsConfigError(err) {
			os.Exit(bnerr.ExitErrorConfig)
		}
		if bnerr.IsMismatchError(err) {
			os.Exit(bnerr.ExitErrorMismatch)
		}
		os.Exit(bnerr.ExitErrorGeneric)
	}
}
