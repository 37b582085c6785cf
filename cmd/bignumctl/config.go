package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/coldiron/bignum/internal/bnconfig"
	"github.com/coldiron/bignum/internal/bnerr"
)

// resolveConfig layers bnconfig.Default() under an optional TOML file
// under the environment under explicit flags, in that precedence
// order, matching the package's documented flags > env > file >
// defaults contract.
func resolveConfig(cmd *cobra.Command) (bnconfig.Config, error) {
	cfg := bnconfig.Default()

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, bnerr.WrapError(err, "reading --config")
	}
	cfg, err = bnconfig.LoadFile(path, cfg)
	if err != nil {
		return cfg, bnerr.NewConfigError("loading config file %q: %v", path, err)
	}

	flagsSet := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { flagsSet[f.Name] = true })
	cfg = bnconfig.ApplyEnv(cfg, flagsSet)

	if bits, _ := cmd.Flags().GetInt("bits"); flagsSet["bits"] {
		cfg.Bits = bits
	}
	if rounds, _ := cmd.Flags().GetInt("rounds"); flagsSet["rounds"] {
		cfg.Rounds = rounds
	}
	if reducer, _ := cmd.Flags().GetString("reducer"); flagsSet["reducer"] {
		cfg.Reducer = reducer
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); flagsSet["verbose"] {
		cfg.Verbose = verbose
	}
	if gvf, _ := cmd.Flags().GetString("golden-vectors-file"); flagsSet["golden-vectors-file"] {
		cfg.GoldenVectorsFile = gvf
	}

	switch cfg.Reducer {
	case "auto", "barrett", "montgomery", "dr":
	default:
		return cfg, bnerr.NewConfigError("unknown reducer %q: want auto, barrett, montgomery, or dr", cfg.Reducer)
	}

	return cfg, nil
}
