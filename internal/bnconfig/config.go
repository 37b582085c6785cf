// Package bnconfig loads the self-test harness and CLI's tunables from
// a TOML file, then layers environment variables and finally explicit
// flag values on top of it: flags > environment > file > built-in
// defaults.
package bnconfig

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvPrefix is prepended to every environment variable this package
// reads, so bignum's overrides never collide with an unrelated
// variable of the same short name.
const EnvPrefix = "BIGNUM_"

// Config holds every tunable the bignumctl harness exposes.
type Config struct {
	Bits              int    `toml:"bits"`
	Rounds            int    `toml:"rounds"`
	KaratsubaCutoff   int    `toml:"karatsuba_cutoff"`
	CapacityCeiling   int    `toml:"capacity_ceiling"`
	Reducer           string `toml:"reducer"`
	Verbose           bool   `toml:"verbose"`
	GoldenVectorsFile string `toml:"golden_vectors_file"`
}

// Default returns the built-in defaults, used as the base layer before
// any file/env/flag overrides are applied.
func Default() Config {
	return Config{
		Bits:            2048,
		Rounds:          0, // 0 means "derive from bit length"
		KaratsubaCutoff: 80,
		CapacityCeiling: 1024,
		Reducer:         "auto",
		Verbose:         false,
	}
}

// LoadFile reads a TOML configuration file on top of the supplied base
// config, returning the merged result. A missing file is not an
// error: it leaves base untouched, matching the CLI's "config file is
// optional" contract.
func LoadFile(path string, base Config) (Config, error) {
	if path == "" {
		return base, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	cfg := base
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// ApplyEnv overrides any field in cfg with its BIGNUM_-prefixed
// environment variable, for fields the caller has not already set
// from an explicit CLI flag (flagsSet names the flags that were
// explicitly passed, so env never clobbers an explicit choice).
func ApplyEnv(cfg Config, flagsSet map[string]bool) Config {
	if !flagsSet["bits"] {
		cfg.Bits = getEnvInt("BITS", cfg.Bits)
	}
	if !flagsSet["rounds"] {
		cfg.Rounds = getEnvInt("ROUNDS", cfg.Rounds)
	}
	if !flagsSet["karatsuba-cutoff"] {
		cfg.KaratsubaCutoff = getEnvInt("KARATSUBA_CUTOFF", cfg.KaratsubaCutoff)
	}
	if !flagsSet["capacity-ceiling"] {
		cfg.CapacityCeiling = getEnvInt("CAPACITY_CEILING", cfg.CapacityCeiling)
	}
	if !flagsSet["reducer"] {
		cfg.Reducer = getEnvString("REDUCER", cfg.Reducer)
	}
	if !flagsSet["verbose"] {
		cfg.Verbose = getEnvBool("VERBOSE", cfg.Verbose)
	}
	if !flagsSet["golden-vectors-file"] {
		cfg.GoldenVectorsFile = getEnvString("GOLDEN_VECTORS_FILE", cfg.GoldenVectorsFile)
	}
	return cfg
}
