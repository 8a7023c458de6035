// Package config loads optional engine defaults from a TOML file, falling
// back to hardcoded values when the file is absent.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Defaults are the engine's tunable startup parameters.
type Defaults struct {
	// PerftDepth is the depth uci's "go perft" uses when the command gives
	// no depth argument of its own.
	PerftDepth int `toml:"perft_depth"`
}

// defaultConfig is used whenever no config file is found.
var defaultConfig = Defaults{
	PerftDepth: 5,
}

// Load reads path as TOML into a Defaults value. If path does not exist,
// Load returns defaultConfig and a nil error — a missing config file is
// not an error condition. If path exists but fails to parse, Load still
// returns defaultConfig alongside the error, so a caller that chooses to
// proceed anyway (logging a warning) has a usable value in hand.
func Load(path string) (Defaults, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return defaultConfig, nil
	}

	cfg := defaultConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig, err
	}
	return cfg, nil
}
