// Package config loads optional tool configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/automata-kit/automaton"
)

// DefaultPath is probed when no config file is named explicitly.
const DefaultPath = "automaton.toml"

// Config carries the tunables of the conversion tool.
type Config struct {
	// MaxStates bounds how many DFA states determinization may discover.
	MaxStates int `toml:"max-states"`

	Layout Layout `toml:"layout"`
}

// Layout controls the grid used when synthesizing visual-editor documents.
type Layout struct {
	SpacingX float64 `toml:"spacing-x"`
	Baseline float64 `toml:"baseline-y"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxStates: automaton.DefaultDeterminizeStateLimit,
		Layout: Layout{
			SpacingX: 100,
			Baseline: 100,
		},
	}
}

// Load reads path over the defaults. An empty path probes DefaultPath and
// silently falls back to the defaults when it does not exist; a named path
// must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	probe := path == ""
	if probe {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if probe && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.MaxStates <= 0 {
		return cfg, fmt.Errorf("parse %s: max-states must be positive", path)
	}
	return cfg, nil
}
