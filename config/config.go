// Package config handles the optional intcode.toml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPath is read when no --config flag is given. It is fine for it not
// to exist.
const DefaultPath = "intcode.toml"

type Config struct {
	Debugger Debugger `toml:"debugger"`
	Run      Run      `toml:"run"`
	Sweep    Sweep    `toml:"sweep"`
}

type Debugger struct {
	Prompt       string `toml:"prompt"`
	HistoryFile  string `toml:"history-file"`
	HistoryLimit int    `toml:"history-limit"`
	// MaxSteps bounds a single `continue`; 0 means unbounded.
	MaxSteps int `toml:"max-steps"`
}

type Run struct {
	ASCII bool `toml:"ascii"`
}

type Sweep struct {
	Workers int `toml:"workers"`
}

func Default() *Config {
	return &Config{
		Debugger: Debugger{
			Prompt:       "\033[32m⟩\033[0m ",
			HistoryFile:  "/tmp/.intcode_debugger_history",
			HistoryLimit: 1000,
			MaxSteps:     10_000_000,
		},
		Sweep: Sweep{Workers: 4},
	}
}

// Load decodes path over the defaults. Keys the file sets that Config does
// not know are reported as an error so typos do not go unnoticed.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Sweep.Workers < 1 {
		cfg.Sweep.Workers = 1
	}
	return cfg, nil
}

// Resolve loads path when it is set. Otherwise it loads DefaultPath if that
// file exists, and falls back to Default.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultPath); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(DefaultPath)
}
