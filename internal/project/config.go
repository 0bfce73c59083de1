// Package project locates and loads the optional gdspec.toml tool
// configuration. The file supplies defaults only; command-line flags win.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigName is the file the tool looks for in the working directory and
// its ancestors.
const ConfigName = "gdspec.toml"

// Config is the decoded gdspec.toml.
type Config struct {
	Output OutputConfig `toml:"output"`
	Run    RunConfig    `toml:"run"`
}

type OutputConfig struct {
	// Format selects the default token dump format: pretty, json, or
	// msgpack.
	Format string `toml:"format"`
	// Color selects colorized output: auto, on, or off.
	Color string `toml:"color"`
}

type RunConfig struct {
	// Jobs bounds concurrent file tokenization; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`
}

// Default returns the configuration used when no gdspec.toml exists.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "pretty", Color: "auto"},
	}
}

// Find walks from startDir toward the filesystem root looking for
// gdspec.toml. It reports the path and whether one was found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads and decodes one gdspec.toml, layering it over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the nearest config, falling back to defaults
// when none exists.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) validate() error {
	switch c.Output.Format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("unknown color mode %q", c.Output.Color)
	}
	if c.Run.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Run.Jobs)
	}
	return nil
}
