// Package config loads front-end settings; gameplay constants are fixed and live in constants
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Hand source names
const (
	SourceMouse = "mouse"
	SourceTrace = "trace"
)

// Config is the palm-bounce settings file
type Config struct {
	Debug    bool     `toml:"debug"`
	Audio    bool     `toml:"audio"`
	Tracking Tracking `toml:"tracking"`
}

// Tracking selects the hand position source
type Tracking struct {
	Source string `toml:"source"`
	Trace  string `toml:"trace"`
	Loop   bool   `toml:"loop"`
}

// Default returns the built-in settings: mouse paddle, audio on
func Default() Config {
	return Config{
		Audio: true,
		Tracking: Tracking{
			Source: SourceMouse,
			Loop:   true,
		},
	}
}

// DefaultPath returns ~/.config/palm-bounce/config.toml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "palm-bounce", "config.toml")
}

// Load reads path over the defaults; a missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the tracking source selection
func (c Config) Validate() error {
	switch c.Tracking.Source {
	case SourceMouse:
	case SourceTrace:
		if c.Tracking.Trace == "" {
			return errors.New("tracking source \"trace\" requires a trace path")
		}
	default:
		return fmt.Errorf("unknown tracking source %q", c.Tracking.Source)
	}
	return nil
}

// Save writes the config as TOML, creating parent directories
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
