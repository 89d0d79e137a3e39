// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/whiteelephant/internal/render"
	"github.com/jmylchreest/whiteelephant/internal/roster"
	"github.com/jmylchreest/whiteelephant/internal/theme"
)

// Default configuration values.
const (
	DefaultFormat   = ""
	DefaultDebounce = Duration(250 * time.Millisecond)
)

// Config represents the whiteelephant configuration.
type Config struct {
	Draw   DrawConfig   `toml:"draw"`
	Viewer ViewerConfig `toml:"viewer"`
	Output OutputConfig `toml:"output"`
	Watch  WatchConfig  `toml:"watch"`
}

// DrawConfig holds the default draw inputs and outputs.
type DrawConfig struct {
	Input  string `toml:"input"`  // Roster file ("-" for stdin)
	Output string `toml:"output"` // Rendered page
	Theme  string `toml:"theme"`  // CSS file or bundled theme name
	Count  int    `toml:"count"`  // Names to keep (0 = all)
}

// ViewerConfig controls the post-render hook.
type ViewerConfig struct {
	Open    bool   `toml:"open"`
	Command string `toml:"command"` // Auto-detected if empty
}

// OutputConfig controls what is printed to stdout after a draw.
type OutputConfig struct {
	Format   string `toml:"format"`   // "", plain, json, yaml
	Template string `toml:"template"` // Go template for plain output
}

// WatchConfig holds settings for the watch command.
type WatchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// Duration is a time.Duration that can be unmarshaled from human-readable strings.
// Supports formats like "250ms", "1s", or integer milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '250ms', '1s' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the value as a time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Draw: DrawConfig{
			Input:  roster.DefaultPath,
			Output: render.DefaultPath,
			Theme:  theme.DefaultPath,
			Count:  0,
		},
		Viewer: ViewerConfig{
			Open:    true,
			Command: "", // Auto-detect
		},
		Output: OutputConfig{
			Format: DefaultFormat,
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "whiteelephant", "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that TOML typing alone cannot.
func (c *Config) Validate() error {
	if c.Draw.Count < 0 {
		return fmt.Errorf("draw.count must not be negative, got %d", c.Draw.Count)
	}
	switch c.Output.Format {
	case "", "plain", "json", "yaml":
	default:
		return fmt.Errorf("output.format must be one of plain, json, yaml, got %q", c.Output.Format)
	}
	if c.Watch.Debounce < 0 {
		return errors.New("watch.debounce must not be negative")
	}
	return nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
