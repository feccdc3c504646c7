// ============================================================================
// dayx - calendar-aware date-time toolkit
// ============================================================================
//
// Package:     config
// Description: Typed dayx settings loaded through the foundation config
//              layer, with DAYX_* environment overrides
// Author:      dayx team
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	mdwconfig "github.com/msto63/dayx/foundation/core/config"
	mdwerror "github.com/msto63/dayx/foundation/core/error"
	mdwlog "github.com/msto63/dayx/foundation/core/log"
	"github.com/msto63/dayx/foundation/utils/timex"
)

// EnvPrefix is the prefix of environment overrides, e.g. DAYX_DISPLAY_ZONE
const EnvPrefix = "DAYX"

// EnvConfigPath names the environment variable holding a config file path
const EnvConfigPath = "DAYX_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Display DisplayConfig `toml:"display"`
	Series  SeriesConfig  `toml:"series"`
	Shell   ShellConfig   `toml:"shell"`

	source string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// DisplayConfig controls how values are printed
type DisplayConfig struct {
	// iso, utc, gmt, array, local, string or a strftime template
	Format string `toml:"format"`

	// Zone hint applied to printed values; empty keeps the parsed hint
	Zone string `toml:"zone"`

	// Color enables styled terminal output
	Color bool `toml:"color"`
}

// SeriesConfig bounds recurrence expansion
type SeriesConfig struct {
	DefaultCount int `toml:"default_count"`
	MaxCount     int `toml:"max_count"`
}

// ShellConfig holds interactive shell settings
type ShellConfig struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:  "warn",
			LogFormat: "text",
		},
		Display: DisplayConfig{
			Format: "iso",
			Zone:   "",
			Color:  true,
		},
		Series: SeriesConfig{
			DefaultCount: 5,
			MaxCount:     1000,
		},
		Shell: ShellConfig{
			Prompt:      "dayx> ",
			HistoryFile: filepath.Join(os.TempDir(), "dayx_history"),
		},
	}
}

// Load reads a TOML or YAML file. Missing keys keep their defaults and
// DAYX_<SECTION>_<KEY> variables override file values.
func Load(path string) (*Config, error) {
	src, err := mdwconfig.LoadWithOptions(os.ExpandEnv(path), mdwconfig.LoadOptions{
		Format:    mdwconfig.FormatAuto,
		EnvPrefix: EnvPrefix,
	})
	if err != nil {
		return nil, err
	}
	return fromSource(src)
}

// Discover loads the first configuration found in this order: explicit
// path, $DAYX_CONFIG, ./configs/config.toml, ./configs/config.yaml,
// ~/.config/dayx/config.toml. An explicit path must exist; otherwise a
// missing file yields the defaults plus environment overrides.
func Discover(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}

	candidates := []string{
		os.Getenv(EnvConfigPath),
		filepath.Join("configs", "config.toml"),
		filepath.Join("configs", "config.yaml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "dayx", "config.toml"))
	}

	src, err := mdwconfig.Discover(mdwconfig.DiscoveryOptions{
		Candidates: candidates,
		EnvPrefix:  EnvPrefix,
	})
	if err != nil {
		return nil, err
	}
	return fromSource(src)
}

func fromSource(src *mdwconfig.Config) (*Config, error) {
	d := Default()

	cfg := &Config{
		General: GeneralConfig{
			LogLevel:  src.GetString("general.log_level", d.General.LogLevel),
			LogFormat: src.GetString("general.log_format", d.General.LogFormat),
		},
		Display: DisplayConfig{
			Format: src.GetString("display.format", d.Display.Format),
			Zone:   src.GetString("display.zone", d.Display.Zone),
			Color:  src.GetBool("display.color", d.Display.Color),
		},
		Series: SeriesConfig{
			DefaultCount: src.GetInt("series.default_count", d.Series.DefaultCount),
			MaxCount:     src.GetInt("series.max_count", d.Series.MaxCount),
		},
		Shell: ShellConfig{
			Prompt:      src.GetString("shell.prompt", d.Shell.Prompt),
			HistoryFile: os.ExpandEnv(src.GetString("shell.history_file", d.Shell.HistoryFile)),
		},
		source: src.FilePath(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that are not free-form
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}, reason string) error {
		return mdwerror.New(fmt.Sprintf("config %s=%v: %s", key, value, reason)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", key)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, "unknown level")
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, "unknown format")
	}
	if strings.TrimSpace(c.Display.Format) == "" {
		return invalid("display.format", c.Display.Format, "must not be empty")
	}
	if c.Display.Zone != "" {
		if _, err := timex.ParseZone(c.Display.Zone); err != nil {
			return mdwerror.Wrap(err, "config display.zone").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Validate").
				WithDetail("key", "display.zone")
		}
	}
	if c.Series.MaxCount <= 0 {
		return invalid("series.max_count", c.Series.MaxCount, "must be positive")
	}
	if c.Series.DefaultCount <= 0 || c.Series.DefaultCount > c.Series.MaxCount {
		return invalid("series.default_count", c.Series.DefaultCount, "must be in 1..series.max_count")
	}
	return nil
}

// DisplayZone returns the configured zone hint; ok is false when unset
func (c *Config) DisplayZone() (zone timex.Zone, ok bool) {
	if c.Display.Zone == "" {
		return timex.Zone{}, false
	}
	zone, err := timex.ParseZone(c.Display.Zone)
	return zone, err == nil
}

// Source returns the file the configuration was loaded from, or ""
func (c *Config) Source() string {
	return c.source
}

// WriteDefault writes the built-in configuration as TOML
func WriteDefault(w io.Writer) error {
	return toml.NewEncoder(w).Encode(Default())
}
