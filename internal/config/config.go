// =============================================================================
// TR-069 Excelifier - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. The converter runs
// without one; every key has a built-in default that reproduces the standard
// workbook layout.
//
// CONFIGURATION FILE (all keys optional):
//   default_output: output.xlsx
//   log_level: info
//   model_sheet: Model
//   profile_sheet: Profiles
//   model_columns:
//     - { header: Object, width: 75 }
//     - { header: Description, width: 60, wrap: true }
//   profile_columns:
//     - { header: Parameters, width: 80, wrap: true }
//
// Column entries are matched by header; headers not listed, and keys left
// out of an entry, keep their default width and wrapping.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tr069tools/tr069-excelifier/internal/types"
)

// MaxColumnWidth is the widest column excelize accepts.
const MaxColumnWidth = 255.0

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the converter configuration.
type Config struct {
	// DefaultOutput is used when no --output flag is given.
	// Default: "output.xlsx"
	DefaultOutput string `yaml:"default_output"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// ModelSheet is the name of the sheet holding the flattened objects.
	// Default: "Model"
	ModelSheet string `yaml:"model_sheet"`

	// ProfileSheet is the name of the sheet holding the profile references.
	// Default: "Profiles"
	ProfileSheet string `yaml:"profile_sheet"`

	// ModelColumns and ProfileColumns override column presentation.
	ModelColumns   []Column `yaml:"model_columns"`
	ProfileColumns []Column `yaml:"profile_columns"`
}

// Column describes the presentation of one sheet column.
type Column struct {
	// Header identifies the column; it must be one of the sheet headers.
	Header string `yaml:"header"`

	// Width is the fixed column width in Excel character units.
	Width float64 `yaml:"width"`

	// Wrap marks a bulk-text column: top-aligned, word-wrapped cells.
	// nil keeps the default for the header.
	Wrap *bool `yaml:"wrap"`
}

// Wraps reports whether the column wraps text.
func (c Column) Wraps() bool {
	return c.Wrap != nil && *c.Wrap
}

// Bool returns a pointer to v, for Column.Wrap literals.
func Bool(v bool) *bool {
	return &v
}

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultModelColumns returns the Model sheet layout.
func DefaultModelColumns() []Column {
	return []Column{
		{Header: types.ColObject, Width: 75},
		{Header: types.ColAccess, Width: 12},
		{Header: types.ColDescription, Width: 60, Wrap: Bool(true)},
		{Header: types.ColParameter, Width: 40},
		{Header: types.ColParameterAccess, Width: 15},
		{Header: types.ColParameterDescription, Width: 120, Wrap: Bool(true)},
	}
}

// DefaultProfileColumns returns the Profiles sheet layout.
func DefaultProfileColumns() []Column {
	return []Column{
		{Header: types.ColProfile, Width: 25},
		{Header: types.ColName, Width: 50},
		{Header: types.ColRequirement, Width: 10},
		{Header: types.ColBase, Width: 20},
		{Header: types.ColExtends, Width: 20},
		{Header: types.ColParameters, Width: 80, Wrap: Bool(true)},
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration at path. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration bytes, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	applyDefaults(&cfg)
	if cfg.ModelSheet == cfg.ProfileSheet {
		return nil, fmt.Errorf("invalid configuration: model_sheet and profile_sheet must differ (both %q)", cfg.ModelSheet)
	}
	return &cfg, nil
}

// applyDefaults sets default values for any unset options. Column overrides
// are merged into the default layout so the column order never changes.
func applyDefaults(cfg *Config) {
	if cfg.DefaultOutput == "" {
		cfg.DefaultOutput = "output.xlsx"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.ModelSheet == "" {
		cfg.ModelSheet = "Model"
	}
	if cfg.ProfileSheet == "" {
		cfg.ProfileSheet = "Profiles"
	}
	cfg.ModelColumns = mergeColumns(DefaultModelColumns(), cfg.ModelColumns)
	cfg.ProfileColumns = mergeColumns(DefaultProfileColumns(), cfg.ProfileColumns)
}

func mergeColumns(defaults, overrides []Column) []Column {
	for _, o := range overrides {
		for i := range defaults {
			if defaults[i].Header != o.Header {
				continue
			}
			if o.Width > 0 {
				defaults[i].Width = o.Width
			}
			if o.Wrap != nil {
				defaults[i].Wrap = Bool(*o.Wrap)
			}
		}
	}
	return defaults
}

// validate checks user supplied values before defaults are merged in.
func validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	if err := validateColumns("model_columns", cfg.ModelColumns, types.ModelHeaders); err != nil {
		return err
	}
	return validateColumns("profile_columns", cfg.ProfileColumns, types.ProfileHeaders)
}

func validateColumns(key string, columns []Column, headers []string) error {
	for _, c := range columns {
		if !contains(headers, c.Header) {
			return fmt.Errorf("%s: unknown header %q", key, c.Header)
		}
		if c.Width < 0 || c.Width > MaxColumnWidth {
			return fmt.Errorf("%s: width %.1f for %q outside [0, %.0f] (0 keeps the default)", key, c.Width, c.Header, MaxColumnWidth)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
