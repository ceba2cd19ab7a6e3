// Package config defines the engine's tunable settings and loads
// overrides from a JSON file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ErrInvalidConfig indicates a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all tunable settings.
type Config struct {
	// LogLevel is the minimum log level: debug, info, warn, or error.
	LogLevel string

	// RowHeight is the height of every data row.
	RowHeight int

	// MinColumnWidth and MaxColumnWidth bound measured column widths.
	MinColumnWidth int
	MaxColumnWidth int

	// HeaderHeight is the height of the column-header band.
	HeaderHeight int

	// GutterWidth is the width of the row-number gutter band.
	GutterWidth int

	// EdgeScrollThreshold is the drag auto-scroll edge zone, in cells.
	EdgeScrollThreshold int

	// EdgeScrollStep is the scroll nudge per move event in an edge zone.
	EdgeScrollStep int

	// WheelScrollRows is the number of rows scrolled per wheel tick.
	WheelScrollRows int

	// DragSelection enables marquee selection via pointer drag.
	DragSelection bool

	// HeaderSelection enables row/column/all selection from the bands.
	HeaderSelection bool
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		LogLevel:            "info",
		RowHeight:           1,
		MinColumnWidth:      6,
		MaxColumnWidth:      24,
		HeaderHeight:        1,
		GutterWidth:         5,
		EdgeScrollThreshold: 2,
		EdgeScrollStep:      1,
		WheelScrollRows:     3,
		DragSelection:       true,
		HeaderSelection:     true,
	}
}

// Load reads a JSON config file and overlays it on the defaults.
// Missing keys keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return Config{}, fmt.Errorf("%w: %s is not valid JSON", ErrInvalidConfig, path)
	}

	cfg := DefaultConfig()
	overlay(&cfg, data)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// overlay applies any keys present in the JSON document.
func overlay(cfg *Config, data []byte) {
	setString(data, "log.level", &cfg.LogLevel)
	setInt(data, "grid.rowHeight", &cfg.RowHeight)
	setInt(data, "grid.minColumnWidth", &cfg.MinColumnWidth)
	setInt(data, "grid.maxColumnWidth", &cfg.MaxColumnWidth)
	setInt(data, "grid.headerHeight", &cfg.HeaderHeight)
	setInt(data, "grid.gutterWidth", &cfg.GutterWidth)
	setInt(data, "pointer.edgeScrollThreshold", &cfg.EdgeScrollThreshold)
	setInt(data, "pointer.edgeScrollStep", &cfg.EdgeScrollStep)
	setInt(data, "pointer.wheelScrollRows", &cfg.WheelScrollRows)
	setBool(data, "pointer.dragSelection", &cfg.DragSelection)
	setBool(data, "pointer.headerSelection", &cfg.HeaderSelection)
}

func setString(data []byte, path string, dst *string) {
	if r := gjson.GetBytes(data, path); r.Exists() {
		*dst = r.String()
	}
}

func setInt(data []byte, path string, dst *int) {
	if r := gjson.GetBytes(data, path); r.Exists() {
		*dst = int(r.Int())
	}
}

func setBool(data []byte, path string, dst *bool) {
	if r := gjson.GetBytes(data, path); r.Exists() {
		*dst = r.Bool()
	}
}

// Validate checks the settings for internal consistency.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.RowHeight < 1 {
		return fmt.Errorf("%w: rowHeight must be >= 1", ErrInvalidConfig)
	}
	if c.MinColumnWidth < 1 {
		return fmt.Errorf("%w: minColumnWidth must be >= 1", ErrInvalidConfig)
	}
	if c.MaxColumnWidth < c.MinColumnWidth {
		return fmt.Errorf("%w: maxColumnWidth must be >= minColumnWidth", ErrInvalidConfig)
	}
	if c.HeaderHeight < 0 || c.GutterWidth < 0 {
		return fmt.Errorf("%w: header and gutter sizes must be >= 0", ErrInvalidConfig)
	}
	if c.EdgeScrollThreshold < 0 {
		return fmt.Errorf("%w: edgeScrollThreshold must be >= 0", ErrInvalidConfig)
	}
	if c.EdgeScrollStep < 1 {
		return fmt.Errorf("%w: edgeScrollStep must be >= 1", ErrInvalidConfig)
	}
	if c.WheelScrollRows < 1 {
		return fmt.Errorf("%w: wheelScrollRows must be >= 1", ErrInvalidConfig)
	}
	return nil
}
