// Package config loads the pad's startup settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"MySketchPad/internal/export"
	"MySketchPad/internal/pad"
	"MySketchPad/internal/state"

	"github.com/BurntSushi/toml"
)

const (
	// EnvPath names the config file to load.
	EnvPath = "SKETCHPAD_CONFIG"
	// DefaultPath is tried when EnvPath is unset.
	DefaultPath = "sketchpad.toml"
)

// Config mirrors the TOML file.
type Config struct {
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	LineWidth     int    `toml:"line_width"`
	Color         string `toml:"color"`
	LegacyHistory bool   `toml:"legacy_history"`
	ExportFormat  string `toml:"export_format"`
}

func Default() Config {
	return Config{
		Width:        800,
		Height:       600,
		LineWidth:    state.DefaultLineWidth,
		Color:        "black",
		ExportFormat: string(export.FormatPNG),
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	log.Printf("[CONFIG] Loaded %s", path)
	return cfg, nil
}

// FromEnv loads the file named by SKETCHPAD_CONFIG, or DefaultPath.
func FromEnv() (Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		path = DefaultPath
	}
	return Load(path)
}

func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", c.Height)
	}
	if c.LineWidth < state.MinLineWidth || c.LineWidth > state.MaxLineWidth {
		return fmt.Errorf("line_width must be in [%d, %d], got %d", state.MinLineWidth, state.MaxLineWidth, c.LineWidth)
	}
	if _, err := state.ParseColor(c.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if _, err := export.ParseFormat(c.ExportFormat); err != nil {
		return fmt.Errorf("export_format: %w", err)
	}
	return nil
}

// PadOptions converts a validated Config into session options.
func (c Config) PadOptions() (pad.Options, error) {
	col, err := state.ParseColor(c.Color)
	if err != nil {
		return pad.Options{}, fmt.Errorf("color: %w", err)
	}
	format, err := export.ParseFormat(c.ExportFormat)
	if err != nil {
		return pad.Options{}, fmt.Errorf("export_format: %w", err)
	}
	return pad.Options{
		Tools: state.ToolState{
			StrokeColor: col,
			LineWidth:   state.ClampLineWidth(c.LineWidth),
			Tool:        state.ToolPen,
		},
		LegacyHistory: c.LegacyHistory,
		ExportFormat:  format,
	}, nil
}
