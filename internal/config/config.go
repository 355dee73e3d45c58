// Package config loads the YAML settings for the demo application.
// Environment variables override file values at runtime.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Title   string  `yaml:"title"`
	Heading string  `yaml:"heading"`
	Width   float32 `yaml:"width"`
	Height  float32 `yaml:"height"`
}

type CanvasConfig struct {
	TestID      string  `yaml:"test_id"`
	MinWidth    float32 `yaml:"min_width"`
	MinHeight   float32 `yaml:"min_height"`
	Color       string  `yaml:"color"` // #rrggbb
	StrokeWidth float32 `yaml:"stroke_width"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Window        WindowConfig  `yaml:"window"`
	Canvas        CanvasConfig  `yaml:"canvas"`
	Export        ExportConfig  `yaml:"export"`
	Logging       LoggingConfig `yaml:"logging"`
}

const (
	EnvConfigFile  = "FFP_CONFIG"
	EnvTitle       = "FFP_TITLE"
	EnvColor       = "FFP_COLOR"
	EnvStrokeWidth = "FFP_STROKE_WIDTH"
	EnvExportDir   = "FFP_EXPORT_DIR"
	EnvLogLevel    = "FFP_LOG_LEVEL"
	EnvLogFormat   = "FFP_LOG_FORMAT"
	EnvLogSource   = "FFP_LOG_SOURCE"
	EnvLogFile     = "FFP_LOG_FILE"
)

var (
	ErrInvalidColor  = errors.New("invalid colour")
	ErrInvalidConfig = errors.New("invalid config")
)

func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Window: WindowConfig{
			Title:   "Fat Finger Picasso - Demo",
			Heading: "Fat Finger Picasso",
			Width:   1024,
			Height:  768,
		},
		Canvas: CanvasConfig{
			TestID:      "fat-finger-picasso",
			MinWidth:    300,
			MinHeight:   300,
			Color:       "#000000",
			StrokeWidth: 3,
		},
		Export:  ExportConfig{Dir: "."},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// DefaultPath returns the per-user config file, honouring FFP_CONFIG.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "fatfingerpicasso", "config.yaml"), nil
}

// Load reads path on top of the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Defaults(), fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
	}
	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %vx%v", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Canvas.MinWidth <= 0 || c.Canvas.MinHeight <= 0 {
		return fmt.Errorf("%w: canvas min size %vx%v", ErrInvalidConfig, c.Canvas.MinWidth, c.Canvas.MinHeight)
	}
	if c.Canvas.StrokeWidth <= 0 {
		return fmt.Errorf("%w: stroke width %v", ErrInvalidConfig, c.Canvas.StrokeWidth)
	}
	if strings.TrimSpace(c.Canvas.TestID) == "" {
		return fmt.Errorf("%w: empty canvas test id", ErrInvalidConfig)
	}
	if _, err := ParseColor(c.Canvas.Color); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// StrokeColor is the parsed default pen colour.
func (c AppConfig) StrokeColor() color.Color {
	col, err := ParseColor(c.Canvas.Color)
	if err != nil {
		return color.Black
	}
	return col
}

// ParseColor accepts #rgb and #rrggbb.
func ParseColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func applyEnvOverrides(c *AppConfig) {
	if v := os.Getenv(EnvTitle); v != "" {
		c.Window.Title = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		c.Canvas.Color = v
	}
	if v := os.Getenv(EnvStrokeWidth); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			c.Canvas.StrokeWidth = float32(f)
		}
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		c.Export.Dir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLogSource); v != "" {
		c.Logging.Source = strings.EqualFold(v, "true") || v == "1"
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
}
