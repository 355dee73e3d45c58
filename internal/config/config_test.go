package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Window.Title != "Fat Finger Picasso - Demo" {
		t.Fatalf("unexpected title %q", cfg.Window.Title)
	}
	if cfg.Window.Heading != "Fat Finger Picasso" {
		t.Fatalf("unexpected heading %q", cfg.Window.Heading)
	}
	if cfg.Canvas.TestID != "fat-finger-picasso" {
		t.Fatalf("unexpected test id %q", cfg.Canvas.TestID)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Canvas.StrokeWidth != Defaults().Canvas.StrokeWidth {
		t.Fatalf("expected default stroke width, got %v", cfg.Canvas.StrokeWidth)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("canvas:\n  color: \"#ff0000\"\n  stroke_width: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Canvas.StrokeWidth != 7 {
		t.Fatalf("stroke width = %v, want 7", cfg.Canvas.StrokeWidth)
	}
	if got := cfg.StrokeColor(); got != (color.NRGBA{R: 255, A: 255}) {
		t.Fatalf("colour = %v", got)
	}
	if cfg.Window.Title != Defaults().Window.Title {
		t.Fatalf("unset fields should keep defaults, title = %q", cfg.Window.Title)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("window: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvTitle, "Custom")
	t.Setenv(EnvStrokeWidth, "12.5")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogSource, "true")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "Custom" || cfg.Canvas.StrokeWidth != 12.5 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.Source {
		t.Fatalf("logging overrides not applied: %+v", cfg.Logging)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := map[string]func(*AppConfig){
		"window":  func(c *AppConfig) { c.Window.Width = 0 },
		"canvas":  func(c *AppConfig) { c.Canvas.MinHeight = -1 },
		"stroke":  func(c *AppConfig) { c.Canvas.StrokeWidth = 0 },
		"test id": func(c *AppConfig) { c.Canvas.TestID = " " },
		"colour":  func(c *AppConfig) { c.Canvas.Color = "blue" },
	}
	for name, mutate := range tests {
		cfg := Defaults()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: err = %v, want ErrInvalidConfig", name, err)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#000000", color.NRGBA{A: 255}, true},
		{"#00ff00", color.NRGBA{G: 255, A: 255}, true},
		{"0000FF", color.NRGBA{B: 255, A: 255}, true},
		{"#f00", color.NRGBA{R: 255, A: 255}, true},
		{"#12345", color.NRGBA{}, false},
		{"#gggggg", color.NRGBA{}, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("ParseColor(%q) err = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultPathHonoursEnv(t *testing.T) {
	t.Setenv(EnvConfigFile, "/tmp/ffp.yaml")
	p, err := DefaultPath()
	if err != nil || p != "/tmp/ffp.yaml" {
		t.Fatalf("DefaultPath = %q, %v", p, err)
	}
}
