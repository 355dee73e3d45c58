package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	drawing "fatfingerpicasso/internal/canvas"
	"fatfingerpicasso/internal/config"
	"fatfingerpicasso/internal/export"
	"fatfingerpicasso/internal/input"
	applog "fatfingerpicasso/internal/log"
	"fatfingerpicasso/internal/state"
	"fatfingerpicasso/internal/ui"
	"fatfingerpicasso/internal/version"
)

func usage() {
	fmt.Println(version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  fatfingerpicasso                      Open the demo canvas (build with -tags fyne)")
	fmt.Println("  fatfingerpicasso version              Show version")
	fmt.Println("  fatfingerpicasso demo-export <file>   Draw a sample sketch and export it (.pdf or .png)")
}

func main() {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	l := applog.WithComponent("cli")
	l.Debug("start", slog.String("config", cfgPath), slog.Int("args", len(os.Args)))

	args := os.Args
	if len(args) < 2 {
		if err := ui.Run(cfg); err != nil {
			l.Error("ui failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		return
	}

	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println(version.String())
	case "demo-export":
		if len(args) < 3 {
			fmt.Println("demo-export requires <file>")
			usage()
			os.Exit(2)
		}
		out := args[2]
		if !filepath.IsAbs(out) {
			out = filepath.Join(cfg.Export.Dir, out)
		}
		if err := demoExport(out, cfg); err != nil {
			l.Error("export failed", slog.String("file", out), slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Println("Exported", out)
	case "help", "-h", "--help":
		usage()
	default:
		usage()
		os.Exit(2)
	}
}

// demoExport replays a zig-zag gesture through the input pipeline and
// renders the resulting sketch.
func demoExport(out string, cfg config.AppConfig) error {
	sketch := state.NewSketch()
	d := input.NewDispatcher()
	var addErr error
	d.OnStroke = func(pts []drawing.Point) {
		if _, err := sketch.Add(pts, cfg.StrokeColor(), cfg.Canvas.StrokeWidth); err != nil {
			addErr = err
		}
	}

	w, h := cfg.Canvas.MinWidth, cfg.Canvas.MinHeight
	d.Handle(drawing.DrawingDown, w*0.1, h*0.5)
	for i := 1; i <= 8; i++ {
		y := h * 0.3
		if i%2 == 0 {
			y = h * 0.7
		}
		d.Handle(drawing.DrawingMove, w*0.1+float32(i)*w*0.1, y)
	}
	d.Handle(drawing.DrawingUp, w*0.9, h*0.5)
	if addErr != nil {
		return addErr
	}

	strokes := sketch.Strokes()
	size := export.Size{Width: w, Height: h}
	if strings.EqualFold(filepath.Ext(out), ".pdf") {
		return export.ExportPDF(out, strokes, size)
	}
	return export.ExportPNG(out, strokes, size)
}
