//go:build fyne

package ui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	fstorage "fyne.io/fyne/v2/storage"

	"fatfingerpicasso/internal/config"
	"fatfingerpicasso/internal/export"
	applog "fatfingerpicasso/internal/log"
)

// Run opens the demo window and blocks until it is closed.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI", slog.String("title", cfg.Window.Title))

	a := app.NewWithID("io.fatfingerpicasso.demo")
	win := a.NewWindow(cfg.Window.Title)

	demo := NewDemo(cfg)
	demo.Toolbar.OnExport = func() { showExport(win, demo, cfg.Export.Dir) }
	demo.Show(win)

	win.ShowAndRun()
	l.Info("UI closed")
	return nil
}

func showExport(win fyne.Window, demo *Demo, dir string) {
	l := applog.WithOperation(applog.WithComponent("ui"), "export")
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()

		size := export.Size{Width: demo.Canvas.Size().Width, Height: demo.Canvas.Size().Height}
		strokes := demo.Canvas.Sketch().Strokes()
		name := wc.URI().Name()
		if strings.EqualFold(filepath.Ext(name), ".pdf") {
			err = export.WritePDF(wc, strokes, size)
		} else {
			err = export.WritePNG(wc, strokes, size)
		}
		if err != nil {
			l.Error("export failed", slog.String("file", name), slog.Any("err", err))
			dialog.ShowError(fmt.Errorf("export %s: %w", name, err), win)
			return
		}
		l.Info("exported", slog.String("file", name), slog.Int("strokes", len(strokes)))
	}, win)
	d.SetFileName("sketch.png")
	if abs, err := filepath.Abs(dir); err == nil {
		if lister, err := fstorage.ListerForURI(fstorage.NewFileURI(abs)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}
