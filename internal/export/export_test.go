package export

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fatfingerpicasso/internal/state"
)

func sampleStrokes() []state.Stroke {
	return []state.Stroke{
		{Points: []state.Point{{X: 10, Y: 10}, {X: 90, Y: 10}}, Color: color.NRGBA{R: 255, A: 255}, Width: 6},
		{Points: []state.Point{{X: 50, Y: 20}, {X: 50, Y: 80}, {X: 70, Y: 90}}, Color: color.Black, Width: 2},
	}
}

func TestInvalidSize(t *testing.T) {
	for _, sz := range []Size{{0, 10}, {10, 0}, {-1, -1}} {
		if err := WritePDF(&bytes.Buffer{}, nil, sz); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("WritePDF(%v) err = %v, want ErrInvalidSize", sz, err)
		}
		if _, err := RenderPNG(nil, sz); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("RenderPNG(%v) err = %v, want ErrInvalidSize", sz, err)
		}
	}
}

func TestEmptyPath(t *testing.T) {
	if err := ExportPDF(" ", nil, Size{10, 10}); !errors.Is(err, ErrNoPath) {
		t.Fatalf("ExportPDF err = %v, want ErrNoPath", err)
	}
	if err := ExportPNG("", nil, Size{10, 10}); !errors.Is(err, ErrNoPath) {
		t.Fatalf("ExportPNG err = %v, want ErrNoPath", err)
	}
}

func TestExportInvalidSizeLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"bad.png", "bad.pdf"} {
		out := filepath.Join(dir, name)
		var err error
		if filepath.Ext(name) == ".png" {
			err = ExportPNG(out, nil, Size{0, 10})
		} else {
			err = ExportPDF(out, nil, Size{0, 10})
		}
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("%s: err = %v, want ErrInvalidSize", name, err)
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Fatalf("%s: expected no file after failed export, stat err = %v", name, err)
		}
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleStrokes(), Size{Width: 100, Height: 100}); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", buf.Bytes()[:8])
	}
}

func TestExportPDFToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sketch.pdf")
	if err := ExportPDF(out, sampleStrokes(), Size{Width: 200, Height: 150}); err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	fi, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Size() == 0 {
		t.Fatal("pdf file is empty")
	}
}

func TestRenderPNG_PaintsStrokes(t *testing.T) {
	img, err := RenderPNG(sampleStrokes(), Size{Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("unexpected bounds %v", b)
	}
	// On the red stroke.
	r, g, b, _ := img.At(50, 10).RGBA()
	if r>>8 < 200 || g>>8 > 60 || b>>8 > 60 {
		t.Fatalf("expected red at (50,10), got %d,%d,%d", r>>8, g>>8, b>>8)
	}
	// On the black stroke.
	r, g, b, _ = img.At(50, 50).RGBA()
	if r>>8 > 80 || g>>8 > 80 || b>>8 > 80 {
		t.Fatalf("expected dark pixel at (50,50), got %d,%d,%d", r>>8, g>>8, b>>8)
	}
	// Background.
	r, g, b, _ = img.At(5, 95).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Fatalf("expected white background, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestExportPNGToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sketch.png")
	if err := ExportPNG(out, sampleStrokes(), Size{Width: 64, Height: 48}); err != nil {
		t.Fatalf("ExportPNG: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("unexpected bounds %v", b)
	}
}
