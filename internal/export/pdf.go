package export

import (
	"fmt"
	"io"
	"strings"

	"fatfingerpicasso/internal/state"

	"github.com/jung-kurt/gofpdf"
)

func newPDF(strokes []state.Stroke, size Size) (*gofpdf.Fpdf, error) {
	if err := size.validate(); err != nil {
		return nil, err
	}
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(size.Width), Ht: float64(size.Height)},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for _, st := range strokes {
		r, g, b := rgb8(st.Color)
		p.SetDrawColor(r, g, b)
		w := float64(st.Width)
		if w <= 0 {
			w = 1
		}
		p.SetLineWidth(w)
		for i := 1; i < len(st.Points); i++ {
			p.Line(
				float64(st.Points[i-1].X), float64(st.Points[i-1].Y),
				float64(st.Points[i].X), float64(st.Points[i].Y),
			)
		}
	}
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("build pdf: %w", err)
	}
	return p, nil
}

// WritePDF writes a single page the size of the canvas.
func WritePDF(w io.Writer, strokes []state.Stroke, size Size) error {
	p, err := newPDF(strokes, size)
	if err != nil {
		return err
	}
	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func ExportPDF(path string, strokes []state.Stroke, size Size) error {
	if strings.TrimSpace(path) == "" {
		return ErrNoPath
	}
	p, err := newPDF(strokes, size)
	if err != nil {
		return err
	}
	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}
