package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	"fatfingerpicasso/internal/state"

	"golang.org/x/image/vector"
)

// capSides is the polygon resolution of the round caps drawn at each sample.
const capSides = 12

// RenderPNG rasterises the strokes onto a white image.
func RenderPNG(strokes []state.Stroke, size Size) (*image.RGBA, error) {
	if err := size.validate(); err != nil {
		return nil, err
	}
	w := int(math.Ceil(float64(size.Width)))
	h := int(math.Ceil(float64(size.Height)))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	z := vector.NewRasterizer(w, h)
	for _, st := range strokes {
		if len(st.Points) == 0 {
			continue
		}
		half := st.Width / 2
		if half <= 0 {
			half = 0.5
		}
		z.Reset(w, h)
		z.DrawOp = draw.Over
		for i, p := range st.Points {
			addDisc(z, p, half)
			if i > 0 {
				addQuad(z, st.Points[i-1], p, half)
			}
		}
		c := st.Color
		if c == nil {
			c = color.Black
		}
		z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	}
	return img, nil
}

func addQuad(z *vector.Rasterizer, a, b state.Point, half float32) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*half, dx/l*half
	z.MoveTo(a.X+nx, a.Y+ny)
	z.LineTo(b.X+nx, b.Y+ny)
	z.LineTo(b.X-nx, b.Y-ny)
	z.LineTo(a.X-nx, a.Y-ny)
	z.ClosePath()
}

func addDisc(z *vector.Rasterizer, c state.Point, r float32) {
	for i := 0; i < capSides; i++ {
		a := 2 * math.Pi * float64(i) / capSides
		x := c.X + r*float32(math.Cos(a))
		y := c.Y + r*float32(math.Sin(a))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

func WritePNG(w io.Writer, strokes []state.Stroke, size Size) error {
	img, err := RenderPNG(strokes, size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func ExportPNG(path string, strokes []state.Stroke, size Size) error {
	if strings.TrimSpace(path) == "" {
		return ErrNoPath
	}
	if err := size.validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePNG(f, strokes, size); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
