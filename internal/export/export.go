// Package export renders a sketch to PDF and PNG.
package export

import (
	"errors"
	"image/color"
)

// Size is the canvas extent in canvas units. PDF output uses one point per
// unit and PNG output one pixel per unit.
type Size struct {
	Width  float32
	Height float32
}

var (
	ErrInvalidSize = errors.New("export size must be positive")
	ErrNoPath      = errors.New("export path is empty")
)

func (s Size) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return ErrInvalidSize
	}
	return nil
}

func rgb8(c color.Color) (r, g, b int) {
	if c == nil {
		return 0, 0, 0
	}
	cr, cg, cb, _ := c.RGBA()
	return int(cr >> 8), int(cg >> 8), int(cb >> 8)
}
