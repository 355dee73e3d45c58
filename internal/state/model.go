// Package state keeps the committed strokes of one canvas.
package state

import (
	"errors"
	"image/color"
	"time"

	"fatfingerpicasso/internal/canvas"
)

type Point = canvas.Point

type Stroke struct {
	ID     string
	Points []Point
	Color  color.Color
	Width  float32
	Seq    uint64
	Time   time.Time
}

var ErrShortStroke = errors.New("stroke needs at least two points")

func (s Stroke) clone() Stroke {
	pts := make([]Point, len(s.Points))
	copy(pts, s.Points)
	s.Points = pts
	return s
}
