// Package canvas holds the pointer tracking state shared by the input
// dispatcher and the renderer of a single drawing canvas.
package canvas

import (
	"errors"
	"fmt"
)

// Tracking is the per-canvas pointer state. One instance belongs to the
// component handling input for one canvas; it is not safe for concurrent use.
type Tracking struct {
	Drawing bool
	X       float32
	Y       float32
	LastX   float32
	LastY   float32
}

// NewTracking returns an idle tracking state at the origin.
func NewTracking() *Tracking {
	return &Tracking{
		Drawing: false,
		X:       0,
		Y:       0,
		LastX:   0,
		LastY:   0,
	}
}

// DrawingType is the phase of a gesture.
type DrawingType string

const (
	DrawingDown DrawingType = "down"
	DrawingMove DrawingType = "move"
	DrawingUp   DrawingType = "up"
)

var ErrUnknownDrawingType = errors.New("unknown drawing type")

// DrawingTypes lists every gesture phase in order.
func DrawingTypes() []DrawingType {
	return []DrawingType{DrawingDown, DrawingMove, DrawingUp}
}

func (t DrawingType) Valid() bool {
	switch t {
	case DrawingDown, DrawingMove, DrawingUp:
		return true
	}
	return false
}

func (t DrawingType) String() string { return string(t) }

// ParseDrawingType accepts only the exact lowercase tags.
func ParseDrawingType(s string) (DrawingType, error) {
	t := DrawingType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDrawingType, s)
	}
	return t, nil
}

// Point is one pointer sample in canvas coordinates.
type Point struct {
	X float32
	Y float32
}
