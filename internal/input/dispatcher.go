// Package input turns pointer events into updates of a canvas.Tracking and
// the line segments a renderer should draw.
package input

import (
	"fatfingerpicasso/internal/canvas"
)

// Segment is the line from the previous sample to the current one.
type Segment struct {
	From canvas.Point
	To   canvas.Point
}

// Dispatcher owns the tracking state of one canvas. Like the state it
// wraps, it is driven from the UI event loop only.
type Dispatcher struct {
	tracking *canvas.Tracking
	points   []canvas.Point

	OnSegment func(Segment)
	OnStroke  func([]canvas.Point)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{tracking: canvas.NewTracking()}
}

// Tracking returns a copy of the current state.
func (d *Dispatcher) Tracking() canvas.Tracking {
	return *d.tracking
}

// Points returns a copy of the in-progress stroke.
func (d *Dispatcher) Points() []canvas.Point {
	out := make([]canvas.Point, len(d.points))
	copy(out, d.points)
	return out
}

// Handle applies one event. The returned segment is valid only when ok.
func (d *Dispatcher) Handle(kind canvas.DrawingType, x, y float32) (seg Segment, ok bool) {
	switch kind {
	case canvas.DrawingDown:
		d.begin(x, y)
	case canvas.DrawingMove:
		if !d.tracking.Drawing {
			return Segment{}, false
		}
		seg, ok = d.sample(x, y)
	case canvas.DrawingUp:
		if !d.tracking.Drawing {
			return Segment{}, false
		}
		if x != d.tracking.X || y != d.tracking.Y {
			seg, ok = d.sample(x, y)
		}
		d.end()
	}
	return seg, ok
}

// Cancel drops the current gesture without emitting a stroke.
func (d *Dispatcher) Cancel() {
	d.tracking.Drawing = false
	d.points = nil
}

// begin resets the previous sample to the press position so a new gesture
// never connects to the end of the last one. A gesture still in progress is
// finished first.
func (d *Dispatcher) begin(x, y float32) {
	if d.tracking.Drawing {
		d.end()
	}
	t := d.tracking
	t.Drawing = true
	t.X, t.Y = x, y
	t.LastX, t.LastY = x, y
	d.points = []canvas.Point{{X: x, Y: y}}
}

func (d *Dispatcher) sample(x, y float32) (Segment, bool) {
	t := d.tracking
	t.LastX, t.LastY = t.X, t.Y
	t.X, t.Y = x, y
	d.points = append(d.points, canvas.Point{X: x, Y: y})

	seg := Segment{
		From: canvas.Point{X: t.LastX, Y: t.LastY},
		To:   canvas.Point{X: t.X, Y: t.Y},
	}
	if d.OnSegment != nil {
		d.OnSegment(seg)
	}
	return seg, true
}

func (d *Dispatcher) end() {
	d.tracking.Drawing = false
	points := d.points
	d.points = nil
	if len(points) > 1 && d.OnStroke != nil {
		d.OnStroke(points)
	}
}
