package ui

import (
	"image/color"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	drawing "fatfingerpicasso/internal/canvas"
	"fatfingerpicasso/internal/input"
	applog "fatfingerpicasso/internal/log"
	"fatfingerpicasso/internal/state"
)

// PicassoWidget is the drawing surface. Mouse and touch events are fed to an
// input.Dispatcher and finished strokes are committed to a state.Sketch.
type PicassoWidget struct {
	widget.BaseWidget

	// TestID is the stable marker used to find the canvas in a widget tree.
	TestID string

	sketch  *state.Sketch
	input   *input.Dispatcher
	minSize fyne.Size
	log     *slog.Logger

	mu     sync.RWMutex
	color  color.Color
	stroke float32

	OnStroke func(state.Stroke)
}

var _ fyne.Widget = (*PicassoWidget)(nil)
var _ fyne.Draggable = (*PicassoWidget)(nil)
var _ desktop.Mouseable = (*PicassoWidget)(nil)
var _ mobile.Touchable = (*PicassoWidget)(nil)

func NewPicassoWidget(sketch *state.Sketch) *PicassoWidget {
	if sketch == nil {
		sketch = state.NewSketch()
	}
	w := &PicassoWidget{
		sketch:  sketch,
		input:   input.NewDispatcher(),
		minSize: fyne.NewSize(300, 300),
		color:   color.Black,
		stroke:  3,
		log:     applog.WithComponent("canvas"),
	}
	w.input.OnStroke = w.commit
	w.input.OnSegment = func(input.Segment) { w.Refresh() }
	w.sketch.OnChange = w.Refresh
	w.ExtendBaseWidget(w)
	return w
}

func (w *PicassoWidget) Sketch() *state.Sketch { return w.sketch }

// Tracking exposes the pointer state of this canvas.
func (w *PicassoWidget) Tracking() drawing.Tracking { return w.input.Tracking() }

func (w *PicassoWidget) SetColor(c color.Color) {
	w.mu.Lock()
	w.color = c
	w.mu.Unlock()
}

func (w *PicassoWidget) Color() color.Color {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.color
}

func (w *PicassoWidget) SetStroke(s float32) {
	if s <= 0 {
		return
	}
	w.mu.Lock()
	w.stroke = s
	w.mu.Unlock()
}

func (w *PicassoWidget) Stroke() float32 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stroke
}

func (w *PicassoWidget) SetMinSize(s fyne.Size) {
	w.minSize = s
	w.Refresh()
}

// Clear drops every committed stroke and any gesture in progress.
func (w *PicassoWidget) Clear() {
	w.input.Cancel()
	w.sketch.Clear()
	w.log.Info("canvas cleared")
}

func (w *PicassoWidget) handle(kind drawing.DrawingType, pos fyne.Position) {
	before := w.input.Tracking().Drawing
	w.input.Handle(kind, pos.X, pos.Y)
	if before != w.input.Tracking().Drawing {
		w.Refresh()
	}
}

func (w *PicassoWidget) commit(points []drawing.Point) {
	st, err := w.sketch.Add(points, w.Color(), w.Stroke())
	if err != nil {
		w.log.Warn("stroke dropped", slog.Any("err", err))
		return
	}
	w.log.Debug("stroke committed", slog.String("id", st.ID), slog.Int("points", len(st.Points)))
	if w.OnStroke != nil {
		w.OnStroke(st)
	}
}

func (w *PicassoWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.handle(drawing.DrawingDown, e.Position)
	}
}

func (w *PicassoWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.handle(drawing.DrawingUp, e.Position)
	}
}

func (w *PicassoWidget) Dragged(e *fyne.DragEvent) {
	w.handle(drawing.DrawingMove, e.Position)
}

// DragEnd finishes the gesture at the last sample when no MouseUp arrives.
func (w *PicassoWidget) DragEnd() {
	t := w.input.Tracking()
	if t.Drawing {
		w.handle(drawing.DrawingUp, fyne.NewPos(t.X, t.Y))
	}
}

func (w *PicassoWidget) TouchDown(e *mobile.TouchEvent) {
	w.handle(drawing.DrawingDown, e.Position)
}

func (w *PicassoWidget) TouchUp(e *mobile.TouchEvent) {
	w.handle(drawing.DrawingUp, e.Position)
}

func (w *PicassoWidget) TouchCancel(*mobile.TouchEvent) {
	w.input.Cancel()
	w.Refresh()
}

func (w *PicassoWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &picassoRenderer{w: w, background: canvas.NewRectangle(color.White)}
	r.rebuild()
	return r
}

type picassoRenderer struct {
	w          *PicassoWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *picassoRenderer) rebuild() {
	objects := []fyne.CanvasObject{r.background}
	for _, st := range r.w.sketch.Strokes() {
		objects = appendSegments(objects, st.Points, st.Color, st.Width)
	}
	if r.w.input.Tracking().Drawing {
		objects = appendSegments(objects, r.w.input.Points(), r.w.Color(), r.w.Stroke())
	}
	r.objects = objects
}

func appendSegments(objects []fyne.CanvasObject, pts []drawing.Point, c color.Color, width float32) []fyne.CanvasObject {
	for i := 1; i < len(pts); i++ {
		seg := canvas.NewLine(c)
		seg.StrokeWidth = width
		seg.Position1 = fyne.NewPos(pts[i-1].X, pts[i-1].Y)
		seg.Position2 = fyne.NewPos(pts[i].X, pts[i].Y)
		objects = append(objects, seg)
	}
	return objects
}

func (r *picassoRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *picassoRenderer) Refresh() {
	r.rebuild()
	r.background.Resize(r.w.Size())
	canvas.Refresh(r.w)
}

func (r *picassoRenderer) Layout(size fyne.Size) { r.background.Resize(size) }

func (r *picassoRenderer) MinSize() fyne.Size { return r.w.minSize }

func (r *picassoRenderer) Destroy() {}

func (w *PicassoWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *PicassoWidget) MouseOut()                      {}
func (w *PicassoWidget) MouseMoved(*desktop.MouseEvent) {}
