package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const eraserStroke = 20.0

// Palette is the set of swatches offered by the toolbar.
var Palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},
	color.NRGBA{G: 255, A: 255},
	color.NRGBA{B: 255, A: 255},
	color.NRGBA{R: 255, G: 255, A: 255},
}

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar remembers the pen settings so switching back from the eraser
// restores them.
type Toolbar struct {
	canvas    *PicassoWidget
	penColor  color.Color
	penStroke float32
	erasing   bool
	slider    *widget.Slider
	swatches  []*colorSwatch
	OnExport  func()
	object    fyne.CanvasObject
}

func NewToolbar(w *PicassoWidget) *Toolbar {
	t := &Toolbar{
		canvas:    w,
		penColor:  w.Color(),
		penStroke: w.Stroke(),
	}

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), t.Pen),
		widget.NewToolbarAction(theme.DeleteIcon(), t.Eraser),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), w.Clear),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			if t.OnExport != nil {
				t.OnExport()
			}
		}),
	)

	colorBox := container.NewHBox()
	for _, c := range Palette {
		s := newColorSwatch(c, t.PickColor)
		t.swatches = append(t.swatches, s)
		colorBox.Add(s)
	}

	t.slider = widget.NewSlider(1.0, 50.0)
	t.slider.SetValue(float64(t.penStroke))
	t.slider.OnChanged = func(v float64) { t.SetStroke(float32(v)) }
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.slider)

	t.object = container.NewHBox(
		widget.NewLabel("Tool:"),
		actions,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderBox,
		layout.NewSpacer(),
	)
	return t
}

func (t *Toolbar) Object() fyne.CanvasObject { return t.object }

func (t *Toolbar) Pen() {
	t.erasing = false
	t.canvas.SetColor(t.penColor)
	t.canvas.SetStroke(t.penStroke)
}

// Eraser paints with the background colour.
func (t *Toolbar) Eraser() {
	t.erasing = true
	t.canvas.SetColor(color.White)
	t.canvas.SetStroke(eraserStroke)
}

func (t *Toolbar) PickColor(c color.Color) {
	t.penColor = c
	t.Pen()
}

func (t *Toolbar) SetStroke(s float32) {
	t.penStroke = s
	if !t.erasing {
		t.canvas.SetStroke(s)
	}
}
