package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"fatfingerpicasso/internal/config"
	"fatfingerpicasso/internal/state"
)

// Demo is the content of the demo window: a heading, the toolbar and a
// single drawing canvas.
type Demo struct {
	Title   string
	Heading *widget.RichText
	Canvas  *PicassoWidget
	Toolbar *Toolbar
	Content fyne.CanvasObject

	size fyne.Size
}

func NewDemo(cfg config.AppConfig) *Demo {
	c := NewPicassoWidget(state.NewSketch())
	c.TestID = cfg.Canvas.TestID
	c.SetColor(cfg.StrokeColor())
	c.SetStroke(cfg.Canvas.StrokeWidth)
	c.SetMinSize(fyne.NewSize(cfg.Canvas.MinWidth, cfg.Canvas.MinHeight))

	heading := widget.NewRichText(&widget.TextSegment{
		Style: widget.RichTextStyleHeading,
		Text:  cfg.Window.Heading,
	})
	tb := NewToolbar(c)

	return &Demo{
		Title:   cfg.Window.Title,
		Heading: heading,
		Canvas:  c,
		Toolbar: tb,
		Content: container.NewBorder(container.NewVBox(heading, tb.Object()), nil, nil, nil, c),
		size:    fyne.NewSize(cfg.Window.Width, cfg.Window.Height),
	}
}

// HeadingText returns the plain text of the heading.
func (d *Demo) HeadingText() string { return d.Heading.String() }

// Show installs the demo in win.
func (d *Demo) Show(win fyne.Window) {
	win.SetTitle(d.Title)
	win.SetContent(d.Content)
	win.Resize(d.size)
}

// FindByTestID returns the canvas carrying id under root.
func FindByTestID(root fyne.CanvasObject, id string) *PicassoWidget {
	var found *PicassoWidget
	walk(root, func(o fyne.CanvasObject) bool {
		if p, ok := o.(*PicassoWidget); ok && p.TestID == id {
			found = p
			return false
		}
		return true
	})
	return found
}

// CountCanvases counts drawing canvases under root.
func CountCanvases(root fyne.CanvasObject) int {
	n := 0
	walk(root, func(o fyne.CanvasObject) bool {
		if _, ok := o.(*PicassoWidget); ok {
			n++
		}
		return true
	})
	return n
}

func walk(o fyne.CanvasObject, visit func(fyne.CanvasObject) bool) bool {
	if o == nil {
		return true
	}
	if !visit(o) {
		return false
	}
	if c, ok := o.(*fyne.Container); ok {
		for _, child := range c.Objects {
			if !walk(child, visit) {
				return false
			}
		}
	}
	return true
}
