package state

import (
	"image/color"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sketch is the ordered set of finished strokes on a canvas. Reads may come
// from the renderer and exporters while the UI appends.
type Sketch struct {
	mu      sync.RWMutex
	strokes []Stroke
	clock   clock

	// OnChange is called after every mutation, outside the lock.
	OnChange func()
}

func NewSketch() *Sketch {
	return &Sketch{strokes: make([]Stroke, 0)}
}

// Add commits a finished stroke and returns the stored copy.
func (s *Sketch) Add(points []Point, c color.Color, width float32) (Stroke, error) {
	if len(points) < 2 {
		return Stroke{}, ErrShortStroke
	}
	if c == nil {
		c = color.Black
	}
	st := Stroke{
		ID:     uuid.NewString(),
		Points: append([]Point(nil), points...),
		Color:  c,
		Width:  width,
		Time:   time.Now(),
	}

	s.mu.Lock()
	st.Seq = s.clock.tick()
	s.strokes = append(s.strokes, st)
	s.mu.Unlock()

	s.changed()
	return st.clone(), nil
}

// Strokes returns a deep copy in commit order.
func (s *Sketch) Strokes() []Stroke {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Stroke, len(s.strokes))
	for i, st := range s.strokes {
		out[i] = st.clone()
	}
	return out
}

func (s *Sketch) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.strokes)
}

func (s *Sketch) Clear() {
	s.mu.Lock()
	s.strokes = make([]Stroke, 0)
	s.clock.reset()
	s.mu.Unlock()
	s.changed()
}

func (s *Sketch) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
