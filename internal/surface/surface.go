// Package surface defines the display abstraction the face draws on and a
// retained scene shared by the concrete surfaces.
package surface

import (
	"image/color"

	"github.com/garrettladley/ouraface/internal/layout"
)

// Surface is a retained-mode display of text elements.
type Surface interface {
	layout.Measurer

	Create(e layout.Element)
	Destroy(e layout.Element)
	SetFrame(e layout.Element, r layout.Rect)
	SetFont(e layout.Element, f layout.Font)
	SetText(e layout.Element, text string)
	SetTextColor(e layout.Element, c color.Color)
	// SetBackground fills the element's frame; nil means transparent.
	SetBackground(e layout.Element, c color.Color)
	SetHidden(e layout.Element, hidden bool)
	SetWindowBackground(c color.Color)
}

// Node is the retained state of one element.
type Node struct {
	Frame      layout.Rect
	Font       layout.Font
	Text       string
	TextColor  color.Color
	Background color.Color
	Hidden     bool
}

// Scene stores element state. Concrete surfaces embed it and add
// measurement and drawing.
type Scene struct {
	nodes  map[layout.Element]*Node
	window color.Color
}

func NewScene() *Scene {
	return &Scene{nodes: make(map[layout.Element]*Node)}
}

func (s *Scene) Create(e layout.Element) {
	if _, ok := s.nodes[e]; ok {
		return
	}
	s.nodes[e] = &Node{TextColor: color.White}
}

func (s *Scene) Destroy(e layout.Element) {
	delete(s.nodes, e)
}

func (s *Scene) SetFrame(e layout.Element, r layout.Rect) {
	if n, ok := s.nodes[e]; ok {
		n.Frame = r
	}
}

func (s *Scene) SetFont(e layout.Element, f layout.Font) {
	if n, ok := s.nodes[e]; ok {
		n.Font = f
	}
}

func (s *Scene) SetText(e layout.Element, text string) {
	if n, ok := s.nodes[e]; ok {
		n.Text = text
	}
}

func (s *Scene) SetTextColor(e layout.Element, c color.Color) {
	if n, ok := s.nodes[e]; ok {
		n.TextColor = c
	}
}

func (s *Scene) SetBackground(e layout.Element, c color.Color) {
	if n, ok := s.nodes[e]; ok {
		n.Background = c
	}
}

func (s *Scene) SetHidden(e layout.Element, hidden bool) {
	if n, ok := s.nodes[e]; ok {
		n.Hidden = hidden
	}
}

func (s *Scene) SetWindowBackground(c color.Color) {
	s.window = c
}

func (s *Scene) WindowBackground() color.Color {
	if s.window == nil {
		return color.Black
	}
	return s.window
}

// Node returns a copy of the element state.
func (s *Scene) Node(e layout.Element) (Node, bool) {
	n, ok := s.nodes[e]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Visible lists created, non-hidden elements in paint order.
func (s *Scene) Visible() []layout.Element {
	out := make([]layout.Element, 0, len(s.nodes))
	for e := range layout.NumElements {
		if n, ok := s.nodes[e]; ok && !n.Hidden {
			out = append(out, e)
		}
	}
	return out
}
