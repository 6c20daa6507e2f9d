// Package raster is a surface that paints into an in-memory RGBA frame,
// used for PNG snapshots and the braille dump.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/garrettladley/ouraface/internal/layout"
	"github.com/garrettladley/ouraface/internal/surface"
)

var _ surface.Surface = (*Surface)(nil)

type Surface struct {
	*surface.Scene

	size    layout.Size
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[layout.Font]font.Face
}

func New(size layout.Size) (*Surface, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &Surface{
		Scene:   surface.NewScene(),
		size:    size,
		regular: regular,
		bold:    bold,
		faces:   make(map[layout.Font]font.Face),
	}, nil
}

// face returns a cached face for f. Go fonts render slightly wider than the
// watch fonts at the same nominal size, so sizes are scaled down.
func (s *Surface) face(f layout.Font) font.Face {
	if face, ok := s.faces[f]; ok {
		return face
	}
	src := s.regular
	if f.Bold {
		src = s.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(f.Size) * 0.85,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Only fails for invalid options.
		panic(fmt.Sprintf("raster: face %v: %v", f, err))
	}
	s.faces[f] = face
	return face
}

func (s *Surface) lineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// MeasureText returns the bounding box of text, one line per "\n".
func (s *Surface) MeasureText(text string, f layout.Font) layout.Size {
	face := s.face(f)
	lines := strings.Split(text, "\n")
	w := 0
	for _, line := range lines {
		w = max(w, font.MeasureString(face, line).Ceil())
	}
	return layout.Size{W: w, H: len(lines) * s.lineHeight(face)}
}

// Render paints the window background and every visible element.
func (s *Surface) Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.size.W, s.size.H))
	draw.Draw(img, img.Bounds(), image.NewUniform(s.WindowBackground()), image.Point{}, draw.Src)

	for _, e := range s.Visible() {
		n, _ := s.Node(e)
		s.paint(img, e, n)
	}
	return img
}

func (s *Surface) paint(img *image.RGBA, e layout.Element, n surface.Node) {
	r := image.Rect(n.Frame.X, n.Frame.Y, n.Frame.X+n.Frame.W, n.Frame.Y+n.Frame.H).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	if n.Background != nil {
		draw.Draw(img, r, image.NewUniform(n.Background), image.Point{}, draw.Src)
	}
	if n.Text == "" || n.TextColor == nil {
		return
	}

	clip, ok := img.SubImage(r).(*image.RGBA)
	if !ok {
		return
	}
	face := s.face(n.Font)
	d := &font.Drawer{
		Dst:  clip,
		Src:  image.NewUniform(n.TextColor),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	step := s.lineHeight(face)
	for i, line := range strings.Split(n.Text, "\n") {
		x := n.Frame.X
		if e != layout.ElementOverlayLog {
			x += (n.Frame.W - d.MeasureString(line).Ceil()) / 2
		}
		y := n.Frame.Y + i*step + ascent
		if y-ascent >= r.Max.Y {
			break
		}
		d.Dot = fixed.P(x, y)
		d.DrawString(line)
	}
}

// EncodePNG writes the current frame as a PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.Render()); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Luminance reports whether c is closer to white than black.
func Luminance(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return (299*r+587*g+114*b)/1000 > 0x7FFF
}
