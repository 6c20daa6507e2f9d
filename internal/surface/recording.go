package surface

import (
	"fmt"
	"image/color"

	"github.com/garrettladley/ouraface/internal/layout"
)

// Recording is a Surface that keeps an audit trail of every call. Text is
// measured as fixed-width glyphs.
type Recording struct {
	*Scene
	audit []string
}

var _ Surface = (*Recording)(nil)

func NewRecording() *Recording {
	return &Recording{Scene: NewScene()}
}

func (r *Recording) log(format string, args ...any) {
	r.audit = append(r.audit, fmt.Sprintf(format, args...))
}

func (r *Recording) Create(e layout.Element) {
	r.log("create %v", e)
	r.Scene.Create(e)
}

func (r *Recording) Destroy(e layout.Element) {
	r.log("destroy %v", e)
	r.Scene.Destroy(e)
}

func (r *Recording) SetFrame(e layout.Element, rect layout.Rect) {
	r.log("frame %v %d,%d %dx%d", e, rect.X, rect.Y, rect.W, rect.H)
	r.Scene.SetFrame(e, rect)
}

func (r *Recording) SetFont(e layout.Element, f layout.Font) {
	r.log("font %v %v", e, f)
	r.Scene.SetFont(e, f)
}

func (r *Recording) SetText(e layout.Element, text string) {
	r.log("text %v %q", e, text)
	r.Scene.SetText(e, text)
}

func (r *Recording) SetTextColor(e layout.Element, c color.Color) {
	r.log("color %v %s", e, hex(c))
	r.Scene.SetTextColor(e, c)
}

func (r *Recording) SetBackground(e layout.Element, c color.Color) {
	r.log("background %v %s", e, hex(c))
	r.Scene.SetBackground(e, c)
}

func (r *Recording) SetHidden(e layout.Element, hidden bool) {
	r.log("hidden %v %v", e, hidden)
	r.Scene.SetHidden(e, hidden)
}

func (r *Recording) SetWindowBackground(c color.Color) {
	r.log("window %s", hex(c))
	r.Scene.SetWindowBackground(c)
}

func (r *Recording) MeasureText(text string, f layout.Font) layout.Size {
	n := len([]rune(text))
	return layout.Size{W: n * f.Size * 6 / 10, H: f.Size}
}

// Audit returns the calls made since the last Reset.
func (r *Recording) Audit() []string {
	out := make([]string, len(r.audit))
	copy(out, r.audit)
	return out
}

func (r *Recording) ResetAudit() {
	r.audit = nil
}

func hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	red, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", red>>8, g>>8, b>>8)
}
