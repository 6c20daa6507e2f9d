package face

import (
	"context"
	"image/color"

	"github.com/garrettladley/ouraface/internal/layout"
	"github.com/garrettladley/ouraface/internal/palette"
	"github.com/garrettladley/ouraface/internal/timefmt"
	"github.com/garrettladley/ouraface/internal/xslog"
)

// shadow mirrors what has been sent to the surface so each pass only
// issues calls for values that changed.
type shadow struct {
	nodes  [layout.NumElements]shadowNode
	window color.Color
}

type shadowNode struct {
	valid      bool
	frame      layout.Rect
	font       layout.Font
	text       string
	textColor  color.Color
	background color.Color
	hidden     bool
}

func newShadow() shadow {
	return shadow{}
}

// render is the single composition pass run at the end of every callback.
func (f *Face) render(ctx context.Context) {
	if !f.started {
		return
	}
	p := f.settings.Get()
	now := f.sched.Now()

	plan := layout.Compute(layout.Input{
		Screen:         f.cfg.Screen,
		Round:          f.cfg.Round,
		Rows:           p.Rows,
		Row1:           p.Row1,
		Row2:           p.Row2,
		Records:        f.measurements.Snapshot(),
		FetchCompleted: f.fetchCompleted,
		UseEmoji:       p.UseEmoji,
		Time:           timefmt.Time(now, f.cfg.Clock24h, p.ShowSeconds, p.CompactTime),
		Date:           timefmt.Date(now, p.DateFormat),
		Status:         f.machine.Status(),
		ShowSample:     f.sample,
		ShowOverlay:    f.machine.OverlayVisible(),
		ShowOverlayLog: f.machine.DebugVisible(),
		OverlayLog:     f.machine.DebugLog(),
		Measurer:       f.surface,
	})

	theme := p.Theme()
	calls := 0
	if !palette.Equal(f.shadow.window, palette.Background(theme)) {
		f.surface.SetWindowBackground(palette.Background(theme))
		f.shadow.window = palette.Background(theme)
		calls++
	}

	for e := range layout.NumElements {
		pl := plan.At(e)
		calls += f.apply(e, pl, textColor(theme, e, pl), background(theme, e))
	}

	f.recorder.Rendered(calls)
	if calls > 0 {
		f.logger.DebugContext(ctx, "rendered", xslog.Rows(plan.Rows), xslog.Count(calls))
	}
}

func (f *Face) apply(e layout.Element, pl layout.Placement, fg, bg color.Color) int {
	n := &f.shadow.nodes[e]
	s := f.surface
	calls := 0
	first := !n.valid

	if first || n.frame != pl.Frame {
		s.SetFrame(e, pl.Frame)
		n.frame = pl.Frame
		calls++
	}
	if first || n.font != pl.Font {
		s.SetFont(e, pl.Font)
		n.font = pl.Font
		calls++
	}
	if first || n.text != pl.Text {
		s.SetText(e, pl.Text)
		n.text = pl.Text
		calls++
	}
	if first || !palette.Equal(n.textColor, fg) {
		s.SetTextColor(e, fg)
		n.textColor = fg
		calls++
	}
	if bg != nil && (first || !palette.Equal(n.background, bg)) {
		s.SetBackground(e, bg)
		n.background = bg
		calls++
	}
	if first || n.hidden != pl.Hidden {
		s.SetHidden(e, pl.Hidden)
		n.hidden = pl.Hidden
		calls++
	}
	n.valid = true
	return calls
}

func textColor(theme palette.Theme, e layout.Element, pl layout.Placement) color.Color {
	switch {
	case pl.HasKind:
		return palette.ElementColor(theme, pl.Kind.Element())
	case e == layout.ElementTime:
		return palette.ElementColor(theme, palette.ElementTime)
	case e == layout.ElementDate:
		return palette.ElementColor(theme, palette.ElementDate)
	default:
		return palette.Text(theme)
	}
}

// background is only set on the overlay, which must hide what is under it.
func background(theme palette.Theme, e layout.Element) color.Color {
	if e == layout.ElementOverlay {
		return palette.Background(theme)
	}
	return nil
}
