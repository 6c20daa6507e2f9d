// Package layout maps the face's logical elements to frames, fonts and
// visibility for a given screen size and row count.
package layout

import (
	"github.com/garrettladley/ouraface/internal/measurement"
)

// Placeholder marks a kind the companion reported as absent.
const Placeholder = "--"

// SampleNotice is shown while the demo values are displayed.
const SampleNotice = "This is sample data, not your data!"

const OverlayTitle = "Loading..."

// SlotText is the value text for a slot. An unavailable kind renders the
// placeholder once a fetch has completed and nothing before that.
func SlotText(k measurement.Kind, r measurement.Record, fetchCompleted, compact bool) string {
	switch {
	case r.Available:
		return k.Format(r, compact)
	case fetchCompleted:
		return Placeholder
	default:
		return ""
	}
}

type Input struct {
	Screen Size
	Round  bool

	Rows int
	Row1 [3]measurement.Kind
	Row2 [2]measurement.Kind

	Records        [measurement.NumKinds]measurement.Record
	FetchCompleted bool
	UseEmoji       bool

	Time   string
	Date   string
	Status string

	ShowSample     bool
	ShowOverlay    bool
	ShowOverlayLog bool
	OverlayLog     string

	Measurer Measurer
}

type Placement struct {
	Frame  Rect
	Font   Font
	Text   string
	Hidden bool
	// Kind is set for slot elements.
	Kind    measurement.Kind
	HasKind bool
}

type Plan struct {
	Rows       int
	Placements [NumElements]Placement
}

func (p Plan) At(e Element) Placement {
	return p.Placements[e]
}

// geometry holds everything that depends only on screen size and rows.
type geometry struct {
	time, date, status, sample Rect
	timeFonts, dateFonts       []Font
	row1Value, row1Label       [3]Rect
	row1ValueFonts             []Font
	row1LabelFonts             []Font
	row2Value, row2Label       [2]Rect
	row2ValueFonts             []Font
	row2LabelFonts             []Font
	overlay, overlayLog        Rect
}

func geometryFor(screen Size, round bool, rows int) geometry {
	w, h := screen.W, screen.H
	top := 0
	if round {
		top = 5
	}
	third := w / 3
	half := w / 2

	g := geometry{
		status:     Rect{X: 0, Y: top + 80, W: w, H: 15},
		sample:     Rect{X: 0, Y: top + 100, W: w, H: 20},
		dateFonts:  []Font{Gothic28Bold, Gothic24Bold, Gothic18Bold, Gothic14},
		overlay:    Rect{X: 0, Y: 0, W: w, H: h},
		overlayLog: Rect{X: 4, Y: 30, W: w - 8, H: h - 34},
	}
	for i := range 2 {
		g.row2Value[i] = Rect{X: i * half, Y: h - 41, W: half, H: 20}
		g.row2Label[i] = Rect{X: i * half, Y: h - 21, W: half, H: 20}
	}
	g.row2ValueFonts = []Font{Gothic18Bold, Gothic14}
	g.row2LabelFonts = []Font{Gothic18Bold, Gothic14}

	if rows == 1 {
		g.time = Rect{X: 0, Y: top, W: w, H: 60}
		g.date = Rect{X: 0, Y: top + 55, W: w, H: 30}
		g.timeFonts = []Font{Roboto49, Bitham42Bold, Bitham30Black, Gothic28Bold}
		for i := range 3 {
			g.row1Value[i] = Rect{X: i * third, Y: h - 61, W: third, H: 35}
			g.row1Label[i] = Rect{X: i * third, Y: h - 28, W: third, H: 24}
		}
		g.row1ValueFonts = []Font{Gothic28Bold, Gothic24Bold, Gothic18Bold, Gothic14}
		g.row1LabelFonts = []Font{Gothic24Bold, Gothic18Bold, Gothic14}
		return g
	}

	g.time = Rect{X: 0, Y: top, W: w, H: 50}
	g.date = Rect{X: 0, Y: top + 45, W: w, H: 30}
	g.timeFonts = []Font{Bitham42Bold, Bitham30Black, Gothic28Bold}
	for i := range 3 {
		g.row1Value[i] = Rect{X: i * third, Y: h - 91, W: third, H: 25}
		g.row1Label[i] = Rect{X: i * third, Y: h - 66, W: third, H: 20}
	}
	g.row1ValueFonts = []Font{Gothic24Bold, Gothic18Bold, Gothic14}
	g.row1LabelFonts = []Font{Gothic18Bold, Gothic14}
	return g
}

// Compute is a pure function of in; equal inputs give equal plans.
func Compute(in Input) Plan {
	rows := in.Rows
	if rows != 1 {
		rows = 2
	}
	compact := rows == 1
	g := geometryFor(in.Screen, in.Round, rows)
	m := in.Measurer

	var p Plan
	p.Rows = rows

	fit := func(e Element, text string, frame Rect, fonts []Font) {
		p.Placements[e] = Placement{
			Frame: frame,
			Font:  FitFont(text, frame.Size(), fonts, m),
			Text:  text,
		}
	}

	fit(ElementTime, in.Time, g.time, g.timeFonts)
	fit(ElementDate, in.Date, g.date, g.dateFonts)

	p.Placements[ElementStatus] = Placement{
		Frame:  g.status,
		Font:   Gothic14,
		Text:   in.Status,
		Hidden: in.Status == "",
	}
	p.Placements[ElementSample] = Placement{
		Frame:  g.sample,
		Font:   Gothic14,
		Text:   SampleNotice,
		Hidden: !in.ShowSample,
	}

	slot := func(s Slot, k measurement.Kind, valueFrame, labelFrame Rect, valueFonts, labelFonts []Font, hidden bool) {
		value := SlotText(k, in.Records[k], in.FetchCompleted, compact)
		label := k.Label(in.UseEmoji)
		fit(s.Value, value, valueFrame, valueFonts)
		fit(s.Label, label, labelFrame, labelFonts)
		for _, e := range []Element{s.Value, s.Label} {
			p.Placements[e].Kind = k
			p.Placements[e].HasKind = true
			p.Placements[e].Hidden = hidden
		}
	}

	for i, s := range row1Slots {
		slot(s, in.Row1[i], g.row1Value[i], g.row1Label[i], g.row1ValueFonts, g.row1LabelFonts, false)
	}
	for i, s := range row2Slots {
		slot(s, in.Row2[i], g.row2Value[i], g.row2Label[i], g.row2ValueFonts, g.row2LabelFonts, rows == 1)
	}

	p.Placements[ElementOverlay] = Placement{
		Frame:  g.overlay,
		Font:   Gothic24Bold,
		Text:   OverlayTitle,
		Hidden: !in.ShowOverlay,
	}
	p.Placements[ElementOverlayLog] = Placement{
		Frame:  g.overlayLog,
		Font:   Gothic14,
		Text:   in.OverlayLog,
		Hidden: !in.ShowOverlay || !in.ShowOverlayLog,
	}

	return p
}
