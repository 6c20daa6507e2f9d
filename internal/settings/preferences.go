package settings

import (
	"maps"

	"github.com/garrettladley/ouraface/internal/measurement"
	"github.com/garrettladley/ouraface/internal/palette"
)

const (
	MinRows = 1
	MaxRows = 2

	NumDateFormats = 13

	MinRefreshMinutes = 1
)

type Preferences struct {
	Rows int
	Row1 [3]measurement.Kind
	Row2 [2]measurement.Kind

	DateFormat       int
	ThemeMode        palette.Mode
	CustomColorIndex int
	// ElementColors holds explicit palette indices for custom mode. Nil
	// when none has been configured.
	ElementColors map[palette.Element]int

	UseEmoji       bool
	ShowDebug      bool
	ShowLoading    bool
	ShowSeconds    bool
	CompactTime    bool
	RefreshMinutes int
}

func Defaults() Preferences {
	return Preferences{
		Rows:           MaxRows,
		Row1:           [3]measurement.Kind{measurement.Readiness, measurement.Sleep, measurement.HeartRate},
		Row2:           [2]measurement.Kind{measurement.Activity, measurement.Stress},
		DateFormat:     0,
		ThemeMode:      palette.ModeDark,
		UseEmoji:       true,
		ShowLoading:    true,
		RefreshMinutes: 60,
	}
}

func (p Preferences) Theme() palette.Theme {
	return palette.Theme{
		Mode:        p.ThemeMode,
		CustomIndex: p.CustomColorIndex,
		Elements:    maps.Clone(p.ElementColors),
	}
}

func (p Preferences) clone() Preferences {
	p.ElementColors = maps.Clone(p.ElementColors)
	return p
}

// Update carries the fields present in one inbound message. Nil means absent.
type Update struct {
	Rows *int
	Row1 [3]*measurement.Kind
	Row2 *[2]measurement.Kind

	DateFormat       *int
	ThemeMode        *palette.Mode
	CustomColorIndex *int
	ElementColors    map[palette.Element]int

	UseEmoji       *bool
	ShowDebug      *bool
	ShowLoading    *bool
	ShowSeconds    *bool
	CompactTime    *bool
	RefreshMinutes *int
}

// FollowUp tells the caller which derived state an Apply invalidated.
type FollowUp uint8

const (
	// FollowUpTick resubscribes the clock tick at a new granularity.
	FollowUpTick FollowUp = 1 << iota
	// FollowUpRefresh resets the refresh interval counter.
	FollowUpRefresh
	FollowUpLayout
	FollowUpTheme
	FollowUpDate
	// FollowUpOverlay re-evaluates overlay and debug visibility.
	FollowUpOverlay
	FollowUpLabels
)

func (f FollowUp) Has(flag FollowUp) bool { return f&flag != 0 }

func (f FollowUp) String() string {
	if f == 0 {
		return "none"
	}
	names := []struct {
		flag FollowUp
		name string
	}{
		{FollowUpTick, "tick"},
		{FollowUpRefresh, "refresh"},
		{FollowUpLayout, "layout"},
		{FollowUpTheme, "theme"},
		{FollowUpDate, "date"},
		{FollowUpOverlay, "overlay"},
		{FollowUpLabels, "labels"},
	}
	var out string
	for _, n := range names {
		if !f.Has(n.flag) {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	return out
}
