package measurement

import (
	"strconv"

	"github.com/garrettladley/ouraface/internal/palette"
)

// Kind is one of the tracked health metrics. Its wire value is the index
// the companion uses in layout fields.
type Kind int

const (
	Readiness Kind = iota
	Sleep
	HeartRate
	Activity
	Stress
)

const NumKinds = 5

var Kinds = [NumKinds]Kind{Readiness, Sleep, HeartRate, Activity, Stress}

// descriptor is everything that varies per kind. Adding a kind means adding
// one entry here.
type descriptor struct {
	name    string
	emoji   string
	label   string
	element palette.Element
	format  func(r Record, compact bool) string
}

var descriptors = [NumKinds]descriptor{
	Readiness: {
		name:    "readiness",
		emoji:   "🎉",
		label:   "RDY",
		element: palette.ElementReadiness,
		format:  formatPrimary,
	},
	Sleep: {
		name:    "sleep",
		emoji:   "😴",
		label:   "SLP",
		element: palette.ElementSleep,
		format:  formatPrimary,
	},
	HeartRate: {
		name:    "heart_rate",
		emoji:   "❤",
		label:   "HR",
		element: palette.ElementHeartRate,
		format:  formatPrimary,
	},
	Activity: {
		name:    "activity",
		emoji:   "🔥",
		label:   "ACT",
		element: palette.ElementActivity,
		format:  formatPrimary,
	},
	Stress: {
		name:    "stress",
		emoji:   "😰",
		label:   "STR",
		element: palette.ElementStress,
		format: func(r Record, compact bool) string {
			return FormatStress(r.Primary, compact)
		},
	},
}

// KindOf maps a wire value onto a Kind; out of range values wrap.
func KindOf(v int) Kind {
	v %= NumKinds
	if v < 0 {
		v += NumKinds
	}
	return Kind(v)
}

func (k Kind) valid() bool { return k >= 0 && k < NumKinds }

func (k Kind) desc() descriptor {
	if !k.valid() {
		return descriptors[KindOf(int(k))]
	}
	return descriptors[k]
}

func (k Kind) String() string { return k.desc().name }

// Label returns the slot label, either an emoji or a short text tag.
func (k Kind) Label(emoji bool) string {
	d := k.desc()
	if emoji {
		return d.emoji
	}
	return d.label
}

func (k Kind) Element() palette.Element { return k.desc().element }

// Format renders the primary value of r. compact selects the legacy
// single-row rendering where it differs.
func (k Kind) Format(r Record, compact bool) string {
	return k.desc().format(r, compact)
}

func formatPrimary(r Record, _ bool) string {
	return strconv.Itoa(r.Primary)
}
