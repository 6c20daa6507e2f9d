package palette

import "image/color"

type Mode int

const (
	ModeDark Mode = iota
	ModeLight
	ModeCustom
)

// ParseMode maps the wire value onto a Mode, falling back to dark.
func ParseMode(v int) Mode {
	switch Mode(v) {
	case ModeLight:
		return ModeLight
	case ModeCustom:
		return ModeCustom
	default:
		return ModeDark
	}
}

func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeCustom:
		return "custom"
	default:
		return "dark"
	}
}

// Element is a themable part of the face.
type Element int

const (
	ElementBackground Element = iota
	ElementTime
	ElementDate
	ElementReadiness
	ElementSleep
	ElementHeartRate
	ElementActivity
	ElementStress
)

var Elements = []Element{
	ElementBackground,
	ElementTime,
	ElementDate,
	ElementReadiness,
	ElementSleep,
	ElementHeartRate,
	ElementActivity,
	ElementStress,
}

func (e Element) String() string {
	switch e {
	case ElementBackground:
		return "background"
	case ElementTime:
		return "time"
	case ElementDate:
		return "date"
	case ElementReadiness:
		return "readiness"
	case ElementSleep:
		return "sleep"
	case ElementHeartRate:
		return "heart_rate"
	case ElementActivity:
		return "activity"
	case ElementStress:
		return "stress"
	default:
		return "unknown"
	}
}

type Theme struct {
	Mode        Mode
	CustomIndex int
	// Elements holds explicit per-element palette indices. Only consulted in
	// ModeCustom; an element missing from the map uses the contrast path.
	Elements map[Element]int
}

func (t Theme) Background() color.Color {
	switch t.Mode {
	case ModeLight:
		return ColorWhite
	case ModeCustom:
		if idx, ok := t.Elements[ElementBackground]; ok {
			return ColorAt(idx)
		}
		return ColorAt(t.CustomIndex)
	default:
		return ColorBlack
	}
}

// Text is the default foreground, derived from the legacy custom index in
// ModeCustom so it always contrasts with the legacy background.
func (t Theme) Text() color.Color {
	switch t.Mode {
	case ModeLight:
		return ColorBlack
	case ModeCustom:
		return Contrast(ColorAt(t.CustomIndex))
	default:
		return ColorWhite
	}
}

// ElementColor resolves the foreground of a text element.
func (t Theme) ElementColor(e Element) color.Color {
	if e == ElementBackground {
		return t.Background()
	}
	if t.Mode == ModeCustom {
		if idx, ok := t.Elements[e]; ok {
			return ColorAt(idx)
		}
	}
	return t.Text()
}

func Background(t Theme) color.Color { return t.Background() }

func Text(t Theme) color.Color { return t.Text() }

func ElementColor(t Theme, e Element) color.Color { return t.ElementColor(e) }
