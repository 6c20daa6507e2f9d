package message

import (
	"github.com/garrettladley/ouraface/internal/measurement"
	"github.com/garrettladley/ouraface/internal/palette"
	"github.com/garrettladley/ouraface/internal/settings"
)

// Inbound field names, after normalization.
const (
	FieldDebugStatus     = "debugStatus"
	FieldDataAvailable   = "dataAvailable"
	FieldPayloadComplete = "payloadComplete"

	FieldHeartRate        = "heartRate"
	FieldRestingHeartRate = "restingHeartRate"
	FieldReadiness        = "readiness"
	FieldReadinessScore   = "readinessScore"
	FieldSleep            = "sleep"
	FieldSleepScore       = "sleepScore"
	FieldActivityScore    = "activityScore"
	FieldStressDuration   = "stressDuration"

	FieldLayoutLeft   = "layoutLeft"
	FieldLayoutMiddle = "layoutMiddle"
	FieldLayoutRight  = "layoutRight"
	FieldLayoutRows   = "layoutRows"
	FieldRow1Left     = "row1Left"
	FieldRow1Middle   = "row1Middle"
	FieldRow1Right    = "row1Right"
	FieldRow2Left     = "row2Left"
	FieldRow2Right    = "row2Right"

	FieldDateFormat       = "dateFormat"
	FieldThemeMode        = "themeMode"
	FieldCustomColorIndex = "customColorIndex"

	FieldUseEmoji         = "useEmoji"
	FieldShowLoading      = "showLoading"
	FieldShowSeconds      = "showSeconds"
	FieldCompactTime      = "compactTime"
	FieldShowDebug        = "showDebug"
	FieldRefreshFrequency = "refreshFrequency"
)

var colorFields = []struct {
	field   string
	element palette.Element
}{
	{"backgroundColor", palette.ElementBackground},
	{"timeColor", palette.ElementTime},
	{"dateColor", palette.ElementDate},
	{"readinessColor", palette.ElementReadiness},
	{"sleepColor", palette.ElementSleep},
	{"heartRateColor", palette.ElementHeartRate},
	{"activityColor", palette.ElementActivity},
	{"stressColor", palette.ElementStress},
}

// group describes a metric group gated on a marker field. The record is
// only built when the marker and every required field are present.
type group struct {
	kind     measurement.Kind
	marker   string
	primary  string
	required []string
	optional []string
	build    func(m Message, primary int, secondary map[string]int) bool
}

var groups = []group{
	{
		kind:     measurement.HeartRate,
		marker:   FieldHeartRate,
		primary:  FieldRestingHeartRate,
		required: []string{measurement.KeyHRVScore, FieldDataAvailable},
		build:    availableFlag,
	},
	{
		kind:     measurement.Readiness,
		marker:   FieldReadiness,
		primary:  FieldReadinessScore,
		required: []string{measurement.KeyTemperatureDeviation, measurement.KeyRecoveryIndex, FieldDataAvailable},
		build:    availableFlag,
	},
	{
		kind:     measurement.Sleep,
		marker:   FieldSleep,
		primary:  FieldSleepScore,
		required: []string{measurement.KeyTotalSleepTime, measurement.KeyDeepSleepTime, FieldDataAvailable},
		build:    availableFlag,
	},
	{
		kind:     measurement.Activity,
		marker:   FieldActivityScore,
		primary:  FieldActivityScore,
		optional: []string{measurement.KeyActiveCalories, measurement.KeySteps},
		build: func(_ Message, primary int, secondary map[string]int) bool {
			if primary > 0 {
				return true
			}
			for _, v := range secondary {
				if v > 0 {
					return true
				}
			}
			return false
		},
	},
	{
		kind:     measurement.Stress,
		marker:   FieldStressDuration,
		primary:  FieldStressDuration,
		optional: []string{measurement.KeyStressHighDuration},
		build:    func(Message, int, map[string]int) bool { return true },
	},
}

func availableFlag(m Message, _ int, _ map[string]int) bool {
	v, _ := m.Bool(FieldDataAvailable)
	return v
}

type MetricUpdate struct {
	Kind   measurement.Kind
	Record measurement.Record
}

// Ignored is a group whose marker was present but which was dropped.
type Ignored struct {
	Kind    measurement.Kind
	Missing string
}

// Batch is every update carried by one message, in application order.
type Batch struct {
	DebugStatus     *string
	Metrics         []MetricUpdate
	Ignored         []Ignored
	Settings        settings.Update
	PayloadComplete bool
}

// Decode never fails; absent or partial data simply produces no update.
func Decode(raw Message) Batch {
	m := Normalize(raw)
	var b Batch

	if s, ok := m.String(FieldDebugStatus); ok {
		b.DebugStatus = &s
	}

	for _, g := range groups {
		if !m.Has(g.marker) {
			continue
		}
		if missing := firstMissing(m, g.primary, g.required); missing != "" {
			b.Ignored = append(b.Ignored, Ignored{Kind: g.kind, Missing: missing})
			continue
		}
		primary, _ := m.Int(g.primary)
		secondary := make(map[string]int, len(g.required)+len(g.optional))
		for _, f := range append(append([]string(nil), g.required...), g.optional...) {
			if f == FieldDataAvailable {
				continue
			}
			if v, ok := m.Int(f); ok {
				secondary[f] = v
			}
		}
		b.Metrics = append(b.Metrics, MetricUpdate{
			Kind: g.kind,
			Record: measurement.Record{
				Available: g.build(m, primary, secondary),
				Primary:   primary,
				Secondary: secondary,
			},
		})
	}

	decodeLayout(m, &b.Settings)
	decodeColors(m, &b.Settings)
	decodeDisplay(m, &b.Settings)
	decodePreferences(m, &b.Settings)

	b.PayloadComplete = m.Has(FieldPayloadComplete)
	return b
}

func firstMissing(m Message, primary string, required []string) string {
	if !m.Has(primary) {
		return primary
	}
	for _, f := range required {
		if !m.Has(f) {
			return f
		}
	}
	return ""
}

func decodeLayout(m Message, u *settings.Update) {
	left, okL := m.Int(FieldLayoutLeft)
	middle, okM := m.Int(FieldLayoutMiddle)
	right, okR := m.Int(FieldLayoutRight)
	if okL && okM && okR {
		u.Row1 = [3]*measurement.Kind{kindPtr(left), kindPtr(middle), kindPtr(right)}
	}

	rows, ok := m.Int(FieldLayoutRows)
	if !ok {
		return
	}
	u.Rows = &rows
	for i, f := range []string{FieldRow1Left, FieldRow1Middle, FieldRow1Right} {
		if v, ok := m.Int(f); ok {
			u.Row1[i] = kindPtr(v)
		}
	}
	r2l, okL := m.Int(FieldRow2Left)
	r2r, okR := m.Int(FieldRow2Right)
	if okL && okR {
		u.Row2 = &[2]measurement.Kind{measurement.KindOf(r2l), measurement.KindOf(r2r)}
	}
}

func decodeColors(m Message, u *settings.Update) {
	for _, c := range colorFields {
		v, ok := m.Int(c.field)
		if !ok {
			continue
		}
		if u.ElementColors == nil {
			u.ElementColors = make(map[palette.Element]int)
		}
		u.ElementColors[c.element] = v
	}
}

func decodeDisplay(m Message, u *settings.Update) {
	if v, ok := m.Int(FieldDateFormat); ok {
		u.DateFormat = &v
	}
	if v, ok := m.Int(FieldThemeMode); ok {
		mode := palette.ParseMode(v)
		u.ThemeMode = &mode
	}
	if v, ok := m.Int(FieldCustomColorIndex); ok {
		u.CustomColorIndex = &v
	}
}

func decodePreferences(m Message, u *settings.Update) {
	for _, p := range []struct {
		field string
		dst   **bool
	}{
		{FieldUseEmoji, &u.UseEmoji},
		{FieldShowLoading, &u.ShowLoading},
		{FieldShowSeconds, &u.ShowSeconds},
		{FieldCompactTime, &u.CompactTime},
		{FieldShowDebug, &u.ShowDebug},
	} {
		if v, ok := m.Bool(p.field); ok {
			*p.dst = &v
		}
	}
	if v, ok := m.Int(FieldRefreshFrequency); ok {
		u.RefreshMinutes = &v
	}
}

func kindPtr(v int) *measurement.Kind {
	k := measurement.KindOf(v)
	return &k
}
