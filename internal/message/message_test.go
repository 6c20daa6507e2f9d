package message

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/ouraface/internal/measurement"
	"github.com/garrettladley/ouraface/internal/palette"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	got := Normalize(Message{
		"heart_rate":     1,
		"row1_left":      2,
		"data_available": "1",
		"useEmoji":       true,
		"use_emoji":      false,
	})
	want := Message{
		"heartRate":     1,
		"row1Left":      2,
		"dataAvailable": "1",
		"useEmoji":      true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestMessage_Int(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		want int
	}{
		{name: "int", v: 85, want: 85},
		{name: "int32", v: int32(-3), want: -3},
		{name: "float truncates", v: 64.9, want: 64},
		{name: "json number", v: go_json.Number("42"), want: 42},
		{name: "json number exponent", v: go_json.Number("1e3"), want: 1000},
		{name: "json number fractional exponent", v: go_json.Number("8.5e3"), want: 8500},
		{name: "json number fraction", v: go_json.Number("-7.9"), want: -7},
		{name: "bool true", v: true, want: 1},
		{name: "numeric string", v: "720", want: 720},
		{name: "leading digits", v: "12abc", want: 12},
		{name: "negative string", v: "-5", want: -5},
		{name: "non numeric string", v: "abc", want: 0},
		{name: "empty string", v: "", want: 0},
		{name: "nil", v: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Message{"k": tt.v}.Int("k")
			if !ok || got != tt.want {
				t.Errorf("Int() = %d, %v, want %d, true", got, ok, tt.want)
			}
		})
	}

	if _, ok := (Message{}).Int("k"); ok {
		t.Error("Int() on missing key reported present")
	}
}

func TestMessage_Bool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    any
		want bool
	}{
		{v: true, want: true},
		{v: false, want: false},
		{v: 1, want: true},
		{v: 0, want: false},
		{v: 2.0, want: true},
		{v: "true", want: true},
		{v: "True", want: true},
		{v: "yes", want: true},
		{v: "Y", want: true},
		{v: "1", want: true},
		{v: "false", want: false},
		{v: "No", want: false},
		{v: "0", want: false},
		{v: "", want: false},
		{v: "7", want: true},
		{v: "off", want: false},
	}

	for _, tt := range tests {
		got, ok := Message{"k": tt.v}.Bool("k")
		if !ok || got != tt.want {
			t.Errorf("Bool(%#v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestDecode_Groups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		msg         Message
		wantMetrics []MetricUpdate
		wantIgnored []Ignored
	}{
		{
			name: "readiness complete",
			msg:  Message{"readinessScore": 85, "temperatureDeviation": 0, "recoveryIndex": 82, "dataAvailable": 1, "readiness": 1},
			wantMetrics: []MetricUpdate{{
				Kind: measurement.Readiness,
				Record: measurement.Record{
					Available: true,
					Primary:   85,
					Secondary: map[string]int{"temperatureDeviation": 0, "recoveryIndex": 82},
				},
			}},
		},
		{
			name:        "readiness missing recovery index",
			msg:         Message{"readinessScore": 85, "temperatureDeviation": 0, "dataAvailable": 1, "readiness": 1},
			wantIgnored: []Ignored{{Kind: measurement.Readiness, Missing: "recoveryIndex"}},
		},
		{
			name: "readiness fields without marker",
			msg:  Message{"readinessScore": 85, "temperatureDeviation": 0, "recoveryIndex": 82, "dataAvailable": 1},
		},
		{
			name: "heart rate snake case unavailable",
			msg:  Message{"heart_rate": 1, "resting_heart_rate": 0, "hrv_score": 0, "data_available": "n"},
			wantMetrics: []MetricUpdate{{
				Kind:   measurement.HeartRate,
				Record: measurement.Record{Secondary: map[string]int{"hrvScore": 0}},
			}},
		},
		{
			name: "activity all zero",
			msg:  Message{"activityScore": 0, "activeCalories": 0, "steps": 0},
			wantMetrics: []MetricUpdate{{
				Kind:   measurement.Activity,
				Record: measurement.Record{Secondary: map[string]int{"activeCalories": 0, "steps": 0}},
			}},
		},
		{
			name: "activity steps only positive",
			msg:  Message{"activityScore": 0, "steps": 1200},
			wantMetrics: []MetricUpdate{{
				Kind:   measurement.Activity,
				Record: measurement.Record{Available: true, Secondary: map[string]int{"steps": 1200}},
			}},
		},
		{
			name: "stress zero duration is available",
			msg:  Message{"stressDuration": 0},
			wantMetrics: []MetricUpdate{{
				Kind:   measurement.Stress,
				Record: measurement.Record{Available: true, Secondary: map[string]int{}},
			}},
		},
		{
			name: "fixed order",
			msg: Message{
				"stressDuration": 60, "sleep": 1, "sleepScore": 70, "totalSleepTime": 400,
				"deepSleepTime": 80, "dataAvailable": 1, "heartRate": 1, "restingHeartRate": 55, "hrvScore": 60,
			},
			wantMetrics: []MetricUpdate{
				{Kind: measurement.HeartRate, Record: measurement.Record{Available: true, Primary: 55, Secondary: map[string]int{"hrvScore": 60}}},
				{Kind: measurement.Sleep, Record: measurement.Record{Available: true, Primary: 70, Secondary: map[string]int{"totalSleepTime": 400, "deepSleepTime": 80}}},
				{Kind: measurement.Stress, Record: measurement.Record{Available: true, Primary: 60, Secondary: map[string]int{}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := Decode(tt.msg)
			if diff := cmp.Diff(tt.wantMetrics, b.Metrics); diff != "" {
				t.Errorf("Metrics mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantIgnored, b.Ignored); diff != "" {
				t.Errorf("Ignored mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_Layout(t *testing.T) {
	t.Parallel()

	t.Run("simple layout needs all three", func(t *testing.T) {
		t.Parallel()

		b := Decode(Message{"layoutLeft": 1, "layoutMiddle": 2})
		if b.Settings.Row1 != [3]*measurement.Kind{} {
			t.Errorf("partial simple layout applied: %v", b.Settings.Row1)
		}

		b = Decode(Message{"layoutLeft": 4, "layoutMiddle": 3, "layoutRight": 7})
		got := [3]measurement.Kind{*b.Settings.Row1[0], *b.Settings.Row1[1], *b.Settings.Row1[2]}
		want := [3]measurement.Kind{measurement.Stress, measurement.Activity, measurement.HeartRate}
		if got != want {
			t.Errorf("Row1 = %v, want %v", got, want)
		}
	})

	t.Run("row config needs layout rows", func(t *testing.T) {
		t.Parallel()

		b := Decode(Message{"row2Left": 3, "row2Right": 4})
		if b.Settings.Rows != nil || b.Settings.Row2 != nil {
			t.Error("row fields applied without layoutRows")
		}
	})

	t.Run("row2 pair applied together", func(t *testing.T) {
		t.Parallel()

		b := Decode(Message{"layoutRows": 2, "row2Left": 3, "row2Right": 4})
		if b.Settings.Rows == nil || *b.Settings.Rows != 2 {
			t.Fatalf("Rows = %v", b.Settings.Rows)
		}
		want := [2]measurement.Kind{measurement.Activity, measurement.Stress}
		if b.Settings.Row2 == nil || *b.Settings.Row2 != want {
			t.Errorf("Row2 = %v, want %v", b.Settings.Row2, want)
		}

		b = Decode(Message{"layoutRows": 2, "row2Left": 3})
		if b.Settings.Row2 != nil {
			t.Error("single row2 field applied")
		}
	})

	t.Run("row1 fields independent", func(t *testing.T) {
		t.Parallel()

		b := Decode(Message{"layoutRows": 1, "row1Middle": 4})
		if b.Settings.Row1[0] != nil || b.Settings.Row1[2] != nil {
			t.Error("absent row1 fields set")
		}
		if b.Settings.Row1[1] == nil || *b.Settings.Row1[1] != measurement.Stress {
			t.Errorf("Row1[1] = %v", b.Settings.Row1[1])
		}
	})
}

func TestDecode_SettingsFields(t *testing.T) {
	t.Parallel()

	b := Decode(Message{
		"dateFormat":       "9",
		"themeMode":        2,
		"customColorIndex": 70,
		"timeColor":        12,
		"stress_color":     "63",
		"useEmoji":         "false",
		"showLoading":      "y",
		"refreshFrequency": 0,
		"bogusField":       "ignored",
		"payloadComplete":  1,
	})

	s := b.Settings
	if s.DateFormat == nil || *s.DateFormat != 9 {
		t.Errorf("DateFormat = %v", s.DateFormat)
	}
	if s.ThemeMode == nil || *s.ThemeMode != palette.ModeCustom {
		t.Errorf("ThemeMode = %v", s.ThemeMode)
	}
	if s.CustomColorIndex == nil || *s.CustomColorIndex != 70 {
		t.Errorf("CustomColorIndex = %v", s.CustomColorIndex)
	}
	wantColors := map[palette.Element]int{palette.ElementTime: 12, palette.ElementStress: 63}
	if diff := cmp.Diff(wantColors, s.ElementColors); diff != "" {
		t.Errorf("ElementColors mismatch (-want +got):\n%s", diff)
	}
	if s.UseEmoji == nil || *s.UseEmoji {
		t.Errorf("UseEmoji = %v", s.UseEmoji)
	}
	if s.ShowLoading == nil || !*s.ShowLoading {
		t.Errorf("ShowLoading = %v", s.ShowLoading)
	}
	if s.RefreshMinutes == nil || *s.RefreshMinutes != 0 {
		t.Errorf("RefreshMinutes = %v", s.RefreshMinutes)
	}
	if s.ShowSeconds != nil || s.CompactTime != nil || s.ShowDebug != nil {
		t.Error("absent preferences decoded")
	}
	if !b.PayloadComplete {
		t.Error("PayloadComplete = false")
	}
}

func TestRequestData(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff(Message{"requestData": 1}, RequestData()); diff != "" {
		t.Errorf("RequestData() mismatch (-want +got):\n%s", diff)
	}
}
