package timefmt

import (
	"testing"
	"time"

	"github.com/garrettladley/ouraface/internal/settings"
)

func TestTime(t *testing.T) {
	t.Parallel()

	morning := time.Date(2026, 3, 7, 9, 5, 7, 0, time.UTC)
	evening := time.Date(2026, 3, 7, 21, 45, 0, 0, time.UTC)

	tests := []struct {
		name        string
		now         time.Time
		use24h      bool
		showSeconds bool
		compact     bool
		want        string
	}{
		{name: "24h", now: morning, use24h: true, want: "09:05"},
		{name: "24h compact", now: morning, use24h: true, compact: true, want: "9:05"},
		{name: "24h seconds", now: morning, use24h: true, showSeconds: true, want: "09:05:07"},
		{name: "12h evening", now: evening, want: "09:45"},
		{name: "12h evening compact", now: evening, compact: true, want: "9:45"},
		{name: "24h evening compact keeps digits", now: evening, use24h: true, compact: true, want: "21:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Time(tt.now, tt.use24h, tt.showSeconds, tt.compact); got != tt.want {
				t.Errorf("Time() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 7, 9, 5, 0, 0, time.UTC)
	want := []string{
		"03-07-2026",
		"07-03-2026",
		"2026-03-07",
		"03/07/2026",
		"07/03/2026",
		"07.03.2026",
		"Mar 07",
		"07 Mar",
		"Mar 07 2026",
		"Sat, Mar 07",
		"Sat 07 Mar",
		"Saturday",
		"03-07",
	}
	if len(want) != NumDateFormats || NumDateFormats != settings.NumDateFormats {
		t.Fatalf("NumDateFormats = %d, settings allows %d", NumDateFormats, settings.NumDateFormats)
	}

	for id, w := range want {
		if got := Date(now, id); got != w {
			t.Errorf("Date(%d) = %q, want %q", id, got, w)
		}
	}

	if got := Date(now, 13); got != want[0] {
		t.Errorf("Date(13) = %q, want fallback %q", got, want[0])
	}
	if got := Date(now, -1); got != want[0] {
		t.Errorf("Date(-1) = %q, want fallback %q", got, want[0])
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	if got := Describe(0); got != "MM-DD-YYYY" {
		t.Errorf("Describe(0) = %q", got)
	}
	if got := Describe(9); got != "Day, Mon DD" {
		t.Errorf("Describe(9) = %q", got)
	}
}
