// Package timefmt renders the clock and date strings shown on the face.
package timefmt

import (
	"strings"
	"time"
)

// Time formats the clock. compact drops the leading zero of the hour.
func Time(now time.Time, use24h, showSeconds, compact bool) string {
	layout := "03:04"
	if use24h {
		layout = "15:04"
	}
	if showSeconds {
		layout += ":05"
	}
	s := now.Format(layout)
	if compact && len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}

var dateLayouts = [...]string{
	"01-02-2006",
	"02-01-2006",
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"02.01.2006",
	"Jan 02",
	"02 Jan",
	"Jan 02 2006",
	"Mon, Jan 02",
	"Mon 02 Jan",
	"Monday",
	"01-02",
}

// NumDateFormats is the number of selectable date formats.
const NumDateFormats = len(dateLayouts)

// Date formats now with the given format id; unknown ids use format 0.
func Date(now time.Time, format int) string {
	if format < 0 || format >= NumDateFormats {
		format = 0
	}
	return now.Format(dateLayouts[format])
}

// Describe returns a human readable name for a format id, for CLI output.
func Describe(format int) string {
	if format < 0 || format >= NumDateFormats {
		format = 0
	}
	r := strings.NewReplacer(
		"2006", "YYYY", "01", "MM", "02", "DD",
		"Monday", "Weekday", "Mon", "Day", "Jan", "Mon",
	)
	return r.Replace(dateLayouts[format])
}
