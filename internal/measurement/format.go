package measurement

import "fmt"

// FormatStress renders a duration in seconds as "<m>m" below an hour and
// "<h>h <m>m" above. compact drops the minutes on whole hours ("2h").
func FormatStress(seconds int, compact bool) string {
	minutes := seconds / 60
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	h, m := minutes/60, minutes%60
	if compact && m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
