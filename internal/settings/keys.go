package settings

import "github.com/garrettladley/ouraface/internal/palette"

// Persisted keys, one per preference field.
const (
	keyLayoutRows       = "layout_rows"
	keyRow1Left         = "row1_left"
	keyRow1Middle       = "row1_middle"
	keyRow1Right        = "row1_right"
	keyRow2Left         = "row2_left"
	keyRow2Right        = "row2_right"
	keyDateFormat       = "date_format"
	keyThemeMode        = "theme_mode"
	keyCustomColorIndex = "custom_color_index"
	keyUseEmoji         = "use_emoji"
	keyShowDebug        = "show_debug"
	keyShowLoading      = "show_loading"
	keyShowSeconds      = "show_seconds"
	keyCompactTime      = "compact_time"
	keyRefreshFrequency = "refresh_frequency"
)

var row1Keys = [3]string{keyRow1Left, keyRow1Middle, keyRow1Right}

var row2Keys = [2]string{keyRow2Left, keyRow2Right}

func colorKey(e palette.Element) string {
	return "color_" + e.String()
}
