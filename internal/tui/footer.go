package tui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ouraface/internal/palette"
	"github.com/garrettladley/ouraface/internal/version"
)

var dimStyle = lipgloss.NewStyle().Foreground(palette.ColorDarkGray)

type footer struct {
	right   string
	width   int
	padding int
}

func newFooter(right string, width int) footer {
	return footer{right: right, width: width, padding: 2}
}

func (f footer) render() string {
	left := dimStyle.Render(version.Get())
	spacer := max(f.width-lipgloss.Width(left)-lipgloss.Width(f.right)-(f.padding*2), 0)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(left + strings.Repeat(" ", spacer) + f.right)
}
