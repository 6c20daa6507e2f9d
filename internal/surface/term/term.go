// Package term is a surface that renders the watch face as styled terminal
// cells. Pixels map to cells at a fixed scale and every font occupies one
// cell row per line.
package term

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/ouraface/internal/layout"
	"github.com/garrettladley/ouraface/internal/palette"
	"github.com/garrettladley/ouraface/internal/surface"
)

// Pixels per terminal cell.
const (
	CellW = 4
	CellH = 8
)

var _ surface.Surface = (*Surface)(nil)

type Surface struct {
	*surface.Scene

	size layout.Size
}

func New(size layout.Size) *Surface {
	return &Surface{Scene: surface.NewScene(), size: size}
}

// Cols and Rows are the grid dimensions in cells.
func (s *Surface) Cols() int { return (s.size.W + CellW - 1) / CellW }
func (s *Surface) Rows() int { return (s.size.H + CellH - 1) / CellH }

// MeasureText reports the pixel box text would occupy on the grid. Font
// size is ignored; every line is one cell tall.
func (s *Surface) MeasureText(text string, _ layout.Font) layout.Size {
	lines := strings.Split(text, "\n")
	w := 0
	for _, line := range lines {
		w = max(w, lipgloss.Width(line))
	}
	return layout.Size{W: w * CellW, H: len(lines) * CellH}
}

type cell struct {
	r    rune
	fg   color.Color
	bg   color.Color
	bold bool
}

// View paints the scene into the grid and returns it as styled lines.
func (s *Surface) View() string {
	grid := s.grid(s.WindowBackground())
	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = renderRow(row)
	}
	return strings.Join(lines, "\n")
}

// Plain returns the grid text without styling.
func (s *Surface) Plain() string {
	grid := s.grid(nil)
	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.r)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

func (s *Surface) grid(bg color.Color) [][]cell {
	grid := make([][]cell, s.Rows())
	for y := range grid {
		grid[y] = make([]cell, s.Cols())
		for x := range grid[y] {
			grid[y][x] = cell{r: ' ', bg: bg}
		}
	}
	for _, e := range s.Visible() {
		n, _ := s.Node(e)
		paint(grid, e, n)
	}
	return grid
}

func paint(grid [][]cell, e layout.Element, n surface.Node) {
	x0, y0 := n.Frame.X/CellW, n.Frame.Y/CellH
	x1 := (n.Frame.X + n.Frame.W) / CellW
	y1 := max((n.Frame.Y+n.Frame.H)/CellH, y0+1)
	y1 = min(y1, len(grid))
	if y0 < 0 || y0 >= len(grid) || x0 >= x1 {
		return
	}

	if n.Background != nil {
		for y := y0; y < y1; y++ {
			for x := max(x0, 0); x < min(x1, len(grid[y])); x++ {
				grid[y][x] = cell{r: ' ', bg: n.Background}
			}
		}
	}
	if n.Text == "" {
		return
	}

	width := x1 - x0
	for i, line := range strings.Split(n.Text, "\n") {
		y := y0 + i
		if y >= y1 {
			break
		}
		runes := []rune(line)
		if len(runes) > width {
			runes = runes[:width]
		}
		x := x0
		if e != layout.ElementOverlayLog {
			x += (width - len(runes)) / 2
		}
		for j, r := range runes {
			cx := x + j
			if cx < 0 || cx >= len(grid[y]) {
				continue
			}
			grid[y][cx].r = r
			grid[y][cx].fg = n.TextColor
			grid[y][cx].bold = n.Font.Bold
		}
	}
}

// renderRow styles runs of cells sharing colors in one pass each.
func renderRow(row []cell) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && sameStyle(row[i], row[start]) {
			continue
		}
		var run strings.Builder
		for _, c := range row[start:i] {
			run.WriteRune(c.r)
		}
		style := lipgloss.NewStyle().Bold(row[start].bold)
		if row[start].fg != nil {
			style = style.Foreground(row[start].fg)
		}
		if row[start].bg != nil {
			style = style.Background(row[start].bg)
		}
		b.WriteString(style.Render(run.String()))
		start = i
	}
	return b.String()
}

func sameStyle(a, b cell) bool {
	return a.bold == b.bold && palette.Equal(a.fg, b.fg) && palette.Equal(a.bg, b.bg)
}
