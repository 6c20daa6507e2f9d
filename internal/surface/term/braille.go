package term

import (
	"image"
	"image/color"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/ouraface/internal/surface/raster"
)

// Braille dumps an image as braille dots, one dot per pixel that differs
// in brightness from bg.
func Braille(img image.Image, bg color.Color) string {
	canvas := drawille.NewCanvas()
	dark := !raster.Luminance(bg)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if raster.Luminance(img.At(x, y)) == dark {
				canvas.Set(x-b.Min.X, y-b.Min.Y)
			}
		}
	}

	rows := canvas.Rows(0, 0, b.Dx(), b.Dy())
	width := (b.Dx() + 1) / 2
	for i, row := range rows {
		if n := len([]rune(row)); n < width {
			rows[i] = row + strings.Repeat(" ", width-n)
		}
	}
	return strings.Join(rows, "\n")
}
