package layout

import "fmt"

type Font struct {
	Name string
	// Size is the nominal pixel height.
	Size int
	Bold bool
}

func (f Font) String() string {
	if f.Bold {
		return fmt.Sprintf("%s-%d-bold", f.Name, f.Size)
	}
	return fmt.Sprintf("%s-%d", f.Name, f.Size)
}

var (
	Gothic14      = Font{Name: "gothic", Size: 14}
	Gothic18      = Font{Name: "gothic", Size: 18}
	Gothic18Bold  = Font{Name: "gothic", Size: 18, Bold: true}
	Gothic24Bold  = Font{Name: "gothic", Size: 24, Bold: true}
	Gothic28Bold  = Font{Name: "gothic", Size: 28, Bold: true}
	Bitham30Black = Font{Name: "bitham", Size: 30, Bold: true}
	Bitham42Bold  = Font{Name: "bitham", Size: 42, Bold: true}
	Roboto49      = Font{Name: "roboto", Size: 49}
)

// Fonts lists every preset, smallest first.
var Fonts = []Font{Gothic14, Gothic18, Gothic18Bold, Gothic24Bold, Gothic28Bold, Bitham30Black, Bitham42Bold, Roboto49}

type Size struct {
	W, H int
}

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Measurer reports the rendered extent of text in a font.
type Measurer interface {
	MeasureText(text string, f Font) Size
}

// FitPadding is the horizontal margin kept on each side of fitted text.
const FitPadding = 2

// FitFont returns the first candidate, largest first, whose rendering of
// text fits box. When none fits the last candidate is used.
func FitFont(text string, box Size, candidates []Font, m Measurer) Font {
	if len(candidates) == 0 {
		return Gothic14
	}
	for _, f := range candidates {
		sz := m.MeasureText(text, f)
		if sz.W+2*FitPadding <= box.W && sz.H <= box.H {
			return f
		}
	}
	return candidates[len(candidates)-1]
}
