package palette

import (
	"image/color"
	"testing"
)

func TestColorAt_Wraps(t *testing.T) {
	t.Parallel()

	for i := -130; i < 200; i++ {
		if !Equal(ColorAt(i), ColorAt(i+Size)) {
			t.Fatalf("ColorAt(%d) != ColorAt(%d)", i, i+Size)
		}
	}
}

func TestColorAt_Table(t *testing.T) {
	t.Parallel()

	// entries follow the 2-bit-per-channel order
	for i := range Size {
		var (
			want = color.RGBA{
				R: uint8((i >> 4) & 3 * 0x55),
				G: uint8((i >> 2) & 3 * 0x55),
				B: uint8(i & 3 * 0x55),
				A: 0xFF,
			}
			got = ColorAt(i)
		)
		if !Equal(got, want) {
			t.Errorf("ColorAt(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestIsLight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color color.Color
		want  bool
	}{
		{"white", ColorWhite, true},
		{"pastel yellow", ColorPastelYellow, true},
		{"cyan", ColorCyan, true},
		{"limerick", ColorLimerick, true},
		{"black", ColorBlack, false},
		{"oxford blue", ColorOxfordBlue, false},
		{"red", ColorRed, false},
		{"dark gray", ColorDarkGray, false},
		{"equivalent rgba", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsLight(tt.color); got != tt.want {
				t.Errorf("IsLight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		theme    Theme
		wantBg   color.Color
		wantText color.Color
	}{
		{
			name:     "dark",
			theme:    Theme{Mode: ModeDark},
			wantBg:   ColorBlack,
			wantText: ColorWhite,
		},
		{
			name:     "light",
			theme:    Theme{Mode: ModeLight},
			wantBg:   ColorWhite,
			wantText: ColorBlack,
		},
		{
			name:     "custom dark background",
			theme:    Theme{Mode: ModeCustom, CustomIndex: 2},
			wantBg:   ColorDukeBlue,
			wantText: ColorWhite,
		},
		{
			name:     "custom light background",
			theme:    Theme{Mode: ModeCustom, CustomIndex: 62},
			wantBg:   ColorPastelYellow,
			wantText: ColorBlack,
		},
		{
			name:     "custom index wraps",
			theme:    Theme{Mode: ModeCustom, CustomIndex: 64 + 63},
			wantBg:   ColorWhite,
			wantText: ColorBlack,
		},
		{
			name:     "dark ignores per-element colors",
			theme:    Theme{Mode: ModeDark, Elements: map[Element]int{ElementBackground: 48}},
			wantBg:   ColorBlack,
			wantText: ColorWhite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.theme.Background(); !Equal(got, tt.wantBg) {
				t.Errorf("Background() = %v, want %v", got, tt.wantBg)
			}
			if got := tt.theme.Text(); !Equal(got, tt.wantText) {
				t.Errorf("Text() = %v, want %v", got, tt.wantText)
			}
		})
	}
}

func TestTheme_ElementColor(t *testing.T) {
	t.Parallel()

	theme := Theme{
		Mode:        ModeCustom,
		CustomIndex: 63,
		Elements: map[Element]int{
			ElementBackground: 3,
			ElementTime:       48,
		},
	}

	if got := theme.ElementColor(ElementBackground); !Equal(got, ColorBlue) {
		t.Errorf("background = %v, want blue", got)
	}
	if got := theme.ElementColor(ElementTime); !Equal(got, ColorRed) {
		t.Errorf("time = %v, want red", got)
	}
	// no explicit index: legacy contrast against the custom index
	if got := theme.ElementColor(ElementDate); !Equal(got, ColorBlack) {
		t.Errorf("date = %v, want black", got)
	}
}
