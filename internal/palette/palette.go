package palette

import "image/color"

var table = [Size]color.Color{
	ColorBlack, ColorOxfordBlue, ColorDukeBlue, ColorBlue,
	ColorDarkGreen, ColorMidnightGreen, ColorCobaltBlue, ColorBlueMoon,
	ColorIslamicGreen, ColorJaegerGreen, ColorTiffanyBlue, ColorVividCerulean,
	ColorGreen, ColorMalachite, ColorMediumSpringGreen, ColorCyan,
	ColorBulgarianRose, ColorImperialPurple, ColorIndigo, ColorElectricUltramarine,
	ColorArmyGreen, ColorDarkGray, ColorLiberty, ColorVeryLightBlue,
	ColorKellyGreen, ColorMayGreen, ColorCadetBlue, ColorPictonBlue,
	ColorBrightGreen, ColorScreaminGreen, ColorMediumAquamarine, ColorElectricBlue,
	ColorDarkCandyAppleRed, ColorJazzberryJam, ColorPurple, ColorVividViolet,
	ColorWindsorTan, ColorRoseVale, ColorPurpureus, ColorLavenderIndigo,
	ColorLimerick, ColorBrass, ColorLightGray, ColorBabyBlueEyes,
	ColorSpringBud, ColorInchworm, ColorMintGreen, ColorCeleste,
	ColorRed, ColorFolly, ColorFashionMagenta, ColorMagenta,
	ColorOrange, ColorSunsetOrange, ColorBrilliantRose, ColorShockingPink,
	ColorChromeYellow, ColorRajah, ColorMelon, ColorRichBrilliantLavender,
	ColorYellow, ColorIcterine, ColorPastelYellow, ColorWhite,
}

// light backgrounds that need dark text
var light = []color.Color{
	ColorWhite,
	ColorVeryLightBlue,
	ColorBabyBlueEyes,
	ColorLightGray,
	ColorPastelYellow,
	ColorIcterine,
	ColorYellow,
	ColorChromeYellow,
	ColorMelon,
	ColorRichBrilliantLavender,
	ColorCyan,
	ColorMintGreen,
	ColorCeleste,
	ColorTiffanyBlue,
	ColorMediumSpringGreen,
	ColorScreaminGreen,
	ColorInchworm,
	ColorSpringBud,
	ColorLimerick,
}

// Index wraps any integer into [0, Size).
func Index(i int) int {
	i %= Size
	if i < 0 {
		i += Size
	}
	return i
}

// ColorAt never fails: out of range indices wrap around the palette.
func ColorAt(index int) color.Color {
	return table[Index(index)]
}

func IsLight(c color.Color) bool {
	for _, l := range light {
		if Equal(c, l) {
			return true
		}
	}
	return false
}

// Equal compares colors by their premultiplied RGBA values.
func Equal(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// Contrast returns the text color that reads on bg.
func Contrast(bg color.Color) color.Color {
	if IsLight(bg) {
		return ColorBlack
	}
	return ColorWhite
}
