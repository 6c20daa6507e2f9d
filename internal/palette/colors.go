package palette

import "charm.land/lipgloss/v2"

// Size is the number of entries in the watch palette.
const Size = 64

// 2 bits per channel, entries ordered by (r<<4 | g<<2 | b).
var (
	ColorBlack                 = lipgloss.Color("#000000")
	ColorOxfordBlue            = lipgloss.Color("#000055")
	ColorDukeBlue              = lipgloss.Color("#0000AA")
	ColorBlue                  = lipgloss.Color("#0000FF")
	ColorDarkGreen             = lipgloss.Color("#005500")
	ColorMidnightGreen         = lipgloss.Color("#005555")
	ColorCobaltBlue            = lipgloss.Color("#0055AA")
	ColorBlueMoon              = lipgloss.Color("#0055FF")
	ColorIslamicGreen          = lipgloss.Color("#00AA00")
	ColorJaegerGreen           = lipgloss.Color("#00AA55")
	ColorTiffanyBlue           = lipgloss.Color("#00AAAA")
	ColorVividCerulean         = lipgloss.Color("#00AAFF")
	ColorGreen                 = lipgloss.Color("#00FF00")
	ColorMalachite             = lipgloss.Color("#00FF55")
	ColorMediumSpringGreen     = lipgloss.Color("#00FFAA")
	ColorCyan                  = lipgloss.Color("#00FFFF")
	ColorBulgarianRose         = lipgloss.Color("#550000")
	ColorImperialPurple        = lipgloss.Color("#550055")
	ColorIndigo                = lipgloss.Color("#5500AA")
	ColorElectricUltramarine   = lipgloss.Color("#5500FF")
	ColorArmyGreen             = lipgloss.Color("#555500")
	ColorDarkGray              = lipgloss.Color("#555555")
	ColorLiberty               = lipgloss.Color("#5555AA")
	ColorVeryLightBlue         = lipgloss.Color("#5555FF")
	ColorKellyGreen            = lipgloss.Color("#55AA00")
	ColorMayGreen              = lipgloss.Color("#55AA55")
	ColorCadetBlue             = lipgloss.Color("#55AAAA")
	ColorPictonBlue            = lipgloss.Color("#55AAFF")
	ColorBrightGreen           = lipgloss.Color("#55FF00")
	ColorScreaminGreen         = lipgloss.Color("#55FF55")
	ColorMediumAquamarine      = lipgloss.Color("#55FFAA")
	ColorElectricBlue          = lipgloss.Color("#55FFFF")
	ColorDarkCandyAppleRed     = lipgloss.Color("#AA0000")
	ColorJazzberryJam          = lipgloss.Color("#AA0055")
	ColorPurple                = lipgloss.Color("#AA00AA")
	ColorVividViolet           = lipgloss.Color("#AA00FF")
	ColorWindsorTan            = lipgloss.Color("#AA5500")
	ColorRoseVale              = lipgloss.Color("#AA5555")
	ColorPurpureus             = lipgloss.Color("#AA55AA")
	ColorLavenderIndigo        = lipgloss.Color("#AA55FF")
	ColorLimerick              = lipgloss.Color("#AAAA00")
	ColorBrass                 = lipgloss.Color("#AAAA55")
	ColorLightGray             = lipgloss.Color("#AAAAAA")
	ColorBabyBlueEyes          = lipgloss.Color("#AAAAFF")
	ColorSpringBud             = lipgloss.Color("#AAFF00")
	ColorInchworm              = lipgloss.Color("#AAFF55")
	ColorMintGreen             = lipgloss.Color("#AAFFAA")
	ColorCeleste               = lipgloss.Color("#AAFFFF")
	ColorRed                   = lipgloss.Color("#FF0000")
	ColorFolly                 = lipgloss.Color("#FF0055")
	ColorFashionMagenta        = lipgloss.Color("#FF00AA")
	ColorMagenta               = lipgloss.Color("#FF00FF")
	ColorOrange                = lipgloss.Color("#FF5500")
	ColorSunsetOrange          = lipgloss.Color("#FF5555")
	ColorBrilliantRose         = lipgloss.Color("#FF55AA")
	ColorShockingPink          = lipgloss.Color("#FF55FF")
	ColorChromeYellow          = lipgloss.Color("#FFAA00")
	ColorRajah                 = lipgloss.Color("#FFAA55")
	ColorMelon                 = lipgloss.Color("#FFAAAA")
	ColorRichBrilliantLavender = lipgloss.Color("#FFAAFF")
	ColorYellow                = lipgloss.Color("#FFFF00")
	ColorIcterine              = lipgloss.Color("#FFFF55")
	ColorPastelYellow          = lipgloss.Color("#FFFFAA")
	ColorWhite                 = lipgloss.Color("#FFFFFF")
)
