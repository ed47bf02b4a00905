package assets

import "github.com/gdamore/tcell/v2"

// Emoji glyphs used by the renderer and HUD.
const (
	GlyphBall   = "🔵"
	GlyphBlock  = "🧱"
	GlyphPaddle = "🏓"
	GlyphLevel  = "🏁"
	GlyphMuted  = "🔇"
	GlyphSound  = "🔊"
)

// Color roles shared by the renderer and the entity constructors.
var (
	ColorBackground = tcell.ColorBlack
	ColorFrame      = tcell.ColorGray
	ColorHUD        = tcell.ColorWhite
	ColorHUDDim     = tcell.ColorSilver
	ColorMessage    = tcell.ColorYellow
)

// blockColors is indexed by remaining life minus one. Tougher blocks run
// from cool to hot.
var blockColors = []tcell.Color{
	tcell.ColorSteelBlue,
	tcell.ColorMediumSeaGreen,
	tcell.ColorGold,
	tcell.ColorDarkOrange,
	tcell.ColorOrangeRed,
	tcell.ColorCrimson,
	tcell.ColorMediumVioletRed,
	tcell.ColorDarkViolet,
	tcell.ColorIndigo,
}

// BlockColor returns the fill color of a block with the given life. Values
// past the palette reuse its last entry.
func BlockColor(life int) tcell.Color {
	switch {
	case life <= 0:
		return tcell.ColorDimGray
	case life > len(blockColors):
		return blockColors[len(blockColors)-1]
	}
	return blockColors[life-1]
}
