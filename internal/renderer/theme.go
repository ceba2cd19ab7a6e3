package renderer

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme holds the styles the grid view paints with.
type Theme struct {
	Cell       tcell.Style
	CellAlt    tcell.Style
	Selected   tcell.Style
	Focus      tcell.Style
	Marquee    tcell.Style
	Header     tcell.Style
	Gutter     tcell.Style
	Corner     tcell.Style
	Background tcell.Style
}

// DefaultTheme derives the palette from a base background and an accent
// color. Selection tones are blends toward the accent so they read as
// the same hue at different strengths.
func DefaultTheme() Theme {
	bg := colorful.Color{R: 0.07, G: 0.07, B: 0.10}
	fg := colorful.Color{R: 0.85, G: 0.87, B: 0.90}
	accent, _ := colorful.Hex("#3a6ea5")

	selectedBg := bg.BlendLuv(accent, 0.55)
	focusBg := bg.BlendLuv(accent, 0.85)
	altBg := bg.BlendLuv(fg, 0.04)
	bandBg := bg.BlendLuv(fg, 0.12)

	base := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
	return Theme{
		Cell:       base,
		CellAlt:    base.Background(toTcell(altBg)),
		Selected:   base.Background(toTcell(selectedBg)),
		Focus:      base.Background(toTcell(focusBg)).Bold(true),
		Marquee:    base.Background(toTcell(selectedBg)).Dim(true),
		Header:     base.Background(toTcell(bandBg)).Bold(true),
		Gutter:     base.Background(toTcell(bandBg)).Foreground(toTcell(fg.BlendLuv(bg, 0.4))),
		Corner:     base.Background(toTcell(bandBg)),
		Background: base,
	}
}

// toTcell converts a colorful color to a tcell RGB color.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
