package game

import "image/color"

// TeamColors returns the normal and selected display colours for a
// team. Kept as a pure function so no colour table lives on the unit.
func TeamColors(t Team) (normal, selected color.RGBA) {
	switch t {
	case TeamBlue:
		return color.RGBA{R: 40, G: 90, B: 225, A: 255},
			color.RGBA{R: 130, G: 175, B: 255, A: 255}
	default: // TeamRed
		return color.RGBA{R: 215, G: 45, B: 45, A: 255},
			color.RGBA{R: 255, G: 150, B: 150, A: 255}
	}
}
