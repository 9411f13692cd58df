package sandbox

import "image/color"

var sandboxPalette = buildSandboxPalette()

// Palette exposes the colors indexed by the values returned from Cells.
func (s *Sandbox) Palette() []color.RGBA {
	return sandboxPalette
}

func buildSandboxPalette() []color.RGBA {
	palette := make([]color.RGBA, len(materialNames))
	for i := range palette {
		palette[i] = MaterialColor(Material(i))
	}
	return palette
}

// Background is the color drawn for empty and off-grid cells.
var Background = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// MaterialColor returns the display color for m.
func MaterialColor(m Material) color.RGBA {
	switch m {
	case MaterialSand:
		return color.RGBA{R: 253, G: 249, B: 0, A: 255}
	case MaterialStone:
		return color.RGBA{R: 130, G: 130, B: 130, A: 255}
	case MaterialWater:
		return color.RGBA{R: 0, G: 121, B: 241, A: 255}
	default:
		return Background
	}
}
