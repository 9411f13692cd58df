package ui

import (
	"image"
	"image/color"
)

const (
	buttonWidth  = 80
	buttonHeight = 40
	buttonGap    = 6
	buttonInset  = 4
	lineHeight   = 18
)

type button struct {
	rect  image.Rectangle
	label string
	// material is set for material buttons; delta for brush buttons.
	material string
	delta    int
}

// materialButtons lays out one button per material in two columns, relative
// to the panel's top-left corner.
func materialButtons(names []string) []button {
	buttons := make([]button, 0, len(names))
	for i, name := range names {
		col := i % 2
		row := i / 2
		x := buttonInset + col*(buttonWidth+buttonGap)
		y := buttonInset + row*(buttonHeight+buttonInset)
		buttons = append(buttons, button{
			rect:     image.Rect(x, y, x+buttonWidth, y+buttonHeight),
			label:    name,
			material: name,
		})
	}
	return buttons
}

// brushButtons places the -/+ pair below the material grid.
func brushButtons(materialCount int) []button {
	rows := (materialCount + 1) / 2
	top := buttonInset + rows*(buttonHeight+buttonInset) + lineHeight
	size := 24
	minus := image.Rect(PanelWidth-buttonInset-2*size-buttonGap, top, PanelWidth-buttonInset-size-buttonGap, top+size)
	plus := image.Rect(PanelWidth-buttonInset-size, top, PanelWidth-buttonInset, top+size)
	return []button{
		{rect: minus, label: "-", delta: -1},
		{rect: plus, label: "+", delta: 1},
	}
}

func hitButton(buttons []button, x, y int) (button, bool) {
	for _, b := range buttons {
		if pointInRect(x, y, b.rect) {
			return b, true
		}
	}
	return button{}, false
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

func buttonColors(material string) (bg, fg color.RGBA) {
	switch material {
	case "sand":
		return color.RGBA{R: 255, G: 203, B: 0, A: 255}, color.RGBA{A: 255}
	case "stone":
		return color.RGBA{R: 130, G: 130, B: 130, A: 255}, color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case "water":
		return color.RGBA{R: 0, G: 121, B: 241, A: 255}, color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case "air":
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}, color.RGBA{A: 255}
	default:
		return color.RGBA{R: 54, G: 56, B: 64, A: 255}, color.RGBA{R: 230, G: 230, B: 240, A: 255}
	}
}
