//go:build ebiten

package ui

import (
	"image/color"

	"rhysix/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the brush outline under the pointer and the window title.
type Overlay struct {
	sim        core.Sim
	cellSize   int
	title      string
	showCursor bool
	pixel      *ebiten.Image
}

// NewOverlay constructs an overlay for a grid drawn at cellSize pixels per cell.
func NewOverlay(sim core.Sim, cellSize int, title string) *Overlay {
	o := &Overlay{sim: sim, cellSize: cellSize, title: title, showCursor: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the brush outline with the C key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showCursor = !o.showCursor
	}
}

// Draw renders the overlay for a pointer at (mx, my).
func (o *Overlay) Draw(screen *ebiten.Image, mx, my int) {
	if o.showCursor {
		if painter, ok := o.sim.(core.Painter); ok {
			size := float64(painter.BrushSize() * o.cellSize)
			o.drawOutline(screen, float64(mx-1), float64(my+1), size, color.White)
		}
	}
	if o.title == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := screen.Bounds()
	tb := text.BoundString(face, o.title)
	text.Draw(screen, o.title, face, bounds.Dx()-tb.Dx()-12, bounds.Dy()-12, color.White)
}

func (o *Overlay) drawOutline(screen *ebiten.Image, x, y, size float64, col color.Color) {
	o.drawRect(screen, x, y, size, 1, col)
	o.drawRect(screen, x, y+size-1, size, 1, col)
	o.drawRect(screen, x, y, 1, size, col)
	o.drawRect(screen, x+size-1, y, 1, size, col)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
