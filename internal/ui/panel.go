//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"rhysix/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Panel is the slide-in element panel anchored to the right edge of the
// window. It switches the brush material and resizes the brush.
type Panel struct {
	sim      core.Sim
	selector core.MaterialSelector
	painter  core.Painter

	state   *panelState
	buttons []button
	screenH int

	img   *ebiten.Image
	pixel *ebiten.Image
}

// NewPanel constructs a panel for sim drawn on a screen of the given size.
// It returns nil when the sim has no selectable materials.
func NewPanel(sim core.Sim, screenW, screenH int) *Panel {
	selector, ok := sim.(core.MaterialSelector)
	if !ok {
		return nil
	}
	p := &Panel{
		sim:      sim,
		selector: selector,
		state:    newPanelState(screenW),
		screenH:  screenH,
	}
	names := selector.MaterialNames()
	p.buttons = materialButtons(names)
	if painter, ok := sim.(core.Painter); ok {
		p.painter = painter
		p.buttons = append(p.buttons, brushButtons(len(names))...)
	}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Update advances the slide animation by dt seconds and handles clicks. It
// reports whether the panel captured the pointer this frame, either because
// the pointer is over the open panel or because a right click closed it. The
// caller must not paint or inspect when it does.
func (p *Panel) Update(dt float32) bool {
	if p == nil {
		return false
	}
	mx, my := ebiten.CursorPosition()
	dismissed := p.state.Track(mx, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight))
	p.state.Animate(dt)
	if dismissed {
		return true
	}
	if !p.state.Visible() {
		return false
	}

	left, top := p.origin()
	px, py := mx-left, my-top
	over := px >= 0 && px < PanelWidth && py >= 0 && py < p.height()
	if !over || !p.state.Interactive() {
		return over
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	b, ok := hitButton(p.buttons, px, py)
	if !ok {
		return true
	}
	switch {
	case b.material != "":
		p.selector.SelectMaterial(b.material)
	case b.delta > 0 && p.painter != nil:
		p.painter.IncreaseBrushSize()
	case b.delta < 0 && p.painter != nil:
		p.painter.DecreaseBrushSize()
	}
	return true
}

// Draw paints the panel when it is at least partly on screen.
func (p *Panel) Draw(screen *ebiten.Image) {
	if p == nil || p.state.Offset() >= hiddenOffset() {
		return
	}
	h := p.height()
	if p.img == nil || p.img.Bounds().Dy() != h {
		p.img = ebiten.NewImage(PanelWidth, h)
	}
	p.img.Fill(color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 255})

	active := p.selector.ActiveMaterialName()
	for _, b := range p.buttons {
		bg, fg := buttonColors(b.material)
		p.fillRect(b.rect, bg)
		if b.material != "" && b.material == active {
			p.outlineRect(b.rect, color.RGBA{R: 255, G: 80, B: 80, A: 255})
		}
		p.drawLabel(b, fg)
	}
	p.drawStatus()

	left, top := p.origin()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(left), float64(top))
	screen.DrawImage(p.img, op)
}

func (p *Panel) origin() (int, int) {
	return p.state.screenW - PanelWidth - panelMargin + int(p.state.Offset()), panelMargin
}

func (p *Panel) height() int {
	h := p.screenH - 2*panelMargin
	if h < buttonHeight {
		h = buttonHeight
	}
	return h
}

func (p *Panel) drawStatus() {
	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	rows := (len(p.selector.MaterialNames()) + 1) / 2
	y := buttonInset + rows*(buttonHeight+buttonInset) + lineHeight - 4
	if p.painter != nil {
		text.Draw(p.img, fmt.Sprintf("Brush %d", p.painter.BrushSize()), face, buttonInset, y+lineHeight+8, fg)
	}
	provider, ok := p.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	snapshot := provider.Parameters()
	y += 3 * lineHeight
	for _, group := range snapshot.Groups {
		text.Draw(p.img, group.Name, face, buttonInset, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineHeight
		for _, param := range group.Params {
			text.Draw(p.img, fmt.Sprintf("%s: %s", param.Label, param.Value), face, buttonInset+8, y, fg)
			y += lineHeight
		}
	}
}

func (p *Panel) drawLabel(b button, fg color.RGBA) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.label)
	x := b.rect.Min.X + (b.rect.Dx()-bounds.Dx())/2
	y := b.rect.Min.Y + (b.rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(p.img, b.label, face, x, y, fg)
}

func (p *Panel) fillRect(rect image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	p.img.DrawImage(p.pixel, op)
}

func (p *Panel) outlineRect(rect image.Rectangle, col color.RGBA) {
	p.fillRect(image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+2), col)
	p.fillRect(image.Rect(rect.Min.X, rect.Max.Y-2, rect.Max.X, rect.Max.Y), col)
	p.fillRect(image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+2, rect.Max.Y), col)
	p.fillRect(image.Rect(rect.Max.X-2, rect.Min.Y, rect.Max.X, rect.Max.Y), col)
}
