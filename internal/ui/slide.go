package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// PanelWidth is the width of the element panel in pixels.
	PanelWidth    = 200
	panelMargin   = 8
	revealZone    = 45
	dismissMargin = 20
	slideSeconds  = 0.18
)

// panelState decides when the element panel is shown. The panel opens when
// the pointer enters the strip at the right edge of the window and closes once
// the pointer moves back left of the panel. A right click closes it and keeps
// it closed until the pointer has left the panel area.
type panelState struct {
	screenW int
	visible bool
	locked  bool

	offset float32
	tween  *gween.Tween
}

func newPanelState(screenW int) *panelState {
	return &panelState{screenW: screenW, offset: hiddenOffset()}
}

// hiddenOffset is how far right of its resting place the panel sits when hidden.
func hiddenOffset() float32 { return PanelWidth + panelMargin }

// Track feeds the pointer position and right-button press into the state
// machine and starts the slide animation when visibility changes. It reports
// whether the right press was spent dismissing the panel.
func (p *panelState) Track(mouseX int, rightPressed bool) (dismissed bool) {
	was := p.visible
	if p.visible && rightPressed {
		p.visible = false
		p.locked = true
		dismissed = true
	}
	if !p.visible && !p.locked {
		if mouseX > p.screenW-revealZone {
			p.visible = true
		}
	} else if mouseX < p.screenW-PanelWidth-dismissMargin {
		p.visible = false
		p.locked = false
	}
	if was == p.visible {
		return dismissed
	}
	if p.visible {
		p.tween = gween.New(p.offset, 0, slideSeconds, ease.OutCubic)
	} else {
		p.tween = gween.New(p.offset, hiddenOffset(), slideSeconds, ease.InCubic)
	}
	return dismissed
}

// Animate advances the slide by dt seconds.
func (p *panelState) Animate(dt float32) {
	if p.tween == nil {
		return
	}
	offset, done := p.tween.Update(dt)
	p.offset = offset
	if done {
		p.tween = nil
	}
}

// Visible reports whether the panel is open or opening.
func (p *panelState) Visible() bool { return p.visible }

// Offset is the current horizontal slide offset in pixels; zero when fully open.
func (p *panelState) Offset() float32 { return p.offset }

// Interactive reports whether clicks should reach the panel buttons.
func (p *panelState) Interactive() bool { return p.visible && p.tween == nil }
