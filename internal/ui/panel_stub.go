//go:build !ebiten

package ui

import "rhysix/internal/core"

// Panel is a no-op placeholder for headless builds.
type Panel struct{}

// NewPanel returns nil in the headless build.
func NewPanel(core.Sim, int, int) *Panel { return nil }

// Update never captures the pointer in the headless build.
func (p *Panel) Update(float32) bool { return false }

// Draw is a no-op in the headless build.
func (p *Panel) Draw(any) {}
