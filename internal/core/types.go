package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Painter is implemented by sims that accept brush placement from a pointer.
type Painter interface {
	Paint(x, y int)
	Erase(x, y int)
	BrushSize() int
	IncreaseBrushSize()
	DecreaseBrushSize()
}

// Pausable is implemented by sims that own their pause state.
type Pausable interface {
	TogglePause()
	Paused() bool
}

// MaterialSelector exposes the selectable brush materials by name.
type MaterialSelector interface {
	MaterialNames() []string
	ActiveMaterialName() string
	SelectMaterial(name string) bool
}

// Inspector describes the grid content at a position for debugging.
type Inspector interface {
	Inspect(x, y int) (string, bool)
}

// PaletteProvider is implemented by sims whose Cells values index a color table.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
