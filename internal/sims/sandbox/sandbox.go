package sandbox

import (
	"fmt"
	"slices"

	"rhysix/internal/core"
	pcore "rhysix/pkg/core"
)

// Sandbox owns the cell grid, the brush state and the pause flag. It is not
// safe for concurrent use; the application loop is the only writer.
type Sandbox struct {
	cfg Config

	grid    *core.Grid[Cell]
	display []uint8

	paused bool
	active Cell
	brush  int

	rng *pcore.RNG
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *Sandbox {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-air sandbox configured from the provided options.
func NewWithConfig(cfg Config) *Sandbox {
	grid := core.NewGrid(cfg.Width, cfg.Height, Air())
	cfg.Width, cfg.Height = grid.W, grid.H
	active := CellFor(cfg.Material)
	if active.Material == MaterialOutOfBounds {
		active = Sand()
	}
	return &Sandbox{
		cfg:     cfg,
		grid:    grid,
		display: make([]uint8, grid.W*grid.H),
		active:  active,
		brush:   clampBrush(cfg.BrushSize),
		rng:     pcore.NewRNG(cfg.Seed),
	}
}

// Name returns the simulation identifier.
func (s *Sandbox) Name() string {
	if s.cfg.Terrain {
		return "terrain"
	}
	return "sandbox"
}

// Size reports the grid dimensions.
func (s *Sandbox) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Config returns the configuration the sandbox was built with.
func (s *Sandbox) Config() Config { return s.cfg }

// Buffer returns a copy of every cell in row-major order.
func (s *Sandbox) Buffer() []Cell { return slices.Clone(s.grid.Cells()) }

// Cells returns the material of every cell as a palette index.
func (s *Sandbox) Cells() []uint8 {
	for i, c := range s.grid.Cells() {
		s.display[i] = uint8(c.Material)
	}
	return s.display
}

// Get returns the cell at (x, y), or false when the position is off-grid.
func (s *Sandbox) Get(x, y int) (Cell, bool) { return s.grid.Get(x, y) }

// cellOrOOB substitutes the out-of-bounds sentinel for off-grid positions.
func (s *Sandbox) cellOrOOB(x, y int) Cell {
	if c, ok := s.grid.Get(x, y); ok {
		return c
	}
	return OutOfBounds()
}

// Set writes a single cell. Off-grid writes are ignored.
func (s *Sandbox) Set(x, y int, c Cell) { s.grid.Set(x, y, c) }

// Place stamps a brush-sized square of the active material with its top-left
// corner at (x, y). Cells falling outside the grid are dropped.
func (s *Sandbox) Place(x, y int) { s.PlaceCell(x, y, s.active) }

// PlaceCell is Place with an explicit cell overriding the active material.
func (s *Sandbox) PlaceCell(x, y int, c Cell) {
	for oy := 0; oy < s.brush; oy++ {
		for ox := 0; ox < s.brush; ox++ {
			s.grid.Set(x+ox, y+oy, c)
		}
	}
}

// Paint places the active material.
func (s *Sandbox) Paint(x, y int) { s.Place(x, y) }

// Erase places air.
func (s *Sandbox) Erase(x, y int) { s.PlaceCell(x, y, Air()) }

// Clear sets every cell to air. Pause and brush state are kept.
func (s *Sandbox) Clear() { s.grid.Fill(Air()) }

// Reset clears the grid, reseeding the random source when seed is non-zero.
// The terrain preset lays its stone profile down afterwards.
func (s *Sandbox) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.rng.Seed(effective)
	s.Clear()
	if s.cfg.Terrain {
		s.GenerateTerrain(effective)
	}
}

// SetActiveMaterial changes the brush material. The sentinel is rejected.
func (s *Sandbox) SetActiveMaterial(c Cell) {
	if c.Material == MaterialOutOfBounds {
		return
	}
	s.active = c
}

// ActiveMaterial returns the brush material.
func (s *Sandbox) ActiveMaterial() Cell { return s.active }

// MaterialNames lists the placeable materials in panel order.
func (s *Sandbox) MaterialNames() []string {
	return []string{
		MaterialSand.String(),
		MaterialStone.String(),
		MaterialWater.String(),
		MaterialAir.String(),
	}
}

// ActiveMaterialName returns the name of the brush material.
func (s *Sandbox) ActiveMaterialName() string { return s.active.Material.String() }

// SelectMaterial sets the brush material by name.
func (s *Sandbox) SelectMaterial(name string) bool {
	m, ok := ParseMaterial(name)
	if !ok {
		return false
	}
	s.SetActiveMaterial(CellFor(m))
	return true
}

// BrushSize returns the brush edge length in cells.
func (s *Sandbox) BrushSize() int { return s.brush }

// SetBrushSize sets the brush edge length, clamped to [MinBrushSize, MaxBrushSize].
func (s *Sandbox) SetBrushSize(size int) { s.brush = clampBrush(size) }

// IncreaseBrushSize grows the brush by one, up to MaxBrushSize.
func (s *Sandbox) IncreaseBrushSize() { s.SetBrushSize(s.brush + 1) }

// DecreaseBrushSize shrinks the brush by one, down to MinBrushSize.
func (s *Sandbox) DecreaseBrushSize() { s.SetBrushSize(s.brush - 1) }

// TogglePause flips the pause flag.
func (s *Sandbox) TogglePause() { s.paused = !s.paused }

// Paused reports whether Tick is currently a no-op.
func (s *Sandbox) Paused() bool { return s.paused }

// Inspect describes the cell at (x, y).
func (s *Sandbox) Inspect(x, y int) (string, bool) {
	c, ok := s.grid.Get(x, y)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("(%d,%d) %s density=%d phase=%s temp=%d", x, y, c.Material, c.Density, c.Phase, c.Temperature), true
}

func init() {
	core.Register("sandbox", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
	core.Register("terrain", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Terrain = true
		return NewWithConfig(c)
	})
}
