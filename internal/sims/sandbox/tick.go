package sandbox

import pcore "rhysix/pkg/core"

const (
	// powderThreshold is the density a powder cell can displace beneath it.
	powderThreshold = 2
	// liquidThreshold is the density a liquid cell can displace.
	liquidThreshold = 1
)

type offset struct{ dx, dy int }

var (
	diagonalPair = [2]offset{{-1, 1}, {1, 1}}
	flatPair     = [2]offset{{-1, 0}, {1, 0}}
)

// Tick advances the sandbox by one pass. Rows are visited bottom to top and
// each row left to right, mutating the grid in place. The bottom row is
// skipped because nothing can move out of it.
func (s *Sandbox) Tick() {
	if s.paused {
		return
	}
	g := s.grid
	for y := g.H - 2; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			s.updateCell(x, y)
		}
	}
}

// Step advances the simulation by one tick.
func (s *Sandbox) Step() { s.Tick() }

func (s *Sandbox) updateCell(x, y int) {
	c := s.grid.At(x, y)
	switch c.Phase {
	case PhaseSolid:
		// Stone holds its place; every other solid behaves like powder.
		if c.Material != MaterialStone {
			s.updatePowder(x, y)
		}
	case PhaseLiquid:
		s.updateLiquid(x, y)
	}
}

func (s *Sandbox) updatePowder(x, y int) {
	switch {
	case s.cellOrOOB(x, y+1).Density < powderThreshold:
		s.grid.Swap(x, y, x, y+1)
	case s.cellOrOOB(x-1, y+1).Density < powderThreshold:
		s.grid.Swap(x, y, x-1, y+1)
	case s.cellOrOOB(x+1, y+1).Density < powderThreshold:
		s.grid.Swap(x, y, x+1, y+1)
	}
}

func (s *Sandbox) updateLiquid(x, y int) {
	if s.cellOrOOB(x, y+1).Density < liquidThreshold {
		s.grid.Swap(x, y, x, y+1)
		return
	}

	diag := diagonalPair
	flat := flatPair
	pcore.Shuffle2(s.rng, &diag)
	pcore.Shuffle2(s.rng, &flat)

	x, y = s.balance(x, y, diag)
	s.balance(x, y, flat)
}

// balance tries the first direction of a shuffled pair one cell away and
// moves the liquid there if it can displace the occupant. An occupied or
// off-grid candidate ends the pass without trying the other direction, so
// wider reaches are never probed. It returns the liquid's position after the
// pass.
func (s *Sandbox) balance(x, y int, dirs [2]offset) (int, int) {
	d := dirs[0]
	nx, ny := x+d.dx, y+d.dy
	// The rightmost column is never a lateral landing spot.
	if nx < 0 || nx >= s.grid.W-1 || ny > s.grid.H-1 {
		return x, y
	}
	if s.grid.At(nx, ny).Density >= liquidThreshold {
		return x, y
	}
	s.grid.Swap(x, y, nx, ny)
	return nx, ny
}
