package sandbox

import "slices"

// Scenario names a canned settling experiment.
type Scenario string

const (
	// ScenarioPuddle drops a column of water onto a stone floor.
	ScenarioPuddle Scenario = "puddle"
	// ScenarioPile drops a column of sand onto a stone floor.
	ScenarioPile Scenario = "pile"
)

// ScenarioResult summarizes a settling run.
type ScenarioResult struct {
	Scenario Scenario
	Seed     int64
	Steps    int

	// Footprint is the number of columns holding the material at the end.
	Footprint int
	// Height is the number of rows holding the material at the end.
	Height int
	// LastChange is the last step that altered the grid; 0 if none did.
	LastChange int
}

// Settled reports whether the grid stopped changing before the run ended.
func (r ScenarioResult) Settled() bool { return r.LastChange < r.Steps }

// RunScenario builds a sandbox from cfg, lays a stone floor on the bottom row,
// stacks column cells of the scenario material in the middle column directly
// above it, and ticks steps times.
func RunScenario(cfg Config, scenario Scenario, column, steps int) ScenarioResult {
	material := Water()
	if scenario == ScenarioPile {
		material = Sand()
	}

	sb := NewWithConfig(cfg)
	w, h := sb.grid.W, sb.grid.H
	for x := 0; x < w; x++ {
		sb.grid.Put(x, h-1, Stone())
	}
	cx := w / 2
	for i := 0; i < column && h-2-i >= 0; i++ {
		sb.grid.Put(cx, h-2-i, material)
	}

	prev := sb.Buffer()
	last := 0
	for step := 1; step <= steps; step++ {
		sb.Tick()
		if cur := sb.grid.Cells(); !slices.Equal(prev, cur) {
			last = step
			copy(prev, cur)
		}
	}

	footprint, height := sb.extent(material.Material)
	return ScenarioResult{
		Scenario:   scenario,
		Seed:       cfg.Seed,
		Steps:      steps,
		Footprint:  footprint,
		Height:     height,
		LastChange: last,
	}
}

// extent counts the distinct columns and rows containing m.
func (s *Sandbox) extent(m Material) (int, int) {
	cols := make([]bool, s.grid.W)
	rows := make([]bool, s.grid.H)
	for y := 0; y < s.grid.H; y++ {
		for x := 0; x < s.grid.W; x++ {
			if s.grid.At(x, y).Material == m {
				cols[x] = true
				rows[y] = true
			}
		}
	}
	count := func(flags []bool) int {
		n := 0
		for _, f := range flags {
			if f {
				n++
			}
		}
		return n
	}
	return count(cols), count(rows)
}
