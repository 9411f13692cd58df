package sandbox

import "strings"

// Material identifies the substance held by a cell.
type Material uint8

const (
	// MaterialOutOfBounds is synthesized for off-grid queries and never stored.
	MaterialOutOfBounds Material = iota
	MaterialAir
	MaterialSand
	MaterialWater
	MaterialStone
)

var materialNames = [...]string{
	MaterialOutOfBounds: "oob",
	MaterialAir:         "air",
	MaterialSand:        "sand",
	MaterialWater:       "water",
	MaterialStone:       "stone",
}

// String returns the lowercase material name.
func (m Material) String() string {
	if int(m) < len(materialNames) {
		return materialNames[m]
	}
	return "unknown"
}

// ParseMaterial resolves a placeable material by name. The out-of-bounds
// sentinel is not placeable and is rejected.
func ParseMaterial(name string) (Material, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range materialNames {
		if Material(m) == MaterialOutOfBounds {
			continue
		}
		if n == name {
			return Material(m), true
		}
	}
	return MaterialOutOfBounds, false
}

// Phase selects the movement rule applied to a cell.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseSolid
	PhaseLiquid
)

func (p Phase) String() string {
	switch p {
	case PhaseSolid:
		return "solid"
	case PhaseLiquid:
		return "liquid"
	default:
		return "none"
	}
}

// Cell is the value stored at every grid position.
//
// Density orders displaceability: a mover only swaps into a target whose
// density is below the mover's threshold. Temperature is carried but no rule
// reads it yet.
type Cell struct {
	Material    Material
	Density     uint16
	Phase       Phase
	Temperature int8
}

// OutOfBounds returns the sentinel cell for off-grid positions. Its density
// dominates every real material so it never yields.
func OutOfBounds() Cell {
	return Cell{Material: MaterialOutOfBounds, Density: 999, Phase: PhaseNone}
}

// Air returns an empty cell.
func Air() Cell {
	return Cell{Material: MaterialAir, Density: 0, Phase: PhaseNone}
}

// Sand returns a powder cell.
func Sand() Cell {
	return Cell{Material: MaterialSand, Density: 2, Phase: PhaseSolid, Temperature: 20}
}

// Stone returns an inert solid cell.
func Stone() Cell {
	return Cell{Material: MaterialStone, Density: 2, Phase: PhaseSolid, Temperature: 20}
}

// Water returns a liquid cell.
func Water() Cell {
	return Cell{Material: MaterialWater, Density: 1, Phase: PhaseLiquid, Temperature: 20}
}

// CellFor returns the canonical cell for m.
func CellFor(m Material) Cell {
	switch m {
	case MaterialAir:
		return Air()
	case MaterialSand:
		return Sand()
	case MaterialWater:
		return Water()
	case MaterialStone:
		return Stone()
	default:
		return OutOfBounds()
	}
}
