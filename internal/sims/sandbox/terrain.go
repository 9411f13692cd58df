package sandbox

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// GenerateTerrain fills every column from the bottom with stone up to a height
// drawn from seeded 1D perlin noise. Cells above the profile are left as they
// are. It returns the stone height of each column.
func (s *Sandbox) GenerateTerrain(seed int64) []int {
	tp := s.cfg.TerrainParams
	octaves := tp.Octaves
	if octaves <= 0 {
		octaves = 1
	}
	noise := perlin.NewPerlin(tp.Alpha, tp.Beta, int32(octaves), seed)

	w, h := s.grid.W, s.grid.H
	heights := make([]int, w)
	for x := 0; x < w; x++ {
		n := noise.Noise1D(float64(x) * tp.Frequency)
		height := tp.BaseHeight + int(math.Round(n*float64(tp.Amplitude)))
		if height < 0 {
			height = 0
		}
		if height > h {
			height = h
		}
		heights[x] = height
		for y := h - height; y < h; y++ {
			s.grid.Put(x, y, Stone())
		}
	}
	return heights
}
