package sandbox

import "strconv"

const (
	// MinBrushSize and MaxBrushSize bound the brush edge length in cells.
	MinBrushSize = 1
	MaxBrushSize = 10
)

// TerrainParams shapes the perlin stone profile laid down by GenerateTerrain.
type TerrainParams struct {
	BaseHeight int
	Amplitude  int
	Frequency  float64
	Alpha      float64
	Beta       float64
	Octaves    int
}

// Config controls the sandbox dimensions and initial brush.
type Config struct {
	Width  int
	Height int

	Seed int64

	BrushSize int
	Material  Material

	// Terrain makes Reset lay down a stone profile after clearing.
	Terrain       bool
	TerrainParams TerrainParams
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     200,
		Height:    150,
		Seed:      1337,
		BrushSize: 4,
		Material:  MaterialSand,
		TerrainParams: TerrainParams{
			BaseHeight: 20,
			Amplitude:  24,
			Frequency:  0.015,
			Alpha:      2,
			Beta:       2,
			Octaves:    3,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.BrushSize = clampBrush(parsed)
		}
	}
	if v, ok := cfg["material"]; ok {
		if m, ok := ParseMaterial(v); ok {
			c.Material = m
		}
	}
	if v, ok := cfg["terrain"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Terrain = parsed
		}
	}
	if v, ok := cfg["terrain_base"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.TerrainParams.BaseHeight = parsed
		}
	}
	if v, ok := cfg["terrain_amplitude"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.TerrainParams.Amplitude = parsed
		}
	}
	if v, ok := cfg["terrain_frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.TerrainParams.Frequency = parsed
		}
	}
	if v, ok := cfg["terrain_octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TerrainParams.Octaves = parsed
		}
	}
	return c
}

func clampBrush(size int) int {
	if size < MinBrushSize {
		return MinBrushSize
	}
	if size > MaxBrushSize {
		return MaxBrushSize
	}
	return size
}
