package app

import (
	"flag"
	"strconv"
	"time"

	"rhysix/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	CellSize int
	TPS      int
	Tick     time.Duration
	Seed     int64
	Width    int
	Height   int
	Material string
	Brush    int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "sandbox",
		CellSize: core.DefaultCellSize,
		TPS:      60,
		Tick:     10 * time.Millisecond,
		Seed:     1337,
		Width:    200,
		Height:   150,
		Material: "sand",
		Brush:    4,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (sandbox, terrain)")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "pixels per grid cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "minimum interval between simulation ticks")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random source and terrain")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Material, "material", c.Material, "initial brush material")
	fs.IntVar(&c.Brush, "brush", c.Brush, "initial brush size (1-10)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// SimOptions converts the configuration into the key/value map consumed by
// simulation factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"seed":     strconv.FormatInt(c.Seed, 10),
		"material": c.Material,
		"brush":    strconv.Itoa(c.Brush),
	}
}
