package app

import (
	"flag"
	"testing"
	"time"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("rhysix", flag.ContinueOnError)
	cfg.Bind(fs)

	args := []string{"-sim", "terrain", "-cell", "6", "-tick", "25ms", "-seed", "9", "-w", "80", "-h", "60", "-material", "water", "-brush", "7", "-log-level", "debug"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Sim != "terrain" || cfg.CellSize != 6 || cfg.Tick != 25*time.Millisecond || cfg.Seed != 9 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Width != 80 || cfg.Height != 60 || cfg.Material != "water" || cfg.Brush != 7 || cfg.LogLevel != "debug" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestSimOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 32
	cfg.Seed = -4
	opts := cfg.SimOptions()
	want := map[string]string{"w": "32", "h": "150", "seed": "-4", "material": "sand", "brush": "4"}
	for k, v := range want {
		if opts[k] != v {
			t.Fatalf("option %s = %q, want %q", k, opts[k], v)
		}
	}
}
