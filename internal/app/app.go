//go:build ebiten

package app

import (
	"image/color"

	"rhysix/internal/core"
	"rhysix/internal/render"
	"rhysix/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type terrainGenerator interface {
	GenerateTerrain(seed int64) []int
}

var materialKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim      core.Sim
	painter  *render.GridPainter
	panel    *ui.Panel
	overlay  *ui.Overlay
	viewport core.Viewport
	step     *core.FixedStep
	log      *core.Logger

	onColor  color.Color
	offColor color.Color

	tps    int
	paused bool
	seed   int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, logger *core.Logger) *Game {
	size := sim.Size()
	vp := core.NewViewport(cfg.CellSize, size.W, size.H)
	screenW, screenH := vp.ScreenSize()
	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		panel:    ui.NewPanel(sim, screenW, screenH),
		overlay:  ui.NewOverlay(sim, vp.CellSize, "rhysix"),
		viewport: vp,
		step:     core.NewFixedStep(cfg.Tick),
		log:      logger,
		onColor:  color.White,
		offColor: color.Black,
		tps:      tps,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.log.Infof("reset %s (seed %d)", g.sim.Name(), seed)
}

// Update handles per-frame input and advances the simulation when the tick
// interval has elapsed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if gen, ok := g.sim.(terrainGenerator); ok {
			g.seed++
			gen.GenerateTerrain(g.seed)
			g.log.Infof("terrain generated (seed %d)", g.seed)
		}
	}
	g.handleBrushKeys()

	g.overlay.Update()
	if captured := g.panel.Update(1 / float32(g.tps)); !captured {
		g.handlePointer()
	}

	if g.step.ShouldStep() && !g.paused {
		g.sim.Step()
	}
	return nil
}

func (g *Game) togglePause() {
	if p, ok := g.sim.(core.Pausable); ok {
		p.TogglePause()
		g.log.Debugf("paused=%v", p.Paused())
		return
	}
	g.paused = !g.paused
}

func (g *Game) handleBrushKeys() {
	if painter, ok := g.sim.(core.Painter); ok {
		_, wheel := ebiten.Wheel()
		if inpututil.IsKeyJustPressed(ebiten.KeyUp) || wheel > 0 {
			painter.IncreaseBrushSize()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDown) || wheel < 0 {
			painter.DecreaseBrushSize()
		}
	}
	if selector, ok := g.sim.(core.MaterialSelector); ok {
		names := selector.MaterialNames()
		for i, key := range materialKeys {
			if i < len(names) && inpututil.IsKeyJustPressed(key) {
				selector.SelectMaterial(names[i])
				g.log.Debugf("material %s", names[i])
			}
		}
	}
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	col, row, ok := g.viewport.PointerToGrid(mx, my)
	if !ok {
		return
	}
	if painter, isPainter := g.sim.(core.Painter); isPainter {
		switch {
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
			painter.Paint(col, row)
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
			painter.Erase(col, row)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if inspector, isInspector := g.sim.(core.Inspector); isInspector {
			if desc, found := inspector.Inspect(col, row); found {
				g.log.Infof("cell %s", desc)
			}
		}
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if provider, ok := g.sim.(core.PaletteProvider); ok {
		g.painter.BlitPalette(screen, g.sim.Cells(), provider.Palette(), g.viewport.CellSize)
	} else {
		g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.viewport.CellSize)
	}
	g.panel.Draw(screen)
	mx, my := ebiten.CursorPosition()
	g.overlay.Draw(screen, mx, my)
}

// ScreenSize reports the window size in pixels needed to show the whole grid.
func (g *Game) ScreenSize() (int, int) { return g.viewport.ScreenSize() }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}
