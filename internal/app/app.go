//go:build ebiten

package app

import (
	"image/color"
	"time"

	"kernel-life/internal/core"
	"kernel-life/internal/render"
	"kernel-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxStepsPerFrame bounds catch-up work after a slow frame.
const maxStepsPerFrame = 8

type ruleCycler interface {
	CycleRule(delta int)
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	ticker  *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		ticker:   core.NewFixedStep(cfg.TPS),
		onColor:  render.DefaultOn,
		offColor: render.DefaultOff,
		scale:    cfg.Scale,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if cycler, ok := g.sim.(ruleCycler); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
			cycler.CycleRule(-1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
			cycler.CycleRule(1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.ticker.SetTPS(max(1, g.ticker.TPS()/2))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.ticker.SetTPS(min(960, g.ticker.TPS()*2))
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())

	due := g.ticker.Due(maxStepsPerFrame)
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = max(due, 1)
		g.tickOnce = false
	}
	for i := 0; i < due; i++ {
		g.sim.Step()
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.scale)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

// WindowSize returns the grid view plus the HUD panel.
func (g *Game) WindowSize() (int, int) {
	s := g.sim.Size()
	return g.viewWidth() + g.hud.Width(), max(s.H*g.scale, g.hud.MinHeight())
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }
