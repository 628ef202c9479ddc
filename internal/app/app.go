//go:build ebiten

package app

import (
	"time"

	"simstation/internal/core"
	"simstation/internal/render"
	"simstation/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game is the composition root. It owns the single active simulation, the
// pause flag, and the fixed-step scheduler, and dispatches render and panel
// calls once per frame.
type Game struct {
	sim     core.Sim
	painter *render.FramePainter
	panel   *ui.Panel
	stepper *core.FixedStep

	frame    []byte
	scale    int
	paused   bool
	stepOnce bool
	last     time.Time
}

// New constructs the station from the resolved configuration.
func New(cfg *Config) *Game {
	g := &Game{
		painter: render.NewFramePainter(core.FrameW, core.FrameH),
		panel:   ui.NewPanel(0),
		stepper: core.NewFixedStep(core.DefaultRateConfig().Default),
		frame:   make([]byte, core.FrameBytes),
		scale:   cfg.Scale,
		paused:  cfg.Paused,
	}
	if g.scale <= 0 {
		g.scale = 1
	}
	g.sim = core.NoSim{}
	if cfg.Sim != "" {
		g.loadSim(cfg.Sim)
	}
	if cfg.Rate > 0 {
		g.stepper.SetRate(cfg.Rate)
	}
	return g
}

// stopper is implemented by simulations that own a background worker.
type stopper interface{ Stop() }

// loadSim replaces the active simulation wholesale and adopts its default
// rate. Unknown names fall back to the placeholder. The outgoing
// simulation's worker, if it has one, is halted before the replacement.
func (g *Game) loadSim(name string) {
	if s, ok := g.sim.(stopper); ok {
		s.Stop()
	}
	factory, ok := core.Sims()[name]
	if !ok {
		g.sim = core.NoSim{}
		g.panel.SetActive(g.sim.Name(), g.sim.Rate())
		return
	}
	g.sim = factory(nil)
	rate := g.sim.Rate()
	g.stepper.SetRate(rate.Default)
	g.panel.SetActive(g.sim.Name(), rate)
}

// Update handles input, runs the panel, and advances the simulation by as
// many steps as the scheduler owes for this frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}

	actions := g.panel.Update(core.FrameW*g.scale, g.sim, g.paused, g.stepper.Rate())
	if actions.Load != "" {
		g.loadSim(actions.Load)
	}
	if actions.TogglePause {
		g.paused = !g.paused
	}
	if actions.Reset {
		g.sim.Reset()
	}
	if actions.RateChanged && actions.Rate > 0 {
		g.stepper.SetRate(actions.Rate)
	}

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now

	if g.paused {
		// Frozen: no time accrues while paused, but N steps once.
		if g.stepOnce {
			g.sim.Update()
			g.stepOnce = false
		}
		return nil
	}
	g.stepOnce = false
	g.stepper.Advance(dt, g.sim.Update)
	return nil
}

// Draw renders the current frame and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Render(g.frame)
	g.painter.Blit(screen, g.frame, g.scale)
	g.panel.Draw(screen, core.FrameW*g.scale, core.FrameH*g.scale)
}

// Layout returns the logical screen size: the scaled frame plus the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.FrameW*g.scale + g.panel.Width(), core.FrameH * g.scale
}
