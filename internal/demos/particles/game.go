// Package particles is the emitter demo: bursts of spinning rectangles fired
// at a movable cursor, bouncing off the arena under gravity.
package particles

import (
	"fmt"

	"github.com/vovakirdan/mini2d/internal/config"
	"github.com/vovakirdan/mini2d/internal/core"
	"github.com/vovakirdan/mini2d/internal/geom"
	"github.com/vovakirdan/mini2d/internal/registry"
)

const (
	ParticleChar = '■'
	CursorChar   = '+'
)

const (
	hudRows    = 1
	minScreenW = 20
	minScreenH = 8
	maxBursts  = 6
)

func init() {
	registry.Register(registry.Info{
		ID:          config.ParticlesID,
		Title:       "Particles",
		Description: "Fire particle bursts that spin, fall and bounce",
	}, func(opts registry.Options) (registry.Demo, error) {
		g, err := New(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}

// Game implements the particle emitter demo.
type Game struct {
	cfg     config.EmitterConfig
	runtime core.RuntimeConfig
	rng     *core.SimpleRNG

	arena  *geom.RectangleF
	cursor geom.Vector2
	bursts []*Emitter

	tick    int
	fired   int
	bounces int

	paused         bool
	screenTooSmall bool
}

// New loads the emitter config named by opts. The difficulty option does not
// apply to this demo.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadEmitter(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates the demo from an already loaded config.
func NewWithConfig(cfg config.EmitterConfig) (*Game, error) {
	// Fail on bad color names now rather than on the first burst.
	if _, err := NewEmitter(cfg, core.NewSimpleRNG(1)); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg}, nil
}

// ID returns the unique identifier for this demo.
func (g *Game) ID() string {
	return config.ParticlesID
}

// Title returns the display name for this demo.
func (g *Game) Title() string {
	return "Particles"
}

// Reset clears all bursts and centers the cursor.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = core.NewSimpleRNG(runtime.Seed)
	g.bursts = nil
	g.tick = 0
	g.fired = 0
	g.bounces = 0
	g.paused = false

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	if g.screenTooSmall {
		return
	}

	w := float64(runtime.ScreenW)
	h := float64(runtime.ScreenH)
	g.arena = geom.RectangleFromCorners(geom.Vec(1, hudRows+1), geom.Vec(w-1, h-1))
	g.cursor = g.arena.RotatedCenter()
}

// Step advances the demo by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.moveCursor(in)

	if in.Has(core.ActionToggle) {
		g.cfg.Revive = !g.cfg.Revive
	}
	if in.Has(core.ActionFire) {
		g.burst()
	}

	dt := g.runtime.Dt()
	active := g.bursts[:0]
	for _, e := range g.bursts {
		g.bounces += e.Update(dt)
		if e.Active() {
			active = append(active, e)
		}
	}
	clear(g.bursts[len(active):])
	g.bursts = active

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	var d geom.Vector2
	if in.Has(core.ActionLeft) {
		d.X--
	}
	if in.Has(core.ActionRight) {
		d.X++
	}
	if in.Has(core.ActionUp) {
		d.Y--
	}
	if in.Has(core.ActionDown) {
		d.Y++
	}

	b := g.arena.Bounds()
	g.cursor = g.cursor.Add(d)
	g.cursor.X = core.ClampF(g.cursor.X, b.Min.X+0.5, b.Max.X-0.5)
	g.cursor.Y = core.ClampF(g.cursor.Y, b.Min.Y+0.5, b.Max.Y-0.5)
}

// burst starts a new emission at the cursor. The oldest burst is dropped
// when too many are running.
func (g *Game) burst() {
	e, err := NewEmitter(g.cfg, g.rng)
	if err != nil {
		return
	}
	e.Arena = g.arena
	if !e.Start(g.cursor, 0) {
		return
	}

	if len(g.bursts) >= maxBursts {
		g.bursts = g.bursts[1:]
	}
	g.bursts = append(g.bursts, e)
	g.fired++
}

// Live returns the number of live particles across all bursts.
func (g *Game) Live() int {
	n := 0
	for _, e := range g.bursts {
		n += e.Live()
	}
	return n
}

// Render draws the arena, the particles and the cursor.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Screen too small")
		return
	}

	dst.DrawBox(core.NewCellRect(0, hudRows, g.runtime.ScreenW, g.runtime.ScreenH-hudRows), core.ColorGray)

	revive := "off"
	if g.cfg.Revive {
		revive = "on"
	}
	hud := fmt.Sprintf(" Bursts: %d  Particles: %d  Bounces: %d  Revive: %s", g.fired, g.Live(), g.bounces, revive)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	for _, e := range g.bursts {
		particles := e.Particles()
		for i := range particles {
			p := &particles[i]
			if p.Alive() {
				dst.FillPolygon(p.Body.Corners(), ParticleChar, p.Color)
			}
		}
	}

	dst.SetColor(int(g.cursor.X), int(g.cursor.Y), CursorChar, core.ColorBrightWhite)

	if g.paused {
		dst.DrawTextCentered(g.runtime.ScreenH/2, "PAUSED")
	}
}

// State reports bursts fired as the score and wall bounces as collisions.
// The demo never ends.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.fired,
		Collisions: g.bounces,
		Paused:     g.paused,
	}
}
