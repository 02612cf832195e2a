// Package balls is the cannon demo: balls fired from a rotating cannon bounce
// off the arena walls, tilted bumpers, drifting targets and each other, all
// resolved through geom intersection normals.
package balls

import (
	"fmt"

	"github.com/vovakirdan/mini2d/internal/config"
	"github.com/vovakirdan/mini2d/internal/core"
	"github.com/vovakirdan/mini2d/internal/geom"
	"github.com/vovakirdan/mini2d/internal/registry"
)

// Visual characters for rendering.
const (
	BallChar     = '●'
	BarrelChar   = '#'
	PivotChar    = 'O'
	ObstacleChar = '▓'
	TargetChar   = '█'
)

const (
	hudRows    = 1
	minScreenW = 30
	minScreenH = 12
)

var ballColors = []core.Color{
	core.ColorBrightCyan,
	core.ColorBrightMagenta,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightBlue,
}

var targetColors = []core.Color{core.ColorRed, core.ColorOrange, core.ColorMagenta}

func init() {
	registry.Register(registry.Info{
		ID:          config.BallsID,
		Title:       "Cannon & Balls",
		Description: "Aim the cannon and bounce balls into drifting targets",
	}, func(opts registry.Options) (registry.Demo, error) {
		g, err := New(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}

// Game implements the cannon and balls demo.
type Game struct {
	cfg        config.BallsConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	rng        *core.SimpleRNG

	arena     *geom.RectangleF
	cannon    *Cannon
	balls     []*Ball
	obstacles []*geom.RectangleF
	targets   []*Target
	drift     *drifter

	tick       int
	score      int
	collisions int
	fired      int

	paused         bool
	gameOver       bool
	screenTooSmall bool
}

// New loads the demo config named by opts and applies its difficulty preset.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadBalls(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	preset, ok := config.ParsePreset(opts.Difficulty)
	if !ok {
		return nil, fmt.Errorf("balls: unknown difficulty %q", opts.Difficulty)
	}
	config.ApplyBallsPreset(&cfg, preset)

	return NewWithConfig(cfg), nil
}

// NewWithConfig creates the demo from an already loaded config.
func NewWithConfig(cfg config.BallsConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this demo.
func (g *Game) ID() string {
	return config.BallsID
}

// Title returns the display name for this demo.
func (g *Game) Title() string {
	return "Cannon & Balls"
}

// Reset builds a fresh arena for the given screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = core.NewSimpleRNG(runtime.Seed)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.tick = 0
	g.score = 0
	g.collisions = 0
	g.fired = 0
	g.paused = false
	g.gameOver = false
	g.balls = nil
	g.obstacles = nil
	g.targets = nil

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	if g.screenTooSmall {
		return
	}

	w := float64(runtime.ScreenW)
	h := float64(runtime.ScreenH)

	// The arena sits inside the border box drawn below the HUD.
	g.arena = geom.RectangleFromCorners(geom.Vec(1, hudRows+1), geom.Vec(w-1, h-1))
	ab := g.arena.Bounds()
	size := ab.Size()

	g.cannon = NewCannon(geom.Vec(w/2, ab.Max.Y-1), g.cfg.Cannon)

	oc := g.cfg.Obstacles
	for range oc.Count {
		x := g.rng.Range(ab.Min.X+oc.Width/2+1, ab.Max.X-oc.Width/2-1)
		y := ab.Min.Y + size.Y*g.rng.Range(0.5, 0.6)
		o := geom.NewRectangle(x, y, oc.Width, oc.Height)
		o.RectangleAngle = g.rng.Range(-oc.MaxAngle, oc.MaxAngle)
		g.obstacles = append(g.obstacles, o)
	}

	tc := g.cfg.Targets
	zone := geom.Bounds{
		Min: geom.Vec(ab.Min.X+tc.Width, ab.Min.Y+tc.Height),
		Max: geom.Vec(ab.Max.X-tc.Width, ab.Min.Y+size.Y*0.45),
	}
	g.drift = newDrifter(runtime.Seed, zone, tc.NoiseScale, tc.SpinSpeed)
	for i := range tc.Count {
		t := &Target{Color: targetColors[i%len(targetColors)]}
		g.drift.place(t, g.rng, g.targetWidth(), tc.Height)
		g.targets = append(g.targets, t)
	}
}

// targetWidth shrinks targets as the difficulty rises.
func (g *Game) targetWidth() float64 {
	return g.difficulty.Size(g.cfg.Targets.Width, 2, g.score, g.tick)
}

// Step advances the demo by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	dt := g.runtime.Dt()

	if in.Has(core.ActionRotateLeft) || in.Has(core.ActionLeft) {
		g.cannon.Rotate(-1)
	}
	if in.Has(core.ActionRotateRight) || in.Has(core.ActionRight) {
		g.cannon.Rotate(1)
	}

	g.cannon.Tick()
	if in.Has(core.ActionFire) && len(g.balls) < g.cfg.Ball.MaxBalls {
		g.fire()
	}

	g.updateTargets(dt)
	g.updateBalls(dt)

	if g.cannon.Ammo() == 0 && len(g.balls) == 0 {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) fire() {
	origin, dir, ok := g.cannon.Fire()
	if !ok {
		return
	}

	bc := g.cfg.Ball
	b := NewBall(origin, bc.Radius, dir.Scale(bc.Speed), g.collide)
	b.Friction = bc.Friction
	b.MinSpeed = bc.MinSpeed
	b.StuckTimeout = bc.StuckTimeout
	b.Color = ballColors[g.fired%len(ballColors)]
	g.fired++
	g.balls = append(g.balls, b)
}

func (g *Game) updateTargets(dt float64) {
	now := float64(g.tick) * dt
	speed := g.difficulty.Speed(g.cfg.Targets.DriftSpeed, g.score, g.tick)
	for _, t := range g.targets {
		g.drift.move(t, now, dt, speed)
	}
}

func (g *Game) updateBalls(dt float64) {
	alive := make([]*Ball, 0, len(g.balls))
	for _, b := range g.balls {
		if b.Step(dt) {
			alive = append(alive, b)
		}
	}
	g.balls = alive
}

// collide is the CollisionFunc shared by every ball.
func (g *Game) collide(b *Ball) (geom.Vector2, bool) {
	region := &b.Region

	res := geom.Intersect(g.arena, region)
	switch {
	case res.Kind == geom.OverlapContained:
	case res.Hit():
		g.collisions++
		return res.Normal, true
	default:
		// Outside the arena: zero normal kills the ball.
		return geom.Vector2{}, true
	}

	for _, o := range g.obstacles {
		if n, ok := contactNormal(o, region); ok {
			g.collisions++
			return n, true
		}
	}

	for _, t := range g.targets {
		if n, ok := contactNormal(&t.Body, region); ok {
			g.hitTarget(t)
			return n, true
		}
	}

	for _, other := range g.balls {
		if other == b {
			continue
		}
		if n, ok := contactNormal(&other.Region, region); ok {
			g.collisions++
			return n, true
		}
	}

	return geom.Vector2{}, false
}

// contactNormal returns the bounce normal of ball against static. A ball
// found fully inside static is pushed away from its center.
func contactNormal(static geom.Shape, ball *geom.CircleF) (geom.Vector2, bool) {
	res := geom.Intersect(static, ball)
	if res.Hit() && res.HasNormal {
		return res.Normal, true
	}
	if !res.Overlapping() {
		return geom.Vector2{}, false
	}

	n, err := ball.RotatedCenter().Sub(static.Bounds().Center()).Normalize()
	if err != nil {
		return geom.Vec(0, -1), true
	}
	return n, true
}

func (g *Game) hitTarget(t *Target) {
	t.Hits++
	g.collisions++
	g.score += g.cfg.Targets.Points
	g.drift.place(t, g.rng, g.targetWidth(), g.cfg.Targets.Height)
}

// Render draws the arena, HUD and every body.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Screen too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
		return
	}

	dst.DrawBox(core.NewCellRect(0, hudRows, g.runtime.ScreenW, g.runtime.ScreenH-hudRows), core.ColorGray)
	g.renderHUD(dst)

	for _, o := range g.obstacles {
		dst.FillPolygon(o.Corners(), ObstacleChar, core.ColorGray)
	}
	for _, t := range g.targets {
		dst.FillPolygon(t.Body.Corners(), TargetChar, t.Color)
	}

	dst.FillPolygon(g.cannon.Body.Corners(), BarrelChar, core.ColorBrightWhite)
	dst.FillCircle(g.cannon.Pivot(), 0.5, PivotChar, core.ColorWhite)

	for _, b := range g.balls {
		dst.FillCircle(b.Center(), b.Region.Radius, BallChar, b.Color)
	}

	mid := g.runtime.ScreenH / 2
	switch {
	case g.gameOver:
		dst.DrawTextCentered(mid, "GAME OVER")
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Score: %d", g.score))
		dst.DrawTextCentered(mid+2, "Press R to restart")
	case g.paused:
		dst.DrawTextCentered(mid, "PAUSED")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Ammo: %d  Balls: %d  Angle: %4.0f°",
		g.score, g.cannon.Ammo(), len(g.balls), -g.cannon.Angle())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
}

// State returns the current demo state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		Collisions: g.collisions,
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}
}
