// Package shapes is an interactive intersection inspector: steer a shape
// around a static one and watch the overlap kind, sample count and collision
// normal update live.
package shapes

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/mini2d/internal/config"
	"github.com/vovakirdan/mini2d/internal/core"
	"github.com/vovakirdan/mini2d/internal/geom"
	"github.com/vovakirdan/mini2d/internal/registry"
)

const (
	StaticChar = '░'
	MovingChar = '▒'
	NormalChar = '*'
	AnchorChar = 'x'
)

const (
	hudRows    = 2
	minScreenW = 40
	minScreenH = 14
	normalLen  = 4
)

var overlapColors = map[geom.Overlap]core.Color{
	geom.OverlapNone:      core.ColorGreen,
	geom.OverlapPartial:   core.ColorYellow,
	geom.OverlapContained: core.ColorRed,
}

func init() {
	registry.Register(registry.Info{
		ID:          config.ShapesID,
		Title:       "Shape Inspector",
		Description: "Move and rotate shapes to explore intersection results",
	}, func(opts registry.Options) (registry.Demo, error) {
		g, err := New(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}

// Game implements the shape inspector.
type Game struct {
	cfg        config.ShapesConfig
	outline    []geom.Vector2
	staticKind Kind
	movingKind Kind
	runtime    core.RuntimeConfig

	static *body
	moving *body
	last   geom.Intersection

	tick        int
	contacts    int
	transitions int

	screenTooSmall bool
}

// New loads the inspector config named by opts.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadShapes(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg and creates the inspector.
func NewWithConfig(cfg config.ShapesConfig) (*Game, error) {
	if len(cfg.Polygon) < 3 {
		return nil, errors.New("shapes: polygon needs at least 3 points")
	}
	staticKind, err := ParseKind(cfg.Static.Kind)
	if err != nil {
		return nil, err
	}
	movingKind, err := ParseKind(cfg.Moving.Kind)
	if err != nil {
		return nil, err
	}

	outline := make([]geom.Vector2, len(cfg.Polygon))
	for i, p := range cfg.Polygon {
		outline[i] = geom.Vec(p.X, p.Y)
	}
	return &Game{cfg: cfg, outline: outline, staticKind: staticKind, movingKind: movingKind}, nil
}

// ID returns the unique identifier for this demo.
func (g *Game) ID() string {
	return config.ShapesID
}

// Title returns the display name for this demo.
func (g *Game) Title() string {
	return "Shape Inspector"
}

// Reset places both shapes as configured.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tick = 0
	g.contacts = 0
	g.transitions = 0
	g.last = geom.Intersection{}

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	if g.screenTooSmall {
		return
	}

	g.static = newBody(g.staticKind, g.cfg.Static, g.place(g.cfg.Static), g.outline)
	g.moving = newBody(g.movingKind, g.cfg.Moving, g.place(g.cfg.Moving), g.outline)
	g.last = g.inspect()
	if inContact(g.last) {
		g.contacts = 1
	}
}

// place converts a spec's fractional position to world coordinates inside
// the area below the HUD.
func (g *Game) place(spec config.ShapeSpec) geom.Vector2 {
	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH - hudRows)
	return geom.Vec(spec.X*w, hudRows+spec.Y*h)
}

// inContact reports whether the shapes touch. A partial overlap whose edge
// normals cancel is reported as OverlapNone but still has points inside.
func inContact(res geom.Intersection) bool {
	return res.Overlapping() || res.Points > 0
}

func (g *Game) inspect() geom.Intersection {
	return geom.Intersect(g.static.Shape(), g.moving.Shape())
}

// Step applies one tick of input and re-runs the intersection test.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	g.tick++

	step := g.cfg.MoveStep
	var d geom.Vector2
	if in.Has(core.ActionLeft) {
		d.X -= step
	}
	if in.Has(core.ActionRight) {
		d.X += step
	}
	if in.Has(core.ActionUp) {
		d.Y -= step
	}
	if in.Has(core.ActionDown) {
		d.Y += step
	}
	if !d.IsZero() {
		g.moving.move(d)
	}

	if in.Has(core.ActionRotateLeft) {
		g.moving.rotate(-g.cfg.RotateStep)
	}
	if in.Has(core.ActionRotateRight) {
		g.moving.rotate(g.cfg.RotateStep)
	}
	if in.Has(core.ActionToggle) {
		g.moving.cycle()
	}
	if in.Has(core.ActionFire) {
		g.static.cycle()
	}
	if in.Has(core.ActionConfirm) {
		g.moving.toggleAnchor(g.static.Center())
	}

	res := g.inspect()
	if res.Kind != g.last.Kind {
		g.transitions++
	}
	if inContact(res) && !inContact(g.last) {
		g.contacts++
	}
	g.last = res

	return core.StepResult{State: g.State()}
}

// Last returns the most recent intersection result.
func (g *Game) Last() geom.Intersection {
	return g.last
}

// Render draws both shapes, the collision normal and the readout.
func (g *Game) Render(dst *core.Screen) {
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Screen too small")
		return
	}

	g.static.draw(dst, StaticChar, core.ColorGray)
	g.moving.draw(dst, MovingChar, overlapColors[g.last.Kind])

	if g.last.HasNormal {
		from := g.moving.Center()
		dst.DrawSegment(from, from.Add(g.last.Normal.Scale(normalLen)), NormalChar, core.ColorBrightWhite)
	}
	if g.moving.rect.UseAnchor {
		a := g.moving.rect.Anchor
		dst.SetColor(int(a.X), int(a.Y), AnchorChar, core.ColorBrightCyan)
	}

	anchor := "off"
	if g.moving.rect.UseAnchor {
		anchor = "on"
	}
	dst.DrawTextColor(0, 0, fmt.Sprintf(" Static: %-9s Moving: %-9s Anchor: %-3s Contacts: %d",
		g.static.kind, g.moving.kind, anchor, g.contacts), core.ColorBrightWhite)

	normal := "-"
	if g.last.HasNormal {
		normal = fmt.Sprintf("(%.2f, %.2f)", g.last.Normal.X, g.last.Normal.Y)
	}
	dst.DrawTextColor(0, 1, fmt.Sprintf(" Overlap: %-9s Points: %d  Normal: %-14s Rejected: %t",
		g.last.Kind, g.last.Points, normal, g.last.Rejected), overlapColors[g.last.Kind])
}

// State reports distinct contacts as the score and overlap kind changes as
// collisions. The inspector never ends.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.contacts,
		Collisions: g.transitions,
	}
}
