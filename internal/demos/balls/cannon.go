package balls

import (
	"github.com/vovakirdan/mini2d/internal/config"
	"github.com/vovakirdan/mini2d/internal/core"
	"github.com/vovakirdan/mini2d/internal/geom"
)

// Cannon is a barrel that pivots around its breech.
//
// The barrel is a rectangle whose center sits half a length to the right of
// the pivot. Anchor rotation swings that center around the pivot and the same
// self rotation lines the barrel up with it, so the two angles always match.
type Cannon struct {
	Body geom.RectangleF

	minAngle    float64
	maxAngle    float64
	step        float64
	ammo        int
	reload      int
	reloadTicks int
}

// NewCannon creates a cannon pivoting at pivot, aimed halfway through its arc.
func NewCannon(pivot geom.Vector2, cfg config.CannonConfig) *Cannon {
	c := &Cannon{
		minAngle:    min(cfg.MinAngle, cfg.MaxAngle),
		maxAngle:    max(cfg.MinAngle, cfg.MaxAngle),
		step:        cfg.RotateStep,
		ammo:        cfg.Ammo,
		reloadTicks: cfg.ReloadTicks,
	}
	c.Body = *geom.NewRectangleAt(
		pivot.Add(geom.Vec(cfg.Length/2, 0)),
		geom.Vec(cfg.Length, cfg.Thickness),
	)
	c.Body.Anchor = pivot
	c.Body.UseAnchor = true
	c.Aim((c.minAngle + c.maxAngle) / 2)
	return c
}

// Angle returns the current aim in degrees.
func (c *Cannon) Angle() float64 {
	return c.Body.AnchorAngle
}

// Aim points the barrel at angle, clamped to the configured arc.
func (c *Cannon) Aim(angle float64) {
	a := core.ClampF(angle, c.minAngle, c.maxAngle)
	c.Body.AnchorAngle = a
	c.Body.RectangleAngle = a
}

// Rotate turns the barrel by the given number of steps; negative turns left.
func (c *Cannon) Rotate(steps float64) {
	c.Aim(c.Angle() + steps*c.step)
}

// Pivot returns the breech point the barrel turns around.
func (c *Cannon) Pivot() geom.Vector2 {
	return c.Body.Anchor
}

// Direction returns the unit vector along the barrel.
func (c *Cannon) Direction() geom.Vector2 {
	return geom.Vec(1, 0).RotatedAround(geom.Vector2{}, c.Angle())
}

// Muzzle returns the point at the open end of the barrel.
func (c *Cannon) Muzzle() geom.Vector2 {
	return c.Pivot().Add(c.Direction().Scale(c.Body.W()))
}

// Ammo returns the remaining shots.
func (c *Cannon) Ammo() int {
	return c.ammo
}

// Tick counts down the reload timer.
func (c *Cannon) Tick() {
	if c.reload > 0 {
		c.reload--
	}
}

// Ready reports whether the cannon can fire now.
func (c *Cannon) Ready() bool {
	return c.ammo > 0 && c.reload == 0
}

// Fire spends one shot and returns the launch point and direction.
func (c *Cannon) Fire() (origin, dir geom.Vector2, ok bool) {
	if !c.Ready() {
		return geom.Vector2{}, geom.Vector2{}, false
	}
	c.ammo--
	c.reload = c.reloadTicks
	return c.Muzzle(), c.Direction(), true
}
