package balls

import (
	"github.com/vovakirdan/mini2d/internal/core"
	"github.com/vovakirdan/mini2d/internal/geom"
)

// CollisionFunc checks a ball that has just moved. It reports whether the ball
// hit something and the surface normal to bounce off. A hit with a zero
// normal means the ball left the playfield.
type CollisionFunc func(b *Ball) (normal geom.Vector2, hit bool)

// Ball is a bouncing circle fired by the cannon.
type Ball struct {
	Region       geom.CircleF
	Velocity     geom.Vector2 // Cells per second
	Friction     float64      // Velocity factor kept after a bounce
	MinSpeed     float64      // Free-flying balls at or below this speed die
	StuckTimeout float64      // Seconds of continuous blocking before the ball dies
	Color        core.Color

	lastMove float64 // Seconds since the ball last moved freely
	collide  CollisionFunc
}

// NewBall creates a ball at center moving with velocity.
func NewBall(center geom.Vector2, radius float64, velocity geom.Vector2, collide CollisionFunc) *Ball {
	return &Ball{
		Region:       *geom.NewCircle(center, radius),
		Velocity:     velocity,
		Friction:     0.9,
		StuckTimeout: 1,
		collide:      collide,
	}
}

// Step advances the ball by dt seconds and reports whether it is still alive.
//
// On a collision the move is undone and the velocity is reflected about the
// returned normal and damped by Friction. A ball dies when it leaves the
// playfield, when it slows to MinSpeed while moving freely, or when it stays
// blocked for longer than StuckTimeout.
func (b *Ball) Step(dt float64) bool {
	if b.collide == nil {
		return false
	}

	prev := b.Region.Location
	b.Region.Location = prev.Add(b.Velocity.Scale(dt))

	spin := b.Velocity.Magnitude() * dt
	if b.Velocity.X < 0 {
		spin = -spin
	}
	b.Region.CircleAngle = core.WrapAngle(b.Region.CircleAngle + spin)

	if normal, hit := b.collide(b); hit {
		b.Region.Location = prev
		reflected, err := geom.Reflect(b.Velocity, normal)
		if err != nil {
			return false
		}
		b.Velocity = reflected.Scale(b.Friction)
		b.lastMove += dt
	} else {
		b.lastMove = 0
		if b.Velocity.Magnitude() <= b.MinSpeed {
			return false
		}
	}

	return b.lastMove <= b.StuckTimeout
}

// Center returns the ball's current center.
func (b *Ball) Center() geom.Vector2 {
	return b.Region.RotatedCenter()
}
