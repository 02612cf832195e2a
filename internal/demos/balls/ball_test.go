package balls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mini2d/internal/geom"
)

func noHit(*Ball) (geom.Vector2, bool) { return geom.Vector2{}, false }

func alwaysHit(normal geom.Vector2) CollisionFunc {
	return func(*Ball) (geom.Vector2, bool) { return normal, true }
}

func TestBall_FreeFlight(t *testing.T) {
	b := NewBall(geom.Vec(10, 10), 0.5, geom.Vec(6, 0), noHit)

	require.True(t, b.Step(0.5))
	assert.Equal(t, geom.Vec(13, 10), b.Center())
	assert.Equal(t, geom.Vec(6, 0), b.Velocity)
	assert.InDelta(t, 3.0, b.Region.CircleAngle, 1e-9)
}

func TestBall_SpinFollowsHorizontalDirection(t *testing.T) {
	b := NewBall(geom.Vec(100, 10), 0.5, geom.Vec(-300, 0), noHit)

	require.True(t, b.Step(1))
	// -300 degrees wraps to 60.
	assert.InDelta(t, 60.0, b.Region.CircleAngle, 1e-9)
}

func TestBall_BounceRestoresPositionAndDamps(t *testing.T) {
	b := NewBall(geom.Vec(10, 10), 0.5, geom.Vec(0, 10), alwaysHit(geom.Vec(0, -1)))

	require.True(t, b.Step(0.25))
	assert.Equal(t, geom.Vec(10, 10), b.Center())
	assert.InDelta(t, 0.0, b.Velocity.X, 1e-9)
	assert.InDelta(t, -9.0, b.Velocity.Y, 1e-9)
}

func TestBall_ZeroNormalKills(t *testing.T) {
	b := NewBall(geom.Vec(10, 10), 0.5, geom.Vec(5, 5), alwaysHit(geom.Vector2{}))
	assert.False(t, b.Step(0.1))
}

func TestBall_SlowBallDies(t *testing.T) {
	b := NewBall(geom.Vec(10, 10), 0.5, geom.Vec(1, 0), noHit)
	b.MinSpeed = 2
	assert.False(t, b.Step(0.1))
}

func TestBall_StuckTimeout(t *testing.T) {
	b := NewBall(geom.Vec(10, 10), 0.5, geom.Vec(0, 10), alwaysHit(geom.Vec(0, -1)))

	// Blocked for exactly StuckTimeout is still alive.
	for i := range 4 {
		require.True(t, b.Step(0.25), "step %d", i)
	}
	assert.False(t, b.Step(0.25))
}

func TestBall_FreeMoveResetsStuckTimer(t *testing.T) {
	blocked := true
	b := NewBall(geom.Vec(10, 10), 0.5, geom.Vec(0, 10), func(*Ball) (geom.Vector2, bool) {
		return geom.Vec(0, -1), blocked
	})

	for range 4 {
		require.True(t, b.Step(0.25))
	}
	blocked = false
	require.True(t, b.Step(0.25))
	blocked = true
	for range 4 {
		require.True(t, b.Step(0.25))
	}
}

func TestBall_NilCollisionFuncDies(t *testing.T) {
	b := NewBall(geom.Vec(0, 0), 1, geom.Vec(1, 1), nil)
	assert.False(t, b.Step(0.1))
}
