package balls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mini2d/internal/config"
	"github.com/vovakirdan/mini2d/internal/geom"
)

func testCannonConfig() config.CannonConfig {
	return config.CannonConfig{
		Length:      4,
		Thickness:   1,
		MinAngle:    -170,
		MaxAngle:    -10,
		RotateStep:  5,
		Ammo:        2,
		ReloadTicks: 3,
	}
}

func assertNear(t *testing.T, want, got geom.Vector2) {
	t.Helper()
	assert.True(t, want.Approx(got, 1e-9), "want %v, got %v", want, got)
}

func TestCannon_StartsMidArc(t *testing.T) {
	c := NewCannon(geom.Vec(10, 20), testCannonConfig())

	assert.Equal(t, -90.0, c.Angle())
	assertNear(t, geom.Vec(0, -1), c.Direction())
	assertNear(t, geom.Vec(10, 16), c.Muzzle())
	assertNear(t, geom.Vec(10, 18), c.Body.RotatedCenter())
	assert.Equal(t, geom.Vec(10, 20), c.Pivot())
}

func TestCannon_RotateClamps(t *testing.T) {
	c := NewCannon(geom.Vec(0, 0), testCannonConfig())

	c.Rotate(2)
	assert.Equal(t, -80.0, c.Angle())
	assert.Equal(t, c.Body.AnchorAngle, c.Body.RectangleAngle)

	c.Rotate(100)
	assert.Equal(t, -10.0, c.Angle())

	c.Rotate(-100)
	assert.Equal(t, -170.0, c.Angle())
}

func TestCannon_BarrelStaysOnAxis(t *testing.T) {
	c := NewCannon(geom.Vec(5, 5), testCannonConfig())
	c.Aim(-45)

	// The barrel's far edge midpoint is the muzzle.
	mid := c.Body.TopRight().Add(c.Body.BottomRight()).Scale(0.5)
	assertNear(t, c.Muzzle(), mid)
}

func TestCannon_FireAndReload(t *testing.T) {
	c := NewCannon(geom.Vec(10, 20), testCannonConfig())

	origin, dir, ok := c.Fire()
	require.True(t, ok)
	assertNear(t, c.Muzzle(), origin)
	assertNear(t, geom.Vec(0, -1), dir)
	assert.Equal(t, 1, c.Ammo())

	_, _, ok = c.Fire()
	assert.False(t, ok, "reloading")

	for range 3 {
		c.Tick()
	}
	require.True(t, c.Ready())
	_, _, ok = c.Fire()
	require.True(t, ok)
	assert.Equal(t, 0, c.Ammo())

	for range 10 {
		c.Tick()
	}
	assert.False(t, c.Ready(), "out of ammo")
}
