package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got Vector2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y of %v", got)
}

func TestRectangle_Corners(t *testing.T) {
	r := NewRectangle(0, 0, 10, 4)

	assertVec(t, Vec(-5, -2), r.TopLeft())
	assertVec(t, Vec(5, -2), r.TopRight())
	assertVec(t, Vec(-5, 2), r.BottomLeft())
	assertVec(t, Vec(5, 2), r.BottomRight())

	c := r.Corners()
	assert.Equal(t, Polygon{r.BottomRight(), r.BottomLeft(), r.TopLeft(), r.TopRight()}, c)
	assert.Equal(t, 10.0, r.W())
	assert.Equal(t, 4.0, r.H())
}

func TestRectangle_SelfRotation(t *testing.T) {
	r := NewRectangle(0, 0, 10, 4)
	r.RectangleAngle = 90

	assertVec(t, Vec(2, -5), r.TopLeft())
	assertVec(t, Vec(2, 5), r.TopRight())
	assertVec(t, Vec(-2, -5), r.BottomLeft())
	assertVec(t, Vec(-2, 5), r.BottomRight())

	// Self rotation never moves the center.
	assertVec(t, Vec(0, 0), r.RotatedCenter())
}

func TestRectangle_Anchor(t *testing.T) {
	r := NewRectangle(10, 0, 2, 2)
	r.Anchor = Vec(0, 0)
	r.AnchorAngle = 90

	// Without UseAnchor the anchor is ignored.
	assertVec(t, Vec(10, 0), r.RotatedCenter())

	r.UseAnchor = true
	assertVec(t, Vec(0, 10), r.RotatedCenter())
	assertVec(t, Vec(-1, 9), r.TopLeft())

	// Self rotation still applies with the anchor in use.
	r.RectangleAngle = 180
	assertVec(t, Vec(1, 11), r.TopLeft())
}

func TestRectangle_CacheCorrectness(t *testing.T) {
	r := NewRectangle(0, 0, 4, 4)
	r.RectangleAngle = 30

	first := r.TopLeft()
	n := r.updates
	second := r.TopLeft()
	assert.Equal(t, first, second)
	assert.Equal(t, n, r.updates, "unchanged fields must not recompute")

	r.Location = Vec(10, 0)
	moved := r.TopLeft()
	assertVec(t, first.Add(Vec(10, 0)), moved)
	assert.Equal(t, n+1, r.updates)

	r.SetW(8)
	assert.Equal(t, n+2, r.updates)
	r.SetW(8)
	assert.Equal(t, n+2, r.updates)
}

func TestRectangle_FromCorners(t *testing.T) {
	r := RectangleFromCorners(Vec(10, 10), Vec(0, 4))
	assertVec(t, Vec(5, 7), r.Location)
	assertVec(t, Vec(10, 6), r.Dimension)
	assertVec(t, Vec(0, 4), r.TopLeft())

	assert.True(t, r.Equal(NewRectangle(5, 7, 10, 6)))
	assert.False(t, r.Equal(NewRectangle(5, 7, 10, 5)))
	assert.False(t, r.Equal(nil))
}

func TestRectangle_Setters(t *testing.T) {
	r := NewRectangle(0, 0, 2, 2)
	r.SetX(3)
	r.SetY(4)
	r.SetH(6)

	assert.Equal(t, 3.0, r.X())
	assert.Equal(t, 4.0, r.Y())
	assertVec(t, Vec(2, 1), r.TopLeft())
}

func TestRectangle_BoundsRotated(t *testing.T) {
	r := NewRectangle(0, 0, 2, 2)
	r.RectangleAngle = 45

	b := r.Bounds()
	assert.InDelta(t, -math.Sqrt2, b.Min.X, 1e-9)
	assert.InDelta(t, -math.Sqrt2, b.Min.Y, 1e-9)
	assert.InDelta(t, math.Sqrt2, b.Max.X, 1e-9)
	assert.InDelta(t, math.Sqrt2, b.Max.Y, 1e-9)
}
