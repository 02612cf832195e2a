package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersect_AxisAlignedRectangles(t *testing.T) {
	a := NewRectangle(0, 0, 10, 10)
	b := NewRectangle(5, 5, 10, 10)

	res := a.Intersect(b)
	assert.Equal(t, OverlapPartial, res.Kind)
	assert.True(t, res.Hit())
	assert.True(t, res.Overlapping())
	assert.False(t, res.Rejected)
	assert.Equal(t, 1, res.Points)

	// b's corner sits on a's diagonal; the normal follows it toward b.
	require.True(t, res.HasNormal)
	assertVec(t, Vec(math.Sqrt2/2, math.Sqrt2/2), res.Normal)
}

func TestIntersect_DisjointFastReject(t *testing.T) {
	res := NewRectangle(0, 0, 2, 2).Intersect(NewRectangle(100, 100, 2, 2))
	assert.Equal(t, OverlapNone, res.Kind)
	assert.True(t, res.Rejected)
	assert.False(t, res.Hit())
	assert.False(t, res.Overlapping())
}

func TestIntersect_FullContainment(t *testing.T) {
	big := NewRectangle(0, 0, 100, 100)
	small := NewRectangle(40, 40, 10, 10)

	assert.True(t, big.Contain(small))
	res := big.Intersect(small)
	assert.Equal(t, OverlapContained, res.Kind)
	assert.Equal(t, 4, res.Points)
	assert.False(t, res.Hit())

	// The reverse direction is not containment.
	assert.False(t, small.Contain(big))
	assert.Equal(t, OverlapNone, small.Intersect(big).Kind)
}

func TestIntersect_RotatedNoFalseReject(t *testing.T) {
	// A 45 degree square reaches past its unrotated half extent.
	diamond := NewRectangle(0, 0, 10, 10)
	diamond.RectangleAngle = 45
	probe := NewRectangle(6.5, 0, 2, 2)

	res := diamond.Intersect(probe)
	assert.False(t, res.Rejected)
	assert.Equal(t, OverlapPartial, res.Kind)
	assert.Equal(t, 2, res.Points)
	assertVec(t, Vec(1, 0), res.Normal)
}

func TestIntersect_RectangleCircle(t *testing.T) {
	box := NewRectangle(0, 0, 10, 10)

	res := box.Intersect(NewCircle(Vec(0, 7), 2))
	assert.Equal(t, OverlapPartial, res.Kind)
	assertVec(t, Vec(0, 1), res.Normal)

	assert.True(t, box.Contain(NewCircle(Vec(1, 1), 2)))

	far := box.Intersect(NewCircle(Vec(30, 30), 2))
	assert.True(t, far.Rejected)
	assert.Equal(t, OverlapNone, far.Kind)
}

func TestIntersect_CircleStatic(t *testing.T) {
	c := NewCircle(Vec(0, 0), 10)

	t.Run("contains rectangle", func(t *testing.T) {
		res := c.Intersect(NewRectangle(0, 0, 2, 2))
		assert.Equal(t, OverlapContained, res.Kind)
		assert.Equal(t, 4, res.Points)
	})

	t.Run("rectangle crossing the rim", func(t *testing.T) {
		res := c.Intersect(NewRectangle(10, 0, 4, 4))
		assert.Equal(t, OverlapPartial, res.Kind)
		assert.Equal(t, 2, res.Points)
		require.True(t, res.HasNormal)
		assertVec(t, Vec(1, 0), res.Normal)
	})

	t.Run("edge touches without vertices", func(t *testing.T) {
		// A wide bar crossing the rim with every vertex outside.
		res := c.Intersect(Polygon{Vec(-20, 9), Vec(20, 9), Vec(20, 12), Vec(-20, 12)})
		assert.Equal(t, OverlapPartial, res.Kind)
		assert.Zero(t, res.Points)
		assertVec(t, Vec(0, 1), res.Normal)
	})

	t.Run("near corner but apart", func(t *testing.T) {
		res := c.Intersect(NewRectangle(9, 9, 2, 2))
		assert.False(t, res.Rejected)
		assert.Equal(t, OverlapNone, res.Kind)
	})
}

func TestIntersect_Circles(t *testing.T) {
	tests := []struct {
		name   string
		a, b   *CircleF
		kind   Overlap
		normal bool
	}{
		{"contained", NewCircle(Vec(0, 0), 5), NewCircle(Vec(1, 0), 2), OverlapContained, true},
		{"concentric", NewCircle(Vec(0, 0), 5), NewCircle(Vec(0, 0), 2), OverlapContained, false},
		{"touching", NewCircle(Vec(0, 0), 1), NewCircle(Vec(2, 0), 1), OverlapPartial, true},
		{"boxes overlap, circles do not", NewCircle(Vec(0, 0), 1), NewCircle(Vec(1.9, 1.9), 1), OverlapNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Intersect(tt.a, tt.b)
			assert.Equal(t, tt.kind, res.Kind)
			assert.False(t, res.Rejected)
			assert.Equal(t, tt.normal, res.HasNormal)
			if tt.normal {
				assertVec(t, Vec(1, 0), res.Normal)
			}
		})
	}
}

func TestIntersect_Polygons(t *testing.T) {
	tri := Polygon{Vec(0, -10), Vec(10, 10), Vec(-10, 10)}

	assert.True(t, Contain(tri, NewRectangle(0, 5, 2, 2)))

	// Two triangle vertices inside a wide bar, equally near both long edges:
	// the edge facing the rest of the triangle wins.
	res := Intersect(NewRectangle(0, 10, 30, 4), tri)
	assert.Equal(t, OverlapPartial, res.Kind)
	assert.Equal(t, 2, res.Points)
	assertVec(t, Vec(0, -1), res.Normal)

	assert.Equal(t, OverlapPartial, Intersect(tri, NewCircle(Vec(0, 11), 2)).Kind)
	assert.True(t, Intersect(tri, Polygon{Vec(50, 50), Vec(51, 50), Vec(51, 51)}).Rejected)
}

func TestIntersect_NilShapes(t *testing.T) {
	var r *RectangleF
	var c *CircleF

	assert.Equal(t, Intersection{}, Intersect(nil, NewRectangle(0, 0, 1, 1)))
	assert.Equal(t, Intersection{}, Intersect(r, NewRectangle(0, 0, 1, 1)))
	assert.Equal(t, Intersection{}, Intersect(NewCircle(Vec(0, 0), 1), c))
	assert.False(t, Contain(nil, nil))
}

func TestOverlap_String(t *testing.T) {
	assert.Equal(t, "none", OverlapNone.String())
	assert.Equal(t, "partial", OverlapPartial.String())
	assert.Equal(t, "contained", OverlapContained.String())
}
