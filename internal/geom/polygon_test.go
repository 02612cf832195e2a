package geom

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(half float64) Polygon {
	return NewRectangle(0, 0, 2*half, 2*half).Corners()
}

func reversed(p Polygon) Polygon {
	r := slices.Clone(p)
	slices.Reverse(r)
	return r
}

func TestOrientation(t *testing.T) {
	assert.Equal(t, clockwise, orientation(Vec(0, 0), Vec(1, 0), Vec(1, 1)))
	assert.Equal(t, counterClockwise, orientation(Vec(0, 0), Vec(1, 0), Vec(1, -1)))
	assert.Equal(t, collinear, orientation(Vec(0, 0), Vec(1, 0), Vec(5, 0)))
}

func TestContainsPoint(t *testing.T) {
	for name, poly := range map[string]Polygon{
		"library winding": square(5),
		"reverse winding": reversed(square(5)),
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, ContainsPoint(poly, Vec(0, 0)))
			assert.True(t, ContainsPoint(poly, Vec(4.9, -4.9)))
			assert.True(t, ContainsPoint(poly, Vec(5, 0)), "boundary counts as inside")
			assert.True(t, ContainsPoint(poly, Vec(5, 5)), "corner counts as inside")
			assert.False(t, ContainsPoint(poly, Vec(5.01, 0)))
			assert.False(t, ContainsPoint(poly, Vec(20, -5)), "on an edge's extension")
		})
	}

	assert.False(t, ContainsPoint(nil, Vec(0, 0)))
	assert.False(t, ContainsPoint(Polygon{Vec(1, 1)}, Vec(1, 1)))
	assert.True(t, Polygon{Vec(0, 0), Vec(4, 0)}.ContainsPoint(Vec(2, 0)))
	assert.False(t, Polygon{Vec(0, 0), Vec(4, 0)}.ContainsPoint(Vec(6, 0)))
}

func TestIntersectConvex_Degenerate(t *testing.T) {
	assert.Equal(t, Intersection{}, IntersectConvex(nil, square(1)))
	assert.Equal(t, Intersection{}, IntersectConvex(square(1), Polygon{Vec(0, 0)}))
	assert.Equal(t, Intersection{}, IntersectConvex(Polygon{Vec(0, 0)}, square(1)))
}

func TestIntersectConvex_EdgeNormal(t *testing.T) {
	// Moving box pokes through the bottom edge of the static square.
	moving := NewRectangle(0, 6, 4, 4).Corners()

	for name, static := range map[string]Polygon{
		"library winding": square(5),
		"reverse winding": reversed(square(5)),
	} {
		t.Run(name, func(t *testing.T) {
			res := IntersectConvex(static, moving)
			assert.Equal(t, OverlapPartial, res.Kind)
			assert.Equal(t, 2, res.Points)
			require.True(t, res.HasNormal)
			assertVec(t, Vec(0, 1), res.Normal)
		})
	}
}

func TestIntersectConvex_CancellingNormal(t *testing.T) {
	// Two contained vertices near opposite edges cancel out.
	moving := Polygon{Vec(-4, 0), Vec(4, 0), Vec(0, 20)}

	res := IntersectConvex(square(5), moving)
	assert.Equal(t, OverlapNone, res.Kind)
	assert.Equal(t, 2, res.Points)
	assert.False(t, res.HasNormal)
}

func TestIntersectConvex_Contained(t *testing.T) {
	res := IntersectConvex(square(5), square(1))
	assert.Equal(t, OverlapContained, res.Kind)
	assert.Equal(t, 4, res.Points)

	res = IntersectConvex(square(1), NewRectangle(10, 10, 1, 1).Corners())
	assert.Equal(t, OverlapNone, res.Kind)
	assert.Zero(t, res.Points)
}

func TestIntersectCircle(t *testing.T) {
	tests := []struct {
		name   string
		circle *CircleF
		kind   Overlap
		normal Vector2
	}{
		{"tangent to bottom edge", NewCircle(Vec(0, 7), 2), OverlapPartial, Vec(0, 1)},
		{"just short of bottom edge", NewCircle(Vec(0, 7), 1.999), OverlapNone, Vector2{}},
		{"center on right edge", NewCircle(Vec(5, 0), 0.5), OverlapPartial, Vec(1, 0)},
		{"across top-left corner", NewCircle(Vec(-5.5, -5.5), 1), OverlapPartial, Vec(-math.Sqrt2/2, -math.Sqrt2/2)},
		{"inside", NewCircle(Vec(0, 0), 1), OverlapContained, Vector2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, static := range []Polygon{square(5), reversed(square(5))} {
				res := IntersectCircle(static, tt.circle)
				assert.Equal(t, tt.kind, res.Kind)
				if tt.kind == OverlapPartial {
					require.True(t, res.HasNormal)
					assertVec(t, tt.normal, res.Normal)
				} else {
					assert.False(t, res.HasNormal)
				}
			}
		})
	}
}

func TestIntersectCircle_Degenerate(t *testing.T) {
	assert.Equal(t, Intersection{}, IntersectCircle(Polygon{Vec(0, 0)}, NewUnitCircle(Vec(0, 0))))
	assert.Equal(t, Intersection{}, IntersectCircle(square(1), nil))

	// Repeated vertices are skipped rather than divided by.
	poly := Polygon{Vec(5, 5), Vec(5, 5), Vec(-5, 5), Vec(-5, -5), Vec(5, -5)}
	res := IntersectCircle(poly, NewCircle(Vec(0, 6), 1.5))
	assert.Equal(t, OverlapPartial, res.Kind)
	assertVec(t, Vec(0, 1), res.Normal)
}

func TestIntersectCircle_OpposingEdges(t *testing.T) {
	// A circle wider than a thin bar touches both long edges; their
	// normals cancel and there is no usable collision.
	bar := NewRectangle(0, 0, 100, 2).Corners()
	res := IntersectCircle(bar, NewCircle(Vec(0, 0), 1.5))
	assert.Equal(t, OverlapNone, res.Kind)
}
