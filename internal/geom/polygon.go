package geom

import "math"

// Polygon is a transient convex outline supplied by the caller. It holds no
// cache; rectangles produce one from their corners on demand.
type Polygon []Vector2

// Bounds returns the axis-aligned box around the vertices.
func (p Polygon) Bounds() Bounds {
	return BoundsOf(p...)
}

// ContainsPoint reports whether pt lies inside or on the polygon.
func (p Polygon) ContainsPoint(pt Vector2) bool {
	return ContainsPoint(p, pt)
}

func (Polygon) isShape() {}

// turn is the orientation of an ordered point triple.
type turn int

const (
	collinear turn = iota
	clockwise
	counterClockwise
)

// orientation classifies p -> q -> r. With y pointing down a positive cross
// product is a clockwise turn on screen.
func orientation(p, q, r Vector2) turn {
	c := CrossProduct(p, q, r)
	switch {
	case c > 0:
		return clockwise
	case c < 0:
		return counterClockwise
	default:
		return collinear
	}
}

// ContainsPoint reports whether p is inside the convex polygon poly: every
// edge must see p on the same side. Collinear edges are ignored, so points on
// the boundary count as contained.
func ContainsPoint(poly []Vector2, p Vector2) bool {
	n := len(poly)
	if n < 2 {
		return false
	}

	want := collinear
	for i := range poly {
		o := orientation(poly[i], poly[(i+1)%n], p)
		if o == collinear {
			continue
		}
		if want == collinear {
			want = o
			continue
		}
		if o != want {
			return false
		}
	}

	// All edges collinear with p: the outline is flat, so fall back to its box.
	if want == collinear {
		return BoundsOf(poly...).ContainsPoint(p)
	}
	return true
}

// signedArea2 returns twice the signed area of poly (shoelace sum).
func signedArea2(poly []Vector2) float64 {
	var sum float64
	n := len(poly)
	for i := range poly {
		sum += Determinant(poly[i], poly[(i+1)%n])
	}
	return sum
}

// outward returns the perpendicular of edge a -> b that points away from the
// polygon interior, given the sign of the polygon's area. It is not normalized.
func outward(a, b Vector2, area float64) Vector2 {
	s := b.Sub(a)
	if area < 0 {
		return Vector2{X: -s.Y, Y: s.X}
	}
	return Vector2{X: s.Y, Y: -s.X}
}

// lineDistance is the distance from p to the infinite line through a and b.
// a and b must differ.
func lineDistance(a, b, p Vector2) float64 {
	return math.Abs(CrossProduct(a, b, p)) / DistanceFrom(a, b)
}

// closestOnSegment projects p onto the closed segment a-b.
func closestOnSegment(a, b, p Vector2) Vector2 {
	ab := b.Sub(a)
	l2 := DotProduct(ab, ab)
	if l2 == 0 {
		return a
	}
	t := DotProduct(p.Sub(a), ab) / l2
	t = math.Max(0, math.Min(1, t))
	return a.Add(ab.Scale(t))
}

// tieEpsilon is the relative tolerance under which two edge distances are
// considered equal.
const tieEpsilon = 1e-9

// edgeNormal returns the unit outward normal of the static edge nearest to p,
// measured to the edge's line. Zero-length edges are skipped. When several
// edges are equally near, the normals of those facing toward are summed so a
// vertex sitting on a diagonal pushes along it; if none face it the first
// nearest edge wins.
func edgeNormal(poly []Vector2, area float64, p, toward Vector2) (Vector2, bool) {
	n := len(poly)
	bestDist := math.Inf(1)
	for i := range poly {
		a, b := poly[i], poly[(i+1)%n]
		if a.Equal(b) {
			continue
		}
		bestDist = math.Min(bestDist, lineDistance(a, b, p))
	}
	if math.IsInf(bestDist, 1) {
		return Vector2{}, false
	}

	tol := tieEpsilon * math.Max(1, bestDist)
	var first, facing Vector2
	found := false
	for i := range poly {
		a, b := poly[i], poly[(i+1)%n]
		if a.Equal(b) || lineDistance(a, b, p)-bestDist > tol {
			continue
		}
		normal, err := outward(a, b, area).Normalize()
		if err != nil {
			continue
		}
		if !found {
			first, found = normal, true
		}
		if DotProduct(normal, toward.Sub(p)) > 0 {
			facing = facing.Add(normal)
		}
	}
	if !found {
		return Vector2{}, false
	}
	if facing.IsZero() {
		return first, true
	}
	return facing, true
}

func centroid(points []Vector2) Vector2 {
	var sum Vector2
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.DivScalar(float64(len(points)))
}

// IntersectConvex tests the moving convex outline against the static one.
//
// Each moving vertex is tested for containment in static. When some but not
// all vertices are inside the result is Partial, with a normal built from the
// outward normals of the static edges nearest to each contained vertex.
// When every vertex is inside the result is Contained. If the accumulated
// normal cancels out on a partial overlap there is no usable collision and the
// result is None. Points always reports the number of contained vertices.
func IntersectConvex(static, moving []Vector2) Intersection {
	if len(static) < 2 || len(moving) < 2 {
		return Intersection{}
	}

	area := signedArea2(static)
	toward := centroid(moving)

	var sum Vector2
	count := 0
	for _, p := range moving {
		if !ContainsPoint(static, p) {
			continue
		}
		count++
		if normal, ok := edgeNormal(static, area, p, toward); ok {
			sum = sum.Add(normal)
		}
	}

	res := Intersection{Points: count}
	switch {
	case count == 0:
		return res
	case count == len(moving):
		res.Kind = OverlapContained
		if normal, err := sum.Normalize(); err == nil {
			res.Normal = normal
			res.HasNormal = true
		}
	default:
		normal, err := sum.Normalize()
		if err != nil {
			return res
		}
		res.Kind = OverlapPartial
		res.Normal = normal
		res.HasNormal = true
	}
	return res
}

// IntersectCircle tests a circle against the static convex outline.
//
// An edge touches the circle when the distance from the rotated center to the
// edge's line is at most the radius. The normal is the normalized sum of the
// outward normals of every touching edge. A circle whose center is
// inside and that touches no edge is Contained.
func IntersectCircle(static []Vector2, circle *CircleF) Intersection {
	if len(static) < 2 || circle == nil {
		return Intersection{}
	}

	center := circle.RotatedCenter()
	r := circle.Radius
	n := len(static)
	area := signedArea2(static)

	var sum Vector2
	matched := 0
	for i := range static {
		a, b := static[i], static[(i+1)%n]
		if a.Equal(b) {
			continue
		}
		if lineDistance(a, b, center) > r {
			continue
		}
		if normal, err := outward(a, b, area).Normalize(); err == nil {
			sum = sum.Add(normal)
			matched++
		}
	}

	if matched == 0 {
		if ContainsPoint(static, center) {
			return Intersection{Kind: OverlapContained, Points: 1}
		}
		return Intersection{}
	}

	normal, err := sum.Normalize()
	if err != nil {
		return Intersection{}
	}
	return Intersection{
		Kind:      OverlapPartial,
		Normal:    normal,
		HasNormal: true,
		Points:    matched,
	}
}
