package geom

// Overlap classifies how a moving shape relates to a static one.
type Overlap int

const (
	// OverlapNone means the shapes do not touch, or the contact produced no
	// usable collision normal.
	OverlapNone Overlap = iota
	// OverlapPartial means the moving shape crosses the static one's boundary.
	OverlapPartial
	// OverlapContained means the moving shape lies entirely inside.
	OverlapContained
)

// String returns a short name for the overlap kind.
func (o Overlap) String() string {
	switch o {
	case OverlapPartial:
		return "partial"
	case OverlapContained:
		return "contained"
	default:
		return "none"
	}
}

// Intersection is the result of testing a moving shape against a static one.
type Intersection struct {
	Kind      Overlap
	Normal    Vector2 // Unit collision normal, valid only when HasNormal
	HasNormal bool
	Points    int  // Sample points of the moving shape found inside
	Rejected  bool // Bounding boxes did not overlap; no exact test ran
}

// Hit reports a partial overlap, the case a physics step reacts to.
func (i Intersection) Hit() bool {
	return i.Kind == OverlapPartial
}

// Overlapping reports any overlap, partial or full.
func (i Intersection) Overlapping() bool {
	return i.Kind != OverlapNone
}

// Shape is one of *RectangleF, *CircleF or Polygon.
type Shape interface {
	Bounds() Bounds
	isShape()
}

// Intersect tests moving against static. Shapes whose bounding boxes are
// disjoint are rejected before any exact test. Normals point out of static.
//
// A static shape lying entirely inside the moving one reports OverlapNone;
// swap the arguments to detect that case.
func Intersect(static, moving Shape) Intersection {
	if isNil(static) || isNil(moving) {
		return Intersection{}
	}
	if !static.Bounds().Overlaps(moving.Bounds()) {
		return Intersection{Rejected: true}
	}

	if s, ok := static.(*CircleF); ok {
		switch m := moving.(type) {
		case *CircleF:
			return intersectCircles(s, m)
		case *RectangleF:
			return circleAgainstPolygon(s, m.Corners())
		case Polygon:
			return circleAgainstPolygon(s, m)
		}
		return Intersection{}
	}

	outline := outlineOf(static)
	switch m := moving.(type) {
	case *CircleF:
		return IntersectCircle(outline, m)
	case *RectangleF:
		return IntersectConvex(outline, m.Corners())
	case Polygon:
		return IntersectConvex(outline, m)
	}
	return Intersection{}
}

// Contain reports whether moving lies entirely inside static.
func Contain(static, moving Shape) bool {
	return Intersect(static, moving).Kind == OverlapContained
}

func isNil(s Shape) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *RectangleF:
		return v == nil
	case *CircleF:
		return v == nil
	}
	return false
}

func outlineOf(s Shape) Polygon {
	switch v := s.(type) {
	case *RectangleF:
		return v.Corners()
	case Polygon:
		return v
	}
	return nil
}

// intersectCircles compares rotated centers. The normal points from a to b.
func intersectCircles(a, b *CircleF) Intersection {
	ca, cb := a.RotatedCenter(), b.RotatedCenter()
	d := DistanceFrom(ca, cb)

	var res Intersection
	switch {
	case d+b.Radius <= a.Radius:
		res.Kind = OverlapContained
		res.Points = 1
	case d <= a.Radius+b.Radius:
		res.Kind = OverlapPartial
	default:
		return res
	}

	if normal, err := cb.Sub(ca).Normalize(); err == nil {
		res.Normal = normal
		res.HasNormal = true
	}
	return res
}

// circleAgainstPolygon tests a moving outline against a static circle. Points
// counts the vertices within the radius. The normal points from the circle's
// center toward the closest point of the outline.
func circleAgainstPolygon(c *CircleF, poly []Vector2) Intersection {
	if len(poly) < 2 {
		return Intersection{}
	}

	center := c.RotatedCenter()
	r := c.Radius

	inside := 0
	for _, p := range poly {
		if DistanceFrom(center, p) <= r {
			inside++
		}
	}
	if inside == len(poly) {
		return Intersection{Kind: OverlapContained, Points: inside}
	}

	n := len(poly)
	closest := poly[0]
	best := DistanceFrom(center, closest)
	for i := range poly {
		q := closestOnSegment(poly[i], poly[(i+1)%n], center)
		if d := DistanceFrom(center, q); d < best {
			closest, best = q, d
		}
	}
	if inside == 0 && best > r {
		return Intersection{}
	}

	res := Intersection{Kind: OverlapPartial, Points: inside}
	if normal, err := closest.Sub(center).Normalize(); err == nil {
		res.Normal = normal
		res.HasNormal = true
	}
	return res
}
