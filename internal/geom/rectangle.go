package geom

import "math"

// RectangleF is a rectangle described by its center and size. It can rotate
// around its own center (RectangleAngle) and, independently, orbit an anchor
// point (AnchorAngle, enabled by UseAnchor).
//
// Fields are public. The rotated center and the four world-space corners are
// cached and rebuilt lazily whenever a tracked field differs from the value
// seen at the last rebuild.
type RectangleF struct {
	Location       Vector2 // Center of the rectangle
	Dimension      Vector2 // X is the width, Y the height
	Anchor         Vector2 // Pivot the center is rotated around
	AnchorAngle    float64 // Rotation of Location around Anchor (degrees)
	RectangleAngle float64 // Rotation around the rectangle's own center (degrees)
	UseAnchor      bool

	center                                     Vector2
	topLeft, topRight, bottomLeft, bottomRight Vector2
	last                                       rectKey
	fresh                                      bool
	updates                                    int
}

// rectKey captures every input of the cached geometry.
type rectKey struct {
	location       Vector2
	dimension      Vector2
	anchor         Vector2
	anchorAngle    float64
	rectangleAngle float64
	useAnchor      bool
}

// NewRectangle creates a rectangle centered at (x, y) with size w x h.
func NewRectangle(x, y, w, h float64) *RectangleF {
	return NewRectangleAt(Vec(x, y), Vec(w, h))
}

// NewRectangleAt creates a rectangle from a center and a dimension.
func NewRectangleAt(center, dimension Vector2) *RectangleF {
	r := &RectangleF{Location: center, Dimension: dimension}
	r.update()
	return r
}

// RectangleFromCorners creates the axis-aligned rectangle spanned by two
// opposite corners, in any order.
func RectangleFromCorners(p1, p2 Vector2) *RectangleF {
	r := &RectangleF{}
	r.FromCorners(p1, p2)
	return r
}

// FromCorners sets location and dimension from two opposite corners.
func (r *RectangleF) FromCorners(p1, p2 Vector2) {
	r.Location = p1.Add(p2).Scale(0.5)
	r.Dimension = Vec(math.Abs(p2.X-p1.X), math.Abs(p2.Y-p1.Y))
	r.update()
}

func (r *RectangleF) key() rectKey {
	return rectKey{
		location:       r.Location,
		dimension:      r.Dimension,
		anchor:         r.Anchor,
		anchorAngle:    r.AnchorAngle,
		rectangleAngle: r.RectangleAngle,
		useAnchor:      r.UseAnchor,
	}
}

// update rebuilds the cached center and corners if any tracked field changed.
func (r *RectangleF) update() {
	k := r.key()
	if r.fresh && k == r.last {
		return
	}
	r.last = k
	r.fresh = true
	r.updates++

	c := r.Location
	if r.UseAnchor && r.AnchorAngle != 0 {
		c = c.RotatedAround(r.Anchor, r.AnchorAngle)
	}
	r.center = c

	hw := r.Dimension.X / 2
	hh := r.Dimension.Y / 2
	r.topLeft = Vec(c.X-hw, c.Y-hh)
	r.topRight = Vec(c.X+hw, c.Y-hh)
	r.bottomLeft = Vec(c.X-hw, c.Y+hh)
	r.bottomRight = Vec(c.X+hw, c.Y+hh)

	if r.RectangleAngle != 0 {
		r.topLeft.RotateAroundPoint(c, r.RectangleAngle)
		r.topRight.RotateAroundPoint(c, r.RectangleAngle)
		r.bottomLeft.RotateAroundPoint(c, r.RectangleAngle)
		r.bottomRight.RotateAroundPoint(c, r.RectangleAngle)
	}
}

// X returns the unrotated center X.
func (r *RectangleF) X() float64 { return r.Location.X }

// Y returns the unrotated center Y.
func (r *RectangleF) Y() float64 { return r.Location.Y }

// W returns the width.
func (r *RectangleF) W() float64 { return r.Dimension.X }

// H returns the height.
func (r *RectangleF) H() float64 { return r.Dimension.Y }

// SetX moves the center horizontally.
func (r *RectangleF) SetX(x float64) {
	r.Location.X = x
	r.update()
}

// SetY moves the center vertically.
func (r *RectangleF) SetY(y float64) {
	r.Location.Y = y
	r.update()
}

// SetW changes the width.
func (r *RectangleF) SetW(w float64) {
	r.Dimension.X = w
	r.update()
}

// SetH changes the height.
func (r *RectangleF) SetH(h float64) {
	r.Dimension.Y = h
	r.update()
}

// RotatedCenter returns the center after anchor rotation.
func (r *RectangleF) RotatedCenter() Vector2 {
	r.update()
	return r.center
}

// TopLeft returns the world-space top-left corner.
func (r *RectangleF) TopLeft() Vector2 {
	r.update()
	return r.topLeft
}

// TopRight returns the world-space top-right corner.
func (r *RectangleF) TopRight() Vector2 {
	r.update()
	return r.topRight
}

// BottomLeft returns the world-space bottom-left corner.
func (r *RectangleF) BottomLeft() Vector2 {
	r.update()
	return r.bottomLeft
}

// BottomRight returns the world-space bottom-right corner.
func (r *RectangleF) BottomRight() Vector2 {
	r.update()
	return r.bottomRight
}

// Corners returns the four corners in the winding the polygon tests expect:
// BottomRight, BottomLeft, TopLeft, TopRight.
func (r *RectangleF) Corners() Polygon {
	r.update()
	return Polygon{r.bottomRight, r.bottomLeft, r.topLeft, r.topRight}
}

// Bounds returns the axis-aligned box of the rotated corners.
func (r *RectangleF) Bounds() Bounds {
	r.update()
	return BoundsOf(r.bottomRight, r.bottomLeft, r.topLeft, r.topRight)
}

// Equal compares location and dimension only. A nil rectangle is never equal.
func (r *RectangleF) Equal(o *RectangleF) bool {
	if r == nil || o == nil {
		return false
	}
	return r.Location.Equal(o.Location) && r.Dimension.Equal(o.Dimension)
}

// Intersect tests other against this rectangle, which is treated as static.
func (r *RectangleF) Intersect(other Shape) Intersection {
	return Intersect(r, other)
}

// Contain reports whether other lies entirely inside this rectangle.
func (r *RectangleF) Contain(other Shape) bool {
	return Contain(r, other)
}

func (*RectangleF) isShape() {}
