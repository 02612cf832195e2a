package geom

// CircleF is a circle that can optionally orbit an anchor point.
//
// Fields are public and may be mutated directly; the rotated center is
// recomputed lazily the next time it is read, by comparing the tracked fields
// against the values seen at the previous computation.
type CircleF struct {
	Location    Vector2 // Center of the circle
	Anchor      Vector2 // Pivot the center is rotated around
	Radius      float64
	AnchorAngle float64 // Rotation of Location around Anchor (degrees)
	CircleAngle float64 // Spin around the center (degrees), cosmetic only
	UseAnchor   bool

	center  Vector2
	last    circleKey
	fresh   bool
	updates int
}

// circleKey captures every input of the cached geometry.
type circleKey struct {
	location    Vector2
	anchor      Vector2
	radius      float64
	anchorAngle float64
	circleAngle float64
	useAnchor   bool
}

// NewCircle creates a circle at center with the given radius.
func NewCircle(center Vector2, radius float64) *CircleF {
	c := &CircleF{Location: center, Radius: radius}
	c.update()
	return c
}

// NewUnitCircle creates a circle of radius 1 at center.
func NewUnitCircle(center Vector2) *CircleF {
	return NewCircle(center, 1)
}

func (c *CircleF) key() circleKey {
	return circleKey{
		location:    c.Location,
		anchor:      c.Anchor,
		radius:      c.Radius,
		anchorAngle: c.AnchorAngle,
		circleAngle: c.CircleAngle,
		useAnchor:   c.UseAnchor,
	}
}

// update recomputes the rotated center if any tracked field changed.
func (c *CircleF) update() {
	k := c.key()
	if c.fresh && k == c.last {
		return
	}
	c.last = k
	c.fresh = true
	c.updates++

	c.center = c.Location
	if c.UseAnchor && c.AnchorAngle != 0 {
		c.center.RotateAroundPoint(c.Anchor, c.AnchorAngle)
	}
}

// X returns the unrotated center X.
func (c *CircleF) X() float64 { return c.Location.X }

// Y returns the unrotated center Y.
func (c *CircleF) Y() float64 { return c.Location.Y }

// R returns the radius.
func (c *CircleF) R() float64 { return c.Radius }

// SetX moves the center horizontally.
func (c *CircleF) SetX(x float64) {
	c.Location.X = x
	c.update()
}

// SetY moves the center vertically.
func (c *CircleF) SetY(y float64) {
	c.Location.Y = y
	c.update()
}

// SetR changes the radius.
func (c *CircleF) SetR(r float64) {
	c.Radius = r
	c.update()
}

// RotatedCenter returns the center after anchor rotation. It equals Location
// unless UseAnchor is set and AnchorAngle is nonzero.
func (c *CircleF) RotatedCenter() Vector2 {
	c.update()
	return c.center
}

// Bounds returns the axis-aligned box around the rotated circle.
func (c *CircleF) Bounds() Bounds {
	center := c.RotatedCenter()
	return Bounds{
		Min: center.SubScalar(c.Radius),
		Max: center.AddScalar(c.Radius),
	}
}

// Intersect tests other against this circle, which is treated as static.
func (c *CircleF) Intersect(other Shape) Intersection {
	return Intersect(c, other)
}

// Contain reports whether other lies entirely inside this circle.
func (c *CircleF) Contain(other Shape) bool {
	return Contain(c, other)
}

func (*CircleF) isShape() {}
