package shapes

import (
	"fmt"

	"github.com/vovakirdan/mini2d/internal/config"
	"github.com/vovakirdan/mini2d/internal/core"
	"github.com/vovakirdan/mini2d/internal/geom"
)

// Kind selects which geometry a body presents to the intersection tests.
type Kind int

const (
	KindRectangle Kind = iota
	KindCircle
	KindPolygon
	kindCount
)

var kindNames = [...]string{"rectangle", "circle", "polygon"}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a config name to a Kind. The empty string is a rectangle.
func ParseKind(name string) (Kind, error) {
	if name == "" {
		return KindRectangle, nil
	}
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("shapes: unknown shape kind %q", name)
}

// body is one inspector shape. The rectangle carries the pose for every kind:
// the circle mirrors its center and anchor, and the polygon outline is
// placed around its center and turned by its angle.
type body struct {
	kind    Kind
	rect    geom.RectangleF
	circle  geom.CircleF
	outline []geom.Vector2
}

func newBody(kind Kind, spec config.ShapeSpec, center geom.Vector2, outline []geom.Vector2) *body {
	b := &body{
		kind:    kind,
		rect:    *geom.NewRectangleAt(center, geom.Vec(spec.Width, spec.Height)),
		circle:  *geom.NewCircle(center, spec.Radius),
		outline: outline,
	}
	b.rect.RectangleAngle = spec.Angle
	return b
}

// sync copies the pose onto the circle.
func (b *body) sync() {
	b.circle.Location = b.rect.Location
	b.circle.Anchor = b.rect.Anchor
	b.circle.AnchorAngle = b.rect.AnchorAngle
	b.circle.UseAnchor = b.rect.UseAnchor
	b.circle.CircleAngle = b.rect.RectangleAngle
}

// Shape returns the geometry for the current kind.
func (b *body) Shape() geom.Shape {
	switch b.kind {
	case KindCircle:
		b.sync()
		return &b.circle
	case KindPolygon:
		return b.polygon()
	default:
		return &b.rect
	}
}

func (b *body) polygon() geom.Polygon {
	c := b.rect.RotatedCenter()
	pts := make(geom.Polygon, len(b.outline))
	for i, p := range b.outline {
		pts[i] = c.Add(p).RotatedAround(c, b.rect.RectangleAngle)
	}
	return pts
}

// Center returns the world-space center after anchor rotation.
func (b *body) Center() geom.Vector2 {
	return b.rect.RotatedCenter()
}

func (b *body) move(d geom.Vector2) {
	b.rect.Location = b.rect.Location.Add(d)
}

// rotate turns the body around its anchor when one is in use, otherwise
// around its own center.
func (b *body) rotate(deg float64) {
	if b.rect.UseAnchor {
		b.rect.AnchorAngle = core.WrapAngle(b.rect.AnchorAngle + deg)
		return
	}
	b.rect.RectangleAngle = core.WrapAngle(b.rect.RectangleAngle + deg)
}

// toggleAnchor starts orbiting pivot, or stops orbiting and keeps the body
// where it currently is.
func (b *body) toggleAnchor(pivot geom.Vector2) {
	if b.rect.UseAnchor {
		b.rect.Location = b.rect.RotatedCenter()
		b.rect.AnchorAngle = 0
		b.rect.UseAnchor = false
		return
	}
	b.rect.Anchor = pivot
	b.rect.AnchorAngle = 0
	b.rect.UseAnchor = true
}

func (b *body) cycle() {
	b.kind = (b.kind + 1) % kindCount
}

// draw rasterizes the body into dst.
func (b *body) draw(dst *core.Screen, r rune, c core.Color) {
	switch s := b.Shape().(type) {
	case *geom.CircleF:
		dst.FillCircle(s.RotatedCenter(), s.Radius, r, c)
	case *geom.RectangleF:
		dst.FillPolygon(s.Corners(), r, c)
	case geom.Polygon:
		dst.FillPolygon(s, r, c)
	}
}
