package geom

import "math"

// Bounds is an axis-aligned box. Min holds the smallest coordinates.
type Bounds struct {
	Min, Max Vector2
}

// BoundsOf returns the smallest box holding every point.
// An empty argument list yields the zero box.
func BoundsOf(points ...Vector2) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// Overlaps reports whether two boxes share any point. Touching edges count.
func (b Bounds) Overlaps(o Bounds) bool {
	if b.Max.X < o.Min.X || o.Max.X < b.Min.X {
		return false
	}
	if b.Max.Y < o.Min.Y || o.Max.Y < b.Min.Y {
		return false
	}
	return true
}

// ContainsPoint reports whether p lies inside or on the box.
func (b Bounds) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Center returns the middle of the box.
func (b Bounds) Center() Vector2 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns width and height as a vector.
func (b Bounds) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Expand grows the box by d on every side.
func (b Bounds) Expand(d float64) Bounds {
	return Bounds{Min: b.Min.SubScalar(d), Max: b.Max.AddScalar(d)}
}
