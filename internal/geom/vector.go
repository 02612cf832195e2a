// Package geom is the 2D geometry core: vectors, rotated rectangles, circles
// and convex polygons with intersection and containment queries.
//
// Coordinates follow the screen convention (x grows right, y grows down).
// Every angle at the API boundary is in degrees; a positive angle rotates
// clockwise on screen. The package has no dependencies outside the standard
// library so that demo logic built on it stays pure and testable.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateVector is returned when a zero-length (or non-finite) vector
// would have to be normalized.
var ErrDegenerateVector = errors.New("geom: degenerate vector")

// Vector2 is a 2D float vector. It is a plain value type.
type Vector2 struct {
	X, Y float64
}

// Vec is a convenience constructor for Vector2.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul multiplies component-wise.
func (v Vector2) Mul(w Vector2) Vector2 {
	return Vector2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Div divides component-wise.
func (v Vector2) Div(w Vector2) Vector2 {
	return Vector2{X: v.X / w.X, Y: v.Y / w.Y}
}

// AddScalar adds s to both components.
func (v Vector2) AddScalar(s float64) Vector2 {
	return Vector2{X: v.X + s, Y: v.Y + s}
}

// SubScalar subtracts s from both components.
func (v Vector2) SubScalar(s float64) Vector2 {
	return Vector2{X: v.X - s, Y: v.Y - s}
}

// Scale multiplies both components by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// DivScalar divides both components by s.
func (v Vector2) DivScalar(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Equal reports exact component equality.
func (v Vector2) Equal(w Vector2) bool {
	return v.X == w.X && v.Y == w.Y
}

// IsZero reports whether both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx reports whether v and w differ by at most eps on each axis.
func (v Vector2) Approx(w Vector2, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps
}

// String implements fmt.Stringer.
func (v Vector2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

// Magnitude returns the Euclidean length of v.
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector pointing the same way as v.
// A zero or non-finite vector yields ErrDegenerateVector.
func (v Vector2) Normalize() (Vector2, error) {
	m := v.Magnitude()
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return Vector2{}, ErrDegenerateVector
	}
	return Vector2{X: v.X / m, Y: v.Y / m}, nil
}

// RotateAroundPoint rotates v in place around point by angle degrees.
func (v *Vector2) RotateAroundPoint(point Vector2, angle float64) {
	*v = v.RotatedAround(point, angle)
}

// RotatedAround returns v rotated around point by angle degrees.
func (v Vector2) RotatedAround(point Vector2, angle float64) Vector2 {
	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)

	dx := v.X - point.X
	dy := v.Y - point.Y

	return Vector2{
		X: dx*cos - dy*sin + point.X,
		Y: dx*sin + dy*cos + point.Y,
	}
}

// Determinant returns the 2x2 determinant |u v|, the z of the 3D cross product.
func Determinant(u, v Vector2) float64 {
	return u.X*v.Y - u.Y*v.X
}

// CrossProduct returns Determinant(q-p, r-q). Its sign gives the turn
// direction of p -> q -> r and its magnitude is twice the triangle's area.
func CrossProduct(p, q, r Vector2) float64 {
	return Determinant(q.Sub(p), r.Sub(q))
}

// DotProduct returns a·b.
func DotProduct(a, b Vector2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// DistanceFrom returns the distance between a and b.
func DistanceFrom(a, b Vector2) float64 {
	return b.Sub(a).Magnitude()
}

// Magnitude returns the length of v.
func Magnitude(v Vector2) float64 {
	return v.Magnitude()
}

// Reflect mirrors direction about the line whose normal is given:
// d - 2(d·n)n with n the normalized normal.
func Reflect(direction, normal Vector2) (Vector2, error) {
	n, err := normal.Normalize()
	if err != nil {
		return direction, err
	}
	d := DotProduct(direction, n)
	return direction.Sub(n.Scale(2 * d)), nil
}
