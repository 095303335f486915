package vmath

import "errors"

// ErrZeroVector is returned by Normalize for a zero-length input. A checked
// error keeps the degenerate case explicit instead of letting a silent
// sentinel value flow through the simulation.
var ErrZeroVector = errors.New("vmath: cannot normalize zero vector")

// Vec2 is an immutable two-dimensional vector of Scalars. All operations
// return new values; callers never observe in-place mutation.
type Vec2 struct {
	X, Y Scalar
}

// Zero returns the zero vector.
func Zero() Vec2 {
	return Vec2{}
}

// NewVec2 creates a vector from Cartesian components.
func NewVec2(x, y Scalar) Vec2 {
	return Vec2{X: x, Y: y}
}

// Vec2FromFloat converts a float64 pair at the construction boundary.
func Vec2FromFloat(x, y float64) Vec2 {
	return Vec2{X: FromFloat(x), Y: FromFloat(y)}
}

// Vec2FromPolar creates a vector from a (magnitude, angle) pair, angle in
// radians.
func Vec2FromPolar(magnitude, angle Scalar) Vec2 {
	cos, sin := SinCos(angle)
	return Vec2{X: magnitude.Mul(cos), Y: magnitude.Mul(sin)}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v with both components multiplied by factor.
func (v Vec2) Scale(factor Scalar) Vec2 {
	return Vec2{X: v.X.Mul(factor), Y: v.Y.Mul(factor)}
}

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) Scalar {
	return v.X.Mul(o.X) + v.Y.Mul(o.Y)
}

// Cross returns the 2D cross product, the signed area of the parallelogram
// spanned by v and o.
func (v Vec2) Cross(o Vec2) Scalar {
	return v.X.Mul(o.Y) - v.Y.Mul(o.X)
}

// LengthSquared returns |v|^2 without a square root.
func (v Vec2) LengthSquared() Scalar {
	return v.Dot(v)
}

// Length returns |v|.
func (v Vec2) Length() Scalar {
	return v.LengthSquared().Sqrt()
}

// Rotate returns v rotated by angle radians, counter-clockwise positive.
func (v Vec2) Rotate(angle Scalar) Vec2 {
	cos, sin := SinCos(angle)
	return Vec2{
		X: v.X.Mul(cos) - v.Y.Mul(sin),
		Y: v.X.Mul(sin) + v.Y.Mul(cos),
	}
}

// Normalize returns the unit vector in the direction of v. The zero vector
// has no direction and yields ErrZeroVector; callers wanting a zero result
// for degenerate input handle the error at the call site.
func (v Vec2) Normalize() (Vec2, error) {
	length := v.Length()
	if length == 0 {
		return Vec2{}, ErrZeroVector
	}
	return Vec2{X: v.X.Div(length), Y: v.Y.Div(length)}, nil
}

// ToPolar converts to polar coordinates (r, theta), theta in (-Pi, Pi] per
// the Atan2 quadrant convention.
func (v Vec2) ToPolar() (r, theta Scalar) {
	return v.Length(), Atan2(v.Y, v.X)
}
