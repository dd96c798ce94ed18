package core

import "math"

// Vec3 represents a 3D vector or a linear RGB color.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new 3D vector
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Zero vector constant
var Zero = Vec3{}

// One is the all-ones vector (white).
var One = Vec3{X: 1, Y: 1, Z: 1}

// Add returns the sum of two vectors
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Multiply returns the vector scaled by t
func (v Vec3) Multiply(t float64) Vec3 {
	return Vec3{X: v.X * t, Y: v.Y * t, Z: v.Z * t}
}

// MultiplyVec returns the component-wise product of two vectors
func (v Vec3) MultiplyVec(u Vec3) Vec3 {
	return Vec3{X: v.X * u.X, Y: v.Y * u.Y, Z: v.Z * u.Z}
}

// Divide returns the vector scaled by 1/t
func (v Vec3) Divide(t float64) Vec3 {
	return v.Multiply(1 / t)
}

// Negate returns the vector pointing in the opposite direction
func (v Vec3) Negate() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Zero
	}
	return v.Divide(length)
}

// Lerp linearly interpolates between v and u by t
func (v Vec3) Lerp(u Vec3, t float64) Vec3 {
	return v.Multiply(1 - t).Add(u.Multiply(t))
}

// MaxComponent returns the largest of the three components
func (v Vec3) MaxComponent() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// NearZero reports whether all components are close to zero
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// IsFinite reports whether all components are finite numbers.
// Samples that diverge (NaN or Inf) are rejected before accumulation.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Axis returns the component selected by index (0=X, 1=Y, 2=Z)
func (v Vec3) Axis(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Rotate applies Euler rotations about the X, Y and Z axes in that
// order. Angles are in radians.
func (v Vec3) Rotate(angles Vec3) Vec3 {
	sinX, cosX := math.Sincos(angles.X)
	sinY, cosY := math.Sincos(angles.Y)
	sinZ, cosZ := math.Sincos(angles.Z)

	// X axis
	r := Vec3{X: v.X, Y: v.Y*cosX - v.Z*sinX, Z: v.Y*sinX + v.Z*cosX}
	// Y axis
	r = Vec3{X: r.X*cosY + r.Z*sinY, Y: r.Y, Z: -r.X*sinY + r.Z*cosY}
	// Z axis
	return Vec3{X: r.X*cosZ - r.Y*sinZ, Y: r.X*sinZ + r.Y*cosZ, Z: r.Z}
}
