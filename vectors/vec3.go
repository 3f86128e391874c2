package vectors

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a position or direction in a body-fixed Cartesian frame.
// All vectors passed to one computation must share the same frame and
// length unit.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product v · o. Each product is rounded before the
// sum (no fused multiply-add) so orthogonal unit vectors give exactly 0.
func (v Vec3) Dot(o Vec3) float64 {
	return float64(v.X*o.X) + float64(v.Y*o.Y) + float64(v.Z*o.Z)
}

// Norm returns the Euclidean length ||v||. It is computed with chained
// hypot calls, so it neither overflows nor underflows for finite components.
func (v Vec3) Norm() float64 {
	return r3.Norm(v.R3())
}

// IsZero reports whether every component is zero (either sign).
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Normalize returns the unit vector v / ||v||.
// If ||v|| == 0, it returns the zero vector (0,0,0).
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return Vec3{v.X / n, v.Y / n, v.Z / n}
}

// EqualWithin reports whether every component of v and o differs by at most tol.
func (v Vec3) EqualWithin(o Vec3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol &&
		math.Abs(v.Y-o.Y) <= tol &&
		math.Abs(v.Z-o.Z) <= tol
}

// R3 converts v to a gonum r3.Vec.
func (v Vec3) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Distance returns the Euclidean distance between v1 and v2.
func Distance(v1, v2 Vec3) float64 {
	return v1.Sub(v2).Norm()
}
