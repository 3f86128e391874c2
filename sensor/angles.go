// Package sensor computes viewing and illumination angles between an
// observer, an illumination source and a point on a target surface.
//
// All positions and normals must be expressed in one body-fixed Cartesian
// frame and one length unit. Angles are returned in radians in [0, π].
package sensor

import (
	"math"

	"github.com/echoflaresat/sensorgeom/vectors"
)

// EmissionAngle returns the angle between the surface normal at groundPoint
// and the look vector from groundPoint toward observer.
//
// If either the look vector or the normal has zero length the cosine term is
// taken as 0 and the result is π/2.
func EmissionAngle(observer, groundPoint, normal vectors.Vec3) float64 {
	look := observer.Sub(groundPoint)
	return angleBetween(normal, look, math.Pi/2)
}

// PhaseAngle returns the angle at surface between the direction to the
// instrument and the direction to the illuminator.
//
// A zero-length direction yields π/2, matching EmissionAngle.
func PhaseAngle(instrument, illuminator, surface vectors.Vec3) float64 {
	toInstrument := instrument.Sub(surface)
	toIlluminator := illuminator.Sub(surface)
	return angleBetween(toInstrument, toIlluminator, math.Pi/2)
}

// OffNadirAngle returns the angle between the nadir vector (observer toward
// groundPoint) and the surface normal.
//
// Unlike EmissionAngle, a zero-length input yields 0.
func OffNadirAngle(observer, groundPoint, normal vectors.Vec3) float64 {
	nadir := groundPoint.Sub(observer)
	return angleBetween(nadir, normal, 0)
}

// angleBetween returns arccos(â·b̂), or degenerate when either vector has
// zero length. Both vectors are normalized before the dot product so very
// large or very small magnitudes do not overflow. The cosine is clamped so
// rounding can never push it outside the arccos domain.
func angleBetween(a, b vectors.Vec3, degenerate float64) float64 {
	if a.Norm() == 0 || b.Norm() == 0 {
		return degenerate
	}
	cos := a.Normalize().Dot(b.Normalize())
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}
