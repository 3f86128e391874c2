// Package coords converts between rectangular, latitudinal and celestial
// coordinate representations of a point.
package coords

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/echoflaresat/sensorgeom/vectors"
)

// Latitudinal is a point in spherical form. Lon and Lat are radians; Radius
// uses the same length unit as the rectangular input.
type Latitudinal struct {
	Radius float64
	Lon    float64
	Lat    float64
}

// FromDegrees builds a Latitudinal from longitude and latitude in degrees.
func FromDegrees(radius, lonDeg, latDeg float64) Latitudinal {
	return Latitudinal{
		Radius: radius,
		Lon:    unit.AngleFromDeg(lonDeg).Rad(),
		Lat:    unit.AngleFromDeg(latDeg).Rad(),
	}
}

// Degrees returns longitude and latitude in degrees.
func (c Latitudinal) Degrees() (lonDeg, latDeg float64) {
	return unit.Angle(c.Lon).Deg(), unit.Angle(c.Lat).Deg()
}

// Rect returns the rectangular form of c.
func (c Latitudinal) Rect() vectors.Vec3 {
	return Lat2Rect(c.Radius, c.Lon, c.Lat)
}

// Rect2Lat converts a rectangular vector to radius, longitude and latitude.
// Longitude is in (-π, π] and latitude in [-π/2, π/2]. The zero vector maps
// to the zero Latitudinal.
func Rect2Lat(v vectors.Vec3) Latitudinal {
	if v.IsZero() {
		// atan2(±0, -0) is ±π, keep the origin at exactly (0, 0, 0)
		return Latitudinal{}
	}
	return Latitudinal{
		Radius: v.Norm(),
		Lon:    longitude(v.Y, v.X),
		Lat:    math.Atan2(v.Z, math.Hypot(v.X, v.Y)),
	}
}

// Lat2Rect converts radius, longitude and latitude (radians) to a
// rectangular vector. It is the inverse of Rect2Lat for radius > 0.
func Lat2Rect(radius, lon, lat float64) vectors.Vec3 {
	cosLat := math.Cos(lat)
	return vectors.Vec3{
		X: radius * cosLat * math.Cos(lon),
		Y: radius * cosLat * math.Sin(lon),
		Z: radius * math.Sin(lat),
	}
}

// longitude is atan2(y, x) folded into (-π, π]: atan2 returns -π for a
// negative-zero or underflowing y with x < 0.
func longitude(y, x float64) float64 {
	lon := math.Atan2(y, x)
	if lon == -math.Pi {
		return math.Pi
	}
	return lon
}
