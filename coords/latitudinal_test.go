package coords

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/echoflaresat/sensorgeom/vectors"
)

// Reference values from the CSPICE reclat unit test.
func TestRect2LatCSPICE(t *testing.T) {
	got := Rect2Lat(vectors.Vec3{X: 1, Y: 1, Z: 1})
	lon, lat := got.Degrees()

	if !scalar.EqualWithinAbs(got.Radius, 1.7320, 1e-4) {
		t.Errorf("radius = %v, want 1.7320", got.Radius)
	}
	if !scalar.EqualWithinAbs(lon, 45.0, 1e-4) {
		t.Errorf("longitude = %v°, want 45°", lon)
	}
	if !scalar.EqualWithinAbs(lat, 35.2643, 1e-4) {
		t.Errorf("latitude = %v°, want 35.2643°", lat)
	}
}

func TestRect2LatZeroVector(t *testing.T) {
	zeros := []vectors.Vec3{
		{},
		{X: math.Copysign(0, -1)},
		{X: math.Copysign(0, -1), Y: math.Copysign(0, -1), Z: math.Copysign(0, -1)},
	}
	for _, v := range zeros {
		if got := Rect2Lat(v); got != (Latitudinal{}) {
			t.Errorf("Rect2Lat(%v) = %+v, want zero", v, got)
		}
	}
}

func TestRect2LatAxes(t *testing.T) {
	cases := []struct {
		name   string
		v      vectors.Vec3
		lonDeg float64
		latDeg float64
	}{
		{"zero x coord", vectors.Vec3{Y: 1}, 90, 0},
		{"+x", vectors.Vec3{X: 2}, 0, 0},
		{"-x", vectors.Vec3{X: -2}, 180, 0},
		{"-y", vectors.Vec3{Y: -3}, -90, 0},
		{"north pole", vectors.Vec3{Z: 5}, 0, 90},
		{"south pole", vectors.Vec3{Z: -5}, 0, -90},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Rect2Lat(c.v)
			lon, lat := got.Degrees()
			if !scalar.EqualWithinAbs(got.Radius, c.v.Norm(), 1e-12) {
				t.Errorf("radius = %v, want %v", got.Radius, c.v.Norm())
			}
			if !scalar.EqualWithinAbs(lon, c.lonDeg, 1e-4) {
				t.Errorf("longitude = %v°, want %v°", lon, c.lonDeg)
			}
			if !scalar.EqualWithinAbs(lat, c.latDeg, 1e-4) {
				t.Errorf("latitude = %v°, want %v°", lat, c.latDeg)
			}
		})
	}
}

func TestLat2RectZero(t *testing.T) {
	got := Lat2Rect(0, 0, 0)
	if !got.EqualWithin(vectors.Vec3{}, 1e-4) {
		t.Errorf("Lat2Rect(0,0,0) = %v, want origin", got)
	}
}

// Heliocentric position of Alpha Centauri in parsecs, from SIMBAD.
func TestLat2RectAlphaCentauri(t *testing.T) {
	got := FromDegrees(1.32483, 219.90205833, -60.83399269).Rect()
	want := vectors.Vec3{X: -0.495304, Y: -0.414169, Z: -1.15686}
	if !got.EqualWithin(want, 1e-4) {
		t.Errorf("Lat2Rect() = %v, want %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, radius := range []float64{1e-3, 1, 1737.4, 6378.14, 1.5e8} {
		for lonDeg := -179.0; lonDeg <= 180; lonDeg += 17 {
			for latDeg := -89.0; latDeg < 90; latDeg += 11 {
				v := FromDegrees(radius, lonDeg, latDeg).Rect()
				back := Rect2Lat(v).Rect()
				if !back.EqualWithin(v, 1e-4) {
					t.Fatalf("round trip r=%v lon=%v lat=%v: %v -> %v", radius, lonDeg, latDeg, v, back)
				}
			}
		}
	}
}

func TestRect2LatRanges(t *testing.T) {
	vs := []vectors.Vec3{
		{X: -1, Y: 1e-300},
		{X: -1, Y: -1e-300},
		{X: -1, Y: math.Copysign(0, -1)},
		{X: 3, Y: -4, Z: -12},
		{X: -0.2, Y: 0.1, Z: 0.9},
	}
	for _, v := range vs {
		c := Rect2Lat(v)
		if c.Lon <= -math.Pi || c.Lon > math.Pi {
			t.Errorf("Rect2Lat(%v).Lon = %v, outside (-π, π]", v, c.Lon)
		}
		if c.Lat < -math.Pi/2 || c.Lat > math.Pi/2 {
			t.Errorf("Rect2Lat(%v).Lat = %v, outside [-π/2, π/2]", v, c.Lat)
		}
	}
}

func TestRect2LatNegativeZeroLongitude(t *testing.T) {
	got := Rect2Lat(vectors.Vec3{X: -1, Y: math.Copysign(0, -1)})
	if got.Lon != math.Pi {
		t.Errorf("Rect2Lat({-1, -0, 0}).Lon = %v, want π", got.Lon)
	}
}

func TestRect2LatExtremeMagnitudes(t *testing.T) {
	cases := []struct {
		name   string
		v      vectors.Vec3
		radius float64
	}{
		{"large", vectors.Vec3{X: 3e200, Y: 4e200}, 5e200},
		{"large 3D", vectors.Vec3{X: 1e200, Y: -2e200, Z: 2e200}, 3e200},
		{"tiny", vectors.Vec3{X: 3e-170, Z: 4e-170}, 5e-170},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Rect2Lat(c.v)
			if !scalar.EqualWithinRel(got.Radius, c.radius, 1e-12) {
				t.Errorf("radius = %v, want %v", got.Radius, c.radius)
			}
			back := got.Rect()
			for i, pair := range [][2]float64{{back.X, c.v.X}, {back.Y, c.v.Y}, {back.Z, c.v.Z}} {
				if math.IsNaN(pair[0]) || !scalar.EqualWithinAbsOrRel(pair[0], pair[1], 1e-300, 1e-12) {
					t.Errorf("round trip component %d = %v, want %v", i, pair[0], pair[1])
				}
			}
		})
	}
}
