// Package body describes target bodies as triaxial ellipsoids and derives
// outward surface normals from them.
package body

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/soniakeys/meeus/v3/globe"

	"github.com/echoflaresat/sensorgeom/vectors"
)

var (
	ErrInvalidRadii = errors.New("body: semi-axes must be positive")
	ErrUnknownBody  = errors.New("body: unknown body")
)

// Body is a triaxial ellipsoid centred on the frame origin. A, B and C are
// the semi-axes along x, y and z, in the caller's length unit.
type Body struct {
	Name    string
	A, B, C float64
}

// Earth uses the IAU 1976 ellipsoid, km.
var Earth = Body{
	Name: "earth",
	A:    globe.Earth76.Er,
	B:    globe.Earth76.Er,
	C:    globe.Earth76.Er * (1 - globe.Earth76.Fl),
}

var Moon = Sphere("moon", 1737.4)

var Mars = Body{Name: "mars", A: 3396.19, B: 3396.19, C: 3376.20}

var known = map[string]Body{
	Earth.Name: Earth,
	Moon.Name:  Moon,
	Mars.Name:  Mars,
}

// New returns an ellipsoid with the given semi-axes.
func New(name string, a, b, c float64) (Body, error) {
	if !(a > 0 && b > 0 && c > 0) {
		return Body{}, fmt.Errorf("%w: %s (%g, %g, %g)", ErrInvalidRadii, name, a, b, c)
	}
	return Body{Name: name, A: a, B: b, C: c}, nil
}

// Sphere returns a spherical body of radius r.
func Sphere(name string, r float64) Body {
	return Body{Name: name, A: r, B: r, C: r}
}

// Lookup returns a built-in body by case-insensitive name.
func Lookup(name string) (Body, error) {
	b, ok := known[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Body{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownBody, name, strings.Join(Names(), ", "))
	}
	return b, nil
}

// Names lists the built-in bodies in sorted order.
func Names() []string {
	names := make([]string, 0, len(known))
	for n := range known {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (b Body) IsSphere() bool {
	return b.A == b.B && b.B == b.C
}

// SurfaceNormal returns the outward unit normal of the ellipsoid at the
// surface point p, i.e. the normalized gradient (x/a², y/b², z/c²).
// The origin has no normal and returns the zero vector.
func (b Body) SurfaceNormal(p vectors.Vec3) vectors.Vec3 {
	if b.IsSphere() {
		return p.Normalize()
	}
	return vectors.Vec3{
		X: p.X / (b.A * b.A),
		Y: p.Y / (b.B * b.B),
		Z: p.Z / (b.C * b.C),
	}.Normalize()
}
