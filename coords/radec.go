package coords

import (
	"errors"
	"math"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/unit"

	"github.com/echoflaresat/sensorgeom/vectors"
)

// ErrZeroVector is returned when a direction is required but the input has
// zero length.
var ErrZeroVector = errors.New("coords: zero-length vector has no direction")

// RADec holds right ascension and declination in radians. RA follows the
// atan2 branch, (-π, π].
type RADec struct {
	RA  float64
	Dec float64
}

// ComputeRADec returns the right ascension and declination of the direction
// of v. The zero vector has no direction and yields ErrZeroVector.
func ComputeRADec(v vectors.Vec3) (RADec, error) {
	r := v.Norm()
	if r == 0 {
		return RADec{}, ErrZeroVector
	}
	sinDec := v.Z / r
	if sinDec > 1 {
		sinDec = 1
	} else if sinDec < -1 {
		sinDec = -1
	}
	return RADec{
		RA:  longitude(v.Y, v.X),
		Dec: math.Asin(sinDec),
	}, nil
}

// Equatorial converts to meeus equatorial coordinates. RA is wrapped into
// [0, 2π).
func (rd RADec) Equatorial() coord.Equatorial {
	return coord.Equatorial{
		RA:  rd.wrappedRA(),
		Dec: unit.Angle(rd.Dec),
	}
}

func (rd RADec) wrappedRA() unit.RA {
	return unit.RA(math.Mod(rd.RA+2*math.Pi, 2*math.Pi))
}
