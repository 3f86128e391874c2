// Package geometry evaluates the viewing and illumination geometry of
// observations, singly or as a concurrent batch.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/echoflaresat/sensorgeom/coords"
	"github.com/echoflaresat/sensorgeom/sensor"
	"github.com/echoflaresat/sensorgeom/vectors"
)

var (
	ErrNoIlluminator = errors.New("geometry: neither illuminator nor illuminator direction given")
	ErrNonFinite     = errors.New("geometry: non-finite coordinate")
)

// Observation is one observer/illuminator/surface configuration in a
// body-fixed frame. Illuminator takes precedence over IlluminatorDirection;
// a nil Normal is derived from the evaluator's body.
type Observation struct {
	ID                   string
	Observer             vectors.Vec3
	GroundPoint          vectors.Vec3
	Illuminator          *vectors.Vec3
	IlluminatorDirection *vectors.Vec3
	Normal               *vectors.Vec3
}

// Result holds the geometry of one observation. Angles are radians.
type Result struct {
	ID          string
	Illuminator vectors.Vec3
	Normal      vectors.Vec3

	Emission float64
	Phase    float64
	OffNadir float64
	// Observer to ground point distance.
	Range float64

	Ground coords.Latitudinal
	// Observer direction from the body origin; nil when the observer sits
	// at the origin.
	ObserverRADec *coords.RADec
}

// Evaluate computes the geometry of a single observation.
func (e *Evaluator) Evaluate(obs Observation) (Result, error) {
	if err := obs.checkFinite(); err != nil {
		return Result{}, err
	}

	var illuminator vectors.Vec3
	switch {
	case obs.Illuminator != nil:
		illuminator = *obs.Illuminator
	case obs.IlluminatorDirection != nil:
		illuminator = sensor.IlluminatorPosition(obs.GroundPoint, *obs.IlluminatorDirection)
	default:
		return Result{}, ErrNoIlluminator
	}

	normal := e.normalAt(obs)

	res := Result{
		ID:          obs.ID,
		Illuminator: illuminator,
		Normal:      normal,
		Emission:    sensor.EmissionAngle(obs.Observer, obs.GroundPoint, normal),
		Phase:       sensor.PhaseAngle(obs.Observer, illuminator, obs.GroundPoint),
		OffNadir:    sensor.OffNadirAngle(obs.Observer, obs.GroundPoint, normal),
		Range:       vectors.Distance(obs.Observer, obs.GroundPoint),
		Ground:      coords.Rect2Lat(obs.GroundPoint),
	}

	rd, err := coords.ComputeRADec(obs.Observer)
	switch {
	case err == nil:
		res.ObserverRADec = &rd
	case !errors.Is(err, coords.ErrZeroVector):
		return Result{}, err
	}
	return res, nil
}

func (e *Evaluator) normalAt(obs Observation) vectors.Vec3 {
	if obs.Normal != nil && !obs.Normal.IsZero() {
		return *obs.Normal
	}
	return e.Body.SurfaceNormal(obs.GroundPoint)
}

func (obs Observation) checkFinite() error {
	check := func(name string, v *vectors.Vec3) error {
		if v == nil {
			return nil
		}
		for _, c := range [3]float64{v.X, v.Y, v.Z} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("%w in %s %v", ErrNonFinite, name, *v)
			}
		}
		return nil
	}
	if err := check("observer", &obs.Observer); err != nil {
		return err
	}
	if err := check("ground_point", &obs.GroundPoint); err != nil {
		return err
	}
	if err := check("illuminator", obs.Illuminator); err != nil {
		return err
	}
	if err := check("illuminator_direction", obs.IlluminatorDirection); err != nil {
		return err
	}
	return check("normal", obs.Normal)
}
