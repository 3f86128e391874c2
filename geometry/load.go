package geometry

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/mmap"
	"gopkg.in/yaml.v3"

	"github.com/echoflaresat/sensorgeom/vectors"
)

var ErrNoObservations = errors.New("geometry: no observations")

// observationFile is the on-disk form. Vectors are [x, y, z] sequences.
type observationFile struct {
	Observations []observationRecord `yaml:"observations"`
}

type observationRecord struct {
	ID                   string    `yaml:"id"`
	Observer             []float64 `yaml:"observer"`
	GroundPoint          []float64 `yaml:"ground_point"`
	Illuminator          []float64 `yaml:"illuminator"`
	IlluminatorDirection []float64 `yaml:"illuminator_direction"`
	Normal               []float64 `yaml:"normal"`
}

// LoadObservations reads an observation YAML file.
func LoadObservations(path string) ([]Observation, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if _, err := r.ReadAt(data, 0); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	obs, err := DecodeObservations(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return obs, nil
}

// DecodeObservations parses observation YAML. Records without an id are
// named by their 1-based position; ids must be unique.
func DecodeObservations(data []byte) ([]Observation, error) {
	var file observationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Observations) == 0 {
		return nil, ErrNoObservations
	}

	seen := make(map[string]bool, len(file.Observations))
	out := make([]Observation, 0, len(file.Observations))
	for i, rec := range file.Observations {
		if rec.ID == "" {
			rec.ID = fmt.Sprintf("#%d", i+1)
		}
		if seen[rec.ID] {
			return nil, fmt.Errorf("duplicate observation id %q", rec.ID)
		}
		seen[rec.ID] = true

		obs, err := rec.toObservation()
		if err != nil {
			return nil, fmt.Errorf("observation %s: %w", rec.ID, err)
		}
		out = append(out, obs)
	}
	return out, nil
}

func (rec observationRecord) toObservation() (Observation, error) {
	obs := Observation{ID: rec.ID}

	observer, err := requiredVec("observer", rec.Observer)
	if err != nil {
		return obs, err
	}
	ground, err := requiredVec("ground_point", rec.GroundPoint)
	if err != nil {
		return obs, err
	}
	obs.Observer, obs.GroundPoint = observer, ground

	if obs.Illuminator, err = optionalVec("illuminator", rec.Illuminator); err != nil {
		return obs, err
	}
	if obs.IlluminatorDirection, err = optionalVec("illuminator_direction", rec.IlluminatorDirection); err != nil {
		return obs, err
	}
	if obs.Normal, err = optionalVec("normal", rec.Normal); err != nil {
		return obs, err
	}
	return obs, nil
}

func requiredVec(field string, c []float64) (vectors.Vec3, error) {
	if c == nil {
		return vectors.Vec3{}, fmt.Errorf("missing %s", field)
	}
	v, err := optionalVec(field, c)
	if err != nil {
		return vectors.Vec3{}, err
	}
	return *v, nil
}

func optionalVec(field string, c []float64) (*vectors.Vec3, error) {
	if c == nil {
		return nil, nil
	}
	if len(c) != 3 {
		return nil, fmt.Errorf("%s: want 3 components, got %d", field, len(c))
	}
	return &vectors.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}
