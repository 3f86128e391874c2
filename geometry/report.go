package geometry

import (
	"io"

	"github.com/soniakeys/unit"
	"gopkg.in/yaml.v3"
)

type report struct {
	Results []reportEntry `yaml:"results"`
}

type reportEntry struct {
	ID          string     `yaml:"id"`
	EmissionDeg float64    `yaml:"emission_deg"`
	PhaseDeg    float64    `yaml:"phase_deg"`
	OffNadirDeg float64    `yaml:"off_nadir_deg"`
	Range       float64    `yaml:"range"`
	Illuminator [3]float64 `yaml:"illuminator,flow"`
	Normal      [3]float64 `yaml:"normal,flow"`
	Ground      ground     `yaml:"ground"`
	Observer    *celestial `yaml:"observer_radec,omitempty"`
}

type ground struct {
	Radius float64 `yaml:"radius"`
	LonDeg float64 `yaml:"lon_deg"`
	LatDeg float64 `yaml:"lat_deg"`
}

type celestial struct {
	RADeg   float64 `yaml:"ra_deg"`
	RAHours float64 `yaml:"ra_hours"`
	DecDeg  float64 `yaml:"dec_deg"`
}

// WriteReport writes results as YAML with angles in degrees.
func WriteReport(w io.Writer, results []Result) error {
	rep := report{Results: make([]reportEntry, 0, len(results))}
	for _, r := range results {
		lon, lat := r.Ground.Degrees()
		entry := reportEntry{
			ID:          r.ID,
			EmissionDeg: unit.Angle(r.Emission).Deg(),
			PhaseDeg:    unit.Angle(r.Phase).Deg(),
			OffNadirDeg: unit.Angle(r.OffNadir).Deg(),
			Range:       r.Range,
			Illuminator: [3]float64{r.Illuminator.X, r.Illuminator.Y, r.Illuminator.Z},
			Normal:      [3]float64{r.Normal.X, r.Normal.Y, r.Normal.Z},
			Ground:      ground{Radius: r.Ground.Radius, LonDeg: lon, LatDeg: lat},
		}
		if rd := r.ObserverRADec; rd != nil {
			eq := rd.Equatorial()
			entry.Observer = &celestial{
				RADeg:   unit.Angle(eq.RA).Deg(),
				RAHours: eq.RA.Hour(),
				DecDeg:  eq.Dec.Deg(),
			}
		}
		rep.Results = append(rep.Results, entry)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
