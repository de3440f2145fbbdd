package estimator

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/servotorque/internal/aero"
	"github.com/alexiusacademia/servotorque/internal/surface"
)

// MaxSweepPoints caps the number of airspeeds evaluated by Sweep
const MaxSweepPoints = 1000

// SweepPoint is the torque of one surface at one airspeed
type SweepPoint struct {
	Velocity            float64 `json:"velocity" yaml:"velocity"`
	DynamicPressure     float64 `json:"dynamic_pressure" yaml:"dynamic_pressure"`
	NewtonMeters        float64 `json:"torque_newton_meters" yaml:"torque_newton_meters"`
	KilogramCentimeters float64 `json:"torque_kilogram_centimeters" yaml:"torque_kilogram_centimeters"`
}

// Series is one surface's torque across the swept airspeeds
type Series struct {
	Name   surface.Name `json:"name" yaml:"name"`
	Points []SweepPoint `json:"points" yaml:"points"`
}

// Velocities returns from, from+step, ... up to and including to
func Velocities(from, to, step float64) ([]float64, error) {
	for _, v := range []float64{from, to, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid sweep range: values must be finite")
		}
	}
	if step <= 0 {
		return nil, fmt.Errorf("invalid sweep step: %.3f m/s (must be positive)", step)
	}
	if from < 0 || to < from {
		return nil, fmt.Errorf("invalid sweep range: %.2f to %.2f m/s", from, to)
	}

	ratio := math.Floor((to-from)/step + 1e-9)
	if ratio+1 > MaxSweepPoints {
		return nil, fmt.Errorf("sweep of %.0f points exceeds the limit of %d; increase the step", ratio+1, MaxSweepPoints)
	}
	n := int(ratio) + 1

	vs := make([]float64, n)
	for i := range vs {
		vs[i] = from + float64(i)*step
	}
	return vs, nil
}

// Sweep re-evaluates each surface of the report over a range of airspeeds
// at the report's air density.
func Sweep(r *Report, from, to, step float64) ([]Series, error) {
	vs, err := Velocities(from, to, step)
	if err != nil {
		return nil, err
	}

	series := make([]Series, 0, len(r.Results))
	for _, res := range r.Results {
		s := Series{Name: res.Name, Points: make([]SweepPoint, 0, len(vs))}
		for _, v := range vs {
			q := aero.DynamicPressure(r.Flight.AirDensity, v)
			at, err := surface.Compute(q, res.Geometry)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", res.Name, err)
			}
			s.Points = append(s.Points, SweepPoint{
				Velocity:            v,
				DynamicPressure:     q,
				NewtonMeters:        at.TorqueNewtonMeters,
				KilogramCentimeters: at.TorqueKilogramCentimeters,
			})
		}
		series = append(series, s)
	}
	return series, nil
}
