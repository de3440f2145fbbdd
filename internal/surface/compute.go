package surface

import (
	"math"

	"github.com/alexiusacademia/servotorque/internal/aero"
)

// Compute calculates area, mean chord and hinge torque of a surface at dynamic pressure q
func Compute(q float64, g Geometry) (*Result, error) {
	if math.IsNaN(q) || math.IsInf(q, 0) || q < 0 {
		return nil, &ValidationError{msg: "dynamic pressure must be a non-negative finite value"}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	area := aero.TrapezoidArea(g.RootChord, g.TipChord, g.Span)
	meanChord := aero.MeanAerodynamicChord(g.RootChord, g.TipChord)
	torque := aero.HingeTorque(q, area, meanChord, g.HingeCoefficient)

	return &Result{
		Name:                      g.Name,
		HingeCoefficient:          g.HingeCoefficient,
		Area:                      area,
		MeanChord:                 meanChord,
		TorqueNewtonMeters:        torque.NewtonMeters,
		TorqueKilogramCentimeters: torque.KilogramCentimeters,
		Geometry:                  g,
	}, nil
}

// Torque returns the result's torque as an aero.Torque
func (r *Result) Torque() aero.Torque {
	return aero.Torque{
		NewtonMeters:        r.TorqueNewtonMeters,
		KilogramCentimeters: r.TorqueKilogramCentimeters,
	}
}
