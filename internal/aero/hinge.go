package aero

import "math"

// Torque is a hinge moment expressed in both SI and servo datasheet units
type Torque struct {
	NewtonMeters        float64 `json:"torque_newton_meters" yaml:"torque_newton_meters"`
	KilogramCentimeters float64 `json:"torque_kilogram_centimeters" yaml:"torque_kilogram_centimeters"`
}

// TrapezoidArea calculates the planform area of a linearly tapered surface.
// Negative inputs are not rejected here and produce a negative area.
func TrapezoidArea(rootChord, tipChord, span float64) float64 {
	return (rootChord + tipChord) * span / 2
}

// MeanAerodynamicChord approximates c̄ as the arithmetic mean of root and tip.
// This is not the exact MAC integral of a tapered planform.
func MeanAerodynamicChord(rootChord, tipChord float64) float64 {
	return (rootChord + tipChord) / 2
}

// HingeTorque calculates the hinge moment H = q * S * c̄ * |Ch|
//
// The sign of Ch follows the aerodynamic convention (usually negative) and
// does not change the magnitude the servo has to hold.
func HingeTorque(dynamicPressure, area, meanChord, hingeCoeff float64) Torque {
	nm := dynamicPressure * area * meanChord * math.Abs(hingeCoeff)
	return Torque{
		NewtonMeters:        nm,
		KilogramCentimeters: nm * NmToKgfCm,
	}
}

// WithMargin scales the torque by a servo safety factor
func (t Torque) WithMargin(factor float64) Torque {
	return Torque{
		NewtonMeters:        t.NewtonMeters * factor,
		KilogramCentimeters: t.KilogramCentimeters * factor,
	}
}
