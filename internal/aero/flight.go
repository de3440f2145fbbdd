package aero

import (
	"fmt"
	"math"
)

// FlightConditions holds the free-stream state the surfaces operate in
type FlightConditions struct {
	AirDensity float64 `json:"air_density" yaml:"air_density"` // ρ (kg/m³)
	Velocity   float64 `json:"velocity" yaml:"velocity"`       // V (m/s)
}

// DefaultFlightConditions returns sea-level density at park-flyer cruise speed
func DefaultFlightConditions() FlightConditions {
	return FlightConditions{
		AirDensity: StandardAirDensity,
		Velocity:   DefaultVelocity,
	}
}

// DynamicPressure calculates q = ½ρV² (N/m²)
func (f FlightConditions) DynamicPressure() float64 {
	return DynamicPressure(f.AirDensity, f.Velocity)
}

// Validate checks that density is positive and velocity is not negative
func (f FlightConditions) Validate() error {
	if math.IsNaN(f.AirDensity) || math.IsInf(f.AirDensity, 0) || f.AirDensity <= 0 {
		return fmt.Errorf("invalid air density: ρ=%.4f kg/m³ (must be positive)", f.AirDensity)
	}
	if math.IsNaN(f.Velocity) || math.IsInf(f.Velocity, 0) || f.Velocity < 0 {
		return fmt.Errorf("invalid velocity: V=%.2f m/s (must not be negative)", f.Velocity)
	}
	return nil
}

// DynamicPressure calculates q = 0.5 * rho * V^2
func DynamicPressure(airDensity, velocity float64) float64 {
	return 0.5 * airDensity * (velocity * velocity)
}
