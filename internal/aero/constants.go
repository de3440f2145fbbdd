package aero

// Unit conversion and standard atmosphere constants

const (
	// NmToKgfCm converts newton-metres to kilogram-force-centimetres,
	// the unit servo datasheets quote stall torque in.
	// 1 kgf·cm = 9.80665e-2 N·m, rounded to the published four decimals.
	NmToKgfCm = 10.1972

	// StandardAirDensity is ISA sea-level density (kg/m³)
	StandardAirDensity = 1.225

	// DefaultVelocity is a typical cruise speed for a park-flyer (m/s)
	DefaultVelocity = 18.0

	// Servo safety margins applied to the estimated hinge torque
	SafetyMarginMin = 1.5
	SafetyMarginMax = 2.0
)

// Disclaimer is printed after every torque report.
const Disclaimer = "Disclaimer: This is a theoretical estimation. Always choose a servo with a safety margin (e.g., 1.5x to 2x the estimated torque)."
