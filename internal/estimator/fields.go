package estimator

import (
	"fmt"
	"sort"

	"github.com/alexiusacademia/servotorque/internal/aero"
	"github.com/alexiusacademia/servotorque/internal/input"
	"github.com/alexiusacademia/servotorque/internal/surface"
)

// Field keys accepted by input providers and by `estimate --set`
const (
	KeyAirDensity = "air_density"
	KeyVelocity   = "velocity"
)

func airDensityField(fc aero.FlightConditions) input.Field {
	return input.Field{
		Key:        KeyAirDensity,
		Prompt:     "Air density (rho) in kg/m^3",
		Default:    fc.AirDensity,
		Constraint: input.Positive,
	}
}

func velocityField(fc aero.FlightConditions) input.Field {
	return input.Field{
		Key:        KeyVelocity,
		Prompt:     "Aircraft velocity (V) in m/s",
		Default:    fc.Velocity,
		Constraint: input.NonNegative,
	}
}

// surfaceFields lists the prompts for one surface in the order they are asked
func surfaceFields(d surface.Defaults) []input.Field {
	name, key := d.Name.String(), d.Name.Key()
	return []input.Field{
		{Key: key + ".ch", Prompt: name + " Hinge Moment Coefficient (Ch)", Default: d.HingeCoefficient, Constraint: input.Any},
		{Key: key + ".span", Prompt: name + " span in meters", Default: d.Span, Constraint: input.Positive},
		{Key: key + ".root_chord", Prompt: name + " root chord in meters", Default: d.RootChord, Constraint: input.Positive},
		{Key: key + ".tip_chord", Prompt: name + " tip chord in meters", Default: d.TipChord, Constraint: input.Positive},
	}
}

// Keys returns every field key in prompt order
func Keys() []string {
	keys := []string{KeyAirDensity, KeyVelocity}
	for _, d := range surface.DefaultTable().Ordered() {
		for _, f := range surfaceFields(d) {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// CheckKeys rejects preset keys that no prompt will ever ask for
func CheckKeys(values map[string]float64) error {
	known := make(map[string]bool)
	for _, k := range Keys() {
		known[k] = true
	}
	var unknown []string
	for k := range values {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown field(s) %v; valid fields are %v", unknown, Keys())
	}
	return nil
}
