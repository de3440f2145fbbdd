package surface

import (
	"fmt"
	"math"
	"strings"
)

// Name identifies one of the three primary control surfaces
type Name int

const (
	Aileron Name = iota
	Elevator
	Rudder
)

var names = [...]string{
	Aileron:  "Aileron",
	Elevator: "Elevator",
	Rudder:   "Rudder",
}

// Names returns every surface in presentation order
func Names() []Name {
	return []Name{Aileron, Elevator, Rudder}
}

func (n Name) String() string {
	if n < 0 || int(n) >= len(names) {
		return fmt.Sprintf("Surface(%d)", int(n))
	}
	return names[n]
}

// Key is the lower-case identifier used for config keys and flags
func (n Name) Key() string {
	return strings.ToLower(n.String())
}

// ParseName maps "aileron", "Elevator", "RUDDER" etc. to a Name
func ParseName(s string) (Name, error) {
	for _, n := range Names() {
		if strings.EqualFold(s, n.String()) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unknown control surface %q (expected aileron, elevator or rudder)", s)
}

func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Name) UnmarshalText(b []byte) error {
	parsed, err := ParseName(string(b))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Geometry describes a trapezoidal control surface and its hinge coefficient
type Geometry struct {
	Name Name `json:"name" yaml:"name"`

	// Hinge-moment coefficient Ch (dimensionless, usually negative)
	HingeCoefficient float64 `json:"hinge_coefficient" yaml:"hinge_coefficient"`

	// Planform (m)
	Span      float64 `json:"span" yaml:"span"`
	RootChord float64 `json:"root_chord" yaml:"root_chord"`
	TipChord  float64 `json:"tip_chord" yaml:"tip_chord"`
}

// Result holds the computed hinge torque of one surface
type Result struct {
	Name             Name    `json:"name" yaml:"name"`
	HingeCoefficient float64 `json:"hinge_coefficient" yaml:"hinge_coefficient"`

	Area      float64 `json:"area" yaml:"area"`             // S (m²)
	MeanChord float64 `json:"mean_chord" yaml:"mean_chord"` // c̄ (m)

	TorqueNewtonMeters        float64 `json:"torque_newton_meters" yaml:"torque_newton_meters"`
	TorqueKilogramCentimeters float64 `json:"torque_kilogram_centimeters" yaml:"torque_kilogram_centimeters"`

	Geometry Geometry `json:"geometry" yaml:"geometry"`
}

// Validate checks that span and chords are positive finite lengths
func (g Geometry) Validate() error {
	if !finite(g.HingeCoefficient) {
		return &ValidationError{msg: fmt.Sprintf("%s hinge coefficient must be finite", g.Name)}
	}
	dims := []struct {
		label string
		value float64
	}{
		{"span", g.Span},
		{"root chord", g.RootChord},
		{"tip chord", g.TipChord},
	}
	for _, d := range dims {
		if !finite(d.value) || d.value <= 0 {
			return &ValidationError{msg: fmt.Sprintf("%s %s must be positive, got %g m", g.Name, d.label, d.value)}
		}
	}
	return nil
}

// ValidationError represents a surface validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
