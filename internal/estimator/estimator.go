package estimator

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/alexiusacademia/servotorque/internal/aero"
	"github.com/alexiusacademia/servotorque/internal/input"
	"github.com/alexiusacademia/servotorque/internal/surface"
)

// Estimator runs the full flight conditions → per-surface torque pipeline
type Estimator struct {
	Provider input.Provider
	Flight   aero.FlightConditions // defaults offered for density and velocity
	Table    surface.Table

	// Out receives section headers and the dynamic pressure line
	Out io.Writer
	Log logr.Logger
}

// New creates an estimator with the built-in defaults
func New(p input.Provider, out io.Writer) *Estimator {
	return &Estimator{
		Provider: p,
		Flight:   aero.DefaultFlightConditions(),
		Table:    surface.DefaultTable(),
		Out:      out,
		Log:      logr.Discard(),
	}
}

// Report is the outcome of one run
type Report struct {
	Flight          aero.FlightConditions `json:"flight" yaml:"flight"`
	DynamicPressure float64               `json:"dynamic_pressure" yaml:"dynamic_pressure"`
	Results         []surface.Result      `json:"results" yaml:"results"`
}

func (e *Estimator) out() io.Writer {
	if e.Out == nil {
		return io.Discard
	}
	return e.Out
}

// Run acquires the flight conditions, then processes Aileron, Elevator and
// Rudder in that order.
func (e *Estimator) Run() (*Report, error) {
	w := e.out()

	fmt.Fprintln(w, "--- RC Servo Torque Estimator ---")
	fmt.Fprintln(w, "Enter the flight conditions and aircraft parameters in the specified units.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Flight Conditions ---")

	fc, err := e.acquireFlight()
	if err != nil {
		return nil, err
	}
	q := fc.DynamicPressure()
	e.Log.V(1).Info("Computed dynamic pressure", "rho", fc.AirDensity, "velocity", fc.Velocity, "q", q)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Calculated Dynamic Pressure (q): %.2f N/m^2\n", q)

	report := &Report{
		Flight:          fc,
		DynamicPressure: q,
		Results:         make([]surface.Result, 0, len(surface.Names())),
	}
	for _, d := range e.Table.Ordered() {
		res, err := ProcessSurface(e.Provider, d, q, w, e.Log)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, *res)
	}

	return report, nil
}

func (e *Estimator) acquireFlight() (aero.FlightConditions, error) {
	var fc aero.FlightConditions
	var err error

	if fc.AirDensity, err = e.Provider.Float(airDensityField(e.Flight)); err != nil {
		return fc, fmt.Errorf("flight conditions: %w", err)
	}
	if fc.Velocity, err = e.Provider.Float(velocityField(e.Flight)); err != nil {
		return fc, fmt.Errorf("flight conditions: %w", err)
	}
	if err := fc.Validate(); err != nil {
		return fc, fmt.Errorf("flight conditions: %w", err)
	}
	return fc, nil
}

// ProcessSurface prompts for one surface's coefficient and geometry,
// starting from d, and computes its hinge torque at dynamic pressure q.
func ProcessSurface(p input.Provider, d surface.Defaults, q float64, out io.Writer, log logr.Logger) (*surface.Result, error) {
	if out == nil {
		out = io.Discard
	}
	fmt.Fprintf(out, "\n--- %s Parameters %s ---\n", d.Name, d.Note)

	fields := surfaceFields(d)
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := p.Float(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		values[i] = v
	}

	g := surface.Geometry{
		Name:             d.Name,
		HingeCoefficient: values[0],
		Span:             values[1],
		RootChord:        values[2],
		TipChord:         values[3],
	}

	res, err := surface.Compute(q, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}

	log.V(1).Info("Computed surface torque",
		"surface", d.Name.String(),
		"area", res.Area,
		"meanChord", res.MeanChord,
		"torqueNm", res.TorqueNewtonMeters,
		"torqueKgCm", res.TorqueKilogramCentimeters)

	return res, nil
}
