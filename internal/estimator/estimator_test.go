package estimator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/servotorque/internal/aero"
	"github.com/alexiusacademia/servotorque/internal/input"
	"github.com/alexiusacademia/servotorque/internal/logging"
	"github.com/alexiusacademia/servotorque/internal/surface"
)

func defaultAnswers() []string {
	return make([]string, len(Keys()))
}

func TestRun_Defaults(t *testing.T) {
	var out bytes.Buffer
	e := New(input.NewScripted(defaultAnswers(), &out, input.Lenient), &out)

	report, err := e.Run()
	require.NoError(t, err)

	assert.InDelta(t, 198.45, report.DynamicPressure, 1e-9)
	assert.Equal(t, aero.DefaultFlightConditions(), report.Flight)

	want := []surface.Result{
		{Name: surface.Aileron, HingeCoefficient: -0.15, Area: 0.07392, MeanChord: 0.080,
			TorqueNewtonMeters: 0.176033088, TorqueKilogramCentimeters: 1.795044605},
		{Name: surface.Elevator, HingeCoefficient: -0.10, Area: 0.07155, MeanChord: 0.225,
			TorqueNewtonMeters: 0.319479694, TorqueKilogramCentimeters: 3.257798333},
		{Name: surface.Rudder, HingeCoefficient: -0.10, Area: 0.0539, MeanChord: 0.175,
			TorqueNewtonMeters: 0.187187963, TorqueKilogramCentimeters: 1.908793091},
	}
	opts := cmp.Options{
		cmpopts.EquateApprox(0, 1e-8),
		cmpopts.IgnoreFields(surface.Result{}, "Geometry"),
	}
	if diff := cmp.Diff(want, report.Results, opts); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}

	for i, d := range surface.DefaultTable().Ordered() {
		assert.Equal(t, d.Geometry, report.Results[i].Geometry)
	}
}

func TestRun_PromptTranscript(t *testing.T) {
	var out bytes.Buffer
	e := New(input.NewScripted(defaultAnswers(), &out, input.Lenient), &out)

	_, err := e.Run()
	require.NoError(t, err)

	transcript := out.String()
	assert.True(t, strings.HasPrefix(transcript,
		"--- RC Servo Torque Estimator ---\n"+
			"Enter the flight conditions and aircraft parameters in the specified units.\n"+
			"\n--- Flight Conditions ---\n"+
			"Air density (rho) in kg/m^3 [e.g., 1.225]: "+
			"Aircraft velocity (V) in m/s [e.g., 18.0]: "+
			"\nCalculated Dynamic Pressure (q): 198.45 N/m^2\n"), transcript)

	assert.Contains(t, transcript, "\n--- Aileron Parameters (Single Aileron) ---\n"+
		"Aileron Hinge Moment Coefficient (Ch) [e.g., -0.15]: "+
		"Aileron span in meters [e.g., 0.924]: "+
		"Aileron root chord in meters [e.g., 0.11]: "+
		"Aileron tip chord in meters [e.g., 0.05]: ")
	assert.Contains(t, transcript, "\n--- Elevator Parameters (One Half of the Elevator) ---\n")
	assert.Contains(t, transcript, "\n--- Rudder Parameters  ---\n")

	aileron := strings.Index(transcript, "Aileron Parameters")
	elevator := strings.Index(transcript, "Elevator Parameters")
	rudder := strings.Index(transcript, "Rudder Parameters")
	assert.True(t, aileron < elevator && elevator < rudder)
}

func TestRun_ScriptedValues(t *testing.T) {
	answers := []string{
		"1.0", "20", // flight
		"0.3", "", "", "", // aileron: positive Ch
		"", "", "", "", // elevator
		"-0.2", "0.5", "0.2", "0.1", // rudder
	}
	e := New(input.NewScripted(answers, nil, input.Strict), nil)

	report, err := e.Run()
	require.NoError(t, err)

	assert.Equal(t, 200.0, report.DynamicPressure)
	require.Len(t, report.Results, 3)

	assert.Equal(t, 0.3, report.Results[0].HingeCoefficient)
	assert.InDelta(t, 200*0.07392*0.080*0.3, report.Results[0].TorqueNewtonMeters, 1e-9)

	rudder := report.Results[2]
	assert.Equal(t, surface.Rudder, rudder.Name)
	assert.InDelta(t, 0.075, rudder.Area, 1e-12)
	assert.InDelta(t, 0.15, rudder.MeanChord, 1e-12)
	assert.InDelta(t, 200*0.075*0.15*0.2, rudder.TorqueNewtonMeters, 1e-9)
}

func TestRun_LenientInvalidInput(t *testing.T) {
	answers := defaultAnswers()
	answers[1] = "fast"
	answers[3] = "-1"

	var out bytes.Buffer
	e := New(input.NewScripted(answers, &out, input.Lenient), &out)

	report, err := e.Run()
	require.NoError(t, err)

	assert.Equal(t, aero.DefaultVelocity, report.Flight.Velocity)
	assert.Equal(t, 0.924, report.Results[0].Geometry.Span)
	assert.Contains(t, out.String(), "Invalid input. Using default value: 18.0\n")
	assert.Contains(t, out.String(), "Out of range input. Using default value: 0.924\n")
}

func TestRun_StrictInvalidInput(t *testing.T) {
	answers := defaultAnswers()
	answers[6] = "wide"

	e := New(input.NewScripted(answers, nil, input.Strict), nil)

	report, err := e.Run()
	assert.Nil(t, report)
	require.Error(t, err)
	assert.True(t, errors.Is(err, input.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Elevator")
	assert.Contains(t, err.Error(), "elevator.ch")
}

func TestRun_StrictFlightConditions(t *testing.T) {
	e := New(input.NewScripted([]string{"0"}, nil, input.Strict), nil)

	_, err := e.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, input.ErrOutOfRange))
	assert.Contains(t, err.Error(), "flight conditions")
}

func TestRun_Presets(t *testing.T) {
	p := input.Preset{
		Values: map[string]float64{KeyVelocity: 10, "rudder.ch": -0.5},
		Next:   input.Defaults{},
	}
	e := New(p, nil)

	report, err := e.Run()
	require.NoError(t, err)
	assert.InDelta(t, 0.5*1.225*100, report.DynamicPressure, 1e-9)
	assert.Equal(t, -0.5, report.Results[2].HingeCoefficient)
}

func TestRun_CustomTable(t *testing.T) {
	table := surface.DefaultTable()
	table.Elevator.Span = 0.5
	table.Elevator.Note = "(full elevator)"

	var out bytes.Buffer
	e := New(input.Defaults{}, &out)
	e.Table = table
	e.Flight = aero.FlightConditions{AirDensity: 1.0, Velocity: 10}

	report, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, 50.0, report.DynamicPressure)
	assert.Equal(t, 0.5, report.Results[1].Geometry.Span)
	assert.Contains(t, out.String(), "--- Elevator Parameters (full elevator) ---")
}

func TestRun_Logging(t *testing.T) {
	var logs bytes.Buffer
	e := New(input.Defaults{}, nil)
	e.Log = logging.NewTestLogger(&logs)

	_, err := e.Run()
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Computed dynamic pressure")
	assert.Equal(t, 3, strings.Count(logs.String(), "Computed surface torque"))
}

func TestProcessSurface(t *testing.T) {
	var out bytes.Buffer
	d := surface.DefaultTable().Aileron

	res, err := ProcessSurface(input.Defaults{}, d, 198.45, &out, logging.NewTestLogger(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.InDelta(t, 0.176033088, res.TorqueNewtonMeters, 1e-9)
	assert.Equal(t, "\n--- Aileron Parameters (Single Aileron) ---\n", out.String())
}

func TestProcessSurface_InvalidDefaults(t *testing.T) {
	d := surface.DefaultTable().Rudder
	d.TipChord = 0

	_, err := ProcessSurface(input.Defaults{}, d, 198.45, nil, logging.NewTestLogger(&bytes.Buffer{}))
	var vErr *surface.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestKeys(t *testing.T) {
	keys := Keys()
	assert.Len(t, keys, 14)
	assert.Equal(t, []string{KeyAirDensity, KeyVelocity, "aileron.ch", "aileron.span"}, keys[:4])
	assert.Equal(t, "rudder.tip_chord", keys[13])
}

func TestCheckKeys(t *testing.T) {
	assert.NoError(t, CheckKeys(map[string]float64{"velocity": 1, "elevator.root_chord": 0.2}))

	err := CheckKeys(map[string]float64{"flap.span": 1, "velocity": 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flap.span")
}
