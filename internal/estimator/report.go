package estimator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/servotorque/internal/aero"
	"github.com/alexiusacademia/servotorque/internal/input"
)

const (
	heavyRule = "═══════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────"
)

// Write renders the report in the given format
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatTable:
		return r.WriteTable(w)
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	case FormatText, "":
		return r.WriteText(w)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// WriteText prints the classic torque summary followed by the safety disclaimer
func (r *Report) WriteText(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("\n--- ESTIMATED SERVO TORQUE REQUIREMENTS ---\n")
	for _, res := range r.Results {
		fmt.Fprintf(&sb, "\nFor the %s (using Ch = %s):\n", res.Name, input.FormatDefault(res.HingeCoefficient))
		fmt.Fprintf(&sb, "  - Required Torque: %.4f N.m\n", res.TorqueNewtonMeters)
		fmt.Fprintf(&sb, "  - Required Torque: %.2f kg-cm\n", res.TorqueKilogramCentimeters)
	}
	sb.WriteString("\n" + aero.Disclaimer + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteTable prints a sectioned breakdown including geometry and servo margins
func (r *Report) WriteTable(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(heavyRule + "\n")
	sb.WriteString("          SERVO HINGE TORQUE ESTIMATE\n")
	sb.WriteString(heavyRule + "\n\n")

	sb.WriteString("FLIGHT CONDITIONS:\n")
	sb.WriteString(lightRule + "\n")
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Air density (ρ):\t%.4f kg/m³\n", r.Flight.AirDensity)
	fmt.Fprintf(tw, "  Velocity (V):\t%.2f m/s\n", r.Flight.Velocity)
	fmt.Fprintf(tw, "  Dynamic pressure (q):\t%.2f N/m²\n", r.DynamicPressure)
	tw.Flush()
	sb.WriteString("\n")

	for _, res := range r.Results {
		fmt.Fprintf(&sb, "%s:\n", strings.ToUpper(res.Name.String()))
		sb.WriteString(lightRule + "\n")
		tw = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Hinge coefficient (Ch):\t%s\n", input.FormatDefault(res.HingeCoefficient))
		fmt.Fprintf(tw, "  Span:\t%.3f m\n", res.Geometry.Span)
		fmt.Fprintf(tw, "  Root / tip chord:\t%.3f / %.3f m\n", res.Geometry.RootChord, res.Geometry.TipChord)
		fmt.Fprintf(tw, "  Area (S):\t%.5f m²\n", res.Area)
		fmt.Fprintf(tw, "  Mean chord (c̄):\t%.4f m\n", res.MeanChord)
		fmt.Fprintf(tw, "  Hinge torque:\t%.4f N·m\t%.2f kg·cm\n", res.TorqueNewtonMeters, res.TorqueKilogramCentimeters)

		lo := res.Torque().WithMargin(aero.SafetyMarginMin)
		hi := res.Torque().WithMargin(aero.SafetyMarginMax)
		fmt.Fprintf(tw, "  Servo (%.1fx – %.1fx):\t%.2f – %.2f kg·cm\n",
			aero.SafetyMarginMin, aero.SafetyMarginMax, lo.KilogramCentimeters, hi.KilogramCentimeters)
		tw.Flush()
		sb.WriteString("\n")
	}

	sb.WriteString(aero.Disclaimer + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteJSON writes the report as indented JSON
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report as YAML
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
