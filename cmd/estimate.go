package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/servotorque/internal/diagram"
	"github.com/alexiusacademia/servotorque/internal/estimator"
	"github.com/alexiusacademia/servotorque/internal/input"
)

var (
	estimateDefaults bool
	estimateStrict   bool
	estimateChart    bool
	estimateFormat   = estimator.FormatText
	estimateSet      map[string]string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate servo torque for aileron, elevator and rudder",
	Long: `Prompt for the flight conditions and the geometry of each control
surface, then report the hinge torque each servo must hold.

Press Enter at any prompt to accept the default shown in brackets.
Invalid answers fall back to the default with a warning, unless
--strict is given.

Fields that can be preset with --set:
  air_density, velocity,
  <surface>.ch, <surface>.span, <surface>.root_chord, <surface>.tip_chord
where <surface> is aileron, elevator or rudder.

Examples:
  # Interactive session
  servotorque estimate

  # Use every default without prompting
  servotorque estimate --defaults

  # Faster aircraft, stiffer aileron, JSON output
  servotorque estimate --defaults --set velocity=25 --set aileron.ch=-0.2 --format json`,
	RunE: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().BoolVarP(&estimateDefaults, "defaults", "d", false, "Use default values instead of prompting")
	estimateCmd.Flags().BoolVar(&estimateStrict, "strict", false, "Fail on invalid input instead of using the default")
	estimateCmd.Flags().BoolVar(&estimateChart, "chart", false, "Show an ASCII bar chart of the torque per surface")
	estimateCmd.Flags().VarP(&estimateFormat, "format", "f", "Output format: text, table, json or yaml")
	estimateCmd.Flags().StringToStringVar(&estimateSet, "set", nil, "Preset a field value (key=value), skipping its prompt")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	profile, log, err := loadProfile()
	if err != nil {
		return err
	}

	presets, err := input.ParseValues(estimateSet)
	if err != nil {
		return err
	}
	if err := estimator.CheckKeys(presets); err != nil {
		return err
	}

	mode := input.Lenient
	if estimateStrict {
		mode = input.Strict
	}

	// Prompts must not end up inside machine-readable output
	out := cmd.OutOrStdout()
	transcript := out
	if estimateFormat == estimator.FormatJSON || estimateFormat == estimator.FormatYAML {
		transcript = cmd.ErrOrStderr()
	}

	var provider input.Provider
	if estimateDefaults {
		provider = input.Defaults{}
		transcript = io.Discard
	} else {
		provider = input.NewPrompter(cmd.InOrStdin(), transcript, mode).WithLogger(log)
	}
	if len(presets) > 0 {
		provider = input.Preset{Values: presets, Next: provider}
	}

	e := estimator.New(provider, transcript)
	e.Flight = profile.FlightConditions()
	e.Table = profile.Table()
	e.Log = log

	report, err := e.Run()
	if err != nil {
		return err
	}

	if estimateDefaults && estimateFormat == estimator.FormatText {
		fmt.Fprintf(out, "Calculated Dynamic Pressure (q): %.2f N/m^2\n", report.DynamicPressure)
	}
	if err := report.Write(out, estimateFormat); err != nil {
		return err
	}

	if estimateChart && (estimateFormat == estimator.FormatText || estimateFormat == estimator.FormatTable) {
		bars := make([]diagram.Bar, 0, len(report.Results))
		for _, res := range report.Results {
			bars = append(bars, diagram.Bar{Label: res.Name.String(), Value: res.TorqueKilogramCentimeters, Unit: "kg·cm"})
		}
		fmt.Fprint(out, diagram.DrawBars("HINGE TORQUE PER SURFACE", bars, 40))
	}
	return nil
}
