package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/servotorque/internal/diagram"
	"github.com/alexiusacademia/servotorque/internal/estimator"
	"github.com/alexiusacademia/servotorque/internal/input"
)

var (
	sweepFrom   float64
	sweepTo     float64
	sweepStep   float64
	sweepHeight int
	sweepTable  bool
	sweepOutput string
	sweepSet    map[string]string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Plot hinge torque against airspeed",
	Long: `Evaluate the hinge torque of every surface over a range of airspeeds,
using the profile geometry and air density, and draw it as a chart.

The design airspeed of the profile is marked on exported charts.

Examples:
  # 0 to 30 m/s in 1 m/s steps
  servotorque sweep

  # Finer steps up to 40 m/s, exported as PNG
  servotorque sweep --to 40 --step 0.5 --output charts/torque.png

  # Sweep a modified aileron
  servotorque sweep --set aileron.span=1.1 --set aileron.ch=-0.2`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "Lowest airspeed (m/s)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 30, "Highest airspeed (m/s)")
	sweepCmd.Flags().Float64Var(&sweepStep, "step", 1, "Airspeed increment (m/s)")
	sweepCmd.Flags().IntVar(&sweepHeight, "height", 12, "ASCII chart height in lines")
	sweepCmd.Flags().BoolVar(&sweepTable, "table", false, "Also print the torque values per airspeed")
	sweepCmd.Flags().StringVarP(&sweepOutput, "output", "o", "", "Export chart to file (png, svg, pdf)")
	sweepCmd.Flags().StringToStringVar(&sweepSet, "set", nil, "Override a profile value (key=value), as in estimate --set")
}

func runSweep(cmd *cobra.Command, args []string) error {
	profile, log, err := loadProfile()
	if err != nil {
		return err
	}

	presets, err := input.ParseValues(sweepSet)
	if err != nil {
		return err
	}
	if err := estimator.CheckKeys(presets); err != nil {
		return err
	}

	e := estimator.New(input.Preset{Values: presets, Next: input.Defaults{}}, nil)
	e.Flight = profile.FlightConditions()
	e.Table = profile.Table()
	e.Log = log

	report, err := e.Run()
	if err != nil {
		return err
	}

	series, err := estimator.Sweep(report, sweepFrom, sweepTo, sweepStep)
	if err != nil {
		return err
	}

	data := diagram.TorqueCurveData{
		Title:  fmt.Sprintf("HINGE TORQUE VS AIRSPEED (ρ = %.3f kg/m³)", report.Flight.AirDensity),
		XLabel: "Airspeed (m/s)",
		YLabel: "Torque (kg·cm)",
		MarkX:  report.Flight.Velocity,
	}
	for _, s := range series {
		c := diagram.Curve{Label: s.Name.String()}
		for _, p := range s.Points {
			c.X = append(c.X, p.Velocity)
			c.Y = append(c.Y, p.KilogramCentimeters)
		}
		data.Curves = append(data.Curves, c)
	}

	w := cmd.OutOrStdout()
	chart, err := diagram.DrawTorqueCurve(data, sweepHeight)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, chart)

	if sweepTable {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprint(tw, "  V (m/s)\t")
		for _, s := range series {
			fmt.Fprintf(tw, "%s (kg·cm)\t", s.Name)
		}
		fmt.Fprintln(tw)
		for i := range series[0].Points {
			fmt.Fprintf(tw, "  %.2f\t", series[0].Points[i].Velocity)
			for _, s := range series {
				fmt.Fprintf(tw, "%.2f\t", s.Points[i].KilogramCentimeters)
			}
			fmt.Fprintln(tw)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	if sweepOutput != "" {
		saved, err := diagram.ExportTorqueCurve(data, sweepOutput)
		if err != nil {
			return fmt.Errorf("error exporting chart: %w", err)
		}
		fmt.Fprintf(w, "Chart exported to: %s\n", saved)
	}
	return nil
}
