package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/servotorque/internal/aero"
	"github.com/alexiusacademia/servotorque/internal/diagram"
	"github.com/alexiusacademia/servotorque/internal/input"
	"github.com/alexiusacademia/servotorque/internal/surface"
)

var (
	surfaceName      string
	surfaceCh        float64
	surfaceSpan      float64
	surfaceRootChord float64
	surfaceTipChord  float64
	surfaceDensity   float64
	surfaceVelocity  float64
)

var surfaceCmd = &cobra.Command{
	Use:   "surface",
	Short: "Calculate hinge torque of a single control surface",
	Long: `Calculate the hinge torque of one control surface from flags,
without prompting.

Unspecified geometry is taken from the defaults of the named surface,
unspecified flight conditions from the aircraft profile.
Span and chords must be positive.

Examples:
  # Default aileron at 25 m/s
  servotorque surface --name aileron --velocity 25

  # Custom rudder
  servotorque surface -n rudder --ch -0.12 --span 0.35 --root 0.22 --tip 0.16`,
	RunE: runSurface,
}

func init() {
	rootCmd.AddCommand(surfaceCmd)

	surfaceCmd.Flags().StringVarP(&surfaceName, "name", "n", "", "Surface: aileron, elevator or rudder [required]")

	// Geometry flags
	surfaceCmd.Flags().Float64Var(&surfaceCh, "ch", 0, "Hinge moment coefficient Ch")
	surfaceCmd.Flags().Float64VarP(&surfaceSpan, "span", "s", 0, "Surface span (m)")
	surfaceCmd.Flags().Float64VarP(&surfaceRootChord, "root", "r", 0, "Root chord (m)")
	surfaceCmd.Flags().Float64VarP(&surfaceTipChord, "tip", "t", 0, "Tip chord (m)")

	// Flight condition flags
	surfaceCmd.Flags().Float64Var(&surfaceDensity, "density", aero.StandardAirDensity, "Air density ρ (kg/m³)")
	surfaceCmd.Flags().Float64VarP(&surfaceVelocity, "velocity", "V", aero.DefaultVelocity, "Airspeed V (m/s)")

	surfaceCmd.MarkFlagRequired("name")
}

func runSurface(cmd *cobra.Command, args []string) error {
	profile, log, err := loadProfile()
	if err != nil {
		return err
	}

	name, err := surface.ParseName(surfaceName)
	if err != nil {
		return err
	}

	d, err := profile.Table().Get(name)
	if err != nil {
		return err
	}
	g := d.Geometry
	flags := cmd.Flags()
	if flags.Changed("ch") {
		g.HingeCoefficient = surfaceCh
	}
	if flags.Changed("span") {
		g.Span = surfaceSpan
	}
	if flags.Changed("root") {
		g.RootChord = surfaceRootChord
	}
	if flags.Changed("tip") {
		g.TipChord = surfaceTipChord
	}

	fc := profile.FlightConditions()
	if flags.Changed("density") {
		fc.AirDensity = surfaceDensity
	}
	if flags.Changed("velocity") {
		fc.Velocity = surfaceVelocity
	}
	if err := fc.Validate(); err != nil {
		return err
	}

	q := fc.DynamicPressure()
	res, err := surface.Compute(q, g)
	if err != nil {
		return err
	}
	log.V(1).Info("Computed surface torque", "surface", name.String(), "q", q, "torqueNm", res.TorqueNewtonMeters)

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "     %s HINGE TORQUE\n", name)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "INPUT DATA:")
	fmt.Fprintln(w, "───────────────────────────────────────────────────────────────")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Air density (ρ):\t%.4f kg/m³\n", fc.AirDensity)
	fmt.Fprintf(tw, "  Airspeed (V):\t%.2f m/s\n", fc.Velocity)
	fmt.Fprintf(tw, "  Hinge coefficient (Ch):\t%s\n", input.FormatDefault(g.HingeCoefficient))
	fmt.Fprintf(tw, "  Span:\t%.3f m\n", g.Span)
	fmt.Fprintf(tw, "  Root chord:\t%.3f m\n", g.RootChord)
	fmt.Fprintf(tw, "  Tip chord:\t%.3f m\n", g.TipChord)
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "DERIVED QUANTITIES:")
	fmt.Fprintln(w, "───────────────────────────────────────────────────────────────")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Dynamic pressure (q):\t%.2f N/m²\n", q)
	fmt.Fprintf(tw, "  Area (S):\t%.5f m²\n", res.Area)
	fmt.Fprintf(tw, "  Mean chord (c̄):\t%.4f m\n", res.MeanChord)
	tw.Flush()
	fmt.Fprintln(w)

	lo := res.Torque().WithMargin(aero.SafetyMarginMin)
	hi := res.Torque().WithMargin(aero.SafetyMarginMax)
	fmt.Fprint(w, diagram.DrawSummaryBox("HINGE TORQUE", []string{
		fmt.Sprintf("%.4f N·m", res.TorqueNewtonMeters),
		fmt.Sprintf("%.2f kg·cm", res.TorqueKilogramCentimeters),
		fmt.Sprintf("Servo at %.1fx – %.1fx: %.2f – %.2f kg·cm",
			aero.SafetyMarginMin, aero.SafetyMarginMax, lo.KilogramCentimeters, hi.KilogramCentimeters),
	}))
	fmt.Fprintln(w)
	fmt.Fprintln(w, aero.Disclaimer)
	return nil
}
