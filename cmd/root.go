package cmd

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/servotorque/internal/config"
	"github.com/alexiusacademia/servotorque/internal/logging"
	"github.com/alexiusacademia/servotorque/internal/version"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "servotorque",
	Short: "RC Servo Torque Estimator",
	Long: `servotorque - RC Control Surface Servo Torque Estimator

A CLI tool that estimates the hinge torque servos must deliver on
an RC aircraft's ailerons, elevator and rudder.

The estimate uses the classical hinge moment formula:
  H = q · S · c̄ · |Ch|
where q = ½ρV² is the dynamic pressure, S the surface area,
c̄ the mean chord and Ch the hinge moment coefficient.

Results are given in N·m and in kg·cm, the unit of servo datasheets.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(w, "  ║                                                           ║")
		fmt.Fprintf(w, "  ║   servotorque v%-43s║\n", version.Version)
		fmt.Fprintln(w, "  ║   RC Control Surface Servo Torque Estimator               ║")
		fmt.Fprintln(w, "  ║                                                           ║")
		fmt.Fprintln(w, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Estimates the hinge torque of ailerons, elevator and rudder")
		fmt.Fprintln(w, "  from flight conditions and surface geometry.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Features:")
		fmt.Fprintln(w, "    • Interactive estimate with per-surface defaults")
		fmt.Fprintln(w, "    • Single surface calculation from flags")
		fmt.Fprintln(w, "    • Torque vs airspeed sweep with chart export")
		fmt.Fprintln(w, "    • Aircraft profiles from YAML or SERVOTORQUE_* variables")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Use 'servotorque --help' to see available commands.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(w, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(w)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Aircraft profile YAML file overriding the default geometry")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log intermediate quantities to stderr")
}

// loadProfile returns the aircraft defaults and the logger for a command run
func loadProfile() (*config.Profile, logr.Logger, error) {
	log, err := logging.New(verbose)
	if err != nil {
		return nil, logr.Discard(), fmt.Errorf("failed to create logger: %w", err)
	}

	profile, err := config.Load(configFile)
	if err != nil {
		return nil, log, err
	}
	if profile.Name != "" {
		log.V(1).Info("Loaded aircraft profile", "name", profile.Name, "file", configFile)
	}
	return profile, log, nil
}
