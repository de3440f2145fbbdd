package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/servotorque/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of servotorque",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "servotorque v%s\n", version.Version)
		fmt.Fprintln(w, "RC Control Surface Servo Torque Estimator")
		fmt.Fprintln(w, version.Build())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
