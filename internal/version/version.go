// Package version holds build metadata for the servotorque binary.
//
//	go build -ldflags "-X github.com/alexiusacademia/servotorque/internal/version.Version=1.0.0 \
//	  -X github.com/alexiusacademia/servotorque/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "fmt"

var (
	Version   = "0.3.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2025"
)

// Build describes the commit and build time on one line.
func Build() string {
	return fmt.Sprintf("Commit %s, built %s", GitCommit, BuildTime)
}
