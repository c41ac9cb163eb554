// Command ecobin is the EcoBin waste tracking CLI.
package main

import (
	"os"

	"github.com/ecobin-app/ecobin/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev" //nolint:gochecknoglobals // Build-time injection point.

func run() int {
	root := cli.NewRootCmd(version)
	if err := root.Execute(); err != nil {
		// Cobra already printed the error.
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
