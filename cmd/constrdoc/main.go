// CLI entry point for ConstrDoc-Intelligence.
package main

import (
	"os"

	"github.com/turtacn/ConstrDoc-Intelligence/internal/interfaces/cli"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
	cli.BuildDate = buildDate
}

func main() {
	// cli.Execute prints the error itself; main only sets the exit code.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

//Personal.AI order the ending
