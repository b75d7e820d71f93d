// Package main provides the entry point for the pepsweep CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lmeierlab/pepsweep/internal/cli"
	"github.com/lmeierlab/pepsweep/internal/sweep"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// A failed analysis run surfaces its own exit code so batch
		// schedulers see the underlying failure.
		var toolErr *sweep.ToolError
		if errors.As(err, &toolErr) && toolErr.ExitCode > 0 {
			os.Exit(toolErr.ExitCode)
		}
		os.Exit(1)
	}
}
