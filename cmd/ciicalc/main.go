// Command ciicalc rates a ship's IMO Carbon Intensity Indicator.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/etivemor/ciicalc/internal/cli"
	"github.com/etivemor/ciicalc/pkg/version"
)

func main() {
	if err := run(); err != nil {
		os.Exit(extractExitCode(err))
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	err := root.ExecuteContext(ctx)
	if err != nil {
		var exitErr *cli.ComplianceExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, exitErr.Error())
		}
	}
	return err
}

// extractExitCode maps err to a process exit code: 0 for nil, the
// requested code for a ComplianceExitError and 1 otherwise.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ComplianceExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	return 1
}
