// Package cli implements the ciicalc command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/etivemor/ciicalc/internal/config"
	"github.com/etivemor/ciicalc/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the ciicalc CLI. It loads
// configuration, wires logging and tracing and adds the rate, reference
// and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "ciicalc",
		Short:         "IMO Carbon Intensity Indicator calculator",
		Long:          "ciicalc rates a ship's operational carbon intensity (CII) from A to E for every year 2019-2030.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "overlay configuration file merged onto ~/.ciicalc/config.yaml")
	cmd.AddCommand(NewRateCmd(), NewReferenceCmd(), newConfigCmd())

	return cmd
}

// annotationConfigCommand marks commands that inspect or repair the
// configuration, so a broken config.yaml or environment must not stop them.
const annotationConfigCommand = "ciicalc/config-command"

// loadConfig builds the global configuration from config.yaml, the --config
// overlay and the environment, in that order, and validates the result. A
// missing config.yaml means defaults. Any other problem fails the command,
// except under the config group, which reports such problems itself.
func loadConfig(cmd *cobra.Command) error {
	tolerant := isConfigCommand(cmd)
	cfg := config.Default()

	loaded, err := config.Load(cfg.ConfigPath())
	switch {
	case err == nil:
		cfg = loaded
	case errors.Is(err, os.ErrNotExist), tolerant:
	default:
		return fmt.Errorf("loading configuration: %w", err)
	}

	if overlay, _ := cmd.Flags().GetString("config"); overlay != "" {
		if err = config.ShallowMergeYAML(cfg, overlay); err != nil {
			return fmt.Errorf("loading --config overlay: %w", err)
		}
	}

	// Environment wins over files.
	if err = cfg.ApplyEnv(); err != nil && !tolerant {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err = cfg.Validate(); err != nil && !tolerant {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	config.SetGlobalConfig(cfg)
	return nil
}

func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationConfigCommand] == "true" {
			return true
		}
	}
	return false
}

const rootCmdExample = `  # Rate a ship from a voyage report
  ciicalc rate --input voyage.yaml

  # Rate a ship from flags
  ciicalc rate --ship-type bulk_carrier --deadweight-tonnage 80000 \
    --distance 120000 --fuel hfo=1.2e10 --target-year 2023

  # Export the 12-year projection to a spreadsheet
  ciicalc rate --input voyage.yaml --output xlsx --out-file cii.xlsx

  # Show the regulatory fuel table
  ciicalc reference fuels

  # Initialize configuration
  ciicalc config init`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration management commands",
		Annotations: map[string]string{annotationConfigCommand: "true"},
	}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
