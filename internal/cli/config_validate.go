package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/etivemor/ciicalc/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file at ~/.ciicalc/config.yaml for syntax and semantic correctness.

This includes:
- YAML syntax
- Output format and precision
- Logging level and format
- Default target year within 2019-2030`,
		Example: `  # Validate current configuration
  ciicalc config validate

  # Validate and show detailed information
  ciicalc config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate loads the configuration file strictly, so YAML errors
// are reported rather than silently replaced by defaults.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path := config.Default().ConfigPath()

	cfg, err := config.Load(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		cmd.Printf("No configuration file at %s, defaults apply\n", path)
		cfg = config.Default()
	case err != nil:
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err = cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Logging format: %s\n", cfg.Logging.Format)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	if y := cfg.Calculation.DefaultTargetYear; y != 0 {
		cmd.Printf("  Default target year: %d\n", y)
	} else {
		cmd.Println("  Default target year: not set")
	}
}
