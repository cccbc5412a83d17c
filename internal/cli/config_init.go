package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/etivemor/ciicalc/internal/config"
)

// NewConfigInitCmd creates the config init command, which writes
// ~/.ciicalc/config.yaml (or $CIICALC_HOME/config.yaml) with default values.
func NewConfigInitCmd() *cobra.Command {
	var (
		force      bool
		targetYear int
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at ~/.ciicalc/config.yaml.
Set CIICALC_HOME to use a different directory.`,
		Example: `  # Create configuration
  ciicalc config init

  # Create configuration with a default target year, overwriting existing
  ciicalc config init --target-year 2024 --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force, targetYear)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().IntVar(&targetYear, "target-year", 0, "default target year for the rate command")

	return cmd
}

func initConfig(cmd *cobra.Command, force bool, targetYear int) error {
	cfg := config.Default()
	cfg.Calculation.DefaultTargetYear = targetYear

	if !force {
		if _, err := os.Stat(cfg.ConfigPath()); err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())

	return nil
}
