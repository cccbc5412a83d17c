package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/etivemor/ciicalc/internal/cii"
	"github.com/etivemor/ciicalc/internal/config"
	"github.com/etivemor/ciicalc/internal/engine"
	"github.com/etivemor/ciicalc/internal/ingest"
	"github.com/etivemor/ciicalc/internal/logging"
	"github.com/etivemor/ciicalc/internal/report"
	"github.com/etivemor/ciicalc/internal/tui"
)

const (
	// keyValueParts is the number of parts in a key=value string.
	keyValueParts = 2

	// defaultComplianceExitCode is used by --exit-on-noncompliant when
	// --exit-code is not given.
	defaultComplianceExitCode = 2
)

// ComplianceExitError signals that the ship needs a corrective action plan
// and the process should exit with ExitCode.
type ComplianceExitError struct {
	ExitCode int
	Reason   string
}

func (e *ComplianceExitError) Error() string {
	return fmt.Sprintf("compliance check failed: %s", e.Reason)
}

// RateParams holds the parameters for the rate command.
type RateParams struct {
	InputFile          string
	ShipType           string
	ShipName           string
	IMONumber          string
	DeadweightTonnage  float64
	GrossTonnage       float64
	DistanceNM         float64
	Fuel               []string
	TargetYear         int
	Output             string
	OutFile            string
	Interactive        bool
	ExitOnNonCompliant bool
	ExitCode           int
}

// NewRateCmd creates the rate command, which produces the 2019-2030 CII
// ratings for one ship from a voyage report file or from flags.
func NewRateCmd() *cobra.Command {
	var params RateParams

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Rate a ship's carbon intensity for 2019-2030",
		Long: `Compute the attained and required CII of a ship and rate it from A to E
for every year 2019-2030.

The ship is described either by a voyage report (--input, YAML or JSON) or by
inline flags (--ship-type, tonnage, --distance and one or more --fuel). The two
modes are mutually exclusive. The attained CII is measured in --target-year and
projected onto every other year of the window.`,
		Example: `  # Rate from a voyage report
  ciicalc rate --input voyage.yaml

  # Rate a bulk carrier burning two fuels
  ciicalc rate --ship-type bulk_carrier --deadweight-tonnage 80000 --distance 120000 \
    --fuel hfo=1.0e10 --fuel mdo=2.0e9 --target-year 2023

  # Fail a pipeline when a corrective action plan is required
  ciicalc rate --input voyage.yaml --exit-on-noncompliant --exit-code 3

  # Browse the ratings interactively
  ciicalc rate --input voyage.yaml --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeRate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.InputFile, "input", "", "Path to a voyage report (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&params.ShipType, "ship-type", "", "Ship type (see 'ciicalc reference ship-types')")
	cmd.Flags().StringVar(&params.ShipName, "ship-name", "", "Ship name shown in reports")
	cmd.Flags().StringVar(&params.IMONumber, "imo-number", "", "IMO number shown in reports")
	cmd.Flags().Float64Var(&params.DeadweightTonnage, "deadweight-tonnage", 0, "Deadweight tonnage (DWT)")
	cmd.Flags().Float64Var(&params.GrossTonnage, "gross-tonnage", 0, "Gross tonnage (GT)")
	cmd.Flags().Float64Var(&params.DistanceNM, "distance", 0, "Distance sailed in the target year, in nautical miles")
	cmd.Flags().StringArrayVar(&params.Fuel, "fuel", nil, "Fuel burnt as type=grams (repeatable)")
	cmd.Flags().IntVar(&params.TargetYear, "target-year", 0,
		"Year the operational data was measured in (default from calculation.default_target_year)")
	cmd.Flags().StringVar(&params.Output, "output", "",
		fmt.Sprintf("Output format: %s (default from output.default_format)", formatList()))
	cmd.Flags().StringVar(&params.OutFile, "out-file", "", "Write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "Browse the ratings in a terminal UI")
	cmd.Flags().BoolVar(&params.ExitOnNonCompliant, "exit-on-noncompliant", false,
		"Exit non-zero when a corrective action plan is required")
	cmd.Flags().IntVar(&params.ExitCode, "exit-code", defaultComplianceExitCode,
		"Exit code used by --exit-on-noncompliant")

	return cmd
}

// ValidateRateFlags checks flag combinations. --input and the inline ship
// flags are mutually exclusive; inline mode needs a ship type, a distance
// and at least one fuel.
func ValidateRateFlags(params *RateParams) error {
	inline := params.ShipType != "" || params.DeadweightTonnage != 0 || params.GrossTonnage != 0 ||
		params.DistanceNM != 0 || len(params.Fuel) > 0

	switch {
	case params.InputFile != "" && inline:
		return errors.New("--input is mutually exclusive with --ship-type, --deadweight-tonnage, " +
			"--gross-tonnage, --distance and --fuel")
	case params.InputFile == "" && !inline:
		return errors.New("either --input or --ship-type with --distance and --fuel is required")
	}

	if inline {
		if params.ShipType == "" {
			return errors.New("--ship-type is required when rating from flags")
		}
		if params.DistanceNM == 0 {
			return errors.New("--distance is required when rating from flags")
		}
		if len(params.Fuel) == 0 {
			return errors.New("at least one --fuel is required when rating from flags")
		}
	}

	if params.Interactive && params.OutFile != "" {
		return errors.New("--interactive cannot be combined with --out-file")
	}
	if params.ExitCode < 1 || params.ExitCode > 255 {
		return fmt.Errorf("--exit-code must be between 1 and 255, got %d", params.ExitCode)
	}
	return nil
}

// ParseFuelFlags parses repeatable type=grams flags. Fuel names accept the
// same aliases as voyage reports (hfo, mdo, lng and so on).
func ParseFuelFlags(fuel []string) ([]ingest.FuelRecord, error) {
	records := make([]ingest.FuelRecord, 0, len(fuel))
	for _, f := range fuel {
		parts := strings.SplitN(f, "=", keyValueParts)
		if len(parts) != keyValueParts || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("invalid --fuel %q: expected type=grams", f)
		}

		name := strings.TrimSpace(parts[0])
		if _, err := cii.ParseFuelType(name); err != nil {
			return nil, fmt.Errorf("invalid --fuel %q: %w", f, err)
		}

		grams, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --fuel %q: grams must be a number", f)
		}
		records = append(records, ingest.FuelRecord{Type: name, Grams: grams})
	}
	return records, nil
}

func executeRate(cmd *cobra.Command, params RateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if err := ValidateRateFlags(&params); err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	format, err := resolveOutputFormat(params.Output, cfg)
	if err != nil {
		return err
	}
	if format.Binary() && params.OutFile == "" && !params.Interactive {
		return fmt.Errorf("--out-file is required for %s output", format)
	}

	voyage, err := buildVoyageReport(cmd, params, cfg)
	if err != nil {
		return err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "cli").
		Str("operation", "rate").
		Str("ship_type", voyage.ShipType).
		Int("target_year", voyage.TargetYear).
		Str("format", format.String()).
		Msg("rating voyage report")

	assessment, err := engine.New().Rate(ctx, *voyage)
	if err != nil {
		return err
	}

	if params.Interactive {
		if !isTerminal(os.Stdout) {
			return errors.New("--interactive requires a terminal")
		}
		if err = tui.Run(ctx, assessment, cfg.Output.Precision); err != nil {
			return fmt.Errorf("running interactive view: %w", err)
		}
	} else if err = writeReport(cmd, params.OutFile, format, assessment, cfg.Output.Precision); err != nil {
		return err
	}

	return checkCompliance(params, assessment)
}

// buildVoyageReport loads --input or assembles a report from the inline
// flags, then applies the target year precedence: flag, file, config.
func buildVoyageReport(cmd *cobra.Command, params RateParams, cfg *config.Config) (*ingest.VoyageReport, error) {
	var voyage *ingest.VoyageReport

	if params.InputFile != "" {
		loaded, err := ingest.LoadVoyageReport(cmd.Context(), params.InputFile)
		if err != nil {
			return nil, err
		}
		voyage = loaded
		if params.ShipName != "" {
			voyage.ShipName = params.ShipName
		}
		if params.IMONumber != "" {
			voyage.IMONumber = params.IMONumber
		}
	} else {
		fuel, err := ParseFuelFlags(params.Fuel)
		if err != nil {
			return nil, err
		}
		voyage = &ingest.VoyageReport{
			ShipName:          params.ShipName,
			IMONumber:         params.IMONumber,
			ShipType:          params.ShipType,
			DeadweightTonnage: params.DeadweightTonnage,
			GrossTonnage:      params.GrossTonnage,
			DistanceNM:        params.DistanceNM,
			Fuel:              fuel,
		}
	}

	if cmd.Flags().Changed("target-year") {
		voyage.TargetYear = params.TargetYear
	}
	if voyage.TargetYear == 0 {
		voyage.TargetYear = cfg.Calculation.DefaultTargetYear
	}
	if voyage.TargetYear == 0 {
		return nil, errors.New("--target-year is required (or set calculation.default_target_year)")
	}
	return voyage, nil
}

func resolveOutputFormat(flag string, cfg *config.Config) (report.Format, error) {
	if flag == "" {
		flag = cfg.Output.DefaultFormat
	}
	return report.ParseFormat(flag)
}

// createOutputFile opens --out-file for writing. Replaced in tests.
//
//nolint:gochecknoglobals // Test seam for file creation.
var createOutputFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func writeReport(cmd *cobra.Command, outFile string, format report.Format, a *engine.Assessment,
	precision int) error {
	opts := report.Options{Precision: precision}

	if outFile == "" {
		if err := report.RenderWithOptions(cmd.OutOrStdout(), format, a, opts); err != nil {
			return fmt.Errorf("rendering %s report: %w", format, err)
		}
		return nil
	}

	f, err := createOutputFile(outFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err = report.RenderWithOptions(f, format, a, opts); err != nil {
		_ = f.Close()
		return fmt.Errorf("rendering %s report: %w", format, err)
	}
	if closeErr := f.Close(); closeErr != nil {
		return fmt.Errorf("closing output file %s: %w", outFile, closeErr)
	}

	cmd.PrintErrf("Report written to %s\n", outFile)
	return nil
}

func checkCompliance(params RateParams, a *engine.Assessment) error {
	if !params.ExitOnNonCompliant || !a.Summary.CorrectiveActionRequired {
		return nil
	}
	return &ComplianceExitError{
		ExitCode: params.ExitCode,
		Reason:   "corrective action plan required: " + correctiveActionTrigger(a.Summary),
	}
}

// correctiveActionTrigger names the rating pattern that requires a
// corrective action plan. An E rating is reported ahead of a D run.
func correctiveActionTrigger(s engine.Summary) string {
	if n := s.RatingCounts[cii.RatingE]; n > 0 {
		return fmt.Sprintf("rated E in %d of %d years", n, cii.YearCount)
	}
	return fmt.Sprintf("rated D for %d consecutive years", s.ConsecutiveDYears)
}

func formatList() string {
	names := make([]string, 0, len(report.Formats()))
	for _, f := range report.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
