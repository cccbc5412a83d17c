package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/etivemor/ciicalc/internal/cii"
	"github.com/etivemor/ciicalc/internal/report"
)

const (
	tabwriterPadding = 2
	percentScale     = 100
)

// ShipTypeRow is one line of 'reference ship-types'.
type ShipTypeRow struct {
	Name         string `json:"name"`
	CapacityUnit string `json:"capacity_unit"`
}

// FuelRow is one line of 'reference fuels'.
type FuelRow struct {
	Name                string  `json:"name"`
	ConversionFactor    float64 `json:"conversion_factor"`
	CarbonContent       float64 `json:"carbon_content"`
	LowerCalorificValue float64 `json:"lower_calorific_value_kj_per_kg"`
}

// ReductionFactorRow is one line of 'reference reduction-factors'.
type ReductionFactorRow struct {
	Year   int     `json:"year"`
	Factor float64 `json:"factor"`
}

// NewReferenceCmd creates the reference command group, which prints the
// regulatory tables the calculator uses.
func NewReferenceCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Show the regulatory reference tables",
		Long: `Print the tables behind the rating: supported ship types and their capacity
basis, fuel conversion factors (MEPC.364(79)) and the annual reduction
factors (MEPC.338(76)).`,
	}
	cmd.PersistentFlags().StringVar(&output, "output", "table", "Output format: table or json")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "ship-types",
			Short: "List ship types and the tonnage their capacity is based on",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				rows, err := ShipTypeRows()
				if err != nil {
					return err
				}
				return writeReference(cmd.OutOrStdout(), output, rows, renderShipTypes)
			},
		},
		&cobra.Command{
			Use:   "fuels",
			Short: "List fuel types with their CO2 conversion factors",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				rows, err := FuelRows()
				if err != nil {
					return err
				}
				return writeReference(cmd.OutOrStdout(), output, rows, renderFuels)
			},
		},
		&cobra.Command{
			Use:   "reduction-factors",
			Short: "List the annual reduction factor for each year",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				rows, err := ReductionFactorRows()
				if err != nil {
					return err
				}
				return writeReference(cmd.OutOrStdout(), output, rows, renderReductionFactors)
			},
		},
	)

	return cmd
}

// ShipTypeRows returns every supported ship type with its capacity unit.
func ShipTypeRows() ([]ShipTypeRow, error) {
	rows := make([]ShipTypeRow, 0, len(cii.ShipTypes()))
	for _, st := range cii.ShipTypes() {
		unit, err := cii.CapacityUnitFor(st)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ShipTypeRow{Name: st.String(), CapacityUnit: unit.String()})
	}
	return rows, nil
}

// FuelRows returns the reference values of every supported fuel.
func FuelRows() ([]FuelRow, error) {
	rows := make([]FuelRow, 0, len(cii.FuelTypes()))
	for _, ft := range cii.FuelTypes() {
		cf, err := cii.ConversionFactor(ft)
		if err != nil {
			return nil, err
		}
		carbon, err := cii.CarbonContent(ft)
		if err != nil {
			return nil, err
		}
		lcv, err := cii.LowerCalorificValue(ft)
		if err != nil {
			return nil, err
		}
		rows = append(rows, FuelRow{
			Name:                ft.String(),
			ConversionFactor:    cf,
			CarbonContent:       carbon,
			LowerCalorificValue: lcv,
		})
	}
	return rows, nil
}

// ReductionFactorRows returns Z for 2019-2030.
func ReductionFactorRows() ([]ReductionFactorRow, error) {
	rows := make([]ReductionFactorRow, 0, cii.YearCount)
	for year := cii.FirstYear; year <= cii.LastYear; year++ {
		z, err := cii.ReductionFactor(year)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ReductionFactorRow{Year: year, Factor: z})
	}
	return rows, nil
}

func writeReference[T any](w io.Writer, output string, rows []T, table func(*tabwriter.Writer, []T)) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		table(tw, rows)
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported reference output %q: use table or json", output)
	}
}

func renderShipTypes(tw *tabwriter.Writer, rows []ShipTypeRow) {
	fmt.Fprintln(tw, "SHIP TYPE\tCAPACITY")
	fmt.Fprintln(tw, "---------\t--------")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.Name, r.CapacityUnit)
	}
}

func renderFuels(tw *tabwriter.Writer, rows []FuelRow) {
	fmt.Fprintln(tw, "FUEL\tCF (t-CO2/t)\tCARBON CONTENT\tLCV (kJ/kg)")
	fmt.Fprintln(tw, "----\t------------\t--------------\t-----------")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.3f\t%.4f\t%s\n",
			r.Name, r.ConversionFactor, r.CarbonContent, report.FormatNumber(int64(r.LowerCalorificValue)))
	}
}

func renderReductionFactors(tw *tabwriter.Writer, rows []ReductionFactorRow) {
	fmt.Fprintln(tw, "YEAR\tREDUCTION")
	fmt.Fprintln(tw, "----\t---------")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%.0f%%\n", r.Year, r.Factor*percentScale)
	}
}
