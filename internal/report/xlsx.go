package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/etivemor/ciicalc/internal/cii"
	"github.com/etivemor/ciicalc/internal/engine"
)

const (
	summarySheet = "summary"
	yearsSheet   = "years"
)

// renderXLSX writes a workbook with a summary sheet and a per-year sheet.
// Numeric cells keep full precision; formatting is left to the spreadsheet.
func renderXLSX(w io.Writer, a *engine.Assessment) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("naming summary sheet: %w", err)
	}
	if _, err := f.NewSheet(yearsSheet); err != nil {
		return fmt.Errorf("creating years sheet: %w", err)
	}

	first := firstYear(a)
	unit, _ := cii.CapacityUnitFor(a.Ship.Type)
	summary := [][2]any{
		{"CII Assessment", ""},
		{"Ship", shipLabel(a)},
		{"Ship type", a.Ship.Type.String()},
		{"Capacity", first.ShipCapacity},
		{"Capacity unit", unit.String()},
		{"Distance (nm)", a.DistanceNM},
		{"Target year", a.TargetYear},
		{"CO2 emitted (g)", first.CO2eEmissions},
		{"Transport work", first.TransportWork},
		{"Attained CII", first.AttainedCII},
		{"Measured rating", a.Summary.MeasuredRating.String()},
		{"First D/E year", a.Summary.FirstNonCompliantYear},
		{"Longest D run (years)", a.Summary.ConsecutiveDYears},
		{"Corrective action required", a.Summary.CorrectiveActionRequired},
		{"Generated", a.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z")},
		{"Trace ID", a.TraceID},
	}
	for _, eq := range a.Summary.Equivalencies.Results {
		summary = append(summary, [2]any{"Equivalent " + eq.Label, eq.Value})
	}
	for i, kv := range summary {
		row := i + 1
		if err := setRow(f, summarySheet, row, kv[0], kv[1]); err != nil {
			return err
		}
	}

	header := []any{
		"Year", "Measured", "Required CII", "Attained CII", "Ratio",
		"Superior", "Lower", "Upper", "Inferior", "Rating",
	}
	if err := setRow(f, yearsSheet, 1, header...); err != nil {
		return err
	}
	for i, yr := range a.Result.Results {
		b := yr.Boundaries
		if err := setRow(f, yearsSheet, i+2,
			yr.Year, yr.IsMeasuredYear, yr.RequiredCII, yr.AttainedCII, yr.Ratio,
			b.Value(cii.BoundarySuperior), b.Value(cii.BoundaryLower),
			b.Value(cii.BoundaryUpper), b.Value(cii.BoundaryInferior),
			yr.Rating.String(),
		); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("resolving cell: %w", err)
	}
	if err = f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, row, err)
	}
	return nil
}
