package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/etivemor/ciicalc/internal/cii"
	"github.com/etivemor/ciicalc/internal/engine"
)

// Column widths in mm for the PDF year table.
//
//nolint:gochecknoglobals // Immutable layout table.
var pdfColumns = []struct {
	title string
	width float64
}{
	{"Year", 16},
	{"Required", 22},
	{"Attained", 22},
	{"Ratio", 16},
	{"Superior", 22},
	{"Lower", 22},
	{"Upper", 22},
	{"Inferior", 22},
	{"Rating", 16},
}

// renderPDF writes a one-page A4 statement. Core PDF fonts are Latin-1, so
// all text is kept ASCII.
func renderPDF(w io.Writer, a *engine.Assessment, opts Options) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("CII Assessment", false)
	pdf.SetCreationDate(a.GeneratedAt)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "CII Assessment")
	pdf.Ln(10)

	first := firstYear(a)
	unit, _ := cii.CapacityUnitFor(a.Ship.Type)
	pdf.SetFont("Arial", "", 10)
	lines := []string{
		fmt.Sprintf("Ship type: %s", a.Ship.Type),
		fmt.Sprintf("Capacity: %s %s", FormatFloat(first.ShipCapacity, 0), unit),
		fmt.Sprintf("Distance: %s nm", FormatFloat(a.DistanceNM, 0)),
		fmt.Sprintf("CO2 emitted: %s g", FormatFloat(first.CO2eEmissions, 0)),
		fmt.Sprintf("Transport work: %s", FormatFloat(first.TransportWork, 0)),
		fmt.Sprintf("Attained CII: %s", FormatFloat(first.AttainedCII, opts.Precision)),
		fmt.Sprintf("Generated: %s", a.GeneratedAt.UTC().Format(time.RFC3339)),
	}
	if name := shipLabel(a); name != "" {
		lines = append([]string{"Ship: " + name}, lines...)
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 9)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 6, c.title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	p := opts.Precision
	for _, yr := range a.Result.Results {
		year := strconv.Itoa(yr.Year)
		if yr.IsMeasuredYear {
			year += measuredMarker
		}
		b := yr.Boundaries
		cells := []string{
			year,
			FormatFloat(yr.RequiredCII, p),
			FormatFloat(yr.AttainedCII, p),
			FormatFloat(yr.Ratio, p),
			FormatFloat(b.Value(cii.BoundarySuperior), p),
			FormatFloat(b.Value(cii.BoundaryLower), p),
			FormatFloat(b.Value(cii.BoundaryUpper), p),
			FormatFloat(b.Value(cii.BoundaryInferior), p),
			yr.Rating.String(),
		}
		for i, text := range cells {
			align := "R"
			if i == 0 || i == len(cells)-1 {
				align = "C"
			}
			pdf.CellFormat(pdfColumns[i].width, 6, text, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 10)
	if a.Summary.CorrectiveActionRequired {
		pdf.Cell(0, 6, "Corrective action plan required (E rating or 3 consecutive D ratings).")
	} else {
		pdf.Cell(0, 6, "No corrective action plan required.")
	}
	pdf.Ln(5)
	if eq := a.Summary.Equivalencies; !eq.IsEmpty {
		pdf.Cell(0, 6, eq.DisplayText+".")
		pdf.Ln(5)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}
