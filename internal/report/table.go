package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/etivemor/ciicalc/internal/cii"
	"github.com/etivemor/ciicalc/internal/engine"
)

// tabwriterPadding is the minimum padding between columns in the year table.
const tabwriterPadding = 2

// measuredMarker flags the measured year in the year column.
const measuredMarker = "*"

func renderTable(w io.Writer, a *engine.Assessment, opts Options) error {
	var sb strings.Builder
	writeHeaderBlock(&sb, a, opts)
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if err := writeYearTable(w, a, opts); err != nil {
		return err
	}

	sb.Reset()
	writeSummaryBlock(&sb, a)
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

func writeHeaderBlock(sb *strings.Builder, a *engine.Assessment, opts Options) {
	sb.WriteString(HeaderStyle.Render("CII ASSESSMENT"))
	sb.WriteString("\n\n")

	if name := shipLabel(a); name != "" {
		writeField(sb, "Ship:", name)
	}
	writeField(sb, "Ship type:", a.Ship.Type.String())

	first := firstYear(a)
	unit, _ := cii.CapacityUnitFor(a.Ship.Type)
	writeField(sb, "Capacity:", fmt.Sprintf("%s %s", FormatFloat(first.ShipCapacity, 0), strings.ToUpper(unit.String())))
	writeField(sb, "Distance:", FormatFloat(a.DistanceNM, 0)+" nm")
	writeField(sb, "CO2 emitted:", FormatLarge(first.CO2eEmissions)+" g")
	writeField(sb, "Transport work:", FormatLarge(first.TransportWork)+" t·nm")
	writeField(sb, "Attained CII:", FormatFloat(first.AttainedCII, opts.Precision)+" gCO2/t·nm")
	sb.WriteString("\n")
}

func writeField(sb *strings.Builder, label, value string) {
	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-16s", label)))
	sb.WriteString(ValueStyle.Render(value))
	sb.WriteString("\n")
}

// writeYearTable writes the 12-year table. The rating column is last so
// colour escapes do not disturb tabwriter alignment.
func writeYearTable(w io.Writer, a *engine.Assessment, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintln(tw, "YEAR\tREQUIRED\tATTAINED\tRATIO\tSUPERIOR\tLOWER\tUPPER\tINFERIOR\tRATING"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "----\t--------\t--------\t-----\t--------\t-----\t-----\t--------\t------"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	p := opts.Precision
	for _, yr := range a.Result.Results {
		year := strconv.Itoa(yr.Year)
		if yr.IsMeasuredYear {
			year += measuredMarker
		}
		b := yr.Boundaries
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			year,
			FormatFloat(yr.RequiredCII, p),
			FormatFloat(yr.AttainedCII, p),
			FormatFloat(yr.Ratio, p),
			FormatFloat(b.Value(cii.BoundarySuperior), p),
			FormatFloat(b.Value(cii.BoundaryLower), p),
			FormatFloat(b.Value(cii.BoundaryUpper), p),
			FormatFloat(b.Value(cii.BoundaryInferior), p),
			RatingStyle(yr.Rating).Render(yr.Rating.String()),
		); err != nil {
			return fmt.Errorf("writing year %d: %w", yr.Year, err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	return nil
}

func writeSummaryBlock(sb *strings.Builder, a *engine.Assessment) {
	s := a.Summary
	sb.WriteString("\n")
	sb.WriteString(HeaderStyle.Render("SUMMARY"))
	sb.WriteString("\n")

	if s.HasMeasuredYear {
		writeField(sb, "Measured year:", fmt.Sprintf("%d%s rated %s", s.MeasuredYear, measuredMarker,
			RatingStyle(s.MeasuredRating).Render(s.MeasuredRating.String())))
	} else {
		writeField(sb, "Measured year:", fmt.Sprintf("none (target year %d is outside %d-%d)",
			a.TargetYear, cii.FirstYear, cii.LastYear))
	}

	if eq := s.Equivalencies; !eq.IsEmpty {
		sb.WriteString(LabelStyle.Render(eq.DisplayText))
		sb.WriteString("\n")
	}

	counts := make([]string, 0, len(ratingsInOrder()))
	for _, r := range ratingsInOrder() {
		counts = append(counts, fmt.Sprintf("%s:%d", r, s.RatingCounts[r]))
	}
	writeField(sb, "Ratings:", strings.Join(counts, " "))

	if s.FirstNonCompliantYear == 0 {
		sb.WriteString(OKStyle.Render("Rated C or better in every year through " + strconv.Itoa(cii.LastYear)))
		sb.WriteString("\n")
		return
	}
	writeField(sb, "First D/E year:", strconv.Itoa(s.FirstNonCompliantYear))
	writeField(sb, "Longest D run:", fmt.Sprintf("%d years", s.ConsecutiveDYears))
	if s.CorrectiveActionRequired {
		sb.WriteString(WarnStyle.Render("Corrective action plan required (E rating or 3 consecutive D ratings)"))
		sb.WriteString("\n")
	}
}

func ratingsInOrder() []cii.Rating {
	return []cii.Rating{cii.RatingA, cii.RatingB, cii.RatingC, cii.RatingD, cii.RatingE}
}

func shipLabel(a *engine.Assessment) string {
	switch {
	case a.ShipName != "" && a.IMONumber != "":
		return fmt.Sprintf("%s (IMO %s)", a.ShipName, a.IMONumber)
	case a.ShipName != "":
		return a.ShipName
	case a.IMONumber != "":
		return "IMO " + a.IMONumber
	default:
		return ""
	}
}

// firstYear returns the first result; emissions, capacity and work are the
// same in every year.
func firstYear(a *engine.Assessment) cii.YearResult {
	if len(a.Result.Results) == 0 {
		return cii.YearResult{}
	}
	return a.Result.Results[0]
}
