package report

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Thresholds for FormatLarge.
const (
	LargeNumberThreshold = 1_000_000.0
	BillionThreshold     = 1_000_000_000.0
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators stable across environments.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(150000) returns "150,000".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f rounded to precision decimals with thousand separators.
// Example: FormatFloat(19089.3333, 2) returns "19,089.33".
func FormatFloat(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Sprint(f)
	}
	if precision < 0 {
		precision = 0
	}

	formatted := fmt.Sprintf("%.*f", precision, f)
	intPart, decPart, hasDec := strings.Cut(formatted, ".")

	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	sb.WriteString(groupThousands(intPart))
	if hasDec {
		sb.WriteByte('.')
		sb.WriteString(decPart)
	}
	return sb.String()
}

// groupThousands inserts the printer's grouping separator into a string of
// digits. Digits are grouped as text so values beyond int64 survive.
func groupThousands(digits string) string {
	const group = 3
	sep := printer.Sprintf("%d", 1000)[1:2]
	if len(digits) <= group {
		return digits
	}

	var sb strings.Builder
	lead := len(digits) % group
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += group {
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(digits[i : i+group])
	}
	return sb.String()
}

// FormatLarge formats large quantities such as grams of CO2 in abbreviated
// notation.
//
// Values below LargeNumberThreshold use comma-separated format.
// Values at or above it use "~X.X million", and at or above
// BillionThreshold "~X.X billion".
//
// Example: FormatLarge(71585000000) returns "~71.6 billion".
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}
