// Package carbon expresses annual ship CO2 emissions as everyday
// equivalencies for reports.
package carbon

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// EPA greenhouse gas equivalency factors, kg CO2 per unit of activity.
// equivalency = kg_CO2 / factor.
const (
	EPAMilesDrivenFactor      = 0.393
	EPATreeSeedlingFactor     = 60.0
	EPAHomeYearFactor         = 7_930.0
	EPASmartphoneChargeFactor = 0.0124
)

// MinEquivalencyThresholdKg is the emission below which no equivalencies
// are reported.
const MinEquivalencyThresholdKg = 1.0

const (
	millionThreshold = 1_000_000
	billionThreshold = 1_000_000_000
	gramsPerKg       = 1_000
)

// EquivalencyType is a category of everyday activity.
type EquivalencyType int

const (
	EquivalencyMilesDriven EquivalencyType = iota
	EquivalencyTreeSeedlings
	EquivalencyHomesPowered
	EquivalencySmartphonesCharged
)

func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "miles_driven"
	case EquivalencyTreeSeedlings:
		return "tree_seedlings"
	case EquivalencyHomesPowered:
		return "homes_powered"
	case EquivalencySmartphonesCharged:
		return "smartphones_charged"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", int(e))
	}
}

// MarshalText encodes the type by name.
func (e EquivalencyType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Equivalency is one converted figure.
type Equivalency struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// Equivalencies is the everyday reading of an emission mass.
type Equivalencies struct {
	CO2Grams    float64       `json:"co2_grams"`
	Results     []Equivalency `json:"results,omitempty"`
	DisplayText string        `json:"display_text,omitempty"`
	IsEmpty     bool          `json:"is_empty"`
}

//nolint:gochecknoglobals // x/text printers are safe for reuse.
var printer = message.NewPrinter(language.English)

// FromGrams expresses co2Grams of CO2 as everyday equivalencies. Masses
// below MinEquivalencyThresholdKg give an empty result without error.
func FromGrams(co2Grams float64) (Equivalencies, error) {
	if math.IsInf(co2Grams, 0) || math.IsNaN(co2Grams) {
		return Equivalencies{IsEmpty: true}, ErrOverflow
	}
	if co2Grams < 0 {
		return Equivalencies{IsEmpty: true}, ErrNegativeValue
	}

	kg := co2Grams / gramsPerKg
	out := Equivalencies{CO2Grams: co2Grams}
	if kg < MinEquivalencyThresholdKg {
		out.IsEmpty = true
		return out, nil
	}

	out.Results = []Equivalency{
		newEquivalency(EquivalencyMilesDriven, kg/EPAMilesDrivenFactor, "miles driven by a passenger car"),
		newEquivalency(EquivalencyTreeSeedlings, kg/EPATreeSeedlingFactor, "tree seedlings grown for 10 years"),
		newEquivalency(EquivalencyHomesPowered, kg/EPAHomeYearFactor, "homes' energy use for one year"),
		newEquivalency(EquivalencySmartphonesCharged, kg/EPASmartphoneChargeFactor, "smartphones charged"),
	}
	out.DisplayText = fmt.Sprintf("Equivalent to driving %s miles or the energy use of %s homes for a year",
		out.Results[0].FormattedValue, out.Results[2].FormattedValue)
	return out, nil
}

func newEquivalency(t EquivalencyType, v float64, label string) Equivalency {
	return Equivalency{Type: t, Value: v, FormattedValue: formatEquivalency(v), Label: label}
}

// formatEquivalency renders v as "~1.5 billion", "~372.8 million" or a
// comma-grouped integer.
func formatEquivalency(v float64) string {
	switch {
	case v >= billionThreshold:
		return fmt.Sprintf("~%.1f billion", v/billionThreshold)
	case v >= millionThreshold:
		return fmt.Sprintf("~%.1f million", v/millionThreshold)
	default:
		return "~" + printer.Sprintf("%d", int64(math.Round(v)))
	}
}
