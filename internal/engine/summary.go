package engine

import (
	"github.com/etivemor/ciicalc/internal/carbon"
	"github.com/etivemor/ciicalc/internal/cii"
)

// correctiveActionDYears is the number of consecutive D ratings after which
// MARPOL Annex VI regulation 28 requires a corrective action plan.
const correctiveActionDYears = 3

// Summary condenses the 12-year projection into the figures an operator
// acts on.
type Summary struct {
	HasMeasuredYear bool       `json:"has_measured_year"`
	MeasuredYear    int        `json:"measured_year,omitempty"`
	MeasuredRating  cii.Rating `json:"measured_rating"`
	AttainedCII     float64    `json:"attained_cii"`
	// RatingCounts is keyed by rating letter.
	RatingCounts map[cii.Rating]int `json:"rating_counts"`
	// FirstNonCompliantYear is the first year rated D or E, 0 when none.
	FirstNonCompliantYear    int  `json:"first_non_compliant_year"`
	ConsecutiveDYears        int  `json:"consecutive_d_years"`
	CorrectiveActionRequired bool `json:"corrective_action_required"`
	// Equivalencies reads the annual CO2 mass as everyday activities.
	Equivalencies carbon.Equivalencies `json:"equivalencies"`
}

// Summarize derives the Summary of a calculation result. Years are assumed
// to be in ascending order, as Calculate returns them.
func Summarize(result cii.CalculationResult) Summary {
	s := Summary{RatingCounts: make(map[cii.Rating]int, 5)}

	if m, ok := result.MeasuredYear(); ok {
		s.HasMeasuredYear = true
		s.MeasuredYear = m.Year
		s.MeasuredRating = m.Rating
	}

	run := 0
	anyE := false
	for _, yr := range result.Results {
		s.AttainedCII = yr.AttainedCII
		s.RatingCounts[yr.Rating]++

		if !yr.Rating.Compliant() && s.FirstNonCompliantYear == 0 {
			s.FirstNonCompliantYear = yr.Year
		}
		if yr.Rating == cii.RatingE {
			anyE = true
		}

		if yr.Rating == cii.RatingD {
			run++
			s.ConsecutiveDYears = max(s.ConsecutiveDYears, run)
		} else {
			run = 0
		}
	}

	s.CorrectiveActionRequired = anyE || s.ConsecutiveDYears >= correctiveActionDYears

	if len(result.Results) > 0 {
		if eq, err := carbon.FromGrams(result.Results[0].CO2eEmissions); err == nil {
			s.Equivalencies = eq
		}
	}
	return s
}
