package cii

import (
	"encoding/json"
	"math"
)

// Ship describes the tonnage of a vessel. Tonnages are in long-tons; only
// the basis required by Type needs to be set.
type Ship struct {
	Type              ShipType `json:"ship_type"`
	DeadweightTonnage float64  `json:"deadweight_tonnage"`
	GrossTonnage      float64  `json:"gross_tonnage"`
}

// FuelConsumption is the mass of one fuel consumed over the target year.
type FuelConsumption struct {
	FuelType FuelType `json:"fuel_type"`
	// Grams is the consumed fuel mass in grams.
	Grams float64 `json:"grams"`
}

// WeightClassification is the deadweight band [Lower, Upper) a boundary
// sub-table applies to. Untiered ship types report [0, +Inf).
type WeightClassification struct {
	Lower float64
	Upper float64
}

// Contains reports whether dwt falls inside the band.
func (w WeightClassification) Contains(dwt float64) bool {
	return dwt >= w.Lower && dwt < w.Upper
}

// MarshalJSON encodes an unbounded upper limit as null, since JSON has no infinity.
func (w WeightClassification) MarshalJSON() ([]byte, error) {
	out := struct {
		Lower float64  `json:"lower_limit"`
		Upper *float64 `json:"upper_limit"`
	}{Lower: w.Lower}
	if !math.IsInf(w.Upper, 1) {
		upper := w.Upper
		out.Upper = &upper
	}
	return json.Marshal(out)
}

// BoundarySet holds the four rating thresholds for one ship and year.
type BoundarySet struct {
	ShipType             ShipType             `json:"ship_type"`
	WeightClassification WeightClassification `json:"weight_classification"`
	CapacityUnit         CapacityUnit         `json:"capacity_unit"`
	Values               map[Boundary]float64 `json:"boundary_dd_vectors"`
	Year                 int                  `json:"year"`
}

// Value returns the threshold for b, or 0 when b is not set.
func (s BoundarySet) Value(b Boundary) float64 {
	return s.Values[b]
}

// YearResult is the outcome for one calendar year. Emissions, capacity and
// transport work come from the single target-year snapshot and are identical
// across all years of a CalculationResult.
type YearResult struct {
	IsMeasuredYear bool        `json:"is_measured_year"`
	Year           int         `json:"year"`
	RequiredCII    float64     `json:"required_cii"`
	AttainedCII    float64     `json:"attained_cii"`
	Ratio          float64     `json:"ratio"`
	Rating         Rating      `json:"rating"`
	Boundaries     BoundarySet `json:"vector_boundaries_for_year"`
	CO2eEmissions  float64     `json:"calculated_co2e_emissions"`
	ShipCapacity   float64     `json:"calculated_ship_capacity"`
	TransportWork  float64     `json:"calculated_transport_work"`
}

// IsEstimatedYear reports whether the year is a projection rather than the measured year.
func (y YearResult) IsEstimatedYear() bool {
	return !y.IsMeasuredYear
}

// attainedRequiredRatio returns attained/required, or 0 when required is not positive.
func attainedRequiredRatio(attained, required float64) float64 {
	if required > 0 {
		return attained / required
	}
	return 0
}

// CalculationResult contains one YearResult per regulatory year in ascending order.
type CalculationResult struct {
	Results []YearResult `json:"results"`
}

// MeasuredYear returns the entry flagged as measured, if any.
func (c CalculationResult) MeasuredYear() (YearResult, bool) {
	for _, r := range c.Results {
		if r.IsMeasuredYear {
			return r, true
		}
	}
	return YearResult{}, false
}

// Year returns the entry for year, if present.
func (c CalculationResult) Year(year int) (YearResult, bool) {
	for _, r := range c.Results {
		if r.Year == year {
			return r, true
		}
	}
	return YearResult{}, false
}
