package cii

import (
	"fmt"
	"math"
)

// AttainedIntensity returns the ship's attained CII: grams of CO2 per unit
// of transport work.
func AttainedIntensity(co2Mass, transportWork float64) (float64, error) {
	if !isPositive(co2Mass) {
		return 0, fmt.Errorf("%w: mass of CO2 emissions must be a positive value, got %v", ErrInvalidInput, co2Mass)
	}
	if !isPositive(transportWork) {
		return 0, fmt.Errorf("%w: transport work must be a positive value, got %v", ErrInvalidInput, transportWork)
	}
	return co2Mass / transportWork, nil
}

// ReferenceIntensity returns the 2019 reference line a * capacity^-c.
func ReferenceIntensity(shipType ShipType, capacity float64) (float64, error) {
	if !isPositive(capacity) {
		return 0, fmt.Errorf("%w: capacity must be a positive value, got %v", ErrInvalidInput, capacity)
	}
	a, c, err := referenceCoefficients(shipType, capacity)
	if err != nil {
		return 0, err
	}
	return a * math.Pow(capacity, -c), nil
}

// RequiredIntensity returns the required CII for year: the reference line
// reduced by the year's reduction factor.
func RequiredIntensity(shipType ShipType, capacity float64, year int) (float64, error) {
	reference, err := ReferenceIntensity(shipType, capacity)
	if err != nil {
		return 0, err
	}
	z, err := ReductionFactor(year)
	if err != nil {
		return 0, err
	}
	return reference * (1 - z), nil
}

// RequiredIntensityByYear returns the required CII for every year of the
// regulatory window, keyed by year.
func RequiredIntensityByYear(shipType ShipType, capacity float64) (map[int]float64, error) {
	out := make(map[int]float64, YearCount)
	for year := FirstYear; year <= LastYear; year++ {
		required, err := RequiredIntensity(shipType, capacity, year)
		if err != nil {
			return nil, err
		}
		out[year] = required
	}
	return out, nil
}
