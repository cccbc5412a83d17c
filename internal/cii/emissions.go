package cii

import (
	"fmt"
	"math"
)

// CO2Mass returns the mass of CO2 in grams emitted by burning grams of the
// given fuel, using the fuel's mass conversion factor Cf.
func CO2Mass(fuelType FuelType, grams float64) (float64, error) {
	if math.IsNaN(grams) || math.IsInf(grams, 0) || grams < 0 {
		return 0, fmt.Errorf("%w: fuel consumption mass must be a non-negative finite value, got %v",
			ErrInvalidInput, grams)
	}
	f, err := lookupFuel(fuelType)
	if err != nil {
		return 0, err
	}
	return grams * f.conversion, nil
}

// TotalCO2Mass sums CO2Mass over every consumption. The first invalid entry
// aborts the sum.
func TotalCO2Mass(consumptions []FuelConsumption) (float64, error) {
	total := 0.0
	for i, fc := range consumptions {
		mass, err := CO2Mass(fc.FuelType, fc.Grams)
		if err != nil {
			return 0, fmt.Errorf("fuel consumption %d: %w", i, err)
		}
		total += mass
	}
	return total, nil
}

// ConversionFactor returns Cf, grams of CO2 emitted per gram of fuel.
func ConversionFactor(fuelType FuelType) (float64, error) {
	f, err := lookupFuel(fuelType)
	if err != nil {
		return 0, err
	}
	return f.conversion, nil
}

// CarbonContent returns the carbon mass fraction of the fuel.
func CarbonContent(fuelType FuelType) (float64, error) {
	f, err := lookupFuel(fuelType)
	if err != nil {
		return 0, err
	}
	return f.carbonContent, nil
}

// LowerCalorificValue returns the fuel's lower calorific value in kJ/kg.
func LowerCalorificValue(fuelType FuelType) (float64, error) {
	f, err := lookupFuel(fuelType)
	if err != nil {
		return 0, err
	}
	return f.lowerCalorificValue, nil
}
