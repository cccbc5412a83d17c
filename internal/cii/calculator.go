package cii

import "fmt"

// Calculate runs the rating pipeline for a ship and one target year of fuel
// consumption and distance, returning a result for every year 2019-2030.
//
// Emissions, capacity and transport work are derived once from the inputs
// and shared by every year; only the required CII and boundaries change
// with the reduction factor. The entry for targetYear is flagged as
// measured. A targetYear outside the window is not an error; no entry is
// flagged in that case.
//
// Any failure aborts the whole calculation.
func Calculate(
	shipType ShipType,
	grossTonnage, deadweightTonnage, distanceNM float64,
	consumptions []FuelConsumption,
	targetYear int,
) (CalculationResult, error) {
	if len(consumptions) == 0 {
		return CalculationResult{}, fmt.Errorf("%w: at least one fuel consumption is required", ErrInvalidInput)
	}

	emissions, err := TotalCO2Mass(consumptions)
	if err != nil {
		return CalculationResult{}, err
	}
	capacity, err := Capacity(shipType, deadweightTonnage, grossTonnage)
	if err != nil {
		return CalculationResult{}, err
	}
	work, err := TransportWork(capacity, distanceNM)
	if err != nil {
		return CalculationResult{}, err
	}
	attained, err := AttainedIntensity(emissions, work)
	if err != nil {
		return CalculationResult{}, err
	}

	ship := Ship{Type: shipType, DeadweightTonnage: deadweightTonnage, GrossTonnage: grossTonnage}
	results := make([]YearResult, 0, YearCount)
	for year := FirstYear; year <= LastYear; year++ {
		required, err := RequiredIntensity(shipType, capacity, year)
		if err != nil {
			return CalculationResult{}, err
		}
		boundaries, err := ShipBoundaries(ship, required, year)
		if err != nil {
			return CalculationResult{}, err
		}

		results = append(results, YearResult{
			IsMeasuredYear: year == targetYear,
			Year:           year,
			RequiredCII:    required,
			AttainedCII:    attained,
			Ratio:          attainedRequiredRatio(attained, required),
			Rating:         Rate(boundaries, attained),
			Boundaries:     boundaries,
			CO2eEmissions:  emissions,
			ShipCapacity:   capacity,
			TransportWork:  work,
		})
	}

	return CalculationResult{Results: results}, nil
}

// CalculateSingleFuel is Calculate with a single fuel consumption.
func CalculateSingleFuel(
	shipType ShipType,
	grossTonnage, deadweightTonnage, distanceNM float64,
	fuelType FuelType, grams float64,
	targetYear int,
) (CalculationResult, error) {
	return Calculate(shipType, grossTonnage, deadweightTonnage, distanceNM,
		[]FuelConsumption{{FuelType: fuelType, Grams: grams}}, targetYear)
}

// CalculateForShip is Calculate for a Ship value.
func CalculateForShip(ship Ship, distanceNM float64, consumptions []FuelConsumption, targetYear int) (CalculationResult, error) {
	return Calculate(ship.Type, ship.GrossTonnage, ship.DeadweightTonnage, distanceNM, consumptions, targetYear)
}
