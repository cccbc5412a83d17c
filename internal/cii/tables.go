package cii

import (
	"fmt"
	"math"
)

// reductionFactors holds Z% from MEPC.338(76), indexed by year-FirstYear.
//
//nolint:gochecknoglobals // Immutable regulatory table.
var reductionFactors = [YearCount]float64{
	0.00, // 2019
	0.01, // 2020
	0.02, // 2021
	0.03, // 2022
	0.05, // 2023
	0.07, // 2024
	0.09, // 2025
	0.11, // 2026
	0.13, // 2027
	0.15, // 2028
	0.17, // 2029
	0.19, // 2030
}

// ReductionFactor returns the annual reduction factor for year.
// Years outside 2019-2030 return ErrUnsupportedYear.
func ReductionFactor(year int) (float64, error) {
	if year < FirstYear || year > LastYear {
		return 0, fmt.Errorf("%w: %d is outside %d-%d", ErrUnsupportedYear, year, FirstYear, LastYear)
	}
	return reductionFactors[year-FirstYear], nil
}

// fuelFactors are the MEPC.364(79) default values for one fuel.
type fuelFactors struct {
	// conversion is Cf, grams of CO2 per gram of fuel.
	conversion float64
	// carbonContent is the mass fraction of carbon.
	carbonContent float64
	// lowerCalorificValue is in kJ/kg.
	lowerCalorificValue float64
}

//nolint:gochecknoglobals // Immutable regulatory table.
var fuelTable = map[FuelType]fuelFactors{
	FuelTypeDieselOrGasOil: {conversion: 3.206, carbonContent: 0.8744, lowerCalorificValue: 42700},
	FuelTypeLightFuelOil:   {conversion: 3.151, carbonContent: 0.8594, lowerCalorificValue: 41200},
	FuelTypeHeavyFuelOil:   {conversion: 3.114, carbonContent: 0.8493, lowerCalorificValue: 40200},
	FuelTypeLPGPropane:     {conversion: 3.000, carbonContent: 0.8182, lowerCalorificValue: 46300},
	FuelTypeLPGButane:      {conversion: 3.030, carbonContent: 0.8264, lowerCalorificValue: 45700},
	FuelTypeEthane:         {conversion: 2.927, carbonContent: 0.7989, lowerCalorificValue: 46400},
	FuelTypeLNG:            {conversion: 2.750, carbonContent: 0.7500, lowerCalorificValue: 48000},
	FuelTypeMethanol:       {conversion: 1.375, carbonContent: 0.3750, lowerCalorificValue: 19900},
	FuelTypeEthanol:        {conversion: 1.913, carbonContent: 0.5217, lowerCalorificValue: 26800},
}

func lookupFuel(fuelType FuelType) (fuelFactors, error) {
	f, ok := fuelTable[fuelType]
	if !ok {
		return fuelFactors{}, fmt.Errorf("%w: %s", ErrUnsupportedFuelType, fuelType)
	}
	return f, nil
}

// referenceCoefficients returns the MEPC.353(78) a and c parameters for the
// ship type at the given capacity.
//
//nolint:mnd // Regulatory constants.
func referenceCoefficients(shipType ShipType, capacity float64) (a, c float64, err error) {
	switch shipType {
	case ShipTypeBulkCarrier:
		return 4745, 0.622, nil
	case ShipTypeGasCarrier:
		if capacity >= gasCarrierCoefficientTier {
			return 14405e7, 2.071, nil
		}
		return 8104, 0.639, nil
	case ShipTypeTanker:
		return 5247, 0.610, nil
	case ShipTypeContainerShip:
		return 1984, 0.489, nil
	case ShipTypeGeneralCargoShip:
		if capacity >= generalCargoCoefficientTier {
			return 31948, 0.792, nil
		}
		return 588, 0.3885, nil
	case ShipTypeRefrigeratedCargoCarrier:
		return 4600, 0.557, nil
	case ShipTypeCombinationCarrier:
		return 5119, 0.622, nil
	case ShipTypeLNGCarrier:
		if capacity >= lngCarrierCoefficientUpperTier {
			return 9.827, 0, nil
		}
		if capacity >= lngCarrierCoefficientLowerTier {
			return 14479e10, 2.673, nil
		}
		return 14779e10, 2.673, nil
	case ShipTypeRoRoVehicleCarrier:
		if capacity >= roRoVehicleCoefficientUpperTier {
			return 3627, 0.590, nil
		}
		if capacity >= roRoVehicleCoefficientLowerTier {
			return 5739, 0.590, nil
		}
		return 330, 0.329, nil
	case ShipTypeRoRoCargoShip:
		return 1967, 0.485, nil
	case ShipTypeRoRoPassengerShip:
		return 2023, 0.460, nil
	case ShipTypeRoRoPassengerShipHighSpeed:
		return 4196, 0.460, nil
	case ShipTypeCruisePassengerShip:
		return 930, 0.383, nil
	case ShipTypeUnknown:
		return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedShipType, shipType)
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedShipType, shipType)
	}
}

// multipliers are the exp(d1..d4) factors of one MEPC.354(78) dd-vector row.
type multipliers struct {
	superior, lower, upper, inferior float64
}

func (m multipliers) apply(required float64) map[Boundary]float64 {
	return map[Boundary]float64{
		BoundarySuperior: m.superior * required,
		BoundaryLower:    m.lower * required,
		BoundaryUpper:    m.upper * required,
		BoundaryInferior: m.inferior * required,
	}
}

// unbounded is the weight classification of ship types without tiers.
//
//nolint:gochecknoglobals // Immutable.
var unbounded = WeightClassification{Lower: 0, Upper: math.Inf(1)}

// boundaryMultipliers returns the dd-vector row for the ship type, tiered
// on deadweight tonnage for gas and LNG carriers, with the weight band it
// applies to.
//
//nolint:mnd // Regulatory constants.
func boundaryMultipliers(shipType ShipType, dwt float64) (multipliers, WeightClassification, error) {
	switch shipType {
	case ShipTypeBulkCarrier:
		return multipliers{0.86, 0.94, 1.06, 1.18}, unbounded, nil
	case ShipTypeGasCarrier:
		if dwt >= GasCarrierBoundaryTier {
			return multipliers{0.81, 0.91, 1.12, 1.44},
				WeightClassification{Lower: GasCarrierBoundaryTier, Upper: math.Inf(1)}, nil
		}
		return multipliers{0.85, 0.95, 1.06, 1.25},
			WeightClassification{Lower: 0, Upper: GasCarrierBoundaryTier}, nil
	case ShipTypeTanker:
		return multipliers{0.82, 0.93, 1.08, 1.28}, unbounded, nil
	case ShipTypeContainerShip:
		return multipliers{0.83, 0.94, 1.07, 1.19}, unbounded, nil
	case ShipTypeGeneralCargoShip:
		return multipliers{0.83, 0.94, 1.06, 1.19}, unbounded, nil
	case ShipTypeRefrigeratedCargoCarrier:
		return multipliers{0.78, 0.91, 1.07, 1.20}, unbounded, nil
	case ShipTypeCombinationCarrier:
		return multipliers{0.87, 0.96, 1.06, 1.14}, unbounded, nil
	case ShipTypeLNGCarrier:
		if dwt >= LNGCarrierBoundaryTier {
			return multipliers{0.89, 0.98, 1.06, 1.13},
				WeightClassification{Lower: LNGCarrierBoundaryTier, Upper: math.Inf(1)}, nil
		}
		return multipliers{0.78, 0.92, 1.10, 1.37},
			WeightClassification{Lower: 0, Upper: LNGCarrierBoundaryTier}, nil
	case ShipTypeRoRoVehicleCarrier:
		return multipliers{0.86, 0.94, 1.06, 1.16}, unbounded, nil
	case ShipTypeRoRoCargoShip:
		return multipliers{0.76, 0.89, 1.08, 1.27}, unbounded, nil
	case ShipTypeRoRoPassengerShip, ShipTypeRoRoPassengerShipHighSpeed:
		return multipliers{0.76, 0.92, 1.14, 1.30}, unbounded, nil
	case ShipTypeCruisePassengerShip:
		return multipliers{0.87, 0.95, 1.06, 1.16}, unbounded, nil
	case ShipTypeUnknown:
		return multipliers{}, WeightClassification{}, fmt.Errorf("%w: %s", ErrUnsupportedShipType, shipType)
	default:
		return multipliers{}, WeightClassification{}, fmt.Errorf("%w: %s", ErrUnsupportedShipType, shipType)
	}
}
