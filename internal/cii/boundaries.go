package cii

import "fmt"

// ShipBoundaries derives the four rating thresholds for ship in year by
// scaling requiredIntensity with the ship type's dd-vector multipliers.
// Gas and LNG carriers select their sub-table by deadweight tonnage.
func ShipBoundaries(ship Ship, requiredIntensity float64, year int) (BoundarySet, error) {
	if err := ValidateTonnage(ship.Type, ship.DeadweightTonnage, ship.GrossTonnage); err != nil {
		return BoundarySet{}, err
	}
	if year < FirstYear || year > LastYear {
		return BoundarySet{}, fmt.Errorf("%w: %d is outside %d-%d", ErrUnsupportedYear, year, FirstYear, LastYear)
	}

	m, wc, err := boundaryMultipliers(ship.Type, ship.DeadweightTonnage)
	if err != nil {
		return BoundarySet{}, err
	}
	unit, err := CapacityUnitFor(ship.Type)
	if err != nil {
		return BoundarySet{}, err
	}

	return BoundarySet{
		ShipType:             ship.Type,
		WeightClassification: wc,
		CapacityUnit:         unit,
		Values:               m.apply(requiredIntensity),
		Year:                 year,
	}, nil
}
