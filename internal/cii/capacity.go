package cii

import (
	"fmt"
	"math"
)

// CapacityUnitFor returns the tonnage basis that the ship type's capacity
// and rating boundaries are expressed in.
func CapacityUnitFor(shipType ShipType) (CapacityUnit, error) {
	switch shipType {
	case ShipTypeBulkCarrier,
		ShipTypeGasCarrier,
		ShipTypeTanker,
		ShipTypeContainerShip,
		ShipTypeGeneralCargoShip,
		ShipTypeRefrigeratedCargoCarrier,
		ShipTypeCombinationCarrier,
		ShipTypeLNGCarrier:
		return CapacityUnitDWT, nil
	case ShipTypeRoRoVehicleCarrier,
		ShipTypeRoRoCargoShip,
		ShipTypeRoRoPassengerShip,
		ShipTypeRoRoPassengerShipHighSpeed,
		ShipTypeCruisePassengerShip:
		return CapacityUnitGT, nil
	case ShipTypeUnknown:
		return CapacityUnitUnknown, fmt.Errorf("%w: %s", ErrUnsupportedShipType, shipType)
	default:
		return CapacityUnitUnknown, fmt.Errorf("%w: %s", ErrUnsupportedShipType, shipType)
	}
}

// ValidateTonnage checks that the tonnage basis required by shipType is
// present and positive. It is the single validation rule shared by capacity
// and boundary derivation.
func ValidateTonnage(shipType ShipType, dwt, gt float64) error {
	unit, err := CapacityUnitFor(shipType)
	if err != nil {
		return err
	}
	switch unit {
	case CapacityUnitDWT:
		if !isPositive(dwt) {
			return fmt.Errorf("%w: deadweight tonnage must be greater than 0 for %s, got %v",
				ErrInvalidTonnage, shipType, dwt)
		}
	case CapacityUnitGT:
		if !isPositive(gt) {
			return fmt.Errorf("%w: gross tonnage must be greater than 0 for %s, got %v",
				ErrInvalidTonnage, shipType, gt)
		}
	case CapacityUnitUnknown:
		return fmt.Errorf("%w: %s", ErrUnsupportedShipType, shipType)
	}
	return nil
}

// Capacity derives the regulatory capacity of a ship from its type and
// tonnage, applying the bulk carrier cap, LNG carrier floor and the
// vehicle carrier basis switch.
func Capacity(shipType ShipType, dwt, gt float64) (float64, error) {
	if err := ValidateTonnage(shipType, dwt, gt); err != nil {
		return 0, err
	}

	switch shipType {
	case ShipTypeBulkCarrier:
		return math.Min(dwt, BulkCarrierCapacityCap), nil
	case ShipTypeGasCarrier,
		ShipTypeTanker,
		ShipTypeContainerShip,
		ShipTypeGeneralCargoShip,
		ShipTypeRefrigeratedCargoCarrier,
		ShipTypeCombinationCarrier:
		return dwt, nil
	case ShipTypeLNGCarrier:
		return math.Max(dwt, LNGCarrierCapacityFloor), nil
	case ShipTypeRoRoVehicleCarrier:
		if dwt >= RoRoVehicleCarrierCapacityCap {
			return RoRoVehicleCarrierCapacityCap, nil
		}
		return gt, nil
	case ShipTypeRoRoCargoShip,
		ShipTypeRoRoPassengerShip,
		ShipTypeRoRoPassengerShipHighSpeed,
		ShipTypeCruisePassengerShip:
		return gt, nil
	case ShipTypeUnknown:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedShipType, shipType)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedShipType, shipType)
	}
}

// ShipCapacity is Capacity for a Ship value.
func ShipCapacity(ship Ship) (float64, error) {
	return Capacity(ship.Type, ship.DeadweightTonnage, ship.GrossTonnage)
}

// isPositive reports whether v is a finite number greater than zero.
// NaN fails every comparison, so it is rejected too.
func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
