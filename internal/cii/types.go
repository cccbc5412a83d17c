// Package cii computes IMO Carbon Intensity Indicator ratings.
//
// Given a ship's type, tonnage, fuel consumption and distance sailed in one
// target year, it derives the attained carbon intensity, the required
// intensity for every year of the 2019-2030 regulatory window and the A-E
// rating for each year, following MEPC.352(78), MEPC.353(78) and
// MEPC.354(78).
//
// All functions are pure: they read only immutable package tables and
// never log or perform I/O, so they are safe for concurrent use.
package cii

import (
	"fmt"
	"strings"
)

// ShipType is the regulatory ship category used to select capacity basis,
// reference coefficients and rating boundaries.
type ShipType int

const (
	// ShipTypeUnknown is the zero value and is rejected by every calculation.
	ShipTypeUnknown ShipType = iota
	ShipTypeBulkCarrier
	ShipTypeGasCarrier
	ShipTypeTanker
	ShipTypeContainerShip
	ShipTypeGeneralCargoShip
	ShipTypeRefrigeratedCargoCarrier
	ShipTypeCombinationCarrier
	ShipTypeLNGCarrier
	ShipTypeRoRoVehicleCarrier
	ShipTypeRoRoCargoShip
	ShipTypeRoRoPassengerShip
	// ShipTypeRoRoPassengerShipHighSpeed is a ro-ro passenger ship built to SOLAS chapter X.
	ShipTypeRoRoPassengerShipHighSpeed
	ShipTypeCruisePassengerShip
)

//nolint:gochecknoglobals // Immutable name table.
var shipTypeNames = map[ShipType]string{
	ShipTypeUnknown:                    "unknown",
	ShipTypeBulkCarrier:                "bulk_carrier",
	ShipTypeGasCarrier:                 "gas_carrier",
	ShipTypeTanker:                     "tanker",
	ShipTypeContainerShip:              "container_ship",
	ShipTypeGeneralCargoShip:           "general_cargo_ship",
	ShipTypeRefrigeratedCargoCarrier:   "refrigerated_cargo_carrier",
	ShipTypeCombinationCarrier:         "combination_carrier",
	ShipTypeLNGCarrier:                 "lng_carrier",
	ShipTypeRoRoVehicleCarrier:         "roro_vehicle_carrier",
	ShipTypeRoRoCargoShip:              "roro_cargo_ship",
	ShipTypeRoRoPassengerShip:          "roro_passenger_ship",
	ShipTypeRoRoPassengerShipHighSpeed: "roro_passenger_ship_high_speed",
	ShipTypeCruisePassengerShip:        "cruise_passenger_ship",
}

// ShipTypes returns every supported ship type in declaration order.
func ShipTypes() []ShipType {
	return []ShipType{
		ShipTypeBulkCarrier,
		ShipTypeGasCarrier,
		ShipTypeTanker,
		ShipTypeContainerShip,
		ShipTypeGeneralCargoShip,
		ShipTypeRefrigeratedCargoCarrier,
		ShipTypeCombinationCarrier,
		ShipTypeLNGCarrier,
		ShipTypeRoRoVehicleCarrier,
		ShipTypeRoRoCargoShip,
		ShipTypeRoRoPassengerShip,
		ShipTypeRoRoPassengerShipHighSpeed,
		ShipTypeCruisePassengerShip,
	}
}

// String returns the snake_case name of the ship type.
func (s ShipType) String() string {
	if name, ok := shipTypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ShipType(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s ShipType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseShipType parses a ship type name. Matching is case-insensitive and
// treats '-' and ' ' like '_'. Unknown names return ErrUnsupportedShipType.
func ParseShipType(name string) (ShipType, error) {
	key := normalizeName(name)
	for st, n := range shipTypeNames {
		if st != ShipTypeUnknown && n == key {
			return st, nil
		}
	}
	return ShipTypeUnknown, fmt.Errorf("%w: %q", ErrUnsupportedShipType, name)
}

// FuelType identifies a fuel with regulatory CO2 conversion factors.
type FuelType int

const (
	// FuelTypeUnknown is the zero value and has no conversion factors.
	FuelTypeUnknown FuelType = iota
	FuelTypeDieselOrGasOil
	FuelTypeLightFuelOil
	FuelTypeHeavyFuelOil
	FuelTypeLPGPropane
	FuelTypeLPGButane
	FuelTypeEthane
	FuelTypeLNG
	FuelTypeMethanol
	FuelTypeEthanol
	// FuelTypeOther marks fuels outside the regulatory table; it has no conversion factors.
	FuelTypeOther
)

//nolint:gochecknoglobals // Immutable name table.
var fuelTypeNames = map[FuelType]string{
	FuelTypeUnknown:        "unknown",
	FuelTypeDieselOrGasOil: "diesel_or_gasoil",
	FuelTypeLightFuelOil:   "light_fuel_oil",
	FuelTypeHeavyFuelOil:   "heavy_fuel_oil",
	FuelTypeLPGPropane:     "lpg_propane",
	FuelTypeLPGButane:      "lpg_butane",
	FuelTypeEthane:         "ethane",
	FuelTypeLNG:            "lng",
	FuelTypeMethanol:       "methanol",
	FuelTypeEthanol:        "ethanol",
	FuelTypeOther:          "other",
}

// fuelTypeAliases maps common industry abbreviations to fuel types.
//
//nolint:gochecknoglobals // Immutable alias table.
var fuelTypeAliases = map[string]FuelType{
	"diesel":  FuelTypeDieselOrGasOil,
	"gasoil":  FuelTypeDieselOrGasOil,
	"mdo":     FuelTypeDieselOrGasOil,
	"mgo":     FuelTypeDieselOrGasOil,
	"lfo":     FuelTypeLightFuelOil,
	"hfo":     FuelTypeHeavyFuelOil,
	"propane": FuelTypeLPGPropane,
	"butane":  FuelTypeLPGButane,
}

// FuelTypes returns every fuel type that has conversion factors.
func FuelTypes() []FuelType {
	return []FuelType{
		FuelTypeDieselOrGasOil,
		FuelTypeLightFuelOil,
		FuelTypeHeavyFuelOil,
		FuelTypeLPGPropane,
		FuelTypeLPGButane,
		FuelTypeEthane,
		FuelTypeLNG,
		FuelTypeMethanol,
		FuelTypeEthanol,
	}
}

// String returns the snake_case name of the fuel type.
func (f FuelType) String() string {
	if name, ok := fuelTypeNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FuelType(%d)", int(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f FuelType) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseFuelType parses a fuel type name or abbreviation (diesel, mgo, hfo,
// lfo, ...). Names outside the table return ErrUnsupportedFuelType.
// "other" parses successfully but has no conversion factors.
func ParseFuelType(name string) (FuelType, error) {
	key := normalizeName(name)
	if ft, ok := fuelTypeAliases[key]; ok {
		return ft, nil
	}
	for ft, n := range fuelTypeNames {
		if ft != FuelTypeUnknown && n == key {
			return ft, nil
		}
	}
	return FuelTypeUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFuelType, name)
}

// CapacityUnit tags the tonnage basis a capacity or boundary set is expressed in.
type CapacityUnit int

const (
	CapacityUnitUnknown CapacityUnit = iota
	// CapacityUnitDWT is deadweight tonnage.
	CapacityUnitDWT
	// CapacityUnitGT is gross tonnage.
	CapacityUnitGT
)

// String returns "dwt", "gt" or "unknown".
func (u CapacityUnit) String() string {
	switch u {
	case CapacityUnitDWT:
		return "dwt"
	case CapacityUnitGT:
		return "gt"
	case CapacityUnitUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("CapacityUnit(%d)", int(u))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (u CapacityUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// Boundary is one of the four dd-vector thresholds that partition attained
// CII into five rating bands.
type Boundary int

const (
	BoundarySuperior Boundary = iota + 1
	BoundaryLower
	BoundaryUpper
	BoundaryInferior
)

// Boundaries returns the four boundaries in ascending threshold order.
func Boundaries() []Boundary {
	return []Boundary{BoundarySuperior, BoundaryLower, BoundaryUpper, BoundaryInferior}
}

// String returns the lowercase boundary name.
func (b Boundary) String() string {
	switch b {
	case BoundarySuperior:
		return "superior"
	case BoundaryLower:
		return "lower"
	case BoundaryUpper:
		return "upper"
	case BoundaryInferior:
		return "inferior"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// MarshalText implements encoding.TextMarshaler so boundaries can key JSON objects.
func (b Boundary) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Rating is the CII letter grade. A is best and E is worst; the numeric
// values are ordered so that a larger rating is a worse one.
type Rating int

const (
	// RatingUnknown is the zero value, used when no rating could be derived.
	RatingUnknown Rating = iota
	RatingA
	RatingB
	RatingC
	RatingD
	RatingE
)

// String returns the rating letter, or "unknown".
func (r Rating) String() string {
	switch r {
	case RatingA:
		return "A"
	case RatingB:
		return "B"
	case RatingC:
		return "C"
	case RatingD:
		return "D"
	case RatingE:
		return "E"
	case RatingUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Rating(%d)", int(r))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Worse reports whether r is a worse grade than other. RatingUnknown is
// never worse or better than anything.
func (r Rating) Worse(other Rating) bool {
	if r == RatingUnknown || other == RatingUnknown {
		return false
	}
	return r > other
}

// Compare returns -1 if r is better than other, +1 if it is worse and 0 when
// they are equal. As with Worse, RatingUnknown is incomparable and yields 0.
func (r Rating) Compare(other Rating) int {
	switch {
	case r == RatingUnknown || other == RatingUnknown:
		return 0
	case r < other:
		return -1
	case r > other:
		return 1
	default:
		return 0
	}
}

// Compliant reports whether the rating meets the required level (A, B or C).
func (r Rating) Compliant() bool {
	return r >= RatingA && r <= RatingC
}

// normalizeName lowercases s and folds '-' and ' ' into '_'.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}
