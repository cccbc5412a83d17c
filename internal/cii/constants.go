package cii

// Regulatory window covered by the reduction factor table (MEPC.338(76)).
const (
	// FirstYear is the reference year; its reduction factor is zero.
	FirstYear = 2019

	// LastYear is the last year with a legislated reduction factor.
	LastYear = 2030

	// YearCount is the number of years in the window.
	YearCount = LastYear - FirstYear + 1
)

// Capacity caps and floors from MEPC.353(78) table 1.
const (
	// BulkCarrierCapacityCap limits bulk carrier capacity to 279,000 DWT.
	BulkCarrierCapacityCap = 279_000.0

	// LNGCarrierCapacityFloor raises LNG carrier capacity to at least 65,000 DWT.
	LNGCarrierCapacityFloor = 65_000.0

	// RoRoVehicleCarrierCapacityCap is the DWT at or above which a vehicle
	// carrier's capacity is capped at 57,700; below it gross tonnage is used.
	RoRoVehicleCarrierCapacityCap = 57_700.0
)

// Tier thresholds selecting reference coefficient rows (MEPC.353(78)).
const (
	gasCarrierCoefficientTier       = 65_000.0
	generalCargoCoefficientTier     = 20_000.0
	lngCarrierCoefficientUpperTier  = 100_000.0
	lngCarrierCoefficientLowerTier  = 65_000.0
	roRoVehicleCoefficientUpperTier = 57_700.0
	roRoVehicleCoefficientLowerTier = 30_000.0
)

// Deadweight tiers selecting dd-vector sub-tables (MEPC.354(78)).
const (
	// GasCarrierBoundaryTier splits gas carriers into <65,000 and >=65,000 DWT tables.
	GasCarrierBoundaryTier = 65_000.0

	// LNGCarrierBoundaryTier splits LNG carriers into <100,000 and >=100,000 DWT tables.
	LNGCarrierBoundaryTier = 100_000.0
)
