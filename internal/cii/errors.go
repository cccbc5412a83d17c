package cii

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the rating pipeline. Call sites wrap them with
// detail, so compare with errors.Is.
var (
	// ErrInvalidInput indicates a missing, non-positive or non-finite numeric argument.
	ErrInvalidInput = constError("invalid input")

	// ErrInvalidTonnage indicates the tonnage basis required by the ship type is missing or non-positive.
	ErrInvalidTonnage = constError("invalid tonnage")

	// ErrUnsupportedShipType indicates an UNKNOWN or unrecognized ship type.
	ErrUnsupportedShipType = constError("unsupported ship type")

	// ErrUnsupportedFuelType indicates a fuel type with no conversion factors.
	ErrUnsupportedFuelType = constError("unsupported fuel type")

	// ErrUnsupportedYear indicates a year outside the 2019-2030 regulatory window.
	ErrUnsupportedYear = constError("unsupported year")
)
