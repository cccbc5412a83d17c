package carbon

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrNegativeValue indicates a negative CO2 mass.
	ErrNegativeValue = constError("negative CO2 mass")

	// ErrOverflow indicates a non-finite CO2 mass.
	ErrOverflow = constError("calculation overflow")
)
