package cii

import "fmt"

// TransportWork returns capacity multiplied by the distance travelled in nautical miles.
func TransportWork(capacity, distanceNM float64) (float64, error) {
	if !isPositive(capacity) {
		return 0, fmt.Errorf("%w: capacity must be a positive value, got %v", ErrInvalidInput, capacity)
	}
	if !isPositive(distanceNM) {
		return 0, fmt.Errorf("%w: distance travelled must be a positive value, got %v", ErrInvalidInput, distanceNM)
	}
	return capacity * distanceNM, nil
}
