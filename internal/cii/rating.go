package cii

// Rate classifies attained intensity against the boundary set.
// Comparisons are strict, so a value equal to a boundary lands in the
// band above it: attained == lower yields C, not B.
func Rate(boundaries BoundarySet, attained float64) Rating {
	switch {
	case attained < boundaries.Value(BoundarySuperior):
		return RatingA
	case attained < boundaries.Value(BoundaryLower):
		return RatingB
	case attained < boundaries.Value(BoundaryUpper):
		return RatingC
	case attained < boundaries.Value(BoundaryInferior):
		return RatingD
	default:
		return RatingE
	}
}
