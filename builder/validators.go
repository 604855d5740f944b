// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel-wrapped error via builderErrorf
// when its precondition is violated.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "n=%d < min=%d", got, min)
	}
	return nil
}

// validateRange ensures lo ≥ min and hi ≥ lo.
func validateRange(method string, lo, hi, min int) error {
	if err := validateMin(method, lo, min); err != nil {
		return err
	}
	if hi < lo {
		return builderErrorf(method, ErrTooFewVertices, "empty vertex range [%d,%d]", lo, hi)
	}
	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}
	return nil
}
