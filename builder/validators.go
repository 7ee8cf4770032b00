// Package builder contains the size validation shared by constructors.
// It returns a formatted error via builderErrorf on violation.
package builder

// validateMin ensures got ≥ min, returning ErrTooFewNodes otherwise.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return builderErrorf(method, "%s=%d < min=%d: %w", param, got, min, ErrTooFewNodes)
	}

	return nil
}
