package solver

// safeDivide returns n/d, or 0 when d is 0.
func safeDivide(n, d float64) float64 {
	if d == 0 {
		return 0
	}

	return n / d
}
