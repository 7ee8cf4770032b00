package export

import (
	"math"
	"strconv"
)

// SigFigs rounds x to n significant figures. n <= 0 returns x unchanged; zero,
// NaN and infinities are returned as is.
func SigFigs(x float64, n int) float64 {
	if n <= 0 || x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', n, 64), 64)
	if err != nil {
		return x
	}

	return v
}
