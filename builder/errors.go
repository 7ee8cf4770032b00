package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates that a size parameter (n, rows, cols, depth, branching)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a seeded
// RNG (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the network could not be assembled or routed.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
