package treatment

import (
	"fmt"
	"math"
	"sort"
)

// Function maps an influent concentration to an effluent concentration.
type Function interface {
	Reduce(concIn float64) float64
}

// Identity passes influent through unchanged.
type Identity struct{}

// Reduce implements Function.
func (Identity) Reduce(concIn float64) float64 { return concIn }

// Func adapts an ordinary function to Function.
type Func func(concIn float64) float64

// Reduce implements Function.
func (f Func) Reduce(concIn float64) float64 { return f(concIn) }

// PercentRemoval removes Percent of the influent concentration, but never
// below Floor (the irreducible concentration). Influent already below Floor
// passes through.
type PercentRemoval struct {
	Percent float64 // 0..100
	Floor   float64
}

// Reduce implements Function.
func (p PercentRemoval) Reduce(concIn float64) float64 {
	return math.Max(concIn*(1-p.Percent/100), math.Min(concIn, p.Floor))
}

// FixedEffluent discharges Conc, or the influent if it is cleaner.
type FixedEffluent struct {
	Conc float64
}

// Reduce implements Function.
func (f FixedEffluent) Reduce(concIn float64) float64 {
	return math.Min(concIn, f.Conc)
}

// Point is one influent→effluent pair of a performance Curve.
type Point struct {
	In, Eff float64
}

// Curve interpolates effluent linearly between Points sorted by In. Influent
// outside the table is clamped to the end points; the result never exceeds
// the influent.
type Curve struct {
	Points []Point
}

// NewCurve sorts points by influent and validates them.
//
// Errors: ErrInvalidFunction when no point is given or two points share an
// influent value.
func NewCurve(points ...Point) (Curve, error) {
	if len(points) == 0 {
		return Curve{}, fmt.Errorf("%w: curve needs at least one point", ErrInvalidFunction)
	}
	ps := append([]Point(nil), points...)
	sort.Slice(ps, func(i, j int) bool { return ps[i].In < ps[j].In })
	for i := 1; i < len(ps); i++ {
		if ps[i].In == ps[i-1].In {
			return Curve{}, fmt.Errorf("%w: duplicate curve influent %g", ErrInvalidFunction, ps[i].In)
		}
	}

	return Curve{Points: ps}, nil
}

// Reduce implements Function.
func (c Curve) Reduce(concIn float64) float64 {
	n := len(c.Points)
	if n == 0 {
		return concIn
	}

	var eff float64
	switch {
	case concIn <= c.Points[0].In:
		eff = c.Points[0].Eff
	case concIn >= c.Points[n-1].In:
		eff = c.Points[n-1].Eff
	default:
		// first point with In > concIn; i is in [1, n-1]
		i := sort.Search(n, func(k int) bool { return c.Points[k].In > concIn })
		a, b := c.Points[i-1], c.Points[i]
		eff = a.Eff + (b.Eff-a.Eff)*(concIn-a.In)/(b.In-a.In)
	}

	return math.Min(eff, concIn)
}
