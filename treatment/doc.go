// Package treatment holds the BMP performance registry: for each treatment flag
// (a token such as "BR" for bioretention) and pollutant, a Function mapping
// influent concentration to effluent concentration.
//
// Function variants:
//
//   - Identity        effluent equals influent
//   - Func            adapter for a plain func(float64) float64
//   - PercentRemoval  fractional removal bounded below by an irreducible floor
//   - FixedEffluent   constant effluent, never above influent
//   - Curve           piecewise-linear influent→effluent table
//
// A Registry is populated once (by hand or through the config package) and is
// read-only while a network is solved; lookups are safe for concurrent use.
package treatment
