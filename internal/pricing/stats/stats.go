// Package stats wraps the standard normal distribution functions used by
// every pricer. Pure and deterministic; gonum's UnitNormal keeps the CDF
// well inside the 1e-7 absolute accuracy the pricers assume.
package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// CDF returns the standard normal cumulative distribution at x.
func CDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// PDF returns the standard normal density at x.
func PDF(x float64) float64 {
	return distuv.UnitNormal.Prob(x)
}
