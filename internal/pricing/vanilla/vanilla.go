// Package vanilla prices European FX options under the Garman-Kohlhagen
// form of Black-Scholes: spot carries the foreign rate the way a dividend
// yield is carried for equity options, and payoffs discount at the
// domestic rate.
package vanilla

import (
	"math"

	"fx-pricer/internal/errors"
	"fx-pricer/internal/models"
	"fx-pricer/internal/pricing/stats"
)

// Cuts holds the d1/d2 intermediates of the Black-Scholes formula. They
// are computed once per pricing call and shared with the barrier and
// Vanna-Volga components instead of being rederived there.
type Cuts struct {
	D1         float64
	D2         float64
	SigmaRootT float64
}

// Validate checks the market parameters and strike ahead of any
// computation. Pricing is undefined at T=0 and sigma=0, so both are
// rejected rather than special-cased.
func Validate(m models.MarketParameters, strike float64) error {
	if m.Spot <= 0 {
		return errors.NewInvalidInputError("spot", m.Spot, "must be positive")
	}
	if strike <= 0 {
		return errors.NewInvalidInputError("strike", strike, "must be positive")
	}
	if m.Volatility <= 0 {
		return errors.NewInvalidInputError("volatility", m.Volatility, "must be positive")
	}
	if m.TimeToMaturity <= 0 {
		return errors.NewInvalidInputError("time_to_maturity", m.TimeToMaturity, "must be positive")
	}
	return nil
}

// CutsFor computes d1/d2 for the given market and strike. Inputs must
// already be validated.
func CutsFor(m models.MarketParameters, strike float64) Cuts {
	srt := m.Volatility * math.Sqrt(m.TimeToMaturity)
	d1 := (math.Log(m.Spot/strike) +
		(m.DomesticRate-m.ForeignRate+0.5*m.Volatility*m.Volatility)*m.TimeToMaturity) / srt
	return Cuts{
		D1:         d1,
		D2:         d1 - srt,
		SigmaRootT: srt,
	}
}

// DomesticDF returns the domestic discount factor e^(-rd*T).
func DomesticDF(m models.MarketParameters) float64 {
	return math.Exp(-m.DomesticRate * m.TimeToMaturity)
}

// ForeignDF returns the foreign discount factor e^(-rf*T).
func ForeignDF(m models.MarketParameters) float64 {
	return math.Exp(-m.ForeignRate * m.TimeToMaturity)
}

// Price returns the flat-volatility price of a European call or put.
func Price(m models.MarketParameters, strike float64, right models.OptionRight) (float64, error) {
	if err := Validate(m, strike); err != nil {
		return 0, err
	}
	c := CutsFor(m, strike)
	df, ff := DomesticDF(m), ForeignDF(m)

	switch right {
	case models.Call:
		return m.Spot*ff*stats.CDF(c.D1) - strike*df*stats.CDF(c.D2), nil
	case models.Put:
		return strike*df*stats.CDF(-c.D2) - m.Spot*ff*stats.CDF(-c.D1), nil
	}
	return 0, errors.NewInvalidOptionTypeError("right", string(right))
}

// Delta is the price sensitivity to spot.
func Delta(m models.MarketParameters, strike float64, right models.OptionRight) float64 {
	c := CutsFor(m, strike)
	if right == models.Put {
		return -ForeignDF(m) * stats.CDF(-c.D1)
	}
	return ForeignDF(m) * stats.CDF(c.D1)
}

// Vega is the price sensitivity to volatility. Same for calls and puts.
func Vega(m models.MarketParameters, strike float64) float64 {
	c := CutsFor(m, strike)
	return m.Spot * ForeignDF(m) * stats.PDF(c.D1) * math.Sqrt(m.TimeToMaturity)
}

// Vanna is the sensitivity of delta to volatility.
func Vanna(m models.MarketParameters, strike float64) float64 {
	c := CutsFor(m, strike)
	return -ForeignDF(m) * stats.PDF(c.D1) * c.D2 / m.Volatility
}

// Volga is the second-order sensitivity to volatility.
func Volga(m models.MarketParameters, strike float64) float64 {
	c := CutsFor(m, strike)
	return Vega(m, strike) * c.D1 * c.D2 / m.Volatility
}
