// Package vannavolga applies the market-standard Vanna-Volga smile
// correction to a flat-volatility price. The three pivot instruments
// (25-delta put, ATM, 25-delta call) are re-priced at their market vols;
// the resulting smile cost is redistributed onto the target instrument
// with weights that match its Vega, Vanna and Volga against the pivots.
package vannavolga

import (
	"gonum.org/v1/gonum/mat"

	"fx-pricer/internal/errors"
	"fx-pricer/internal/models"
	"fx-pricer/internal/pricing/barrier"
	"fx-pricer/internal/pricing/vanilla"
)

// Validate checks the smile quotes ahead of any computation.
func Validate(m models.MarketParameters, contract models.ContractSpec, quotes models.SmileQuotes) error {
	if err := vanilla.Validate(m, contract.Strike); err != nil {
		return err
	}
	putVol, atmVol, callVol := quotes.PivotVols()
	for _, v := range []struct {
		field string
		value float64
	}{
		{"pivot_put_vol", putVol},
		{"pivot_atm_vol", atmVol},
		{"pivot_call_vol", callVol},
	} {
		if v.value <= 0 {
			return errors.NewInvalidInputError(v.field, v.value, "must be positive")
		}
	}
	for _, s := range []struct {
		field string
		value float64
	}{
		{"put_strike", quotes.PutStrike},
		{"atm_strike", quotes.ATMStrike},
		{"call_strike", quotes.CallStrike},
	} {
		if s.value <= 0 {
			return errors.NewInvalidInputError(s.field, s.value, "must be positive")
		}
	}
	return nil
}

// Weights solves the 3x3 system matching the target's Vega/Vanna/Volga to
// the pivot instruments', all evaluated at the flat volatility. Returns
// SingularSystemError when the pivots do not span the sensitivity space
// (degenerate strikes).
func Weights(m models.MarketParameters, targetStrike float64, quotes models.SmileQuotes) ([3]float64, error) {
	pivots := [3]float64{quotes.PutStrike, quotes.ATMStrike, quotes.CallStrike}

	sys := mat.NewDense(3, 3, nil)
	for i, k := range pivots {
		sys.Set(0, i, vanilla.Vega(m, k))
		sys.Set(1, i, vanilla.Vanna(m, k))
		sys.Set(2, i, vanilla.Volga(m, k))
	}
	target := mat.NewVecDense(3, []float64{
		vanilla.Vega(m, targetStrike),
		vanilla.Vanna(m, targetStrike),
		vanilla.Volga(m, targetStrike),
	})

	var w mat.VecDense
	if err := w.SolveVec(sys, target); err != nil {
		return [3]float64{}, errors.NewSingularSystemError(pivots[0], pivots[1], pivots[2])
	}
	return [3]float64{w.AtVec(0), w.AtVec(1), w.AtVec(2)}, nil
}

// Correction returns the Vanna-Volga price correction for the contract.
// For barrier contracts the correction is damped by the no-touch survival
// probability: once knocked out the contract carries no smile risk.
func Correction(m models.MarketParameters, contract models.ContractSpec, quotes models.SmileQuotes) (float64, error) {
	if err := Validate(m, contract, quotes); err != nil {
		return 0, err
	}

	w, err := Weights(m, contract.Strike, quotes)
	if err != nil {
		return 0, err
	}

	putVol, atmVol, callVol := quotes.PivotVols()
	pivots := [3]struct {
		strike float64
		vol    float64
		right  models.OptionRight
	}{
		{quotes.PutStrike, putVol, models.Put},
		{quotes.ATMStrike, atmVol, models.Call},
		{quotes.CallStrike, callVol, models.Call},
	}

	var correction float64
	for i, p := range pivots {
		smileMkt := m
		smileMkt.Volatility = p.vol
		marketPrice, err := vanilla.Price(smileMkt, p.strike, p.right)
		if err != nil {
			return 0, err
		}
		flatPrice, err := vanilla.Price(m, p.strike, p.right)
		if err != nil {
			return 0, err
		}
		correction += w[i] * (marketPrice - flatPrice)
	}

	if contract.Barrier != nil {
		survival, err := barrier.SurvivalProbability(m, *contract.Barrier)
		if err != nil {
			return 0, err
		}
		correction *= survival
	}
	return correction, nil
}

// Adjust returns the smile-consistent price: the flat-volatility base
// price plus the Vanna-Volga correction.
func Adjust(m models.MarketParameters, contract models.ContractSpec, quotes models.SmileQuotes, basePrice float64) (float64, error) {
	correction, err := Correction(m, contract, quotes)
	if err != nil {
		return 0, err
	}
	return basePrice + correction, nil
}
