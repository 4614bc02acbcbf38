// Package pricing is the single entry point of the FX option pricing
// engine. It dispatches a pricing request to the vanilla, barrier and
// Vanna-Volga components and returns the decomposed result. Every call is
// a pure function of its inputs and safe to run concurrently.
package pricing

import (
	"fx-pricer/internal/errors"
	"fx-pricer/internal/models"
	"fx-pricer/internal/pricing/barrier"
	"fx-pricer/internal/pricing/vanilla"
	"fx-pricer/internal/pricing/vannavolga"
)

// Request bundles the inputs of one pricing call. Quotes is nil when no
// smile adjustment is wanted.
type Request struct {
	Market   models.MarketParameters
	Contract models.ContractSpec
	Quotes   *models.SmileQuotes
}

// Price values the contract under the market parameters. The flat-vol
// vanilla price is always computed; a BarrierSpec swaps the headline
// price for the barrier-adjusted one; SmileQuotes add the Vanna-Volga
// correction on top.
func Price(req Request) (models.PricingResult, error) {
	var res models.PricingResult

	if _, ok := models.ParseOptionRight(string(req.Contract.Right)); !ok {
		return res, errors.NewInvalidOptionTypeError("right", string(req.Contract.Right))
	}

	base, err := vanilla.Price(req.Market, req.Contract.Strike, req.Contract.Right)
	if err != nil {
		return res, err
	}
	res.BasePrice = base
	res.Price = base

	if req.Contract.Barrier != nil {
		adjusted, err := barrier.Price(req.Market, req.Contract)
		if err != nil {
			return res, err
		}
		res.BarrierAdjustment = adjusted - base
		res.Price = adjusted
	}

	if req.Quotes != nil {
		correction, err := vannavolga.Correction(req.Market, req.Contract, *req.Quotes)
		if err != nil {
			return res, err
		}
		res.SmileCorrection = correction
		res.Price += correction
	}

	return res, nil
}
