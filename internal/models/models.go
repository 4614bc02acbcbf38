// Package models provides the domain models for FX option pricing.
package models

// OptionRight represents the right conveyed by an option contract.
type OptionRight string

const (
	Call OptionRight = "CALL"
	Put  OptionRight = "PUT"
)

// ParseOptionRight maps a token to an OptionRight. The second return value
// is false for unrecognized tokens.
func ParseOptionRight(s string) (OptionRight, bool) {
	switch OptionRight(s) {
	case Call, Put:
		return OptionRight(s), true
	}
	return "", false
}

// BarrierDirection represents the side of spot a barrier sits on.
type BarrierDirection string

const (
	BarrierUp   BarrierDirection = "UP"
	BarrierDown BarrierDirection = "DOWN"
)

// ParseBarrierDirection maps a token to a BarrierDirection.
func ParseBarrierDirection(s string) (BarrierDirection, bool) {
	switch BarrierDirection(s) {
	case BarrierUp, BarrierDown:
		return BarrierDirection(s), true
	}
	return "", false
}

// BarrierAction represents what a barrier touch does to the contract.
type BarrierAction string

const (
	KnockIn  BarrierAction = "IN"
	KnockOut BarrierAction = "OUT"
)

// ParseBarrierAction maps a token to a BarrierAction.
func ParseBarrierAction(s string) (BarrierAction, bool) {
	switch BarrierAction(s) {
	case KnockIn, KnockOut:
		return BarrierAction(s), true
	}
	return "", false
}

// MarketParameters holds the market state a pricing call is evaluated
// against. Rates are annualized continuously-compounded; time to maturity
// is in years. Values are never mutated after construction; every pricing
// call is a pure function of the parameters it receives.
type MarketParameters struct {
	Spot           float64
	DomesticRate   float64
	ForeignRate    float64
	Volatility     float64
	TimeToMaturity float64
}

// BarrierSpec describes a knock-in/knock-out barrier attached to a
// contract. For up barriers the level should sit above spot at evaluation
// time, for down barriers below; the engine does not enforce this modeling
// precondition, it only rejects degenerate levels (non-positive or equal
// to spot).
type BarrierSpec struct {
	Level     float64
	Direction BarrierDirection
	Action    BarrierAction
}

// ContractSpec describes the option contract to price. Barrier is nil for
// plain vanilla contracts.
type ContractSpec struct {
	Strike  float64
	Right   OptionRight
	Barrier *BarrierSpec
}

// SmileQuotes carries the three market volatility quotes of the standard
// FX smile (at-the-money, 25-delta risk reversal, 25-delta butterfly) and
// their conventional pivot strikes.
type SmileQuotes struct {
	ATMVol       float64
	RiskReversal float64
	Butterfly    float64

	PutStrike  float64 // 25-delta put pivot
	ATMStrike  float64
	CallStrike float64 // 25-delta call pivot
}

// PivotVols returns the implied volatilities at the three pivot strikes,
// in (put, atm, call) order, per the market quoting convention
// sigma_25x = atm + bf +/- rr/2.
func (q SmileQuotes) PivotVols() (put, atm, call float64) {
	put = q.ATMVol + q.Butterfly - q.RiskReversal/2
	atm = q.ATMVol
	call = q.ATMVol + q.Butterfly + q.RiskReversal/2
	return put, atm, call
}

// PricingResult holds the computed price and its decomposition.
type PricingResult struct {
	Price float64 `json:"price"`

	// BasePrice is the flat-volatility vanilla price at the contract
	// strike. BarrierAdjustment is the (non-positive for knock-outs)
	// difference the barrier introduces relative to the vanilla price.
	// SmileCorrection is the Vanna-Volga term; zero when no quotes were
	// supplied.
	BasePrice         float64 `json:"base_price"`
	BarrierAdjustment float64 `json:"barrier_adjustment"`
	SmileCorrection   float64 `json:"smile_correction"`
}
