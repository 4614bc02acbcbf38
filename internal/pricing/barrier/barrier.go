// Package barrier prices single-barrier FX options with the rebate-free
// Reiner-Rubinstein closed forms. The knock-in side is priced directly;
// the knock-out side derives from in-out parity
// (knockIn + knockOut = vanilla at matching strike), which keeps a single
// set of formula branches instead of eight near-duplicates.
package barrier

import (
	"math"

	"fx-pricer/internal/errors"
	"fx-pricer/internal/models"
	"fx-pricer/internal/pricing/stats"
	"fx-pricer/internal/pricing/vanilla"
)

// Validate checks the barrier spec on top of the vanilla parameter
// checks. A barrier at spot is degenerate: the contract is knocked the
// instant it is evaluated.
func Validate(m models.MarketParameters, contract models.ContractSpec) error {
	if err := vanilla.Validate(m, contract.Strike); err != nil {
		return err
	}
	b := contract.Barrier
	if b == nil {
		return errors.NewInvalidInputError("barrier", 0, "contract carries no barrier spec")
	}
	if b.Level <= 0 {
		return errors.NewInvalidInputError("barrier", b.Level, "must be positive")
	}
	if b.Level == m.Spot {
		return errors.NewInvalidInputError("barrier", b.Level, "must differ from spot")
	}
	if _, ok := models.ParseBarrierDirection(string(b.Direction)); !ok {
		return errors.NewInvalidOptionTypeError("direction", string(b.Direction))
	}
	if _, ok := models.ParseBarrierAction(string(b.Action)); !ok {
		return errors.NewInvalidOptionTypeError("action", string(b.Action))
	}
	if _, ok := models.ParseOptionRight(string(contract.Right)); !ok {
		return errors.NewInvalidOptionTypeError("right", string(contract.Right))
	}
	return nil
}

// breached reports whether spot already sits beyond the barrier.
func breached(m models.MarketParameters, b models.BarrierSpec) bool {
	if b.Direction == models.BarrierUp {
		return m.Spot >= b.Level
	}
	return m.Spot <= b.Level
}

// Price returns the barrier-adjusted price of the contract.
func Price(m models.MarketParameters, contract models.ContractSpec) (float64, error) {
	if err := Validate(m, contract); err != nil {
		return 0, err
	}
	b := *contract.Barrier

	plain, err := vanilla.Price(m, contract.Strike, contract.Right)
	if err != nil {
		return 0, err
	}

	// A breached barrier needs no formula: the out leg is dead, the in
	// leg has already become the vanilla contract.
	if breached(m, b) {
		if b.Action == models.KnockOut {
			return 0, nil
		}
		return plain, nil
	}

	in := knockIn(m, contract.Strike, contract.Right, b)
	if b.Action == models.KnockIn {
		return math.Max(0, in), nil
	}
	return math.Max(0, plain-in), nil
}

// terms carries the shared pieces of the Reiner-Rubinstein formulas.
type terms struct {
	m      models.MarketParameters
	strike float64
	level  float64
	srt    float64
	mu     float64
	phi    float64 // +1 call, -1 put
	eta    float64 // +1 down barrier, -1 up barrier
	df     float64 // domestic discount factor
	ff     float64 // foreign discount factor
}

func newTerms(m models.MarketParameters, strike float64, right models.OptionRight, b models.BarrierSpec) terms {
	t := terms{
		m:      m,
		strike: strike,
		level:  b.Level,
		srt:    m.Volatility * math.Sqrt(m.TimeToMaturity),
		mu:     (m.DomesticRate - m.ForeignRate - 0.5*m.Volatility*m.Volatility) / (m.Volatility * m.Volatility),
		phi:    1,
		eta:    1,
		df:     vanilla.DomesticDF(m),
		ff:     vanilla.ForeignDF(m),
	}
	if right == models.Put {
		t.phi = -1
	}
	if b.Direction == models.BarrierUp {
		t.eta = -1
	}
	return t
}

// pair evaluates the common two-Phi structure
// phi*S*ff*(B/S)^(2mu+2)*CDF(sign*d) - phi*K*df*(B/S)^(2mu)*CDF(sign*(d-srt))
// with reflect=false dropping the (B/S) powers.
func (t terms) pair(d, sign float64, reflect bool) float64 {
	spotPow, strikePow := 1.0, 1.0
	if reflect {
		ratio := t.level / t.m.Spot
		spotPow = math.Pow(ratio, 2*(t.mu+1))
		strikePow = math.Pow(ratio, 2*t.mu)
	}
	return t.phi*t.m.Spot*t.ff*spotPow*stats.CDF(sign*d) -
		t.phi*t.strike*t.df*strikePow*stats.CDF(sign*(d-t.srt))
}

func (t terms) termA() float64 {
	x1 := math.Log(t.m.Spot/t.strike)/t.srt + (1+t.mu)*t.srt
	return t.pair(x1, t.phi, false)
}

func (t terms) termB() float64 {
	x2 := math.Log(t.m.Spot/t.level)/t.srt + (1+t.mu)*t.srt
	return t.pair(x2, t.phi, false)
}

func (t terms) termC() float64 {
	y1 := math.Log(t.level*t.level/(t.m.Spot*t.strike))/t.srt + (1+t.mu)*t.srt
	return t.pair(y1, t.eta, true)
}

func (t terms) termD() float64 {
	y2 := math.Log(t.level/t.m.Spot)/t.srt + (1+t.mu)*t.srt
	return t.pair(y2, t.eta, true)
}

// knockIn prices the knock-in contract closed-form. The branch on
// strike-vs-barrier distinguishes the simple single-term cases from the
// compound ones, per the standard formula catalogue.
func knockIn(m models.MarketParameters, strike float64, right models.OptionRight, b models.BarrierSpec) float64 {
	t := newTerms(m, strike, right, b)
	strikeAbove := strike > b.Level

	switch b.Direction {
	case models.BarrierDown:
		if right == models.Call {
			if strikeAbove {
				return t.termC()
			}
			return t.termA() - t.termB() + t.termD()
		}
		if strikeAbove {
			return t.termB() - t.termC() + t.termD()
		}
		return t.termA()
	case models.BarrierUp:
		if right == models.Call {
			if strikeAbove {
				return t.termA()
			}
			return t.termB() - t.termC() + t.termD()
		}
		if strikeAbove {
			return t.termA() - t.termB() + t.termD()
		}
		return t.termC()
	}
	return 0
}

// SurvivalProbability returns the risk-neutral probability that the
// barrier is never touched before maturity, from the same reflection
// distribution the pricing formulas use. A breached barrier has survival
// zero.
func SurvivalProbability(m models.MarketParameters, b models.BarrierSpec) (float64, error) {
	if m.Spot <= 0 {
		return 0, errors.NewInvalidInputError("spot", m.Spot, "must be positive")
	}
	if m.Volatility <= 0 {
		return 0, errors.NewInvalidInputError("volatility", m.Volatility, "must be positive")
	}
	if m.TimeToMaturity <= 0 {
		return 0, errors.NewInvalidInputError("time_to_maturity", m.TimeToMaturity, "must be positive")
	}
	if b.Level <= 0 {
		return 0, errors.NewInvalidInputError("barrier", b.Level, "must be positive")
	}
	if breached(m, b) {
		return 0, nil
	}

	srt := m.Volatility * math.Sqrt(m.TimeToMaturity)
	nu := m.DomesticRate - m.ForeignRate - 0.5*m.Volatility*m.Volatility
	nuT := nu * m.TimeToMaturity
	logRatio := math.Log(b.Level / m.Spot) // negative for down barriers
	power := math.Pow(b.Level/m.Spot, 2*nu/(m.Volatility*m.Volatility))

	var p float64
	if b.Direction == models.BarrierDown {
		p = stats.CDF((-logRatio+nuT)/srt) - power*stats.CDF((logRatio+nuT)/srt)
	} else {
		p = stats.CDF((logRatio-nuT)/srt) - power*stats.CDF((-logRatio-nuT)/srt)
	}
	return math.Min(1, math.Max(0, p)), nil
}
