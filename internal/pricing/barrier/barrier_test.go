package barrier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fx-pricer/internal/errors"
	"fx-pricer/internal/models"
	"fx-pricer/internal/pricing/vanilla"
)

var refMarket = models.MarketParameters{
	Spot:           100,
	DomesticRate:   0.05,
	ForeignRate:    0.03,
	Volatility:     0.16,
	TimeToMaturity: 3,
}

func contract(strike float64, right models.OptionRight, level float64, dir models.BarrierDirection, action models.BarrierAction) models.ContractSpec {
	return models.ContractSpec{
		Strike: strike,
		Right:  right,
		Barrier: &models.BarrierSpec{
			Level:     level,
			Direction: dir,
			Action:    action,
		},
	}
}

func TestUpAndOutCallReferenceScenario(t *testing.T) {
	price, err := Price(refMarket, contract(90, models.Call, 150, models.BarrierUp, models.KnockOut))
	require.NoError(t, err)

	plain, err := vanilla.Price(refMarket, 90, models.Call)
	require.NoError(t, err)

	assert.Greater(t, price, 0.0)
	assert.Less(t, price, plain)
}

func TestInOutParity(t *testing.T) {
	cases := []struct {
		name  string
		right models.OptionRight
		level float64
		dir   models.BarrierDirection
	}{
		{"up call barrier far above strike", models.Call, 150, models.BarrierUp},
		{"up call barrier near strike", models.Call, 120, models.BarrierUp},
		{"up put", models.Put, 130, models.BarrierUp},
		{"down call", models.Call, 80, models.BarrierDown},
		{"down put barrier below strike", models.Put, 70, models.BarrierDown},
		{"down put barrier above strike", models.Put, 80, models.BarrierDown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			strike := 90.0
			if tc.name == "down put barrier above strike" {
				strike = 75.0
			}

			in, err := Price(refMarket, contract(strike, tc.right, tc.level, tc.dir, models.KnockIn))
			require.NoError(t, err)
			out, err := Price(refMarket, contract(strike, tc.right, tc.level, tc.dir, models.KnockOut))
			require.NoError(t, err)
			plain, err := vanilla.Price(refMarket, strike, tc.right)
			require.NoError(t, err)

			assert.InDelta(t, plain, in+out, 1e-6)
			assert.GreaterOrEqual(t, in, 0.0)
			assert.GreaterOrEqual(t, out, 0.0)
		})
	}
}

func TestBarrierBoundaryConvergence(t *testing.T) {
	plain, err := vanilla.Price(refMarket, 90, models.Call)
	require.NoError(t, err)

	// Far up barrier: knock-out converges to vanilla, knock-in to zero.
	out, err := Price(refMarket, contract(90, models.Call, 1e6, models.BarrierUp, models.KnockOut))
	require.NoError(t, err)
	assert.InDelta(t, plain, out, 1e-6)

	in, err := Price(refMarket, contract(90, models.Call, 1e6, models.BarrierUp, models.KnockIn))
	require.NoError(t, err)
	assert.InDelta(t, 0, in, 1e-6)

	// Far down barrier mirrors it.
	out, err = Price(refMarket, contract(90, models.Put, 1e-4, models.BarrierDown, models.KnockOut))
	require.NoError(t, err)
	plainPut, err := vanilla.Price(refMarket, 90, models.Put)
	require.NoError(t, err)
	assert.InDelta(t, plainPut, out, 1e-6)
}

func TestBreachedBarrierShortCircuit(t *testing.T) {
	plain, err := vanilla.Price(refMarket, 90, models.Call)
	require.NoError(t, err)

	// Up barrier already below spot: out legs are dead, in legs vanilla.
	out, err := Price(refMarket, contract(90, models.Call, 95, models.BarrierUp, models.KnockOut))
	require.NoError(t, err)
	assert.Zero(t, out)

	in, err := Price(refMarket, contract(90, models.Call, 95, models.BarrierUp, models.KnockIn))
	require.NoError(t, err)
	assert.InDelta(t, plain, in, 1e-12)

	// Down barrier already above spot.
	out, err = Price(refMarket, contract(90, models.Call, 105, models.BarrierDown, models.KnockOut))
	require.NoError(t, err)
	assert.Zero(t, out)
}

func TestBarrierValidation(t *testing.T) {
	_, err := Price(refMarket, contract(90, models.Call, 0, models.BarrierUp, models.KnockOut))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))

	_, err = Price(refMarket, contract(90, models.Call, -5, models.BarrierUp, models.KnockOut))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))

	// Barrier at spot is degenerate.
	_, err = Price(refMarket, contract(90, models.Call, refMarket.Spot, models.BarrierUp, models.KnockOut))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))

	_, err = Price(refMarket, contract(90, models.Call, 150, models.BarrierDirection("SIDEWAYS"), models.KnockOut))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidType))

	bare := models.ContractSpec{Strike: 90, Right: models.Call}
	_, err = Price(refMarket, bare)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestSurvivalProbability(t *testing.T) {
	// Unbreached barriers give a probability strictly inside (0, 1).
	p, err := SurvivalProbability(refMarket, models.BarrierSpec{Level: 150, Direction: models.BarrierUp, Action: models.KnockOut})
	require.NoError(t, err)
	assert.Greater(t, p, 0.0)
	assert.Less(t, p, 1.0)

	// A breached barrier has survival zero.
	p, err = SurvivalProbability(refMarket, models.BarrierSpec{Level: 95, Direction: models.BarrierUp, Action: models.KnockOut})
	require.NoError(t, err)
	assert.Zero(t, p)

	// A barrier far away is almost surely never touched.
	p, err = SurvivalProbability(refMarket, models.BarrierSpec{Level: 1e6, Direction: models.BarrierUp, Action: models.KnockOut})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-9)

	p, err = SurvivalProbability(refMarket, models.BarrierSpec{Level: 1e-4, Direction: models.BarrierDown, Action: models.KnockOut})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p, 1e-9)
}
