package vanilla

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fx-pricer/internal/errors"
	"fx-pricer/internal/models"
)

var refMarket = models.MarketParameters{
	Spot:           100,
	DomesticRate:   0.05,
	ForeignRate:    0.03,
	Volatility:     0.16,
	TimeToMaturity: 3,
}

func TestPriceReferenceScenario(t *testing.T) {
	call, err := Price(refMarket, 90, models.Call)
	require.NoError(t, err)
	assert.InDelta(t, 17.8633, call, 1e-3)

	put, err := Price(refMarket, 90, models.Put)
	require.NoError(t, err)
	assert.InDelta(t, 3.9339, put, 1e-3)
}

func TestPutCallParity(t *testing.T) {
	call, err := Price(refMarket, 90, models.Call)
	require.NoError(t, err)
	put, err := Price(refMarket, 90, models.Put)
	require.NoError(t, err)

	forward := refMarket.Spot*ForeignDF(refMarket) - 90*DomesticDF(refMarket)
	assert.InDelta(t, forward, call-put, 1e-9)
}

func TestCutsConsistency(t *testing.T) {
	c := CutsFor(refMarket, 90)
	assert.InDelta(t, c.D1-c.SigmaRootT, c.D2, 1e-15)
	assert.InDelta(t, refMarket.Volatility*math.Sqrt(refMarket.TimeToMaturity), c.SigmaRootT, 1e-15)
}

func TestZeroVolatilityLimit(t *testing.T) {
	m := refMarket
	m.Volatility = 1e-6

	call, err := Price(m, 90, models.Call)
	require.NoError(t, err)
	intrinsic := math.Max(0, m.Spot*ForeignDF(m)-90*DomesticDF(m))
	assert.InDelta(t, intrinsic, call, 1e-3)

	put, err := Price(m, 120, models.Put)
	require.NoError(t, err)
	intrinsic = math.Max(0, 120*DomesticDF(m)-m.Spot*ForeignDF(m))
	assert.InDelta(t, intrinsic, put, 1e-3)
}

func TestPriceInvalidInputs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.MarketParameters, *float64)
	}{
		{"zero spot", func(m *models.MarketParameters, k *float64) { m.Spot = 0 }},
		{"negative spot", func(m *models.MarketParameters, k *float64) { m.Spot = -1 }},
		{"zero strike", func(m *models.MarketParameters, k *float64) { *k = 0 }},
		{"zero vol", func(m *models.MarketParameters, k *float64) { m.Volatility = 0 }},
		{"negative vol", func(m *models.MarketParameters, k *float64) { m.Volatility = -0.2 }},
		{"zero maturity", func(m *models.MarketParameters, k *float64) { m.TimeToMaturity = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := refMarket
			k := 90.0
			tc.mutate(&m, &k)

			_, err := Price(m, k, models.Call)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidInput))

			var inputErr *errors.InvalidInputError
			assert.True(t, errors.As(err, &inputErr))
		})
	}
}

func TestPriceInvalidRight(t *testing.T) {
	_, err := Price(refMarket, 90, models.OptionRight("STRADDLE"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidType))
}

func TestNegativeRatesAccepted(t *testing.T) {
	m := refMarket
	m.DomesticRate = -0.01
	m.ForeignRate = -0.02

	call, err := Price(m, 90, models.Call)
	require.NoError(t, err)
	assert.Greater(t, call, 0.0)
}

func TestDeltaBoundsAndParity(t *testing.T) {
	call := Delta(refMarket, 90, models.Call)
	put := Delta(refMarket, 90, models.Put)

	ff := ForeignDF(refMarket)
	assert.Greater(t, call, 0.0)
	assert.Less(t, call, ff)
	assert.Less(t, put, 0.0)
	assert.Greater(t, put, -ff)
	assert.InDelta(t, ff, call-put, 1e-12)
}

func TestVegaPositive(t *testing.T) {
	assert.Greater(t, Vega(refMarket, 90), 0.0)
	assert.Greater(t, Vega(refMarket, 150), 0.0)
}

func TestVannaVolgaSigns(t *testing.T) {
	// Deep OTM call: d1 and d2 both negative, so volga is positive and
	// vanna positive (for d2 < 0).
	volga := Volga(refMarket, 250)
	assert.Greater(t, volga, 0.0)

	c := CutsFor(refMarket, 250)
	assert.Less(t, c.D2, 0.0)
	assert.Greater(t, Vanna(refMarket, 250), 0.0)
}
