package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCDFKnownValues(t *testing.T) {
	cases := []struct {
		x    float64
		want float64
	}{
		{0, 0.5},
		{1, 0.8413447460685429},
		{-1, 0.15865525393145707},
		{1.96, 0.9750021048517795},
		{-1.96, 0.024997895148220435},
		{3, 0.9986501019683699},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, CDF(tc.x), 1e-10, "CDF(%g)", tc.x)
	}
}

func TestPDFKnownValues(t *testing.T) {
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), PDF(0), 1e-12)
	assert.InDelta(t, 0.24197072451914337, PDF(1), 1e-12)
}

func TestCDFSymmetry(t *testing.T) {
	for _, x := range []float64{0.1, 0.5, 1.3, 2.7, 5, 9.5} {
		assert.InDelta(t, 1.0, CDF(x)+CDF(-x), 1e-12, "CDF(%g)+CDF(-%g)", x, x)
		assert.InDelta(t, PDF(x), PDF(-x), 1e-15)
	}
}

func TestCDFTails(t *testing.T) {
	assert.Less(t, CDF(-10), 1e-7)
	assert.Greater(t, CDF(10), 1-1e-7)
}
