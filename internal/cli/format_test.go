package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "17.8633", FormatPrice(17.86334, 4))
	assert.Equal(t, "18", FormatPrice(17.86334, 0))
	assert.Equal(t, "0.00", FormatPrice(0, 2))
}

func TestFormatVol(t *testing.T) {
	assert.Equal(t, "16.00%", FormatVol(0.16))
	assert.Equal(t, "0.50%", FormatVol(0.005))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "+5.00%", FormatRate(0.05))
	assert.Equal(t, "-1.25%", FormatRate(-0.0125))
	assert.Equal(t, "0.00%", FormatRate(0))
}

func TestFormatYears(t *testing.T) {
	assert.Equal(t, "3y", FormatYears(3))
	assert.Equal(t, "0.25y", FormatYears(0.25))
}
