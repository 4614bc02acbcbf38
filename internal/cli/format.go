package cli

import (
	"fmt"
	"strconv"
)

// FormatPrice formats a price at the configured precision.
func FormatPrice(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// FormatVol formats a volatility as a percentage.
func FormatVol(vol float64) string {
	return fmt.Sprintf("%.2f%%", vol*100)
}

// FormatRate formats an interest rate as a signed percentage.
func FormatRate(rate float64) string {
	sign := ""
	if rate > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, rate*100)
}

// FormatYears formats a maturity in years.
func FormatYears(t float64) string {
	return fmt.Sprintf("%.4gy", t)
}
