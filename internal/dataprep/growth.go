package dataprep

import (
	"fmt"
	"math"
)

// CAGR returns the compound annual growth rate implied by moving from first
// to last over the given number of years. Use it to turn a cleaned historical
// series into the forecast engine's annual_growth_rate input.
func CAGR(first, last float64, years int) (float64, error) {
	if years <= 0 {
		return 0, fmt.Errorf("years must be positive, got %d", years)
	}
	if first <= 0 || last <= 0 {
		return 0, fmt.Errorf("values must be positive, got first=%v last=%v", first, last)
	}
	rate := math.Pow(last/first, 1/float64(years)) - 1
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, fmt.Errorf("growth rate is not finite for first=%v last=%v years=%d", first, last, years)
	}
	return rate, nil
}
