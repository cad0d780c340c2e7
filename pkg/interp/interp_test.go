package interp

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mandatePoints() map[int]decimal.Decimal {
	return map[int]decimal.Decimal{
		2025: decimal.NewFromFloat(0.02),
		2030: decimal.NewFromFloat(0.06),
		2035: decimal.NewFromFloat(0.20),
	}
}

func TestNewCurveRequiresPoints(t *testing.T) {
	_, err := NewCurve(nil)
	assert.Error(t, err)
}

func TestAtControlPointsExact(t *testing.T) {
	c, err := NewCurve(mandatePoints())
	require.NoError(t, err)

	for x, want := range mandatePoints() {
		assert.True(t, c.At(x).Equal(want), "x=%d", x)
	}
}

func TestAtInterpolatesLinearly(t *testing.T) {
	c, err := NewCurve(mandatePoints())
	require.NoError(t, err)

	tests := []struct {
		x    int
		want float64
	}{
		{2026, 0.028},
		{2027, 0.036},
		{2028, 0.044},
		{2029, 0.052},
		{2031, 0.088},
		{2034, 0.172},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, c.At(tt.x).InexactFloat64(), 1e-12, "x=%d", tt.x)
	}
}

func TestAtHoldsBoundaries(t *testing.T) {
	c, err := NewCurve(mandatePoints())
	require.NoError(t, err)

	assert.True(t, c.At(2000).Equal(decimal.NewFromFloat(0.02)))
	assert.True(t, c.At(2100).Equal(decimal.NewFromFloat(0.20)))
}

func TestClampedBoundsOutput(t *testing.T) {
	c, err := NewCurve(map[int]decimal.Decimal{
		2025: decimal.NewFromFloat(-0.5),
		2030: decimal.NewFromFloat(1.5),
	})
	require.NoError(t, err)
	clamped := c.Clamped(decimal.Zero, decimal.NewFromInt(1))

	assert.True(t, clamped.At(2020).Equal(decimal.Zero))
	assert.True(t, clamped.At(2025).Equal(decimal.Zero))
	assert.True(t, clamped.At(2030).Equal(decimal.NewFromInt(1)))
	assert.True(t, clamped.At(2040).Equal(decimal.NewFromInt(1)))
	// Interior values inside the bounds pass through untouched.
	mid := clamped.At(2027)
	assert.False(t, mid.IsNegative())
	assert.True(t, mid.LessThanOrEqual(decimal.NewFromInt(1)))
}

func TestSinglePointIsConstant(t *testing.T) {
	c, err := NewCurve(map[int]decimal.Decimal{2030: decimal.NewFromFloat(0.05)})
	require.NoError(t, err)

	for _, x := range []int{2025, 2030, 2050} {
		assert.True(t, c.At(x).Equal(decimal.NewFromFloat(0.05)), "x=%d", x)
	}
}
