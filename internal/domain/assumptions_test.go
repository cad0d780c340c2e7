package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAssumptionsAreValid(t *testing.T) {
	require.NoError(t, DefaultAssumptions().Validate())
}

func TestDerivedFactors(t *testing.T) {
	a := DefaultAssumptions()

	// 3.16 * (1 - 0.80) = 0.632
	assert.True(t, a.SAFEmissionFactor().Equal(decimal.NewFromFloat(0.632)),
		"SAF emission factor: %s", a.SAFEmissionFactor())

	// 1000 * 2.5
	assert.True(t, a.SAFPricePerTonne().Equal(decimal.NewFromInt(2500)))

	assert.True(t, a.CarbonPrice(2025).Equal(decimal.NewFromInt(80)))
	assert.True(t, a.CarbonPrice(2026).Equal(decimal.NewFromFloat(82.8)))
	assert.True(t, a.CarbonPrice(2050).Equal(decimal.NewFromInt(150)))
}

func TestValidateRejectsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AssumptionSet)
	}{
		{"negative emission factor", func(a *AssumptionSet) {
			a.JetAEmissionFactor = decimal.NewFromInt(-1)
		}},
		{"lifecycle reduction above one", func(a *AssumptionSet) {
			a.SAFLifecycleReduction = decimal.NewFromFloat(1.1)
		}},
		{"tech gain at one", func(a *AssumptionSet) {
			a.AircraftTechGain = decimal.NewFromInt(1)
		}},
		{"zero ramp years", func(a *AssumptionSet) {
			a.OperationalRampYears = 0
		}},
		{"negative price premium", func(a *AssumptionSet) {
			a.SAFPricePremium = decimal.NewFromFloat(-0.5)
		}},
		{"voluntary share above one", func(a *AssumptionSet) {
			a.VoluntaryAdoptionShare = decimal.NewFromInt(2)
		}},
		{"empty mandate schedule", func(a *AssumptionSet) {
			a.MandateSchedule = nil
		}},
		{"mandate year before horizon", func(a *AssumptionSet) {
			a.MandateSchedule[2020] = decimal.NewFromFloat(0.01)
		}},
		{"mandate share above one", func(a *AssumptionSet) {
			a.MandateSchedule[2030] = decimal.NewFromFloat(1.5)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := DefaultAssumptions()
			tt.mutate(a)
			assert.Error(t, a.Validate())
		})
	}
}

func TestDemandSeriesCoversHorizon(t *testing.T) {
	full := make(DemandSeries, HorizonYears)
	for i := range full {
		full[i] = YearDemand{Year: BaseYear + i, DemandMt: decimal.NewFromInt(100)}
	}
	assert.True(t, full.CoversHorizon())

	short := full[:HorizonYears-1]
	assert.False(t, short.CoversHorizon())

	gap := make(DemandSeries, HorizonYears)
	copy(gap, full)
	gap[3].Year = 2031
	assert.False(t, gap.CoversHorizon())

	v, ok := full.Value(2030)
	require.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(100)))
	_, ok = full.Value(2051)
	assert.False(t, ok)
	_, ok = full.Value(2024)
	assert.False(t, ok)
}
