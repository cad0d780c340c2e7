package calculation

import (
	"fmt"
	"math"

	"github.com/safmod/saf-pathways/internal/domain"
	"github.com/shopspring/decimal"
)

// ForecastEngine projects annual fuel demand across the fixed horizon. It is
// a pure function of its inputs and the assumption set.
type ForecastEngine struct {
	Assumptions *domain.AssumptionSet
}

// NewForecastEngine creates a forecast engine over an assumption set.
func NewForecastEngine(assumptions *domain.AssumptionSet) *ForecastEngine {
	return &ForecastEngine{Assumptions: assumptions}
}

// Project computes the total fuel demand series for 2025-2050.
//
// Raw demand compounds at the growth rate from the base-year demand. The
// aircraft-technology efficiency gain decays demand every year regardless of
// flags; the operational factor ramps linearly to its maximum over the ramp
// horizon and applies only when requested.
func (fe *ForecastEngine) Project(baseDemandMt, annualGrowthRate decimal.Decimal, applyOperationalGains bool) (domain.DemandSeries, error) {
	if baseDemandMt.IsNegative() {
		return nil, fmt.Errorf("%w: base demand must be >= 0 Mt, got %s", ErrInvalidInput, baseDemandMt)
	}

	one := decimal.NewFromInt(1)
	growthFactor := one.Add(annualGrowthRate)
	techFactor := one.Sub(fe.Assumptions.AircraftTechGain)
	maxGain := fe.Assumptions.OperationalGainMax
	rampStep := maxGain.Div(decimal.NewFromInt(int64(fe.Assumptions.OperationalRampYears)))

	series := make(domain.DemandSeries, domain.HorizonYears)
	raw := baseDemandMt
	tech := one
	for i := 0; i < domain.HorizonYears; i++ {
		demand := raw.Mul(tech)
		if applyOperationalGains {
			gain := rampStep.Mul(decimal.NewFromInt(int64(i)))
			if gain.GreaterThan(maxGain) {
				gain = maxGain
			}
			demand = demand.Mul(one.Sub(gain))
		}
		series[i] = domain.YearDemand{Year: domain.BaseYear + i, DemandMt: demand}
		raw = raw.Mul(growthFactor)
		tech = tech.Mul(techFactor)
	}
	return series, nil
}

// ProjectFromFloats validates raw float inputs before projecting. This is the
// entry point for config and API callers, where NaN or infinities can arrive.
func (fe *ForecastEngine) ProjectFromFloats(baseDemandMt, annualGrowthRate float64, applyOperationalGains bool) (domain.DemandSeries, error) {
	if math.IsNaN(baseDemandMt) || math.IsInf(baseDemandMt, 0) {
		return nil, fmt.Errorf("%w: base demand must be finite, got %v", ErrInvalidInput, baseDemandMt)
	}
	if math.IsNaN(annualGrowthRate) || math.IsInf(annualGrowthRate, 0) {
		return nil, fmt.Errorf("%w: growth rate must be finite, got %v", ErrInvalidInput, annualGrowthRate)
	}
	return fe.Project(decimal.NewFromFloat(baseDemandMt), decimal.NewFromFloat(annualGrowthRate), applyOperationalGains)
}
