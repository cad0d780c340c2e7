package calculation

import (
	"fmt"

	"github.com/safmod/saf-pathways/internal/domain"
	"github.com/safmod/saf-pathways/pkg/interp"
	"github.com/shopspring/decimal"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
	decimalBillion = decimal.NewFromInt(1_000_000_000)
)

// ScenarioEvaluator applies a policy scenario to a demand series and derives
// the full per-year metric table: blending share, volume split, emissions,
// carbon price and compliance costs.
type ScenarioEvaluator struct {
	Assumptions *domain.AssumptionSet

	mandateCurve *interp.Curve
}

// NewScenarioEvaluator builds an evaluator, pre-computing the interpolated
// mandate curve shared by the mandated scenarios.
func NewScenarioEvaluator(assumptions *domain.AssumptionSet) (*ScenarioEvaluator, error) {
	curve, err := interp.NewCurve(assumptions.MandateSchedule)
	if err != nil {
		return nil, fmt.Errorf("mandate schedule: %w", err)
	}
	return &ScenarioEvaluator{
		Assumptions:  assumptions,
		mandateCurve: curve.Clamped(decimal.Zero, decimalOne),
	}, nil
}

// Evaluate produces the scenario result table for one (series, scenario)
// pair. The scenario is validated before any computation; the series must
// cover the horizon exactly.
func (se *ScenarioEvaluator) Evaluate(series domain.DemandSeries, scenario domain.Scenario) (*domain.ScenarioResult, error) {
	if !scenario.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, string(scenario))
	}
	if !series.CoversHorizon() {
		return nil, fmt.Errorf("%w: want %d contiguous years %d-%d, got %d entries",
			ErrMalformedSeries, domain.HorizonYears, domain.BaseYear, domain.EndYear, len(series))
	}

	efJet := se.Assumptions.JetAEmissionFactor
	efSAF := se.Assumptions.SAFEmissionFactor()
	priceJet := se.Assumptions.JetAPricePerTonne
	priceSAF := se.Assumptions.SAFPricePerTonne()

	result := &domain.ScenarioResult{
		Scenario: scenario,
		Years:    make([]domain.YearMetrics, domain.HorizonYears),
	}
	for i, yd := range series {
		share := se.blendingShare(scenario, yd.Year)

		safVolume := yd.DemandMt.Mul(share)
		jetVolume := yd.DemandMt.Sub(safVolume)

		generated := jetVolume.Mul(efJet).Add(safVolume.Mul(efSAF))
		counterfactual := yd.DemandMt.Mul(efJet)
		avoided := counterfactual.Sub(generated)
		// Floor absorbs rounding noise when the share is at or near zero.
		if avoided.IsNegative() {
			avoided = decimal.Zero
		}

		carbonPrice := se.Assumptions.CarbonPrice(yd.Year)
		fuelCost := jetVolume.Mul(priceJet).Add(safVolume.Mul(priceSAF)).Div(decimalBillion)
		carbonCost := generated.Mul(carbonPrice).Div(decimalBillion)

		result.Years[i] = domain.YearMetrics{
			Year:                yd.Year,
			TotalDemandMt:       yd.DemandMt,
			SAFVolumeMt:         safVolume,
			JetFuelVolumeMt:     jetVolume,
			BlendingSharePct:    share.Mul(decimalHundred),
			CO2GeneratedMt:      generated,
			CO2AvoidedMt:        avoided,
			CarbonPricePerTonne: carbonPrice,
			FuelCostBn:          fuelCost,
			CarbonCostBn:        carbonCost,
			TotalCostBn:         fuelCost.Add(carbonCost),
		}
	}
	return result, nil
}

// blendingShare resolves the SAF share for a year: the voluntary adoption
// constant for S0, the interpolated mandate curve for S1/S2.
func (se *ScenarioEvaluator) blendingShare(scenario domain.Scenario, year int) decimal.Decimal {
	if scenario.Mandated() {
		return se.mandateCurve.At(year)
	}
	return se.Assumptions.VoluntaryAdoptionShare
}
