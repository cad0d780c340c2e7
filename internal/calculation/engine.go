package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/safmod/saf-pathways/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates forecasting and scenario evaluation.
type CalculationEngine struct {
	Forecast  *ForecastEngine
	Evaluator *ScenarioEvaluator
	Logger    Logger
}

// NewCalculationEngine creates an engine over the default assumption set.
func NewCalculationEngine() *CalculationEngine {
	engine, err := NewCalculationEngineWithAssumptions(domain.DefaultAssumptions())
	if err != nil {
		// Default assumptions always validate.
		panic(err)
	}
	return engine
}

// NewCalculationEngineWithAssumptions creates an engine over a caller-provided
// assumption set. The set is read-only from here on.
func NewCalculationEngineWithAssumptions(assumptions *domain.AssumptionSet) (*CalculationEngine, error) {
	if err := assumptions.Validate(); err != nil {
		return nil, fmt.Errorf("assumptions: %w", err)
	}
	evaluator, err := NewScenarioEvaluator(assumptions)
	if err != nil {
		return nil, err
	}
	return &CalculationEngine{
		Forecast:  NewForecastEngine(assumptions),
		Evaluator: evaluator,
		Logger:    NopLogger{},
	}, nil
}

// SetLogger sets the engine logger. Nil restores the no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Assumptions returns the read-only assumption set the engine was built with.
func (ce *CalculationEngine) Assumptions() *domain.AssumptionSet {
	return ce.Evaluator.Assumptions
}

// RunScenario forecasts demand with the scenario's conventional pairing
// (operational gains on for S2 only) and evaluates the scenario against it.
func (ce *CalculationEngine) RunScenario(ctx context.Context, input domain.ForecastInput, scenario domain.Scenario) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !scenario.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, string(scenario))
	}
	series, err := ce.Forecast.Project(input.BaseDemandMt, input.AnnualGrowthRate, scenario.UsesOperationalGains())
	if err != nil {
		return nil, err
	}
	ce.Logger.Debugf("projected demand for %s: %s Mt in %d", scenario, series[len(series)-1].DemandMt.StringFixed(2), domain.EndYear)
	return ce.Evaluator.Evaluate(series, scenario)
}

// RunComparison evaluates every requested scenario and assembles the
// comparison. Scenarios are independent, so they are evaluated concurrently;
// output order follows the request order.
func (ce *CalculationEngine) RunComparison(ctx context.Context, cfg *domain.Configuration) (*domain.ScenarioComparison, error) {
	scenarios := cfg.Scenarios
	if len(scenarios) == 0 {
		scenarios = domain.AllScenarios()
	}

	summaries := make([]domain.ScenarioSummary, len(scenarios))
	errs := make([]error, len(scenarios))
	var wg sync.WaitGroup
	for i, sc := range scenarios {
		wg.Add(1)
		go func(i int, sc domain.Scenario) {
			defer wg.Done()
			result, err := ce.RunScenario(ctx, cfg.Forecast, sc)
			if err != nil {
				errs[i] = fmt.Errorf("scenario %s: %w", sc, err)
				return
			}
			summaries[i] = summarize(result)
		}(i, sc)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	ce.Logger.Infof("evaluated %d scenarios over %d-%d", len(scenarios), domain.BaseYear, domain.EndYear)
	return &domain.ScenarioComparison{
		Scenarios:   summaries,
		Assumptions: DescribeAssumptions(ce.Assumptions()),
	}, nil
}

func summarize(result *domain.ScenarioResult) domain.ScenarioSummary {
	final := result.Years[len(result.Years)-1]
	peak := decimal.Zero
	for _, y := range result.Years {
		if y.TotalCostBn.GreaterThan(peak) {
			peak = y.TotalCostBn
		}
	}
	avoided := result.CumulativeAvoidedMt()
	cost := result.CumulativeCostBn()
	perTonne := decimal.Zero
	if avoided.IsPositive() {
		// Billions of currency per Mt CO2 is thousands per tonne.
		perTonne = cost.Div(avoided).Mul(decimal.NewFromInt(1000))
	}
	return domain.ScenarioSummary{
		Scenario:            result.Scenario,
		FinalSharePct:       final.BlendingSharePct,
		FinalYearCostBn:     final.TotalCostBn,
		PeakAnnualCostBn:    peak,
		CumulativeAvoidedMt: avoided,
		CumulativeCostBn:    cost,
		CostPerAvoidedTonne: perTonne,
		Result:              result,
	}
}

// DescribeAssumptions renders the assumption set as human-readable lines for
// detailed reports.
func DescribeAssumptions(a *domain.AssumptionSet) []string {
	return []string{
		fmt.Sprintf("Jet A-1 emission factor: %s t CO2 / t fuel", a.JetAEmissionFactor),
		fmt.Sprintf("SAF lifecycle emissions reduction: %s%%", a.SAFLifecycleReduction.Mul(decimalHundred)),
		fmt.Sprintf("Aircraft technology efficiency gain: %s%% annually", a.AircraftTechGain.Mul(decimalHundred)),
		fmt.Sprintf("Operational efficiency gain: up to %s%% over %d years", a.OperationalGainMax.Mul(decimalHundred), a.OperationalRampYears),
		fmt.Sprintf("Jet A-1 price: %s per tonne (SAF premium %sx)", a.JetAPricePerTonne, a.SAFPricePremium),
		fmt.Sprintf("Carbon price: %s in %d rising %s per year", a.CarbonPriceBase, domain.BaseYear, a.CarbonPriceSlope),
	}
}
