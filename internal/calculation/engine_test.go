package calculation

import (
	"context"
	"testing"

	"github.com/safmod/saf-pathways/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Forecast: domain.ForecastInput{
			BaseDemandMt:     decimal.NewFromInt(80),
			AnnualGrowthRate: decimal.NewFromFloat(0.025),
		},
		Scenarios: domain.AllScenarios(),
	}
}

func TestRunScenarioPairsOperationalGains(t *testing.T) {
	engine := NewCalculationEngine()
	ctx := context.Background()
	input := testConfiguration().Forecast

	s1, err := engine.RunScenario(ctx, input, domain.ScenarioS1)
	require.NoError(t, err)
	s2, err := engine.RunScenario(ctx, input, domain.ScenarioS2)
	require.NoError(t, err)

	// S2 runs on the operational-gains demand series, so from a year into
	// the horizon its demand is strictly below S1's.
	y1, _ := s1.Row(2030)
	y2, _ := s2.Row(2030)
	assert.True(t, y2.TotalDemandMt.LessThan(y1.TotalDemandMt))

	// Both share the same mandate schedule.
	assert.True(t, y1.BlendingSharePct.Equal(y2.BlendingSharePct))
}

func TestRunScenarioRejectsUnknown(t *testing.T) {
	engine := NewCalculationEngine()

	_, err := engine.RunScenario(context.Background(), testConfiguration().Forecast, domain.Scenario("S3"))
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestRunScenarioHonorsContext(t *testing.T) {
	engine := NewCalculationEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.RunScenario(ctx, testConfiguration().Forecast, domain.ScenarioS0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunComparison(t *testing.T) {
	engine := NewCalculationEngine()

	comparison, err := engine.RunComparison(context.Background(), testConfiguration())
	require.NoError(t, err)
	require.Len(t, comparison.Scenarios, 3)

	// Output order follows the request order.
	assert.Equal(t, domain.ScenarioS0, comparison.Scenarios[0].Scenario)
	assert.Equal(t, domain.ScenarioS1, comparison.Scenarios[1].Scenario)
	assert.Equal(t, domain.ScenarioS2, comparison.Scenarios[2].Scenario)

	for _, sc := range comparison.Scenarios {
		require.NotNil(t, sc.Result)
		assert.Len(t, sc.Result.Years, domain.HorizonYears)
		assert.False(t, sc.CumulativeAvoidedMt.IsNegative())
		assert.False(t, sc.CumulativeCostBn.IsNegative())
	}

	// Mandated scenarios avoid far more CO2 than voluntary adoption.
	s0 := comparison.Scenarios[0]
	s1 := comparison.Scenarios[1]
	assert.True(t, s1.CumulativeAvoidedMt.GreaterThan(s0.CumulativeAvoidedMt))

	assert.NotEmpty(t, comparison.Assumptions)
}

func TestRunComparisonDefaultsToAllScenarios(t *testing.T) {
	engine := NewCalculationEngine()
	cfg := testConfiguration()
	cfg.Scenarios = nil

	comparison, err := engine.RunComparison(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, comparison.Scenarios, 3)
}

func TestRunComparisonPropagatesErrors(t *testing.T) {
	engine := NewCalculationEngine()
	cfg := testConfiguration()
	cfg.Forecast.BaseDemandMt = decimal.NewFromInt(-10)

	_, err := engine.RunComparison(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewCalculationEngineWithAssumptionsValidates(t *testing.T) {
	bad := domain.DefaultAssumptions()
	bad.SAFLifecycleReduction = decimal.NewFromFloat(1.5)

	_, err := NewCalculationEngineWithAssumptions(bad)
	assert.Error(t, err)
}

func TestSummaryCostPerAvoidedTonne(t *testing.T) {
	engine := NewCalculationEngine()

	comparison, err := engine.RunComparison(context.Background(), testConfiguration())
	require.NoError(t, err)

	for _, sc := range comparison.Scenarios {
		// cost_bn / avoided_mt * 1000 converts to currency per tonne.
		if sc.CumulativeAvoidedMt.IsPositive() {
			want := sc.CumulativeCostBn.Div(sc.CumulativeAvoidedMt).Mul(decimal.NewFromInt(1000))
			assert.True(t, sc.CostPerAvoidedTonne.Equal(want), "%s", sc.Scenario)
		}
	}
}
