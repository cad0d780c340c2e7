package output

import (
	"sort"

	"github.com/safmod/saf-pathways/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	Scenario            string
	CumulativeAvoidedMt decimal.Decimal
	CumulativeCostBn    decimal.Decimal
	CostPerAvoidedTonne decimal.Decimal
}

// AnalyzeScenarios picks the scenario avoiding the most cumulative CO2,
// breaking ties on lower cumulative compliance cost.
// Extracted from embedded console logic for testability.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	ranked := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].CumulativeAvoidedMt.Equal(ranked[j].CumulativeAvoidedMt) {
			return ranked[i].CumulativeAvoidedMt.GreaterThan(ranked[j].CumulativeAvoidedMt)
		}
		return ranked[i].CumulativeCostBn.LessThan(ranked[j].CumulativeCostBn)
	})
	best := ranked[0]
	return Recommendation{
		Scenario:            best.Scenario.String(),
		CumulativeAvoidedMt: best.CumulativeAvoidedMt,
		CumulativeCostBn:    best.CumulativeCostBn,
		CostPerAvoidedTonne: best.CostPerAvoidedTonne,
	}
}
