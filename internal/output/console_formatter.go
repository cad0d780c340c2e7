package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/safmod/saf-pathways/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SAF PATHWAY SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Scenario < scenarios[j].Scenario })
	for _, sc := range scenarios {
		fmt.Fprintf(&buf, "%s: Share2050=%s Cost2050=%s PeakCost=%s\n",
			sc.Scenario,
			FormatPercentage(sc.FinalSharePct),
			FormatBillions(sc.FinalYearCostBn),
			FormatBillions(sc.PeakAnnualCostBn),
		)
		fmt.Fprintf(&buf, "  AvoidedCO2=%s CumulativeCost=%s\n", FormatMt(sc.CumulativeAvoidedMt), FormatBillions(sc.CumulativeCostBn))
	}
	rec := AnalyzeScenarios(results)
	if rec.Scenario != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Most CO2 avoided: %s (%s at €%s/t avoided)\n", rec.Scenario, FormatMt(rec.CumulativeAvoidedMt), rec.CostPerAvoidedTonne.StringFixed(2))
	}
	return buf.Bytes(), nil
}
