package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/safmod/saf-pathways/internal/domain"
)

// sampleYears are the horizon years shown in the detailed console table.
var sampleYears = []int{2025, 2030, 2035, 2040, 2045, 2050}

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "AVIATION FUEL DEMAND & SAF COMPLIANCE ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}

	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Scenario < scenarios[j].Scenario })
	for _, sc := range scenarios {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "SCENARIO %s\n", sc.Scenario)
		fmt.Fprintln(&buf, "---------------------------------------------------------------------------------")
		fmt.Fprintf(&buf, "%-6s %12s %9s %10s %10s %12s %12s\n",
			"Year", "Demand(Mt)", "Share", "SAF(Mt)", "CO2(Mt)", "Avoided(Mt)", "Cost(Bn)")
		for _, year := range sampleYears {
			yr, ok := sc.Result.Row(year)
			if !ok {
				continue
			}
			fmt.Fprintf(&buf, "%-6d %12s %9s %10s %10s %12s %12s\n",
				yr.Year,
				yr.TotalDemandMt.StringFixed(2),
				FormatPercentage(yr.BlendingSharePct),
				yr.SAFVolumeMt.StringFixed(2),
				yr.CO2GeneratedMt.StringFixed(2),
				yr.CO2AvoidedMt.StringFixed(2),
				yr.TotalCostBn.StringFixed(4),
			)
		}
		fmt.Fprintf(&buf, "Cumulative: avoided %s, compliance cost %s\n",
			FormatMt(sc.CumulativeAvoidedMt), FormatBillions(sc.CumulativeCostBn))
	}

	rec := AnalyzeScenarios(results)
	if rec.Scenario != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "RECOMMENDATION: scenario %s avoids the most CO2 (%s) at €%s per avoided tonne.\n",
			rec.Scenario, FormatMt(rec.CumulativeAvoidedMt), rec.CostPerAvoidedTonne.StringFixed(2))
	}
	return buf.Bytes(), nil
}
