package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/safmod/saf-pathways/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "FinalSharePct", "FinalYearCostBn", "PeakAnnualCostBn", "CumulativeAvoidedMt", "CumulativeCostBn", "CostPerAvoidedTonne"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Scenario < scenarios[j].Scenario })
	for _, sc := range scenarios {
		row := []string{
			sc.Scenario.String(),
			sc.FinalSharePct.StringFixed(2),
			sc.FinalYearCostBn.StringFixed(6),
			sc.PeakAnnualCostBn.StringFixed(6),
			sc.CumulativeAvoidedMt.StringFixed(2),
			sc.CumulativeCostBn.StringFixed(4),
			sc.CostPerAvoidedTonne.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
