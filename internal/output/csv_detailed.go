package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/safmod/saf-pathways/internal/domain"
)

// detailedHeader is the stable column set of the per-year result table.
// External consumers address columns by these names.
var detailedHeader = []string{
	"Scenario",
	"Year",
	"Total_Fuel_Demand_Mt",
	"SAF_Blending_Share_%",
	"SAF_Volume_Mt",
	"Jet_Fuel_Volume_Mt",
	"CO2_Emissions_Generated_Mt",
	"CO2_Emissions_Avoided_Mt",
	"Carbon_Price_EUR_per_Ton",
	"Total_Fuel_Cost_EUR_Bn",
	"Carbon_Cost_EUR_Bn",
	"Total_Cost_of_Compliance_EUR_Bn",
}

// CSVDetailedExporter writes one row per scenario-year with every derived metric.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(detailedHeader); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Scenario < scenarios[j].Scenario })
	for _, sc := range scenarios {
		for _, yr := range sc.Result.Years {
			row := []string{
				sc.Scenario.String(),
				intToString(yr.Year),
				yr.TotalDemandMt.StringFixed(4),
				yr.BlendingSharePct.StringFixed(2),
				yr.SAFVolumeMt.StringFixed(4),
				yr.JetFuelVolumeMt.StringFixed(4),
				yr.CO2GeneratedMt.StringFixed(4),
				yr.CO2AvoidedMt.StringFixed(4),
				yr.CarbonPricePerTonne.StringFixed(2),
				yr.FuelCostBn.StringFixed(6),
				yr.CarbonCostBn.StringFixed(6),
				yr.TotalCostBn.StringFixed(6),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
