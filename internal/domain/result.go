package domain

import "github.com/shopspring/decimal"

// YearMetrics holds every derived metric for a single horizon year.
// Columns are stable; exporters and the charting layer address them by name.
type YearMetrics struct {
	Year int `json:"year"`

	// Volumes (Mt)
	TotalDemandMt       decimal.Decimal `json:"total_fuel_demand_mt"`
	SAFVolumeMt         decimal.Decimal `json:"saf_volume_mt"`
	JetFuelVolumeMt     decimal.Decimal `json:"jet_fuel_volume_mt"`
	BlendingSharePct    decimal.Decimal `json:"saf_blending_share_pct"`

	// Emissions (Mt CO2)
	CO2GeneratedMt decimal.Decimal `json:"co2_emissions_generated_mt"`
	CO2AvoidedMt   decimal.Decimal `json:"co2_emissions_avoided_mt"`

	// Economics
	CarbonPricePerTonne decimal.Decimal `json:"carbon_price_eur_per_ton"`
	FuelCostBn          decimal.Decimal `json:"total_fuel_cost_eur_bn"`
	CarbonCostBn        decimal.Decimal `json:"carbon_cost_eur_bn"`
	TotalCostBn         decimal.Decimal `json:"total_cost_of_compliance_eur_bn"`
}

// ScenarioResult is the fully annotated result table for one
// (demand series, scenario) pair.
type ScenarioResult struct {
	Scenario Scenario      `json:"scenario"`
	Years    []YearMetrics `json:"years"`
}

// Row returns the metrics for a calendar year, or false when out of horizon.
func (r *ScenarioResult) Row(year int) (YearMetrics, bool) {
	i := year - BaseYear
	if i < 0 || i >= len(r.Years) || r.Years[i].Year != year {
		return YearMetrics{}, false
	}
	return r.Years[i], true
}

// CumulativeAvoidedMt sums avoided CO2 across the horizon.
func (r *ScenarioResult) CumulativeAvoidedMt() decimal.Decimal {
	total := decimal.Zero
	for _, y := range r.Years {
		total = total.Add(y.CO2AvoidedMt)
	}
	return total
}

// CumulativeCostBn sums the total compliance cost across the horizon.
func (r *ScenarioResult) CumulativeCostBn() decimal.Decimal {
	total := decimal.Zero
	for _, y := range r.Years {
		total = total.Add(y.TotalCostBn)
	}
	return total
}

// ScenarioSummary condenses one scenario result into headline figures.
type ScenarioSummary struct {
	Scenario             Scenario        `json:"scenario"`
	FinalSharePct        decimal.Decimal `json:"final_share_pct"`
	FinalYearCostBn      decimal.Decimal `json:"final_year_cost_bn"`
	PeakAnnualCostBn     decimal.Decimal `json:"peak_annual_cost_bn"`
	CumulativeAvoidedMt  decimal.Decimal `json:"cumulative_avoided_mt"`
	CumulativeCostBn     decimal.Decimal `json:"cumulative_cost_bn"`
	CostPerAvoidedTonne  decimal.Decimal `json:"cost_per_avoided_tonne"`
	Result               *ScenarioResult `json:"result"`
}

// ScenarioComparison gathers the evaluated scenarios for reporting.
type ScenarioComparison struct {
	Scenarios   []ScenarioSummary `json:"scenarios"`
	Assumptions []string          `json:"assumptions"`
}
