package domain

import "github.com/shopspring/decimal"

// Configuration is the on-disk run configuration shape (YAML).
type Configuration struct {
	Forecast    ForecastInput  `yaml:"forecast" json:"forecast"`
	Scenarios   []Scenario     `yaml:"scenarios" json:"scenarios"`
	Assumptions *AssumptionSet `yaml:"assumptions,omitempty" json:"assumptions,omitempty"`
	Output      OutputConfig   `yaml:"output,omitempty" json:"output,omitempty"`
}

// ForecastInput carries the forecast engine parameters.
type ForecastInput struct {
	// Fuel demand in the base year, Mt.
	BaseDemandMt decimal.Decimal `yaml:"base_demand_mt" json:"base_demand_mt"`
	// Projected annual air-traffic growth rate; may be negative.
	AnnualGrowthRate decimal.Decimal `yaml:"annual_growth_rate" json:"annual_growth_rate"`
}

// OutputConfig selects the report format.
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}
