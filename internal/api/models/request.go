package models

// ForecastRequest represents the request body for projecting fuel demand.
type ForecastRequest struct {
	BaseDemandMt          float64 `json:"base_demand_mt" binding:"required"`
	AnnualGrowthRate      float64 `json:"annual_growth_rate"`
	ApplyOperationalGains bool    `json:"apply_operational_gains,omitempty"`
}

// ScenarioRunRequest represents a request to evaluate one or more scenarios
// against a shared forecast.
type ScenarioRunRequest struct {
	Forecast  ForecastParams `json:"forecast" binding:"required"`
	Scenarios []string       `json:"scenarios,omitempty"` // default: all
}

// ForecastParams carries the forecast scalars for a scenario run. The
// operational-gains flag is derived per scenario (S2 only), matching the
// standard pairing.
type ForecastParams struct {
	BaseDemandMt     float64 `json:"base_demand_mt" binding:"required"`
	AnnualGrowthRate float64 `json:"annual_growth_rate"`
}
