package models

import "github.com/safmod/saf-pathways/internal/domain"

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ForecastResponse returns the projected demand series.
type ForecastResponse struct {
	Series domain.DemandSeries `json:"series"`
}

// ScenarioRunResponse returns the evaluated comparison.
type ScenarioRunResponse struct {
	Comparison *domain.ScenarioComparison `json:"comparison"`
}

// ScenarioListResponse lists the supported scenario identifiers.
type ScenarioListResponse struct {
	Scenarios []domain.Scenario `json:"scenarios"`
}
