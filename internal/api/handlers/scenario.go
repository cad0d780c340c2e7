package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safmod/saf-pathways/internal/api/models"
	"github.com/safmod/saf-pathways/internal/calculation"
	"github.com/safmod/saf-pathways/internal/domain"
	"github.com/shopspring/decimal"
)

// ScenarioHandler exposes scenario evaluation over HTTP.
type ScenarioHandler struct {
	engine *calculation.CalculationEngine
}

// NewScenarioHandler creates a scenario handler over an engine.
func NewScenarioHandler(engine *calculation.CalculationEngine) *ScenarioHandler {
	return &ScenarioHandler{engine: engine}
}

// RunScenarios handles POST /api/v1/scenarios/run.
func (h *ScenarioHandler) RunScenarios(c *gin.Context) {
	var req models.ScenarioRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if math.IsNaN(req.Forecast.BaseDemandMt) || math.IsInf(req.Forecast.BaseDemandMt, 0) ||
		math.IsNaN(req.Forecast.AnnualGrowthRate) || math.IsInf(req.Forecast.AnnualGrowthRate, 0) {
		writeError(c, http.StatusBadRequest, "INVALID_INPUT", "forecast parameters must be finite")
		return
	}

	scenarios := make([]domain.Scenario, 0, len(req.Scenarios))
	for _, token := range req.Scenarios {
		sc, err := domain.ParseScenario(token)
		if err != nil {
			writeError(c, http.StatusBadRequest, "UNKNOWN_SCENARIO", err.Error())
			return
		}
		scenarios = append(scenarios, sc)
	}

	cfg := &domain.Configuration{
		Forecast: domain.ForecastInput{
			BaseDemandMt:     decimal.NewFromFloat(req.Forecast.BaseDemandMt),
			AnnualGrowthRate: decimal.NewFromFloat(req.Forecast.AnnualGrowthRate),
		},
		Scenarios: scenarios,
	}
	comparison, err := h.engine.RunComparison(c.Request.Context(), cfg)
	if err != nil {
		switch {
		case errors.Is(err, calculation.ErrInvalidInput):
			writeError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		case errors.Is(err, calculation.ErrUnknownScenario):
			writeError(c, http.StatusBadRequest, "UNKNOWN_SCENARIO", err.Error())
		default:
			writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, models.ScenarioRunResponse{Comparison: comparison})
}

// ListScenarios handles GET /api/v1/scenarios.
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, models.ScenarioListResponse{Scenarios: domain.AllScenarios()})
}

// GetAssumptions handles GET /api/v1/assumptions.
func (h *ScenarioHandler) GetAssumptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Assumptions())
}
