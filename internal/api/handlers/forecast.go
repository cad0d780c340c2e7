package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safmod/saf-pathways/internal/api/models"
	"github.com/safmod/saf-pathways/internal/calculation"
)

// ForecastHandler exposes the demand forecast as a standalone endpoint.
type ForecastHandler struct {
	engine *calculation.CalculationEngine
}

// NewForecastHandler creates a forecast handler over an engine.
func NewForecastHandler(engine *calculation.CalculationEngine) *ForecastHandler {
	return &ForecastHandler{engine: engine}
}

// ProjectDemand handles POST /api/v1/forecast.
func (h *ForecastHandler) ProjectDemand(c *gin.Context) {
	var req models.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	series, err := h.engine.Forecast.ProjectFromFloats(req.BaseDemandMt, req.AnnualGrowthRate, req.ApplyOperationalGains)
	if err != nil {
		if errors.Is(err, calculation.ErrInvalidInput) {
			writeError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
			return
		}
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.ForecastResponse{Series: series})
}

func writeError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{Error: models.ErrorDetail{Code: code, Message: message}})
}
