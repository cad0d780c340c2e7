// Package api wires the HTTP surface: routes, middleware and CORS.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/safmod/saf-pathways/internal/api/handlers"
	"github.com/safmod/saf-pathways/internal/api/middleware"
	"github.com/safmod/saf-pathways/internal/calculation"
	"go.uber.org/zap"
)

// NewRouter builds the gin router with all routes and middleware attached.
func NewRouter(engine *calculation.CalculationEngine, log *zap.SugaredLogger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Metrics())

	forecastHandler := handlers.NewForecastHandler(engine)
	scenarioHandler := handlers.NewScenarioHandler(engine)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/forecast", forecastHandler.ProjectDemand)
		v1.POST("/scenarios/run", scenarioHandler.RunScenarios)
		v1.GET("/scenarios", scenarioHandler.ListScenarios)
		v1.GET("/assumptions", scenarioHandler.GetAssumptions)
	}
	return router
}

// WithCORS wraps the router with a permissive CORS policy for browser
// dashboards.
func WithCORS(router http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)
}
