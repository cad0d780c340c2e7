package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/safmod/saf-pathways/internal/calculation"
	"github.com/safmod/saf-pathways/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(calculation.NewCalculationEngine(), zap.NewNop().Sugar())
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doJSON(t, testRouter(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestForecastEndpoint(t *testing.T) {
	router := testRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/forecast", map[string]any{
		"base_demand_mt":     100,
		"annual_growth_rate": 0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Series []struct {
			Year     int    `json:"year"`
			DemandMt string `json:"demand_mt"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Series, domain.HorizonYears)
	assert.Equal(t, domain.BaseYear, resp.Series[0].Year)
	assert.Equal(t, "100", resp.Series[0].DemandMt)
	assert.Equal(t, "98.5", resp.Series[1].DemandMt)
}

func TestForecastEndpointRejectsNegativeBase(t *testing.T) {
	w := doJSON(t, testRouter(t), http.MethodPost, "/api/v1/forecast", map[string]any{
		"base_demand_mt": -10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestRunScenariosEndpoint(t *testing.T) {
	w := doJSON(t, testRouter(t), http.MethodPost, "/api/v1/scenarios/run", map[string]any{
		"forecast":  map[string]any{"base_demand_mt": 80, "annual_growth_rate": 0.025},
		"scenarios": []string{"S0", "S1"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Comparison struct {
			Scenarios []struct {
				Scenario string `json:"scenario"`
			} `json:"scenarios"`
		} `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Comparison.Scenarios, 2)
	assert.Equal(t, "S0", resp.Comparison.Scenarios[0].Scenario)
	assert.Equal(t, "S1", resp.Comparison.Scenarios[1].Scenario)
}

func TestRunScenariosRejectsUnknownScenario(t *testing.T) {
	w := doJSON(t, testRouter(t), http.MethodPost, "/api/v1/scenarios/run", map[string]any{
		"forecast":  map[string]any{"base_demand_mt": 80},
		"scenarios": []string{"S9"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_SCENARIO")
}

func TestListScenarios(t *testing.T) {
	w := doJSON(t, testRouter(t), http.MethodGet, "/api/v1/scenarios", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "S0")
	assert.Contains(t, w.Body.String(), "S1")
	assert.Contains(t, w.Body.String(), "S2")
}

func TestGetAssumptions(t *testing.T) {
	w := doJSON(t, testRouter(t), http.MethodGet, "/api/v1/assumptions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jet_a1_emission_factor")
	assert.Contains(t, w.Body.String(), "mandate_schedule")
}

func TestMetricsExposed(t *testing.T) {
	router := testRouter(t)
	// Generate one request so counters exist.
	doJSON(t, router, http.MethodGet, "/health", nil)

	w := doJSON(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "safpath_http_requests_total")
}
