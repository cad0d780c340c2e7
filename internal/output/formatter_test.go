package output

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/safmod/saf-pathways/internal/calculation"
	"github.com/safmod/saf-pathways/internal/config"
	"github.com/safmod/saf-pathways/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComparison(t *testing.T) *domain.ScenarioComparison {
	t.Helper()
	engine := calculation.NewCalculationEngine()
	comparison, err := engine.RunComparison(context.Background(), config.DefaultConfiguration())
	require.NoError(t, err)
	return comparison
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"csv", "csv"},
		{"detailed-csv", "detailed-csv"},
		{"csv-detailed", "detailed-csv"}, // alias
		{"console", "console"},
		{"verbose", "console"}, // alias
		{"console-lite", "console-lite"},
		{"json", "json"},
		{"html", "html"},
		{"chart", "html"}, // alias
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := GetFormatterByName(tt.name)
			require.NotNil(t, f)
			assert.Equal(t, tt.want, f.Name())
		})
	}

	assert.Nil(t, GetFormatterByName("parquet"))
}

func TestCSVDetailedExporter(t *testing.T) {
	data, err := CSVDetailedExporter{}.Format(testComparison(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	// Header plus one row per scenario-year.
	require.Len(t, records, 1+3*domain.HorizonYears)
	assert.Equal(t, detailedHeader, records[0])

	// Rows are grouped by scenario in order, each spanning the horizon.
	assert.Equal(t, []string{"S0", "2025"}, records[1][:2])
	assert.Equal(t, []string{"S0", "2050"}, records[domain.HorizonYears][:2])
	assert.Equal(t, []string{"S1", "2025"}, records[domain.HorizonYears+1][:2])
}

func TestCSVSummarizer(t *testing.T) {
	data, err := CSVSummarizer{}.Format(testComparison(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "Scenario", records[0][0])
	assert.Equal(t, "S0", records[1][0])
	assert.Equal(t, "S2", records[3][0])
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	data, err := JSONFormatter{}.Format(testComparison(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "scenarios")
	assert.Contains(t, decoded, "assumptions")
}

func TestConsoleFormatters(t *testing.T) {
	comparison := testComparison(t)

	lite, err := ConsoleFormatter{}.Format(comparison)
	require.NoError(t, err)
	assert.Contains(t, string(lite), "SAF PATHWAY SCENARIO SUMMARY")
	assert.Contains(t, string(lite), "S1:")

	verbose, err := ConsoleVerboseFormatter{}.Format(comparison)
	require.NoError(t, err)
	assert.Contains(t, string(verbose), "KEY ASSUMPTIONS:")
	assert.Contains(t, string(verbose), "SCENARIO S2")
	assert.Contains(t, string(verbose), "RECOMMENDATION")
}

func TestHTMLFormatter(t *testing.T) {
	data, err := HTMLFormatter{}.Format(testComparison(t))
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "<polyline")
	assert.Contains(t, html, "#1f77b4") // S0
	assert.Contains(t, html, "#ff7f0e") // S1
	assert.Contains(t, html, "#2ca02c") // S2
	assert.Contains(t, html, "Total Fuel Demand")
	assert.Contains(t, html, "CO2 Emissions Avoided")
}

func TestNormalizeFormatName(t *testing.T) {
	assert.Equal(t, "detailed-csv", NormalizeFormatName(" CSV-Detailed "))
	assert.Equal(t, "console", NormalizeFormatName("VERBOSE"))
	assert.Equal(t, "custom", NormalizeFormatName("custom"))
}
