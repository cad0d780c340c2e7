package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"sort"

	"github.com/safmod/saf-pathways/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces an HTML report with scenario-comparison line charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

// scenarioColors matches the palette used throughout the study's charts.
var scenarioColors = map[domain.Scenario]string{
	domain.ScenarioS0: "#1f77b4",
	domain.ScenarioS1: "#ff7f0e",
	domain.ScenarioS2: "#2ca02c",
}

const (
	chartWidth  = 720
	chartHeight = 320
	chartPad    = 40
)

type chartSeries struct {
	Scenario string
	Color    string
	Points   string
}

type chart struct {
	Title  string
	YLabel string
	YMax   string
	Series []chartSeries
	Width  int
	Height int
}

type htmlReport struct {
	Charts         []chart
	Scenarios      []domain.ScenarioSummary
	Assumptions    []string
	Recommendation Recommendation
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Scenario < scenarios[j].Scenario })

	metrics := []struct {
		title, yLabel string
		value         func(domain.YearMetrics) decimal.Decimal
	}{
		{"Total Fuel Demand", "Mt", func(y domain.YearMetrics) decimal.Decimal { return y.TotalDemandMt }},
		{"SAF Volume", "Mt", func(y domain.YearMetrics) decimal.Decimal { return y.SAFVolumeMt }},
		{"CO2 Emissions Generated", "Mt CO2", func(y domain.YearMetrics) decimal.Decimal { return y.CO2GeneratedMt }},
		{"CO2 Emissions Avoided", "Mt CO2", func(y domain.YearMetrics) decimal.Decimal { return y.CO2AvoidedMt }},
		{"Total Cost of Compliance", "EUR Bn", func(y domain.YearMetrics) decimal.Decimal { return y.TotalCostBn }},
	}

	report := htmlReport{
		Scenarios:      scenarios,
		Assumptions:    assumptions,
		Recommendation: AnalyzeScenarios(results),
	}
	for _, m := range metrics {
		report.Charts = append(report.Charts, buildChart(m.title, m.yLabel, scenarios, m.value))
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildChart renders one metric across all scenarios as SVG polyline points,
// scaled to a shared y-axis maximum.
func buildChart(title, yLabel string, scenarios []domain.ScenarioSummary, value func(domain.YearMetrics) decimal.Decimal) chart {
	yMax := decimal.Zero
	for _, sc := range scenarios {
		for _, yr := range sc.Result.Years {
			if v := value(yr); v.GreaterThan(yMax) {
				yMax = v
			}
		}
	}
	if yMax.IsZero() {
		yMax = decimal.NewFromInt(1)
	}

	c := chart{Title: title, YLabel: yLabel, YMax: yMax.StringFixed(2), Width: chartWidth, Height: chartHeight}
	innerW := float64(chartWidth - 2*chartPad)
	innerH := float64(chartHeight - 2*chartPad)
	yMaxF := yMax.InexactFloat64()
	for _, sc := range scenarios {
		var pts bytes.Buffer
		for i, yr := range sc.Result.Years {
			x := float64(chartPad) + innerW*float64(i)/float64(domain.HorizonYears-1)
			y := float64(chartHeight-chartPad) - innerH*value(yr).InexactFloat64()/yMaxF
			fmt.Fprintf(&pts, "%.1f,%.1f ", x, y)
		}
		c.Series = append(c.Series, chartSeries{
			Scenario: sc.Scenario.String(),
			Color:    scenarioColors[sc.Scenario],
			Points:   pts.String(),
		})
	}
	return c
}
