package config

import (
	"fmt"
	"os"

	"github.com/safmod/saf-pathways/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of run configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// DefaultConfiguration returns a runnable configuration: the reference
// assumption set, all three scenarios, and the original study's example
// forecast parameters.
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Forecast: domain.ForecastInput{
			BaseDemandMt:     decimal.NewFromInt(80),
			AnnualGrowthRate: decimal.NewFromFloat(0.025),
		},
		Scenarios:   domain.AllScenarios(),
		Assumptions: domain.DefaultAssumptions(),
		Output:      domain.OutputConfig{Format: "console-lite"},
	}
}

// LoadFromFile loads configuration from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses YAML bytes into a validated configuration. Missing blocks
// fall back to defaults: absent assumptions use the reference set, an empty
// scenario list means all three scenarios.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var cfg domain.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Assumptions == nil {
		cfg.Assumptions = domain.DefaultAssumptions()
	} else {
		fillAssumptionDefaults(cfg.Assumptions)
	}
	if len(cfg.Scenarios) == 0 {
		cfg.Scenarios = domain.AllScenarios()
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "console-lite"
	}

	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(cfg *domain.Configuration) error {
	if cfg.Forecast.BaseDemandMt.IsNegative() {
		return fmt.Errorf("forecast base_demand_mt cannot be negative, got %s", cfg.Forecast.BaseDemandMt)
	}
	for i, sc := range cfg.Scenarios {
		if !sc.Valid() {
			return fmt.Errorf("scenario %d: unknown identifier %q", i, string(sc))
		}
	}
	if err := cfg.Assumptions.Validate(); err != nil {
		return fmt.Errorf("assumptions: %w", err)
	}
	return nil
}

// fillAssumptionDefaults fills unset assumption fields from the reference
// set, so a config may override a single constant without restating the rest.
func fillAssumptionDefaults(a *domain.AssumptionSet) {
	def := domain.DefaultAssumptions()
	if a.JetAEmissionFactor.IsZero() {
		a.JetAEmissionFactor = def.JetAEmissionFactor
	}
	if a.SAFLifecycleReduction.IsZero() {
		a.SAFLifecycleReduction = def.SAFLifecycleReduction
	}
	if a.AircraftTechGain.IsZero() {
		a.AircraftTechGain = def.AircraftTechGain
	}
	if a.OperationalGainMax.IsZero() {
		a.OperationalGainMax = def.OperationalGainMax
	}
	if a.OperationalRampYears == 0 {
		a.OperationalRampYears = def.OperationalRampYears
	}
	if a.JetAPricePerTonne.IsZero() {
		a.JetAPricePerTonne = def.JetAPricePerTonne
	}
	if a.SAFPricePremium.IsZero() {
		a.SAFPricePremium = def.SAFPricePremium
	}
	if a.CarbonPriceBase.IsZero() {
		a.CarbonPriceBase = def.CarbonPriceBase
	}
	if a.CarbonPriceSlope.IsZero() {
		a.CarbonPriceSlope = def.CarbonPriceSlope
	}
	if a.VoluntaryAdoptionShare.IsZero() {
		a.VoluntaryAdoptionShare = def.VoluntaryAdoptionShare
	}
	if len(a.MandateSchedule) == 0 {
		a.MandateSchedule = def.MandateSchedule
	}
}
