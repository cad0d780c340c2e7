package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AssumptionSet holds the process-wide model constants: emission factors,
// efficiency gains, fixed fuel prices, the carbon price schedule and the
// SAF mandate schedule. It is built once at startup (DefaultAssumptions,
// optionally overridden from config), validated, and then only read.
type AssumptionSet struct {
	// Emission factor for conventional Jet A-1, tonnes CO2 per tonne of fuel.
	JetAEmissionFactor decimal.Decimal `yaml:"jet_a1_emission_factor" json:"jet_a1_emission_factor"`
	// Lifecycle emissions reduction of SAF relative to conventional fuel,
	// as a fraction in [0,1]. EF_saf = EF_conventional * (1 - reduction).
	SAFLifecycleReduction decimal.Decimal `yaml:"saf_lifecycle_reduction" json:"saf_lifecycle_reduction"`

	// Annual fuel-burn improvement from fleet renewal, as a fraction.
	AircraftTechGain decimal.Decimal `yaml:"aircraft_tech_gain" json:"aircraft_tech_gain"`
	// Maximum total gain from air-traffic-management programs and the number
	// of years over which it ramps up linearly from the base year.
	OperationalGainMax decimal.Decimal `yaml:"operational_gain_max" json:"operational_gain_max"`
	OperationalRampYears int           `yaml:"operational_ramp_years" json:"operational_ramp_years"`

	// Fixed fuel prices, currency per tonne. SAF price is derived from the
	// conventional price and the premium multiplier.
	JetAPricePerTonne decimal.Decimal `yaml:"jet_a1_price_per_tonne" json:"jet_a1_price_per_tonne"`
	SAFPricePremium   decimal.Decimal `yaml:"saf_price_premium" json:"saf_price_premium"`

	// Linear carbon price forecast: price(year) = base + slope*(year - BaseYear).
	CarbonPriceBase  decimal.Decimal `yaml:"carbon_price_base" json:"carbon_price_base"`
	CarbonPriceSlope decimal.Decimal `yaml:"carbon_price_slope" json:"carbon_price_slope"`

	// Voluntary SAF adoption share used by the market-driven scenario.
	VoluntaryAdoptionShare decimal.Decimal `yaml:"voluntary_adoption_share" json:"voluntary_adoption_share"`

	// Mandated blending shares at control-point years; years in between are
	// linearly interpolated. Shared by the mandated scenarios.
	MandateSchedule map[int]decimal.Decimal `yaml:"mandate_schedule" json:"mandate_schedule"`
}

// DefaultAssumptions returns the reference assumption set.
func DefaultAssumptions() *AssumptionSet {
	return &AssumptionSet{
		JetAEmissionFactor:    decimal.NewFromFloat(3.16),
		SAFLifecycleReduction: decimal.NewFromFloat(0.80),

		AircraftTechGain:     decimal.NewFromFloat(0.015),
		OperationalGainMax:   decimal.NewFromFloat(0.07),
		OperationalRampYears: 15,

		JetAPricePerTonne: decimal.NewFromInt(1000),
		SAFPricePremium:   decimal.NewFromFloat(2.5),

		CarbonPriceBase:  decimal.NewFromInt(80),
		CarbonPriceSlope: decimal.NewFromFloat(2.8),

		VoluntaryAdoptionShare: decimal.NewFromFloat(0.01),

		MandateSchedule: map[int]decimal.Decimal{
			2025: decimal.NewFromFloat(0.02),
			2030: decimal.NewFromFloat(0.06),
			2035: decimal.NewFromFloat(0.20),
			2040: decimal.NewFromFloat(0.34),
			2045: decimal.NewFromFloat(0.42),
			2050: decimal.NewFromFloat(0.70),
		},
	}
}

// SAFEmissionFactor returns the lifecycle emission factor for SAF.
func (a *AssumptionSet) SAFEmissionFactor() decimal.Decimal {
	return a.JetAEmissionFactor.Mul(decimal.NewFromInt(1).Sub(a.SAFLifecycleReduction))
}

// SAFPricePerTonne returns the SAF price derived from the premium multiplier.
func (a *AssumptionSet) SAFPricePerTonne() decimal.Decimal {
	return a.JetAPricePerTonne.Mul(a.SAFPricePremium)
}

// CarbonPrice returns the forecast carbon price for a calendar year.
func (a *AssumptionSet) CarbonPrice(year int) decimal.Decimal {
	offset := decimal.NewFromInt(int64(year - BaseYear))
	return a.CarbonPriceBase.Add(a.CarbonPriceSlope.Mul(offset))
}

// Validate checks that every constant is inside its meaningful domain.
func (a *AssumptionSet) Validate() error {
	one := decimal.NewFromInt(1)

	if a.JetAEmissionFactor.IsNegative() {
		return fmt.Errorf("jet_a1_emission_factor cannot be negative, got %s", a.JetAEmissionFactor)
	}
	if a.SAFLifecycleReduction.IsNegative() || a.SAFLifecycleReduction.GreaterThan(one) {
		return fmt.Errorf("saf_lifecycle_reduction must be in [0,1], got %s", a.SAFLifecycleReduction)
	}
	if a.AircraftTechGain.IsNegative() || a.AircraftTechGain.GreaterThanOrEqual(one) {
		return fmt.Errorf("aircraft_tech_gain must be in [0,1), got %s", a.AircraftTechGain)
	}
	if a.OperationalGainMax.IsNegative() || a.OperationalGainMax.GreaterThanOrEqual(one) {
		return fmt.Errorf("operational_gain_max must be in [0,1), got %s", a.OperationalGainMax)
	}
	if a.OperationalRampYears <= 0 {
		return fmt.Errorf("operational_ramp_years must be positive, got %d", a.OperationalRampYears)
	}
	if a.JetAPricePerTonne.IsNegative() {
		return fmt.Errorf("jet_a1_price_per_tonne cannot be negative, got %s", a.JetAPricePerTonne)
	}
	if a.SAFPricePremium.IsNegative() {
		return fmt.Errorf("saf_price_premium cannot be negative, got %s", a.SAFPricePremium)
	}
	if a.VoluntaryAdoptionShare.IsNegative() || a.VoluntaryAdoptionShare.GreaterThan(one) {
		return fmt.Errorf("voluntary_adoption_share must be in [0,1], got %s", a.VoluntaryAdoptionShare)
	}
	if len(a.MandateSchedule) == 0 {
		return fmt.Errorf("mandate_schedule must have at least one control point")
	}
	for year, share := range a.MandateSchedule {
		if year < BaseYear || year > EndYear {
			return fmt.Errorf("mandate control point %d outside horizon %d-%d", year, BaseYear, EndYear)
		}
		if share.IsNegative() || share.GreaterThan(one) {
			return fmt.Errorf("mandate share for %d must be in [0,1], got %s", year, share)
		}
	}
	return nil
}
