package domain

import "github.com/shopspring/decimal"

// The fixed analysis horizon. Every series and result covers exactly these
// years, in order.
const (
	BaseYear     = 2025
	EndYear      = 2050
	HorizonYears = EndYear - BaseYear + 1
)

// YearDemand is a single point of a demand series.
type YearDemand struct {
	Year     int             `json:"year" yaml:"year"`
	DemandMt decimal.Decimal `json:"demand_mt" yaml:"demand_mt"`
}

// DemandSeries is the total fuel demand per horizon year, in Mt, produced by
// the forecast engine. It is treated as immutable once produced.
type DemandSeries []YearDemand

// CoversHorizon reports whether the series holds exactly one value per year
// of the horizon, in order.
func (ds DemandSeries) CoversHorizon() bool {
	if len(ds) != HorizonYears {
		return false
	}
	for i, yd := range ds {
		if yd.Year != BaseYear+i {
			return false
		}
	}
	return true
}

// Value returns the demand for a calendar year. The boolean is false when the
// year is not covered.
func (ds DemandSeries) Value(year int) (decimal.Decimal, bool) {
	i := year - BaseYear
	if i < 0 || i >= len(ds) || ds[i].Year != year {
		return decimal.Zero, false
	}
	return ds[i].DemandMt, true
}
