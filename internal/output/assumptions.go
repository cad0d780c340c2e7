package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed
// outputs when the comparison carries none of its own.
var DefaultAssumptions = []string{
	"Jet A-1 emission factor: 3.16 t CO2 / t fuel",
	"SAF lifecycle emissions reduction: 80% vs conventional",
	"Aircraft technology efficiency gain: 1.5% annually",
	"Operational efficiency gain: up to 7% by 2040 (SESAR)",
	"Jet A-1 price: €1000 per tonne, SAF at 2.5x premium",
	"Carbon price: €80/t in 2025 rising €2.8/t per year",
}
