package output

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatBillions formats a monetary amount already expressed in billions.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatBillions(amount decimal.Decimal) string { return "€" + amount.StringFixed(4) + "Bn" }

// FormatMt formats a mass in megatonnes with 2 decimals.
func FormatMt(amount decimal.Decimal) string { return amount.StringFixed(2) + " Mt" }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }
