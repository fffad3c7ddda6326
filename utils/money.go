package utils

import (
	"github.com/shopspring/decimal"
)

// RoundMoney rounds an amount to cents
func RoundMoney(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// SumMoney adds amounts without accumulating float drift and rounds to cents
func SumMoney(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.Round(2).InexactFloat64()
}

// FormatBRL formats an amount in reais as printed on the ticket: "R$ 360.00".
// Two decimals, dot separator, no thousands grouping.
func FormatBRL(amount float64) string {
	return "R$ " + FormatAmount(amount)
}

// FormatAmount formats an amount with two decimals: "360.00"
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}
