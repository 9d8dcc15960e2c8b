// Package money formats currency amounts for display payloads.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders a decimal amount as a US dollar display string.
// Amounts are rounded to cents for display only; arithmetic stays decimal.
func FormatUSD(amount decimal.Decimal) string {
	value, _ := amount.Round(2).Float64()
	return printer.Sprint(currency.Symbol(currency.USD.Amount(value)))
}
