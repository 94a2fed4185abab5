package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatInt renders n with thousands separators, e.g. 5,600.
func FormatInt(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatCurrency renders d as whole dollars, e.g. $1,250,000.
func FormatCurrency(d decimal.Decimal) string {
	return "$" + FormatInt(d.Round(0).IntPart())
}
