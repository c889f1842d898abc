// Package report renders analysis summaries for the terminal.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money formats an amount with thousands separators and the ISO code of the unit.
func Money(amount decimal.Decimal, unit currency.Unit) string {
	f, _ := amount.Round(2).Float64()
	return fmt.Sprintf("%s %s", unit, printer.Sprintf("%.2f", f))
}

// Percent formats a value that is already in percent.
func Percent(p decimal.Decimal) string {
	return p.StringFixed(2) + "%"
}

// Points formats a signed difference in percentage points.
func Points(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.StringFixed(2) + " pp"
	}
	return d.StringFixed(2) + " pp"
}
