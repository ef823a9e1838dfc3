// Package money formats whole-unit amounts for display.
package money

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is shown after amounts when no currency is configured.
const DefaultCurrency = "PKR"

// Formatter renders amounts with digit grouping and a trailing currency code.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// NewFormatter returns a formatter for the given locale tag and currency.
// An unparseable tag falls back to English grouping.
func NewFormatter(locale, currency string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return Formatter{printer: message.NewPrinter(tag), currency: currency}
}

// Amount renders n, e.g. "12,500 PKR".
func (f Formatter) Amount(n int64) string {
	return f.Number(n) + " " + f.currency
}

// Number renders n with grouping only.
func (f Formatter) Number(n int64) string {
	if f.printer == nil {
		return strconv.FormatInt(n, 10)
	}
	return f.printer.Sprintf("%d", n)
}

// Percent renders p with the shortest exact representation, e.g. "2.5%".
func (f Formatter) Percent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// Currency returns the configured currency code.
func (f Formatter) Currency() string { return f.currency }
