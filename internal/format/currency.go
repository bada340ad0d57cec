package format

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencyFractionDigits is fixed for PKR display, regardless of the
// cash rounding CLDR defines for the currency.
const currencyFractionDigits = 2

// symbolSeparator sits between the symbol and the digits (no-break space).
const symbolSeparator = "\u00a0"

var localeTag = language.MustParse(Locale)

// FormatCurrency renders amount as Pakistani Rupees, e.g. 1000 -> "Rs 1,000.00".
//
// The amount is rounded half away from zero to two places using decimal
// arithmetic, so values such as 1.005 round the way a cashier expects and
// not the way float64 happens to store them. Non-finite values are not
// rejected:
//
//	NaN  -> "Rs NaN"
//	+Inf -> "Rs ∞"
//	-Inf -> "-Rs ∞"
func FormatCurrency(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return CurrencySymbol + symbolSeparator + "NaN"
	case math.IsInf(amount, 1):
		return CurrencySymbol + symbolSeparator + "∞"
	case math.IsInf(amount, -1):
		return "-" + CurrencySymbol + symbolSeparator + "∞"
	}

	rounded := decimal.NewFromFloat(amount).Round(currencyFractionDigits)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	// x/text applies the locale's grouping and decimal separators.
	p := message.NewPrinter(localeTag)
	digits := p.Sprint(number.Decimal(
		rounded.Abs().InexactFloat64(),
		number.Scale(currencyFractionDigits),
	))

	return sign + CurrencySymbol + symbolSeparator + digits
}
