// Package format renders money and dates the way the ERP shows them
// to Pakistani users.
//
// Everything here is pure and safe for concurrent use. Formatting never
// fails: bad input comes back as the locale's own rendering of it
// ("Rs NaN", "Invalid Date") instead of an error.
package format

const (
	// Locale is the BCP 47 tag every formatter in this package renders for.
	Locale = "en-PK"

	// CurrencyCode is the ISO 4217 code of the Pakistani Rupee.
	CurrencyCode = "PKR"

	// CurrencySymbol is the symbol en-PK locale data uses for PKR.
	CurrencySymbol = "Rs"
)
