package store

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// usd formats numbers with en-US grouping, e.g. 452301.7 -> "452,301.70".
var usd = message.NewPrinter(language.English)

// FormatPrice renders a raw prediction as a currency string with two decimal
// places and thousands separators.
func FormatPrice(v float64) string {
	return usd.Sprintf("$%.2f", v)
}
