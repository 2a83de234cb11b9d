package plan

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// formatAmount converts value into the target currency, truncates it and
// groups thousands: 1234567.9 -> "$1,234,567".
func formatAmount(symbol string, value, rate float64) string {
	p := message.NewPrinter(language.English)
	return symbol + p.Sprintf("%d", int64(value*rate))
}

// formatRate is formatAmount without grouping, used for BOM unit rates.
func formatRate(symbol string, value, rate float64) string {
	return symbol + strconv.FormatInt(int64(value*rate), 10)
}
