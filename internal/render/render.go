// Package render formats core results as chat-style text, the way the
// original bot presented them. The HTTP layer serves these for clients
// that forward messages verbatim.
package render

import (
	"strings"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/tracker"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// MonthlySummary renders the per-category totals of a month as a text
// message, with a grand total at the end.
func MonthlySummary(month types.Month, totals []tracker.CategoryTotal) string {
	if len(totals) == 0 {
		return printer.Sprintf("No expenses recorded for %s yet.", month)
	}

	var b strings.Builder
	printer.Fprintf(&b, "Summary for %s:\n\n", month)

	sum := decimal.Zero
	for _, total := range totals {
		printer.Fprintf(&b, "%s: $%.2f\n", total.Category, total.Total.InexactFloat64())
		sum = sum.Add(total.Total)
	}

	printer.Fprintf(&b, "\nTotal: $%.2f", sum.InexactFloat64())
	return b.String()
}

// Materialized renders the notification for recurring charges that were
// just posted to the ledger.
func Materialized(charges []tracker.MaterializedCharge) string {
	if len(charges) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Recurring charges posted:\n")
	for _, charge := range charges {
		printer.Fprintf(&b, "\n%s: $%.2f (%s, day %d)", charge.Category, charge.Amount.InexactFloat64(), charge.Note, charge.ScheduledDay)
	}

	return b.String()
}
