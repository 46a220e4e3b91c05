// Package renderer turns filtered statement rows into the report views
// printed by the divs command. Views are pure functions over the row set:
// selecting one per invocation keeps rendering free of shared state.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/dividends"
)

// NoDataNotice is the message emitted when a filtered row set is empty.
// An empty result is informational, not an error.
const NoDataNotice = "No data found."

// Totals renders one total line per symbol, in first-occurrence order.
func Totals(rows []dividends.TransactionRow) string {
	if len(rows) == 0 {
		return NoDataNotice + "\n"
	}
	var b strings.Builder
	for _, g := range dividends.GroupBySymbol(rows) {
		fmt.Fprintf(&b, "Total Amount for %s: %s\n", g.Symbol, g.Total())
	}
	return b.String()
}

// Symbols renders the distinct symbols of the rows, one per line, in
// first-occurrence order.
func Symbols(rows []dividends.TransactionRow) string {
	if len(rows) == 0 {
		return NoDataNotice + "\n"
	}
	var b strings.Builder
	b.WriteString("Available Symbols:\n")
	for _, sym := range dividends.Symbols(rows) {
		fmt.Fprintf(&b, "%s\n", sym)
	}
	return b.String()
}

// Details renders, for each symbol group, the group's row listing followed
// by its total in the Totals format.
func Details(rows []dividends.TransactionRow) string {
	if len(rows) == 0 {
		return NoDataNotice + "\n"
	}
	var b strings.Builder
	for _, g := range dividends.GroupBySymbol(rows) {
		fmt.Fprintf(&b, "\nSymbol: %s\n", g.Symbol)
		writeRowTable(&b, g.Rows)
		fmt.Fprintf(&b, "Total Amount for %s: %s\n", g.Symbol, g.Total())
	}
	return b.String()
}

// Rows renders every row's (date, symbol, amount) triple without grouping,
// in file order. It backs both the print and the all views.
func Rows(rows []dividends.TransactionRow) string {
	if len(rows) == 0 {
		return NoDataNotice + "\n"
	}
	var b strings.Builder
	writeRowTable(&b, rows)
	return b.String()
}

// writeRowTable writes rows as a markdown table so terminal output renders
// nicely while piped output stays plain text.
func writeRowTable(b *strings.Builder, rows []dividends.TransactionRow) {
	b.WriteString("| Run Date | Symbol | Amount |\n")
	b.WriteString("|---|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(b, "| %s | %s | %s |\n", r.Date, r.Symbol, r.Amount)
	}
}
