package dividends

import (
	"fmt"
	"strings"
)

// Category is a typed string identifying the kind of activity a report
// covers.
type Category string

// Categories of reportable activity.
const (
	// Dividend selects cash dividend payouts. Reversal rows (negative
	// amounts) are excluded so payout reports stay free of reversal noise.
	Dividend Category = "dividend"
	// Investment selects dividend reinvestments, whatever the sign of the
	// amount: feeds record reinvestments as debits or credits depending on
	// convention, and both must pass.
	Investment Category = "investment"
)

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(s)) {
	case Dividend:
		return Dividend, nil
	case Investment:
		return Investment, nil
	default:
		return "", fmt.Errorf("unknown category: %q (want dividend or investment)", s)
	}
}

// TransactionRow is one record from a statement file.
//
// Only Date, Action, Symbol and Amount are interpreted; every other column
// is carried verbatim in Fields.
type TransactionRow struct {
	Date   string // "Run Date" column, kept as-is from the source.
	Action string // free-form action text, e.g. "DIVIDEND RECEIVED".
	Symbol string // ticker, may be empty.
	Amount Amount // "Amount ($)" column, coerced; missing if unparseable.

	// Fields holds all columns of the row keyed by normalized column name,
	// including the interpreted ones.
	Fields map[string]string
}

// AcceptAll is a predicate that accepts any row.
func AcceptAll(TransactionRow) bool { return true }

// ByCategory returns a predicate matching rows of the given category.
func ByCategory(c Category) func(TransactionRow) bool {
	switch c {
	case Dividend:
		return func(r TransactionRow) bool {
			return containsFold(r.Action, "dividend") && r.Amount.NonNegative()
		}
	case Investment:
		return func(r TransactionRow) bool {
			return containsFold(r.Action, "reinvestment")
		}
	default:
		return func(TransactionRow) bool { return false }
	}
}

// BySymbol returns a predicate matching rows whose symbol equals the given
// ticker, case-insensitively. It is an exact match, not a substring one.
func BySymbol(ticker string) func(TransactionRow) bool {
	return func(r TransactionRow) bool {
		return strings.EqualFold(r.Symbol, ticker)
	}
}

// And combines predicates, accepting rows that pass all of them.
func And(preds ...func(TransactionRow) bool) func(TransactionRow) bool {
	return func(r TransactionRow) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
