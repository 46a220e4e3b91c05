package dividends

import "iter"

// Statement represents one loaded statement file.
//
// Rows are always in file order and are never mutated after loading.
type Statement struct {
	header []string
	rows   []TransactionRow
}

// Header returns the normalized (whitespace-trimmed) column names, in file
// order.
func (s *Statement) Header() []string { return s.header }

// Len returns the number of rows in the statement.
func (s *Statement) Len() int { return len(s.rows) }

// Rows iterates over the rows accepted by the predicate, in file order.
func (s *Statement) Rows(accept func(TransactionRow) bool) iter.Seq[TransactionRow] {
	return func(yield func(TransactionRow) bool) {
		for _, r := range s.rows {
			if accept(r) && !yield(r) {
				return
			}
		}
	}
}

// Filter returns the rows accepted by the predicate, preserving file order.
func (s *Statement) Filter(accept func(TransactionRow) bool) []TransactionRow {
	var rows []TransactionRow
	for r := range s.Rows(accept) {
		rows = append(rows, r)
	}
	return rows
}

// SymbolGroup is the set of rows sharing one symbol after filtering.
type SymbolGroup struct {
	Symbol string
	Rows   []TransactionRow
}

// Total returns the sum of the group's amounts. Missing amounts count as
// zero.
func (g SymbolGroup) Total() Amount {
	var total Amount
	for _, r := range g.Rows {
		total = total.Add(r.Amount)
	}
	return total
}

// GroupBySymbol groups rows by their symbol, exactly as spelled in the
// source: "ABC" and "abc" form two distinct groups. Groups are ordered by
// first occurrence, and rows keep file order within each group.
func GroupBySymbol(rows []TransactionRow) []SymbolGroup {
	index := make(map[string]int)
	var groups []SymbolGroup
	for _, r := range rows {
		i, ok := index[r.Symbol]
		if !ok {
			i = len(groups)
			index[r.Symbol] = i
			groups = append(groups, SymbolGroup{Symbol: r.Symbol})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	return groups
}

// Symbols returns the distinct symbols of the rows, in first-occurrence
// order.
func Symbols(rows []TransactionRow) []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, r := range rows {
		if !seen[r.Symbol] {
			seen[r.Symbol] = true
			symbols = append(symbols, r.Symbol)
		}
	}
	return symbols
}
