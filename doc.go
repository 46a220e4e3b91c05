// Package dividends reads brokerage transaction statements exported as CSV
// (Fidelity column layout) and reports dividend and reinvestment activity
// per security.
//
// The core functionalities include:
//   - Statement Loading: parsing a CSV export into an ordered, immutable
//     row set, with column-name normalization and explicit handling of
//     unparseable amounts.
//   - Row Classification: predicate-based filtering of rows into dividend
//     payouts or reinvestments, with an optional exact-match symbol filter.
//   - Aggregation: stable grouping of filtered rows by symbol and
//     per-symbol amount totals.
//
// This package serves as the foundational logic for the `divs` command-line
// tool. It performs a single read-filter-print pass: nothing is persisted
// and no row is ever mutated.
package dividends
