package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/dividends"
	"github.com/etnz/dividends/renderer"
	"github.com/google/subcommands"
)

// reportCmd is the common implementation of all report subcommands: each
// one binds a name to a stateless view function, chosen at registration.
type reportCmd struct {
	name     string
	synopsis string
	render   func([]dividends.TransactionRow) string

	symbol string
}

func newSumCmd() *reportCmd {
	return &reportCmd{name: "sum", synopsis: "display per-symbol amount totals", render: renderer.Totals}
}
func newSymbolsCmd() *reportCmd {
	return &reportCmd{name: "symbols", synopsis: "list the distinct symbols with matching activity", render: renderer.Symbols}
}
func newDetailsCmd() *reportCmd {
	return &reportCmd{name: "details", synopsis: "display per-symbol row listings with totals", render: renderer.Details}
}
func newPrintCmd() *reportCmd {
	return &reportCmd{name: "print", synopsis: "print every matching row", render: renderer.Rows}
}
func newAllCmd() *reportCmd {
	return &reportCmd{name: "all", synopsis: "dump every matching row without elision", render: renderer.Rows}
}

func (c *reportCmd) Name() string     { return c.name }
func (c *reportCmd) Synopsis() string { return c.synopsis }
func (c *reportCmd) Usage() string {
	return fmt.Sprintf(`divs %s [-symbol <ticker>] [<category>] <file.csv>

  %s for one statement file. The category is "dividend" (cash payouts,
  reversals excluded) or "investment" (reinvestments); it defaults to
  dividend. The -symbol filter is an exact, case-insensitive ticker match.
`, c.name, c.synopsis)
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Only report rows for this ticker (exact, case-insensitive)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category, path, err := parseArgs(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	statement, err := dividends.LoadStatement(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	Log.Debug().Str("file", path).Int("rows", statement.Len()).Msg("loaded statement")

	accept := dividends.ByCategory(category)
	if c.symbol != "" {
		accept = dividends.And(accept, dividends.BySymbol(c.symbol))
	}
	rows := statement.Filter(accept)
	Log.Debug().
		Str("category", string(category)).
		Str("symbol", c.symbol).
		Int("matches", len(rows)).
		Msg("filtered rows")

	printMarkdown(c.render(rows))
	return subcommands.ExitSuccess
}

// parseArgs reads the positional arguments: an optional category followed
// by the statement file path.
func parseArgs(f *flag.FlagSet) (dividends.Category, string, error) {
	switch f.NArg() {
	case 1:
		return dividends.Dividend, f.Arg(0), nil
	case 2:
		category, err := dividends.ParseCategory(f.Arg(0))
		if err != nil {
			return "", "", err
		}
		return category, f.Arg(1), nil
	default:
		return "", "", fmt.Errorf("want [<category>] <file.csv>, got %d arguments", f.NArg())
	}
}
