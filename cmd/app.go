// Package cmd implements the CLI application to report on dividend
// statements.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(newSumCmd(), "reports")
	c.Register(newSymbolsCmd(), "reports")
	c.Register(newDetailsCmd(), "reports")
	c.Register(newPrintCmd(), "reports")
	c.Register(newAllCmd(), "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var logLevel = flag.String("log-level", "info", "Log level (debug, info, warning, error)")

// Log is the application logger. Init() adjusts its level from the
// -log-level flag.
var Log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init applies global flags. It must be called after flag.Parse() and
// before executing any subcommand.
func Init() error {
	name := strings.ToLower(*logLevel)
	if name == "warning" {
		name = "warn"
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", *logLevel, err)
	}
	Log = Log.Level(lvl)
	return nil
}
