package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/mattn/go-isatty"
)

// printMarkdown writes a report to stdout. On a terminal it is rendered
// with glamour; piped output is written verbatim so report lines stay
// byte-exact for scripting.
func printMarkdown(md string) {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if out, err := glamour.Render(md, styles.AutoStyle); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}
