// Package cmd implements the CLI application to adjust a stock portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stockplay"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "portfolio")
	c.Register(&removeCmd{}, "portfolio")
	c.Register(&resetCmd{}, "portfolio")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&totalCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var portfolioFile = flag.String("portfolio-file", stockplay.DefaultFile, "Path to the portfolio file (CSV format)")

// OpenStore opens the portfolio stored in the app portfolio file.
//
// A corrupt file is reported as a warning and the session starts with an empty
// portfolio. The file itself is left as is until the next change.
func OpenStore() (*stockplay.Store, error) {
	f := stockplay.NewCSVFile(*portfolioFile)
	s, err := stockplay.Open(f)
	var corrupt *stockplay.CorruptFileError
	if errors.As(err, &corrupt) {
		log.Printf("warning, %v", err)
		log.Printf("warning, starting with an empty portfolio, %q will be overwritten by the next change", *portfolioFile)
		return stockplay.New(f), nil
	}
	return s, err
}

// exitStatus reports err on stderr and converts it to the matching exit status.
// A nil error is a success.
func exitStatus(err error) subcommands.ExitStatus {
	var verr *stockplay.ValidationError
	var perr *stockplay.PersistError
	switch {
	case err == nil:
		return subcommands.ExitSuccess
	case errors.As(err, &verr):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	case errors.As(err, &perr):
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return subcommands.ExitFailure
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
}

// printMarkdown renders md for the terminal, it falls back to raw markdown.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
