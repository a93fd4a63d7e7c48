package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplay/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	json  bool
	query string
	raw   bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the portfolio summary" }
func (*holdingsCmd) Usage() string {
	return `sps holdings [-raw | -json | -q <jsonpath>]

  Displays every stock of the portfolio, in the order they were added, and the
  total cost of the portfolio.

  -json prints the portfolio as json, -q evaluates a jsonpath expression on it.

Usage Examples:
# Lists the symbols held.
$ sps holdings -q '$.holdings[*].symbol'

`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the portfolio as json")
	f.StringVar(&c.query, "q", "", "jsonpath expression evaluated on the json portfolio")
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering it for the terminal")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	summary := renderer.NewSummary(store.Holdings(), store.Total())

	switch {
	case c.query != "":
		v, err := renderer.QuerySummary(summary, c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if s, ok := v.(string); ok {
			fmt.Println(s)
			return subcommands.ExitSuccess
		}
		data, err := json.Marshal(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(data))
	case c.json:
		data, err := renderer.SummaryJSON(summary)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(data))
	case c.raw:
		fmt.Print(renderer.RenderSummary(summary))
	default:
		printMarkdown(renderer.RenderSummary(summary))
	}
	return subcommands.ExitSuccess
}
