package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplay/renderer"
	"github.com/google/subcommands"
)

type totalCmd struct{}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "display the total cost of the portfolio" }
func (*totalCmd) Usage() string {
	return `sps total

  Displays the sum of the total cost of every stock in the portfolio.
`
}

func (c *totalCmd) SetFlags(f *flag.FlagSet) {}

func (c *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(renderer.RenderTotal(renderer.NewSummary(store.Holdings(), store.Total())))
	return subcommands.ExitSuccess
}
