package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockplay"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	symbol string
	price  string
	shares int64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a stock to the portfolio" }
func (*addCmd) Usage() string {
	return `sps add -s <symbol> -p <price> -n <shares>

  Adds a stock to the end of the portfolio and saves the portfolio file.
  - s: The stock symbol (e.g., "AAPL"), case insensitive.
  - p: The price per share in dollars, a plain decimal number (e.g., 150.25).
  - n: The number of shares, a whole number.

  The same symbol can be added several times, each addition is a new row.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol (required)")
	f.StringVar(&c.price, "p", "0", "Price per share in dollars (required)")
	f.Int64Var(&c.shares, "n", 0, "Number of shares (required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := stockplay.ParseMoney(c.price, stockplay.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	h, err := store.Add(c.symbol, price, c.shares)
	var verr *stockplay.ValidationError
	if errors.As(err, &verr) {
		return exitStatus(err)
	}
	fmt.Printf("✅ Added %d shares of %s at %s per share.\n", h.Shares, h.Symbol, h.Price)
	return exitStatus(err)
}
