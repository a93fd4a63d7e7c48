package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/stockplay"
	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove stocks from the portfolio" }
func (*removeCmd) Usage() string {
	return `sps remove <symbol>...

  Removes every row of the portfolio whose symbol is one of the given symbols,
  and saves the portfolio file. At least one symbol is required.

Usage Examples:
# Removes all AAPL and MSFT rows.
$ sps remove AAPL MSFT

`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	selection := f.Args()
	held := store.Symbols()
	n, err := store.Remove(selection...)
	var verr *stockplay.ValidationError
	if errors.As(err, &verr) {
		return exitStatus(err)
	}
	if n == 0 {
		if store.Len() == 0 {
			fmt.Println("No stocks available to remove.")
		} else {
			fmt.Printf("No stock matched: %s\n", strings.Join(normalize(selection), ", "))
		}
		return subcommands.ExitSuccess
	}
	fmt.Printf("✅ Removed stock(s): %s\n", strings.Join(gone(held, store.Symbols()), ", "))
	return exitStatus(err)
}

// normalize returns the distinct normalized symbols in order.
func normalize(symbols []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range symbols {
		s = stockplay.NormalizeSymbol(s)
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// gone returns the symbols of before that are no longer in after.
func gone(before, after []string) []string {
	var out []string
	for _, s := range before {
		if !slices.Contains(after, s) {
			out = append(out, s)
		}
	}
	return out
}
