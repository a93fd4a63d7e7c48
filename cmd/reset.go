package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "empty the portfolio and delete its file" }
func (*resetCmd) Usage() string {
	return `sps reset

  Removes every stock from the portfolio and deletes the portfolio file.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Reset(); err != nil {
		return exitStatus(err)
	}
	fmt.Println("✅ Portfolio has been reset.")
	return subcommands.ExitSuccess
}
