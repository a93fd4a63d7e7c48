package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/stockplay/docs"
	"github.com/google/subcommands"
)

// topicCmd holds the flags for the 'topic' subcommand.
type topicCmd struct {
	list bool
	raw  bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `sps topic [-l] [-raw] [<topic>...]

  Shows documentation for the given topics, "*" shows them all.
  Without topic, shows the introduction and the list of topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "list topic names only")
	f.BoolVar(&c.raw, "raw", false, "print raw markdown instead of rendering it for the terminal")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		topics, err := docs.GetAllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(strings.Join(topics, "\n"))
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.raw {
		fmt.Print(doc)
	} else {
		printMarkdown(doc)
	}
	return subcommands.ExitSuccess
}
