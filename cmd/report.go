package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockpile/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display all items and their quantities" }
func (*reportCmd) Usage() string {
	return `stk report

  Displays every tracked item and its quantity, one per line, in the order
  items were first added.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.InventoryMarkdown(inv))
	return subcommands.ExitSuccess
}
