package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockpile"
	"github.com/etnz/stockpile/renderer"
	"github.com/google/subcommands"
)

type lowCmd struct {
	threshold int
}

func (*lowCmd) Name() string     { return "low" }
func (*lowCmd) Synopsis() string { return "list items whose stock is below a threshold" }
func (*lowCmd) Usage() string {
	return `stk low [-t <threshold>]

  Lists all items whose quantity is strictly below the threshold, in the
  order they were first added to the inventory.
`
}

func (c *lowCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.threshold, "t", 5, "Stock level below which an item is reported.")
}

func (c *lowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	threshold := stockpile.Q(c.threshold)
	printMarkdown(renderer.LowStockMarkdown(inv.LowStock(threshold), threshold))
	return subcommands.ExitSuccess
}
