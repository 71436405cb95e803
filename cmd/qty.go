package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type qtyCmd struct {
	item string
}

func (*qtyCmd) Name() string     { return "qty" }
func (*qtyCmd) Synopsis() string { return "print the current quantity of an item" }
func (*qtyCmd) Usage() string {
	return `stk qty -i <item>

  Prints the stored quantity for an item, or 0 if the item is not tracked.
`
}

func (c *qtyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Item name.")
}

func (c *qtyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println(inv.Quantity(c.item))
	return subcommands.ExitSuccess
}
