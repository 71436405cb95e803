package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

type removeCmd struct {
	item string
	qty  string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove quantity of an item from the inventory" }
func (*removeCmd) Usage() string {
	return `stk remove -i <item> [-q <qty>]

  Removes a quantity of an item from the inventory, deleting the item
  entirely when its quantity drops to zero or below, then saves the
  inventory file. Removing an unknown item is a warning, not a failure.

Usage Examples:
$ stk remove -i apple -q 3
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Item name.")
	f.StringVar(&c.qty, "q", "1", "Quantity to remove (whole number).")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	qty, err := stockpile.ParseQuantity(c.qty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := inv.Remove(c.item, qty); err != nil {
		if errors.Is(err, stockpile.ErrUnknownItem) {
			fmt.Fprintf(os.Stderr, "Warning: %v, inventory left unchanged.\n", err)
			return subcommands.ExitSuccess
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if err := saveInventory(inv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if inv.Has(c.item) {
		fmt.Printf("%q now at %s\n", c.item, inv.Quantity(c.item))
	} else {
		fmt.Printf("%q removed from the inventory\n", c.item)
	}
	return subcommands.ExitSuccess
}
