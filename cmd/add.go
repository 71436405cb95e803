package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

type addCmd struct {
	item string
	qty  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add quantity of an item to the inventory" }
func (*addCmd) Usage() string {
	return `stk add -i <item> [-q <qty>]

  Adds a quantity of an item to the inventory, creating the item if it does
  not exist yet, then saves the inventory file.

Usage Examples:
$ stk add -i apple -q 10
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "Item name.")
	f.StringVar(&c.qty, "q", "1", "Quantity to add (whole number).")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	journal := stockpile.NewJournal()
	if err := inv.Add(c.item, qty, journal); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if err := saveInventory(inv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printJournal(journal)
	fmt.Printf("%q now at %s\n", c.item, inv.Quantity(c.item))
	return subcommands.ExitSuccess
}
