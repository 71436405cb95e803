package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/stockpile"
	"github.com/etnz/stockpile/renderer"
	"github.com/google/subcommands"
)

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run a fixed demonstration sequence of operations" }
func (*demoCmd) Usage() string {
	return `stk demo

  Loads the inventory (or starts empty), performs a fixed sequence of add,
  remove and query operations, saves the result, and prints the final report
  and session log.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	journal := stockpile.NewJournal()
	inv.Add("apple", stockpile.Q(10), journal)
	inv.Add("banana", stockpile.Q(2), journal)
	inv.Add("orange", stockpile.Q(0), journal)

	inv.Remove("apple", stockpile.Q(3))
	if err := inv.Remove("pear", stockpile.Q(1)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	fmt.Printf("Apple stock: %s\n", inv.Quantity("apple"))
	fmt.Printf("Low items: %s\n", strings.Join(inv.LowStock(stockpile.DefaultLowStockThreshold), ", "))

	if err := saveInventory(inv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Inventory saved to %q\n", inventoryPath())

	printMarkdown(renderer.InventoryMarkdown(inv))
	printMarkdown(renderer.JournalMarkdown(journal))
	return subcommands.ExitSuccess
}
