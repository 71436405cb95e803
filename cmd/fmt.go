package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the inventory file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `stk fmt

  Validates and formats the inventory file: keys keep their current order and
  the object is rewritten with the canonical 4-space indentation. Unlike a
  normal load, a malformed file is an error here, never silently emptied.

Usage Examples:
# Rewrites the default inventory file in place.
$ stk fmt
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := inventoryPath()

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open inventory file %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	inv, err := stockpile.DecodeInventory(file)
	file.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot format %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	if err := stockpile.SaveInventory(path, inv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %q (%d items).\n", path, inv.Len())
	return subcommands.ExitSuccess
}
