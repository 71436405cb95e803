package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
	path string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge item quantities from an external JSON document" }
func (*importCmd) Usage() string {
	return `stk import -file <document.json> [-path <jsonpath>]

  Merges item quantities from an external JSON document (e.g. a supplier
  export) into the inventory. The -path expression selects the object that
  holds the item quantities; "$" selects the whole document.

Usage Examples:
# The document root is the item object.
$ stk import -file delivery.json

# The item object is nested under "warehouse".
$ stk import -file export.json -path '$.warehouse'
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON document to import from.")
	f.StringVar(&c.path, "path", "$", "JSONPath expression selecting the item quantities object.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required.")
		return subcommands.ExitUsageError
	}

	doc, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read document %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	inv, err := decodeInventory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	journal := stockpile.NewJournal()
	count, err := stockpile.ImportItems(inv, doc, c.path, journal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not import %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	if err := saveInventory(inv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printJournal(journal)
	fmt.Printf("Imported %d item(s) from %q\n", count, c.file)
	return subcommands.ExitSuccess
}
