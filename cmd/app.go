// Package cmd implements the stk CLI application to manage an inventory file.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stockpile"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "inventory")
	c.Register(&removeCmd{}, "inventory")
	c.Register(&qtyCmd{}, "inventory")

	c.Register(&lowCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&fmtCmd{}, "file")
	c.Register(&importCmd{}, "file")

	c.Register(&demoCmd{}, "misc")
	c.Register(&topicCmd{}, "misc")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("f", "", "Path to the inventory file (single JSON object of item quantities)")

// inventoryPath resolves the inventory file: the -f flag, then the STK_FILE
// environment variable (possibly loaded from .env), then the default.
func inventoryPath() string {
	if *inventoryFile != "" {
		return *inventoryFile
	}
	if p := os.Getenv("STK_FILE"); p != "" {
		return p
	}
	return stockpile.DefaultInventoryFile
}

// decodeInventory is the central function to open the inventory file.
func decodeInventory() (*stockpile.Inventory, error) {
	return stockpile.LoadInventory(inventoryPath())
}

// saveInventory writes the inventory back to the app inventory file.
func saveInventory(inv *stockpile.Inventory) error {
	return stockpile.SaveInventory(inventoryPath(), inv)
}

// printMarkdown renders markdown to the terminal. If rendering fails the raw
// markdown is still printed, a report is always better than nothing.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// printJournal echoes the session journal records to stdout.
func printJournal(journal *stockpile.Journal) {
	for _, e := range journal.Entries() {
		fmt.Printf("%s: %s\n", e.Time.Format("2006-01-02 15:04:05"), e.Message)
	}
}
