// Package renderer renders inventory reports to markdown strings, suitable
// for terminal display or publishing as-is.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/stockpile"
)

//go:embed templates/*.md
var templates embed.FS

// itemRow is a single line of a report table.
type itemRow struct {
	Name     string
	Quantity stockpile.Quantity
}

// InventoryMarkdown renders the full inventory report: a title header, one
// row per item in insertion order, and a footer with the item count.
func InventoryMarkdown(inv *stockpile.Inventory) string {
	var rows []itemRow
	for name, qty := range inv.Items() {
		rows = append(rows, itemRow{Name: name, Quantity: qty})
	}
	data := struct {
		Rows  []itemRow
		Total int
	}{Rows: rows, Total: inv.Len()}
	return renderTemplate("inventory", "templates/inventory.md", data)
}

// LowStockMarkdown renders the list of items below 'threshold'.
func LowStockMarkdown(items []string, threshold stockpile.Quantity) string {
	data := struct {
		Items     []string
		Threshold stockpile.Quantity
	}{Items: items, Threshold: threshold}
	return renderTemplate("low_stock", "templates/low_stock.md", data)
}

// JournalMarkdown renders the session journal.
func JournalMarkdown(journal *stockpile.Journal) string {
	data := struct {
		Entries []stockpile.Entry
	}{Entries: journal.Entries()}
	return renderTemplate("journal", "templates/journal.md", data)
}

// renderTemplate is a generic utility to render one of the embedded
// templates. Errors are returned in the output: a report should never make
// the whole command fail.
func renderTemplate(templateName, file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(templateName).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error rendering template %q: %v", file, err)
	}
	return b.String()
}
