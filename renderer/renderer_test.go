package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/stockpile"
)

func TestInventoryMarkdown(t *testing.T) {
	inv := stockpile.NewInventory()
	inv.Add("apple", stockpile.Q(10), nil)
	inv.Add("banana", stockpile.Q(2), nil)

	md := InventoryMarkdown(inv)

	if !strings.HasPrefix(md, "# Items Report") {
		t.Errorf("report should start with the title header, got %q", md)
	}
	apple := strings.Index(md, "| apple | 10 |")
	banana := strings.Index(md, "| banana | 2 |")
	if apple < 0 || banana < 0 {
		t.Fatalf("report is missing item rows:\n%s", md)
	}
	if banana < apple {
		t.Error("report rows must be in insertion order")
	}
	if !strings.Contains(md, "2 item(s) tracked.") {
		t.Errorf("report should end with the item count footer:\n%s", md)
	}
}

func TestInventoryMarkdown_Empty(t *testing.T) {
	md := InventoryMarkdown(stockpile.NewInventory())
	if !strings.Contains(md, "The inventory is empty.") {
		t.Errorf("empty report should say so:\n%s", md)
	}
}

func TestLowStockMarkdown(t *testing.T) {
	md := LowStockMarkdown([]string{"banana", "orange"}, stockpile.Q(5))
	for _, want := range []string{"# Low Stock", "below 5", "- banana", "- orange"} {
		if !strings.Contains(md, want) {
			t.Errorf("low stock report is missing %q:\n%s", want, md)
		}
	}

	md = LowStockMarkdown(nil, stockpile.Q(5))
	if !strings.Contains(md, "at or above the threshold") {
		t.Errorf("empty low stock report should say so:\n%s", md)
	}
}

func TestJournalMarkdown(t *testing.T) {
	journal := stockpile.NewJournal()
	journal.Addition("apple", stockpile.Q(10))

	md := JournalMarkdown(journal)
	if !strings.HasPrefix(md, "# Session Log") {
		t.Errorf("journal should start with the title header, got %q", md)
	}
	if !strings.Contains(md, "apple") {
		t.Errorf("journal is missing the addition record:\n%s", md)
	}

	md = JournalMarkdown(stockpile.NewJournal())
	if !strings.Contains(md, "Nothing was added this session.") {
		t.Errorf("empty journal should say so:\n%s", md)
	}
}
