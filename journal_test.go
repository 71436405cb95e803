package stockpile

import (
	"strings"
	"testing"
)

func TestJournal_Addition(t *testing.T) {
	journal := NewJournal()
	journal.Addition("apple", Q(10))
	journal.Addition("banana", Q(2))

	entries := journal.Entries()
	if len(entries) != 2 {
		t.Fatalf("journal has %d entries, want 2", len(entries))
	}
	if !strings.Contains(entries[0].Message, "apple") || !strings.Contains(entries[0].Message, "10") {
		t.Errorf("first record %q should mention the item and the quantity", entries[0].Message)
	}
	if entries[0].Time.IsZero() {
		t.Error("records must be timestamped")
	}
	if entries[1].Time.Before(entries[0].Time) {
		t.Error("records must be in chronological order")
	}
}

func TestJournal_EntriesIsACopy(t *testing.T) {
	journal := NewJournal()
	journal.Addition("apple", Q(1))

	entries := journal.Entries()
	entries[0].Message = "tampered"
	if journal.Entries()[0].Message == "tampered" {
		t.Error("Entries must return a copy")
	}
}
