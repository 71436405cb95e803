package stockpile

import (
	"fmt"
	"slices"
	"time"
)

// Entry is a single, timestamped record of an inventory operation.
type Entry struct {
	Time    time.Time
	Message string
}

// Journal holds the chronological records of a single session. It is
// ephemeral: entries are displayed in-session and never persisted.
//
// A Journal is always created explicitly by the caller and passed where
// needed, so no two operations ever share one by accident.
type Journal struct {
	entries []Entry
}

// NewJournal returns a new empty journal.
func NewJournal() *Journal { return &Journal{} }

// Addition records that 'qty' of 'item' was added to the inventory.
func (j *Journal) Addition(item string, qty Quantity) {
	j.entries = append(j.entries, Entry{
		Time:    time.Now(),
		Message: fmt.Sprintf("added %s of %q", qty, item),
	})
}

// Entries returns the journal records in chronological order.
func (j *Journal) Entries() []Entry { return slices.Clone(j.entries) }

// Len returns the number of records.
func (j *Journal) Len() int { return len(j.entries) }
