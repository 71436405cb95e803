package stockpile

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ErrUnknownItem is returned when an operation targets an item that is not in
// the inventory.
var ErrUnknownItem = errors.New("unknown item")

// DefaultLowStockThreshold is the stock level below which an item is
// considered low.
var DefaultLowStockThreshold = Q(5)

// Inventory maps item names to their current quantity.
//
// Iteration order is the order in which items were first added, so that
// reports are deterministic and stable across a load/save round trip.
type Inventory struct {
	names []string
	index map[string]Quantity
}

// NewInventory returns a new empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		names: make([]string, 0),
		index: make(map[string]Quantity),
	}
}

// checkItemName rejects names that would be unusable as JSON object keys or
// in reports.
func checkItemName(item string) error {
	if strings.TrimSpace(item) == "" {
		return fmt.Errorf("invalid item name %q: must not be blank", item)
	}
	return nil
}

// Add increments the quantity of 'item' by 'qty', creating the entry at 'qty'
// if absent, and records the addition in 'journal' (nil journal is allowed).
// On an invalid item name the inventory is left unchanged.
func (inv *Inventory) Add(item string, qty Quantity, journal *Journal) error {
	if err := checkItemName(item); err != nil {
		return err
	}
	if _, ok := inv.index[item]; !ok {
		inv.names = append(inv.names, item)
	}
	inv.index[item] = inv.index[item].Add(qty)
	if journal != nil {
		journal.Addition(item, qty)
	}
	return nil
}

// Remove decrements the quantity of 'item' by 'qty'. When the result is zero
// or below the entry is deleted entirely, so no non-positive quantity is ever
// retained. Removing an absent item returns ErrUnknownItem and leaves the
// inventory unchanged.
func (inv *Inventory) Remove(item string, qty Quantity) error {
	if err := checkItemName(item); err != nil {
		return err
	}
	current, ok := inv.index[item]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}
	left := current.Sub(qty)
	if !left.IsPositive() {
		inv.delete(item)
		return nil
	}
	inv.index[item] = left
	return nil
}

func (inv *Inventory) delete(item string) {
	delete(inv.index, item)
	inv.names = slices.DeleteFunc(inv.names, func(n string) bool { return n == item })
}

// Has reports whether 'item' is tracked.
func (inv *Inventory) Has(item string) bool {
	_, ok := inv.index[item]
	return ok
}

// Quantity returns the stored quantity for 'item', or zero if absent.
func (inv *Inventory) Quantity(item string) Quantity { return inv.index[item] }

// Len returns the number of tracked items.
func (inv *Inventory) Len() int { return len(inv.names) }

// Items iterates over all entries in insertion order.
func (inv *Inventory) Items() iter.Seq2[string, Quantity] {
	return func(yield func(string, Quantity) bool) {
		for _, name := range inv.names {
			if !yield(name, inv.index[name]) {
				return
			}
		}
	}
}

// LowStock returns the items whose quantity is strictly below 'threshold',
// in insertion order.
func (inv *Inventory) LowStock(threshold Quantity) []string {
	var low []string
	for name, qty := range inv.Items() {
		if qty.LessThan(threshold) {
			low = append(low, name)
		}
	}
	return low
}
