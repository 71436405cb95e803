package stockpile

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
)

// DefaultInventoryFile is the conventional location of the persisted
// inventory.
const DefaultInventoryFile = "inventory.json"

// LoadInventory reads the inventory from 'path'.
//
// A missing file is not an error: the tool is expected to start fresh on
// first run. Malformed content is also absorbed into an empty inventory,
// with a diagnostic, so a broken file never blocks the tool. Any other I/O
// failure (e.g. permission denied) is returned as-is: silently replacing an
// unreadable inventory with an empty one would let a later save destroy it.
func LoadInventory(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no inventory file %q, starting fresh", path)
		return NewInventory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", path, err)
	}
	defer f.Close()

	inv, err := DecodeInventory(f)
	if err != nil {
		log.Printf("could not read inventory file %q (%v), using an empty inventory", path, err)
		return NewInventory(), nil
	}
	return inv, nil
}

// SaveInventory writes 'inv' to 'path', overwriting any previous content.
func SaveInventory(path string, inv *Inventory) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open inventory file %q for writing: %w", path, err)
	}
	defer f.Close()

	if err := EncodeInventory(f, inv); err != nil {
		return fmt.Errorf("could not write inventory file %q: %w", path, err)
	}
	return nil
}
