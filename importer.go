package stockpile

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// ImportItems merges item quantities found in an external JSON document
// (typically a supplier or warehouse export) into 'inv'.
//
// 'path' is a JSONPath expression selecting the object that holds the
// name→quantity pairs; "$" selects the whole document. Imported items are
// added in alphabetical order so the merge is deterministic regardless of
// the document's layout.
//
// The document is validated in full before the first add, so a bad document
// never leaves the inventory half-merged. Returns the number of items merged.
func ImportItems(inv *Inventory, doc []byte, path string, journal *Journal) (int, error) {
	var jobj any
	if err := json.Unmarshal(doc, &jobj); err != nil {
		return 0, fmt.Errorf("invalid JSON document: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("jsonpath %q: %w", path, err)
	}
	obj, ok := jval.(map[string]any)
	if !ok {
		return 0, fmt.Errorf("jsonpath %q must select an object of item quantities, got %T", path, jval)
	}

	names := slices.Sorted(maps.Keys(obj))
	quantities := make(map[string]Quantity, len(obj))
	for _, name := range names {
		if err := checkItemName(name); err != nil {
			return 0, err
		}
		num, ok := obj[name].(float64)
		if !ok {
			return 0, fmt.Errorf("quantity for %q must be a number, got %T", name, obj[name])
		}
		d := decimal.NewFromFloat(num)
		if !d.IsInteger() {
			return 0, fmt.Errorf("quantity for %q must be a whole number, got %s", name, d)
		}
		quantities[name] = Q(d)
	}

	for _, name := range names {
		if err := inv.Add(name, quantities[name], journal); err != nil {
			return 0, err
		}
	}
	return len(names), nil
}
