package stockpile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains code to persist the inventory as a single JSON object,
// in a way that is human-readable and git-friendly: keys keep their insertion
// order and the object is written with a stable 4-space indentation.
//
// The overall strategy:
//   Encode: build the object field by field with jsonObjectWriter (to control
//           key order), then re-indent the raw bytes.
//   Decode: walk the JSON tokens one by one instead of unmarshalling into a
//           Go map, so the on-disk key order is preserved.

const indent = "    "

// EncodeInventory writes 'inv' to w as an indented JSON object, keys in
// insertion order.
func EncodeInventory(w io.Writer, inv *Inventory) error {
	var jw jsonObjectWriter
	for name, qty := range inv.Items() {
		jw.Field(name, qty)
	}
	raw, err := jw.Object()
	if err != nil {
		return fmt.Errorf("could not encode inventory: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", indent); err != nil {
		return fmt.Errorf("could not indent inventory: %w", err)
	}
	out.WriteString("\n")

	_, err = w.Write(out.Bytes())
	return err
}

// DecodeInventory reads a JSON object of item names to whole-number
// quantities from r, preserving the key order of the document.
func DecodeInventory(r io.Reader) (*Inventory, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("could not read inventory: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("inventory must be a JSON object, got %v", tok)
	}

	inv := NewInventory()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("could not read item name: %w", err)
		}
		name := keyTok.(string) // inside an object, keys are always strings

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("could not read quantity for %q: %w", name, err)
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("quantity for %q must be a number, got %v", name, valTok)
		}
		d, err := decimal.NewFromString(num.String())
		if err != nil {
			return nil, fmt.Errorf("quantity for %q: %w", name, err)
		}
		if !d.IsInteger() {
			return nil, fmt.Errorf("quantity for %q must be a whole number, got %s", name, d)
		}

		if inv.Has(name) {
			return nil, fmt.Errorf("item %q is already defined", name)
		}
		if err := inv.Add(name, Q(d), nil); err != nil {
			return nil, err
		}
	}

	// consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("could not read inventory: %w", err)
	}
	return inv, nil
}
