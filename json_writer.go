package stockpile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a specific field order,
// something encoding/json cannot do for maps (it sorts keys alphabetically).
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Field appends a single "name": value pair to the object being built.
func (w *jsonObjectWriter) Field(name string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	rawName, err := json.Marshal(name)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal field name %q: %w", name, err)
		return w
	}
	rawValue, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal field %q: %w", name, err)
		return w
	}
	w.Write(rawName)
	w.WriteString(":")
	w.Write(rawValue)
	w.WriteString(",")
	return w
}

// Object returns the accumulated fields wrapped in braces, or the first error
// encountered while building.
func (w *jsonObjectWriter) Object() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	body := bytes.TrimSuffix(w.Bytes(), []byte(","))
	var out bytes.Buffer
	out.WriteString("{")
	out.Write(body)
	out.WriteString("}")
	return out.Bytes(), nil
}
