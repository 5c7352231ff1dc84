package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RawRow is one extracted table row: a header-key to cell mapping that
// remembers the order keys were first set in. Header grouping depends on a
// reproducible key order, so the native map alone is not enough.
type RawRow struct {
	keys  []string
	cells map[string]Cell
}

func NewRawRow() RawRow {
	return RawRow{cells: make(map[string]Cell)}
}

// Set stores a cell under key, appending the key to the order on first use.
func (r *RawRow) Set(key string, c Cell) {
	if r.cells == nil {
		r.cells = make(map[string]Cell)
	}
	if _, ok := r.cells[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.cells[key] = c
}

func (r RawRow) Get(key string) (Cell, bool) {
	c, ok := r.cells[key]
	return c, ok
}

func (r RawRow) Has(key string) bool {
	_, ok := r.cells[key]
	return ok
}

// Keys returns the header keys in first-set order.
func (r RawRow) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r RawRow) Len() int { return len(r.keys) }

// PresentKeys returns the keys whose cells hold a non-empty value, in order.
func (r RawRow) PresentKeys() []string {
	out := make([]string, 0, len(r.keys))
	for _, k := range r.keys {
		if !r.cells[k].Empty() {
			out = append(out, k)
		}
	}
	return out
}

func (r RawRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := r.cells[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object into the row, keeping the document's key
// order. Non-scalar values are skipped; the extractor only emits scalars.
func (r *RawRow) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("row: expected object, got %v", tok)
	}

	*r = NewRawRow()
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key := kt.(string)

		vt, err := dec.Token()
		if err != nil {
			return err
		}
		switch v := vt.(type) {
		case string:
			r.Set(key, Text(v))
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				r.Set(key, Text(v.String()))
			} else {
				r.Set(key, Number(f))
			}
		case bool:
			r.Set(key, Text(fmt.Sprintf("%v", v)))
		case nil:
			r.Set(key, Text(""))
		case json.Delim:
			if err := skipCompound(dec); err != nil {
				return err
			}
		}
	}
	_, err = dec.Token() // closing brace
	return err
}

// skipCompound consumes the remainder of a nested array/object whose opening
// delimiter has already been read.
func skipCompound(dec *json.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
