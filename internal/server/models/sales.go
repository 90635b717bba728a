package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SalesRecord is one row of the backing tabular source. Columns holds the
// header names in file order and Values the typed cell values at the same
// positions. JSON output keeps the column order.
type SalesRecord struct {
	Columns []string
	Values  []any
}

// Get returns the value of the named column.
func (r SalesRecord) Get(column string) (any, bool) {
	for i, c := range r.Columns {
		if c == column {
			return r.Values[i], true
		}
	}
	return nil, false
}

func (r SalesRecord) MarshalJSON() ([]byte, error) {
	if len(r.Columns) != len(r.Values) {
		return nil, fmt.Errorf("sales record: %d columns but %d values", len(r.Columns), len(r.Values))
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.Values[i])
		if err != nil {
			return nil, fmt.Errorf("sales record column %q: %w", c, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
