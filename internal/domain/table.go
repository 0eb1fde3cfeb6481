package domain

import (
	"fmt"
	"time"
)

// Row maps column names to scalar values. Supported scalar types are
// int64, float64, string, bool, and time.Time; absent values are nil.
type Row map[string]any

// Table is an ordered sequence of rows with an explicit column order.
// Tables are immutable once handed to another stage: a stage that derives
// new columns works on a Clone and publishes the clone, never the input.
type Table struct {
	cols []string
	rows []Row
}

// NewTable creates an empty table with the given column order.
func NewTable(cols ...string) *Table {
	return &Table{cols: append([]string(nil), cols...)}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns a copy of the column order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// HasColumn reports whether the table declares the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.cols {
		if c == name {
			return true
		}
	}
	return false
}

// Row returns the i-th row. Callers outside the owning stage must treat the
// returned map as read-only.
func (t *Table) Row(i int) Row { return t.rows[i] }

// AppendRow adds a row to the table. Used by the stage building the table.
func (t *Table) AppendRow(r Row) { t.rows = append(t.rows, r) }

// AddColumns registers column names at the end of the column order,
// skipping any already present.
func (t *Table) AddColumns(names ...string) {
	for _, n := range names {
		if !t.HasColumn(n) {
			t.cols = append(t.cols, n)
		}
	}
}

// Clone returns a deep copy of the table. Derivation stages clone their
// input, mutate the clone while building, and publish the result.
func (t *Table) Clone() *Table {
	out := &Table{
		cols: append([]string(nil), t.cols...),
		rows: make([]Row, len(t.rows)),
	}
	for i, r := range t.rows {
		nr := make(Row, len(r))
		for k, v := range r {
			nr[k] = v
		}
		out.rows[i] = nr
	}
	return out
}

// Column returns the values of the named column in row order.
func (t *Table) Column(name string) []any {
	out := make([]any, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[name]
	}
	return out
}

// FloatColumn returns the named column coerced to float64, skipping rows
// whose value is absent or not numeric.
func (t *Table) FloatColumn(name string) []float64 {
	out := make([]float64, 0, len(t.rows))
	for _, r := range t.rows {
		if f, ok := AsFloat(r[name]); ok {
			out = append(out, f)
		}
	}
	return out
}

// AsFloat coerces a scalar to float64.
func AsFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case int:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uint32:
		return float64(x), true
	default:
		return 0, false
	}
}

// AsInt coerces a scalar to int64.
func AsInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int32:
		return int64(x), true
	case int:
		return int64(x), true
	case uint64:
		return int64(x), true
	case uint32:
		return int64(x), true
	case float64:
		return int64(x), true
	default:
		return 0, false
	}
}

// AsBool coerces a scalar to bool.
func AsBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// AsTime coerces a scalar to time.Time.
func AsTime(v any) (time.Time, bool) {
	ts, ok := v.(time.Time)
	return ts, ok
}

// Key normalizes an identifier value for use as a map key, so that a
// customer or product id joins consistently regardless of integer width.
func Key(v any) any {
	if n, ok := AsInt(v); ok {
		return n
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
