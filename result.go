package mintdb

import "fmt"

// Result is a row-major tabular query result. Columns preserves the order
// reported by the driver; each row has one value per column.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Len returns the number of rows.
func (r *Result) Len() int { return len(r.Rows) }

// Empty reports whether the result has no rows.
func (r *Result) Empty() bool { return len(r.Rows) == 0 }

// Column returns the index of the named column.
func (r *Result) Column(name string) (int, error) {
	for i, c := range r.Columns {
		if c == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no such column: %s", name)
}

// Value returns the value at the given row for the named column.
func (r *Result) Value(row int, column string) (any, error) {
	if row < 0 || row >= len(r.Rows) {
		return nil, fmt.Errorf("row %d out of range", row)
	}
	i, err := r.Column(column)
	if err != nil {
		return nil, err
	}
	return r.Rows[row][i], nil
}
