package table

import (
	"fmt"
)

// Table is an ordered sequence of rows sharing a named, ordered set of columns.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// New creates an empty table with the given columns.
// Column names must be unique.
func New(columns []string) (*Table, error) {
	t := &Table{
		columns: make([]string, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for _, name := range columns {
		if _, ok := t.index[name]; ok {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		t.index[name] = len(t.columns)
		t.columns = append(t.columns, name)
	}
	return t, nil
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// AppendRow adds a row at the end of the table.
// Short rows are padded with absent values; long rows are rejected.
func (t *Table) AppendRow(values []Value) error {
	if len(values) > len(t.columns) {
		return fmt.Errorf("row has %d fields, table has %d columns", len(values), len(t.columns))
	}
	row := make([]Value, len(t.columns))
	copy(row, values)
	for i := len(values); i < len(row); i++ {
		row[i] = Absent()
	}
	t.rows = append(t.rows, row)
	return nil
}

// Row returns a view of the i-th row.
func (t *Table) Row(i int) Row {
	return Row{t: t, i: i}
}

// SetColumn assigns fn(row) to the named column for every row.
// An existing column is updated in place; a new column is appended at the end.
func (t *Table) SetColumn(name string, fn func(Row) Value) {
	col, ok := t.index[name]
	if !ok {
		col = len(t.columns)
		t.index[name] = col
		t.columns = append(t.columns, name)
		for i := range t.rows {
			t.rows[i] = append(t.rows[i], Absent())
		}
	}
	for i := range t.rows {
		t.rows[i][col] = fn(Row{t: t, i: i})
	}
}

// Records returns the header followed by every row rendered as text.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, len(t.rows)+1)
	out = append(out, t.Columns())
	for _, row := range t.rows {
		out = append(out, renderRow(row))
	}
	return out
}

// Record returns the i-th row rendered as text.
func (t *Table) Record(i int) []string {
	return renderRow(t.rows[i])
}

func renderRow(row []Value) []string {
	record := make([]string, len(row))
	for i, v := range row {
		record[i] = v.String()
	}
	return record
}

// Row is a read-only view of one table row.
type Row struct {
	t *Table
	i int
}

// Index returns the row's position in the table.
func (r Row) Index() int { return r.i }

// Get returns the value in the named column. The second result is false
// when the table has no such column.
func (r Row) Get(name string) (Value, bool) {
	col, ok := r.t.index[name]
	if !ok {
		return Absent(), false
	}
	return r.t.rows[r.i][col], true
}

// Values returns a copy of the row's values in column order.
func (r Row) Values() []Value {
	out := make([]Value, len(r.t.rows[r.i]))
	copy(out, r.t.rows[r.i])
	return out
}
