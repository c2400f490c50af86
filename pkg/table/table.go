// Package table holds the in-memory, append-only row store.
//
// Rows are kept in their fixed-stride serialized form, one after another in
// a single buffer: row i lives at [i*row.Size, (i+1)*row.Size). There is no
// capacity bound and no key uniqueness check.
package table

import (
	"fmt"
	"rowdb/pkg/row"
	"strings"
)

// Table is an ordered, append-only sequence of rows. It is not safe for
// concurrent use; a single owner drives it.
type Table struct {
	data    []byte
	numRows int
}

// New creates an empty table.
func New() *Table {
	return &Table{}
}

// Insert appends r after the last stored row. It never fails.
func (t *Table) Insert(r row.Row) {
	start := len(t.data)
	t.data = append(t.data, make([]byte, row.Size)...)
	r.PutBytes(t.data[start : start+row.Size])
	t.numRows++
}

// SelectAll returns every row in insertion order. The slice is a copy;
// modifying it does not affect the table.
func (t *Table) SelectAll() []row.Row {
	rows := make([]row.Row, 0, t.numRows)
	for i := range t.numRows {
		rows = append(rows, t.rowAt(i))
	}
	return rows
}

// Len returns the number of stored rows.
func (t *Table) Len() int {
	return t.numRows
}

// Bytes returns a copy of the backing buffer, Len()*row.Size bytes long.
func (t *Table) Bytes() []byte {
	out := make([]byte, len(t.data))
	copy(out, t.data)
	return out
}

func (t *Table) rowAt(i int) row.Row {
	off := i * row.Size
	r, err := row.FromBytes(t.data[off : off+row.Size])
	if err != nil {
		panic(fmt.Sprintf("table: corrupt row slot %d: %v", i, err))
	}
	return r
}

// Format renders rows in the debug form printed by select: a bracketed,
// space-separated list with padding visible.
func Format(rows []row.Row) string {
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// String returns the debug form of the whole table.
func (t *Table) String() string {
	return Format(t.SelectAll())
}
