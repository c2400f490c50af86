package table

import (
	"fmt"
	"rowdb/pkg/row"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_EmptySelect(t *testing.T) {
	tbl := New()

	assert.Empty(t, tbl.SelectAll())
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, "[]", tbl.String())
}

func TestTable_InsertPreservesOrder(t *testing.T) {
	tbl := New()
	for i := range 5 {
		tbl.Insert(row.New(uint8(i), fmt.Sprintf("user%d", i), fmt.Sprintf("u%d@example.com", i)))
	}

	rows := tbl.SelectAll()
	require.Len(t, rows, 5)
	for i, r := range rows {
		assert.Equal(t, uint8(i), r.ID)
		assert.Equal(t, fmt.Sprintf("user%d", i), r.Username.String())
	}
	assert.Len(t, tbl.Bytes(), 5*row.Size)
}

func TestTable_DuplicateIDsAllowed(t *testing.T) {
	tbl := New()
	tbl.Insert(row.New(1, "a", "a@a.a"))
	tbl.Insert(row.New(1, "b", "b@b.b"))

	assert.Equal(t, 2, tbl.Len())
}

func TestTable_SelectAllIsSnapshot(t *testing.T) {
	tbl := New()
	tbl.Insert(row.New(1, "cstack", "foo@bar.com"))

	rows := tbl.SelectAll()
	rows[0].ID = 99

	again := tbl.SelectAll()
	require.Len(t, again, 1)
	assert.Equal(t, uint8(1), again[0].ID)
}

func TestTable_SelectDoesNotMutate(t *testing.T) {
	tbl := New()
	tbl.Insert(row.New(1, "cstack", "foo@bar.com"))
	before := tbl.Bytes()

	_ = tbl.SelectAll()
	_ = tbl.String()

	assert.Equal(t, before, tbl.Bytes())
	assert.Equal(t, 1, tbl.Len())
}

func TestFormat(t *testing.T) {
	rows := []row.Row{row.New(1, "a", "a@b.c"), row.New(2, "b", "b@c.d")}

	out := Format(rows)
	assert.True(t, strings.HasPrefix(out, "[Row{ID: 1, "))
	assert.Contains(t, out, "} Row{ID: 2, ")
	assert.True(t, strings.HasSuffix(out, "}]"))
}
