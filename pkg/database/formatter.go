package database

import (
	"rowdb/pkg/row"
	"strconv"
)

// Columns are the display headers for the table's schema.
var Columns = []string{"id", "username", "email"}

// FormatRows converts rows to display strings with the zero padding removed.
// The select debug output keeps the padding; this form is for tabular views.
func FormatRows(rows []row.Row) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.Itoa(int(r.ID)),
			r.Username.String(),
			r.Email.String(),
		})
	}
	return out
}
