package ioschema

import "fmt"

// formatCollationSQL formats the statement that changes the column to
// VARCHAR with "C" collation.
func formatCollationSQL(table, column string, varchar int) string {
	return fmt.Sprintf(
		`ALTER TABLE %s ALTER COLUMN %s TYPE VARCHAR(%d) COLLATE "C"`,
		table, column, varchar,
	)
}
