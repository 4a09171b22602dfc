package autovalue

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Numbering computes the auto number of a row of a table column.
// Implementations must be deterministic and return non-negative numbers.
type Numbering interface {
	AutoNumber(table, column string, rowIndex int) int
}

// NumberingFunc adapts a function to the Numbering interface.
type NumberingFunc func(table, column string, rowIndex int) int

// AutoNumber calls f(table, column, rowIndex).
func (f NumberingFunc) AutoNumber(table, column string, rowIndex int) int {
	return f(table, column, rowIndex)
}

// DefaultNumbering derives a column prefix from the hash of the
// lower-cased "table.column" and appends the row index. The result has at
// most 7 digits: up to 10,000 column prefixes of 1,000 rows each.
type DefaultNumbering struct{}

// AutoNumber implements Numbering.
func (DefaultNumbering) AutoNumber(table, column string, rowIndex int) int {
	key := strings.ToLower(table + "." + column)
	prefix := int(xxhash.Sum64String(key) % 10_000)
	return prefix*1_000 + rowIndex%1_000
}
