// Package autovalue generates deterministic placeholder values for
// columns that a test dataset marks as auto-generated.
//
// An Engine keeps a row index per table column. The index starts at 0,
// grows by one on every generated value, and is cleared by Reset. The
// index is turned into an auto number by a Numbering strategy, and the
// auto number into a string by Synthesize according to the column type.
//
// One Engine serves one test-run lifecycle. Engines are safe for
// concurrent use, but concurrent tests sharing an Engine get row indices
// in an unpredictable order, so each concurrent run should own its Engine.
package autovalue

import (
	"log/slog"
	"sync"
)

type columnKey struct {
	table, column string
}

// Engine generates auto values for table columns.
type Engine struct {
	mu        sync.Mutex
	rows      map[columnKey]int
	numbering Numbering
}

// Option configures an Engine.
type Option func(*Engine)

// OptNumbering sets the numbering strategy. The default is
// DefaultNumbering.
func OptNumbering(n Numbering) Option {
	return func(e *Engine) {
		if n != nil {
			e.numbering = n
		}
	}
}

// New creates an Engine with empty row counters.
func New(opts ...Option) *Engine {
	res := &Engine{
		rows:      make(map[columnKey]int),
		numbering: DefaultNumbering{},
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Generate returns the next auto value for the column of a table.
// It fails with UnsupportedDataTypeError if the type has no
// synthesis rule. A failed call still consumes a row index.
func (e *Engine) Generate(table, column string, dt DataType) (string, error) {
	idx := e.nextRowIndex(table, column)
	n := e.numbering.AutoNumber(table, column, idx)
	res, err := Synthesize(dt, column, n)
	if err != nil {
		return "", err
	}
	slog.Debug("Generated auto value",
		"table", table,
		"column", column,
		"type", dt.String(),
		"value", res,
	)
	return res, nil
}

// Reset clears all row counters.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	clear(e.rows)
}

func (e *Engine) nextRowIndex(table, column string) int {
	key := columnKey{table: table, column: column}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx, ok := e.rows[key]
	if ok {
		idx++
	}
	e.rows[key] = idx
	return idx
}
