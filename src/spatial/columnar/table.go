// Package columnar implements a fixed-row-count store of named float64
// columns. The row count is set at construction and every column write is
// checked against it, so any set of columns read back from a Table is
// guaranteed to be aligned.
package columnar

import (
	"errors"
	"fmt"
	"sort"
)

var ErrLength = errors.New("columnar: column length mismatch")

type Table struct {
	n    int
	cols map[string][]float64
}

func New(n int) *Table {
	if n < 0 {
		n = 0
	}
	return &Table{n: n, cols: make(map[string][]float64)}
}

// Len returns the row count.
func (t *Table) Len() int {
	return t.n
}

// Get returns the named column, or nil if it was never set. The returned
// slice aliases the stored column.
func (t *Table) Get(name string) []float64 {
	return t.cols[name]
}

// Set replaces the named column. The slice is stored as-is, not copied.
func (t *Table) Set(name string, col []float64) error {
	if len(col) != t.n {
		return fmt.Errorf("%w: column %q has %d rows, table has %d",
			ErrLength, name, len(col), t.n)
	}
	t.cols[name] = col
	return nil
}

// MustSet is Set for writes the caller has already aligned.
func (t *Table) MustSet(name string, col []float64) {
	if err := t.Set(name, col); err != nil {
		panic(err)
	}
}

// Value reads one cell. It panics if the column is absent or i is out of
// range, same as direct slice indexing.
func (t *Table) Value(name string, i int) float64 {
	return t.cols[name][i]
}

// Columns lists the set column names in sorted order.
func (t *Table) Columns() []string {
	names := make([]string, 0, len(t.cols))
	for name := range t.cols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
