package tabular

import (
	"math"
	"strconv"
	"strings"
)

// ColumnKind classifies a column by its cell contents
type ColumnKind string

const (
	ColumnNumeric ColumnKind = "numeric"
	ColumnText    ColumnKind = "text"
)

// Table is an in-memory view of a delimited or spreadsheet file:
// a header row plus zero or more data rows of raw cell text.
// Tables are value objects; nothing mutates them after load.
type Table struct {
	Columns []string
	Rows    [][]string
}

// RowCount returns the number of data rows (the header is not counted).
func (t *Table) RowCount() int { return len(t.Rows) }

// ColCount returns the number of columns declared by the header.
func (t *Table) ColCount() int { return len(t.Columns) }

// IsScalar reports whether the table resolves to a single value.
func (t *Table) IsScalar() bool { return t.RowCount() == 1 && t.ColCount() == 1 }

// Cell returns the raw text of the cell at (row, col), or "" when the row is
// ragged and does not reach that column.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// ColumnIndex returns the index of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Kind infers the kind of a column: numeric when every non-empty cell parses
// as a float (an all-empty column stays text).
func (t *Table) Kind(col int) ColumnKind {
	seen := false
	for row := range t.Rows {
		cell := strings.TrimSpace(t.Cell(row, col))
		if cell == "" {
			continue
		}
		seen = true
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return ColumnText
		}
	}
	if !seen {
		return ColumnText
	}
	return ColumnNumeric
}

// Kinds returns the inferred kind of every column, keyed by column name.
func (t *Table) Kinds() map[string]string {
	kinds := make(map[string]string, len(t.Columns))
	for i, name := range t.Columns {
		kinds[name] = string(t.Kind(i))
	}
	return kinds
}

// FloatColumn parses a column as floats. Empty or unparseable cells become NaN
// so that tolerance checks can apply NaN-equals-NaN semantics.
func (t *Table) FloatColumn(col int) []float64 {
	out := make([]float64, t.RowCount())
	for row := range t.Rows {
		cell := strings.TrimSpace(t.Cell(row, col))
		v, err := strconv.ParseFloat(cell, 64)
		if cell == "" || err != nil {
			out[row] = math.NaN()
			continue
		}
		out[row] = v
	}
	return out
}

// TextColumn returns a column's raw cell values.
func (t *Table) TextColumn(col int) []string {
	out := make([]string, t.RowCount())
	for row := range t.Rows {
		out[row] = t.Cell(row, col)
	}
	return out
}
