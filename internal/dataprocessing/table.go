package dataprocessing

import "strings"

// Table is a row-oriented tabular snapshot loaded from an external source.
// Columns keep the original header order; Rows hold raw cell text aligned to
// Columns. There is no uniqueness guarantee on any column.
type Table struct {
	Columns []string
	Rows    [][]string

	index map[string]int
}

// NewTable builds a table from a header row and data rows. Header names are
// whitespace-trimmed. When a header name repeats, the first occurrence wins
// for lookups.
func NewTable(columns []string, rows [][]string) *Table {
	t := &Table{
		Columns: make([]string, len(columns)),
		Rows:    rows,
		index:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		name := strings.TrimSpace(col)
		t.Columns[i] = name
		if _, exists := t.index[name]; !exists {
			t.index[name] = i
		}
	}
	return t
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	if t == nil {
		return 0, false
	}
	idx, ok := t.index[name]
	return idx, ok
}

// Cell returns the raw text of the named column in the given row. The second
// return is false when the column does not exist or the row is too short,
// which ragged CSV rows can be.
func (t *Table) Cell(row []string, name string) (string, bool) {
	idx, ok := t.ColumnIndex(name)
	if !ok || idx >= len(row) {
		return "", false
	}
	return row[idx], true
}

// MissingColumns reports which of the wanted columns are absent, in the order
// they were asked for.
func (t *Table) MissingColumns(wanted ...string) []string {
	var missing []string
	for _, name := range wanted {
		if _, ok := t.ColumnIndex(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
