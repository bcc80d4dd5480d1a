package model

// Column names recognised in tabular input. Matching is case-sensitive.
const (
	ColumnDate   = "Date"
	ColumnClose  = "Close"
	ColumnVolume = "Volume"
	ColumnSymbol = "Symbol"
)

// Row is one raw record keyed by column name.
type Row map[string]string

// Table is raw tabular price data as supplied by an upload or a provider.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table declares the named column.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
