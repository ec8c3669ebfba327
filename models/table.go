package models

// Row is one spreadsheet record keyed by its exact column header.
type Row map[string]string

// Table is a snapshot of one logical dataset as returned by a data source.
// Column names are significant, including embedded spaces.
type Table struct {
	Dataset string
	Columns []string
	Rows    []Row
}

// NewTable builds a table, padding every row so each column is present.
func NewTable(dataset string, columns []string, rows []Row) *Table {
	t := &Table{Dataset: dataset, Columns: append([]string(nil), columns...)}
	for _, r := range rows {
		padded := make(Row, len(columns))
		for _, c := range columns {
			padded[c] = r[c]
		}
		t.Rows = append(t.Rows, padded)
	}
	return t
}

// EmptyTable is what a data source hands back when it has nothing to offer.
func EmptyTable(dataset string) *Table {
	return &Table{Dataset: dataset}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *Table) Empty() bool { return t.Len() == 0 }

// HasColumn reports whether the header row contained name.
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

// Get returns the raw cell value, or "" when the row or column is absent.
func (t *Table) Get(i int, column string) string {
	if i < 0 || i >= t.Len() {
		return ""
	}
	return t.Rows[i][column]
}

// Clone returns a deep copy so callers can never observe mutation.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{
		Dataset: t.Dataset,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, r := range t.Rows {
		cp := make(Row, len(r))
		for k, v := range r {
			cp[k] = v
		}
		out.Rows[i] = cp
	}
	return out
}
