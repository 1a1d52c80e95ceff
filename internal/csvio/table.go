package csvio

// Table is a delimited file held in memory: a header and rows aligned positionally to it
type Table struct {
	Columns []string
	Rows    [][]string
	Lines   []int // input line each row starts on, when the table was decoded from text
}

// Index maps each column name to its position. A name repeated in the header
// resolves to its first occurrence.
func (t *Table) Index() map[string]int {
	idx := make(map[string]int, len(t.Columns))
	for i, name := range t.Columns {
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	return idx
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Line returns the input line of row i. Tables built in memory count the header as
// line 1 and one line per row after it.
func (t *Table) Line(i int) int {
	if i < len(t.Lines) {
		return t.Lines[i]
	}
	return i + 2
}
