package reshape

import "csv-formatter/internal/csvio"

// Record is one row of the unpivoted table
type Record struct {
	Line   int      // input line of the originating source record
	Column string   // phone column the value came from
	Values []string // kept column values, shared by every record of the same source row
	Phone  string
}

// Unpivot fans each source row out into one record per available phone column,
// rows in input order and phone columns in declared order. Empty phone values are
// kept here; DropMissing removes them.
func Unpivot(table *csvio.Table, cols Columns) []Record {
	idx := table.Index()

	keepIdx := make([]int, len(cols.Keep))
	for i, name := range cols.Keep {
		keepIdx[i] = idx[name]
	}
	phoneIdx := make([]int, len(cols.Phone))
	for i, name := range cols.Phone {
		phoneIdx[i] = idx[name]
	}

	records := make([]Record, 0, len(table.Rows)*len(phoneIdx))
	for r, row := range table.Rows {
		values := make([]string, len(keepIdx))
		for i, j := range keepIdx {
			values[i] = row[j]
		}

		for i, j := range phoneIdx {
			records = append(records, Record{
				Line:   table.Line(r),
				Column: cols.Phone[i],
				Values: values,
				Phone:  row[j],
			})
		}
	}

	return records
}

// DropMissing filters out records whose phone value is one of the missing markers.
// The input slice is reused.
func DropMissing(records []Record, missing map[string]struct{}) []Record {
	kept := records[:0]
	for _, rec := range records {
		if _, ok := missing[rec.Phone]; ok {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}
