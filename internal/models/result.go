package models

import "time"

// Result summarises one reshape run for the caller
type Result struct {
	TraceID    string
	OutputPath string

	InputRows   int
	RowsBefore  int // candidate rows produced by the unpivot
	RowsRemoved int // candidates dropped for a missing phone number
	Rows        int // rows written

	KeepColumns      []string
	PhoneColumns     []string
	MissingKeepCols  []string
	MissingPhoneCols []string

	Duration time.Duration
}

// HasWarnings reports whether any expected column was absent from the input.
func (r *Result) HasWarnings() bool {
	return len(r.MissingKeepCols) > 0 || len(r.MissingPhoneCols) > 0
}
