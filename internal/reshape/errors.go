package reshape

import (
	"errors"
	"fmt"
)

// Kind classifies a failed Format run
type Kind int

const (
	KindUnknown Kind = iota
	KindRead
	KindConversion
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindRead:
		return "ReadError"
	case KindConversion:
		return "ConversionError"
	case KindWrite:
		return "WriteError"
	default:
		return "UnknownError"
	}
}

// ReadError reports an input file that is missing, unreadable or not delimited text with a header
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ConversionError reports a phone value that is not a whole number.
// Line is the input line of the source record.
type ConversionError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("line %d, column %s: cannot convert %q to an integer: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// WriteError reports an output path that could not be written
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// KindOf returns the kind of the first reshape error found in err's chain
func KindOf(err error) Kind {
	var (
		readErr  *ReadError
		convErr  *ConversionError
		writeErr *WriteError
	)
	switch {
	case errors.As(err, &readErr):
		return KindRead
	case errors.As(err, &convErr):
		return KindConversion
	case errors.As(err, &writeErr):
		return KindWrite
	default:
		return KindUnknown
	}
}
