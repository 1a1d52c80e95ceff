package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNoHeader is returned when the input holds no header line
var ErrNoHeader = errors.New("no header row")

type FileReader struct{}

// NewFileReader creates a reader for CSV files on the local filesystem
func NewFileReader() *FileReader {
	return &FileReader{}
}

// ReadTable opens the file at path and decodes it into a Table
func (r *FileReader) ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	return Decode(f)
}

// Decode parses comma-separated UTF-8 text with a header line. A leading byte order
// mark is dropped, blank lines are skipped and rows shorter than the header are padded
// with empty values. A row longer than the header or a field that is not valid UTF-8
// is an error.
func Decode(in io.Reader) (*Table, error) {
	// Without a BOM the bytes pass through untouched so invalid text can be reported
	cr := csv.NewReader(transform.NewReader(in, unicode.BOMOverride(transform.Nop)))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	} else if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if err := checkUTF8(cr, header); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	table := &Table{Columns: header}
	width := len(header)

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		line, _ := cr.FieldPos(0)
		if len(rec) > width {
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, width, len(rec))
		}
		if err := checkUTF8(cr, rec); err != nil {
			return nil, err
		}
		for len(rec) < width {
			rec = append(rec, "")
		}

		table.Rows = append(table.Rows, rec)
		table.Lines = append(table.Lines, line)
	}

	return table, nil
}

func checkUTF8(cr *csv.Reader, rec []string) error {
	for i, field := range rec {
		if !utf8.ValidString(field) {
			line, col := cr.FieldPos(i)
			return fmt.Errorf("line %d, column %d: %w", line, col, encoding.ErrInvalidUTF8)
		}
	}
	return nil
}
