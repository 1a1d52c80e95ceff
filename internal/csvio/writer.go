package csvio

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
)

type FileWriter struct {
	crlf bool
}

// NewFileWriter creates a writer for CSV files on the local filesystem. With crlf set,
// lines end in \r\n instead of \n.
func NewFileWriter(crlf bool) *FileWriter {
	return &FileWriter{crlf: crlf}
}

// WriteTable writes t to path, replacing any existing file. The data goes to a temporary
// file next to path first, so a failed write leaves the destination untouched. An
// existing file keeps its permissions, and a symlink at path is written through.
func (w *FileWriter) WriteTable(path string, t *Table) (err error) {
	mode := os.FileMode(0o644)
	if target, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		path = target
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode().Perm()
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, t, w.crlf); err != nil {
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Encode writes the header and rows of t as comma-separated text
func Encode(out io.Writer, t *Table, crlf bool) error {
	cw := csv.NewWriter(out)
	cw.UseCRLF = crlf

	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}

	return cw.Error()
}
