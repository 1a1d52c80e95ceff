package reshape

import (
	"path/filepath"
	"time"

	"csv-formatter/internal/csvio"
	"csv-formatter/internal/logging"
	"csv-formatter/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// TableReader loads the source table
type TableReader interface {
	ReadTable(path string) (*csvio.Table, error)
}

// TableWriter stores the reshaped table
type TableWriter interface {
	WriteTable(path string, t *csvio.Table) error
}

type Engine struct {
	keep        []string
	phone       []string
	phoneColumn string
	missing     map[string]struct{}

	reader TableReader
	writer TableWriter
	log    *logrus.Entry
}

// Option customizes an Engine
type Option func(*Engine)

// WithReader replaces the default filesystem reader
func WithReader(r TableReader) Option {
	return func(e *Engine) {
		if r != nil {
			e.reader = r
		}
	}
}

// WithWriter replaces the default filesystem writer
func WithWriter(w TableWriter) Option {
	return func(e *Engine) {
		if w != nil {
			e.writer = w
		}
	}
}

// WithLogger sets the entry every run logs through
func WithLogger(entry *logrus.Entry) Option {
	return func(e *Engine) {
		if entry != nil {
			e.log = entry
		}
	}
}

// WithMissingValues sets the raw phone values treated as absent
func WithMissingValues(values []string) Option {
	return func(e *Engine) {
		if len(values) == 0 {
			return
		}
		e.missing = make(map[string]struct{}, len(values))
		for _, v := range values {
			e.missing[v] = struct{}{}
		}
	}
}

// NewEngine creates an Engine for the given column sets. Only the empty string counts
// as a missing phone unless WithMissingValues says otherwise.
func NewEngine(cols models.ColumnsConfig, opts ...Option) *Engine {
	e := &Engine{
		keep:        append([]string(nil), cols.Keep...),
		phone:       append([]string(nil), cols.Phone...),
		phoneColumn: cols.Output,
		missing:     map[string]struct{}{"": {}},
		reader:      csvio.NewFileReader(),
		writer:      csvio.NewFileWriter(false),
		log:         logrus.NewEntry(logging.Log),
	}
	if e.phoneColumn == "" {
		e.phoneColumn = models.PhoneNumberColumn
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// FromConfig builds an Engine wired to the filesystem using the full application configuration
func FromConfig(cfg *models.Config, opts ...Option) *Engine {
	base := []Option{
		WithWriter(csvio.NewFileWriter(cfg.Output.CRLF)),
		WithMissingValues(cfg.Input.MissingValues),
	}
	return NewEngine(cfg.Columns, append(base, opts...)...)
}

// Format reads inputPath, unpivots its phone columns into a single column, drops rows
// without a phone number, normalizes the phones to integers and writes the result to
// outputPath. Missing columns are reported on the Result rather than failing the run.
func (e *Engine) Format(inputPath, outputPath string) (*models.Result, error) {
	start := time.Now()
	traceID := uuid.New().String()
	locallog := e.log.WithFields(logrus.Fields{
		"trace_id": traceID,
		"input":    filepath.Base(inputPath),
	})

	// Read
	locallog.Infof("Loading data from %s", inputPath)
	table, err := e.reader.ReadTable(inputPath)
	if err != nil {
		return nil, &ReadError{Path: inputPath, Err: err}
	}
	locallog.Infof("Loaded %d rows of data", table.Len())

	// Resolve columns
	cols := Resolve(table.Columns, e.keep, e.phone)
	if len(cols.MissingKeep) > 0 {
		locallog.WithField("columns", cols.MissingKeep).Warnf("Missing expected columns: %v", cols.MissingKeep)
	}
	if len(cols.MissingPhone) > 0 {
		locallog.WithField("columns", cols.MissingPhone).Warnf("Missing phone columns: %v", cols.MissingPhone)
	}
	locallog.Infof("Using %d main columns and %d phone columns", len(cols.Keep), len(cols.Phone))

	// Unpivot and drop
	locallog.Info("Unpivoting phone number columns")
	records := Unpivot(table, cols)
	before := len(records)
	records = DropMissing(records, e.missing)
	locallog.Infof("Removed %d rows with missing phone numbers", before-len(records))

	// Coerce
	locallog.Info("Converting phone numbers to integers")
	if err := CoercePhones(records); err != nil {
		locallog.WithError(err).Error("Phone number conversion failed, nothing written")
		return nil, err
	}

	// Write
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return nil, &WriteError{Path: outputPath, Err: err}
	}
	locallog.Infof("Saving formatted data to %s", absOutput)
	if err := e.writer.WriteTable(absOutput, e.outputTable(cols, records)); err != nil {
		return nil, &WriteError{Path: absOutput, Err: err}
	}

	result := &models.Result{
		TraceID:          traceID,
		OutputPath:       absOutput,
		InputRows:        table.Len(),
		RowsBefore:       before,
		RowsRemoved:      before - len(records),
		Rows:             len(records),
		KeepColumns:      cols.Keep,
		PhoneColumns:     cols.Phone,
		MissingKeepCols:  cols.MissingKeep,
		MissingPhoneCols: cols.MissingPhone,
		Duration:         time.Since(start),
	}
	locallog.WithField("rows", result.Rows).Infof("Formatted data saved with %d rows", result.Rows)

	return result, nil
}

func (e *Engine) outputTable(cols Columns, records []Record) *csvio.Table {
	header := make([]string, 0, len(cols.Keep)+1)
	header = append(header, cols.Keep...)
	header = append(header, e.phoneColumn)

	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, 0, len(rec.Values)+1)
		row = append(row, rec.Values...)
		rows[i] = append(row, rec.Phone)
	}

	return &csvio.Table{Columns: header, Rows: rows}
}

// SuggestOutputPath places "<prefix><input stem>.csv" next to the input file
func SuggestOutputPath(inputPath, prefix string) string {
	base := filepath.Base(inputPath)
	stem := base[:len(base)-len(filepath.Ext(base))]
	return filepath.Join(filepath.Dir(inputPath), prefix+stem+".csv")
}
