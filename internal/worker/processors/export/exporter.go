package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"

	"awinfeed/internal/logger"
	"awinfeed/internal/services/shopify"

	"github.com/cockroachdb/errors"
)

// Row is anything that can report a value per column name.
type Row interface {
	Get(column string) (string, bool)
}

// MapRow adapts a plain map to Row.
type MapRow map[string]string

func (m MapRow) Get(column string) (string, bool) {
	v, ok := m[column]
	return v, ok
}

// Project returns the values of row for exactly the given columns, in order.
// Columns the row does not know are empty.
func Project(row Row, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		if v, ok := row.Get(c); ok {
			out[i] = v
		}
	}
	return out
}

type Exporter struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *Exporter {
	return &Exporter{
		logger: logger,
	}
}

// WriteRows writes a header row followed by one projected row per record.
func (e *Exporter) WriteRows(w io.Writer, rows []Row, columns []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	for _, row := range rows {
		if err := cw.Write(Project(row, columns)); err != nil {
			return errors.Wrap(err, "failed to write row")
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable writes rows to a CSV file at path, replacing any existing file.
// With no rows the file holds only the header.
func (e *Exporter) WriteTable(path string, rows []Row, columns []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := e.WriteRows(f, rows, columns); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}

	e.logger.Debug("Wrote %d rows to %s", len(rows), path)
	return nil
}

// WriteRaw dumps products as Shopify returned them. The header is the sorted
// union of top-level keys; nested values are written as JSON. With no
// products there is no header to write, so any dump left by an earlier run is
// removed instead.
func (e *Exporter) WriteRaw(path string, products []shopify.Record) error {
	if len(products) == 0 {
		e.logger.Info("No products to write to %s", path)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to remove stale %s", path)
		}
		return nil
	}

	keys := map[string]struct{}{}
	rows := make([]Row, len(products))
	for i, p := range products {
		row := make(MapRow, len(p))
		for k := range p {
			keys[k] = struct{}{}
			row[k] = rawValue(p, k)
		}
		rows[i] = row
	}

	columns := make([]string, 0, len(keys))
	for k := range keys {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	return e.WriteTable(path, rows, columns)
}

func rawValue(p shopify.Record, key string) string {
	switch p[key].(type) {
	case nil:
		return ""
	case string, json.Number, bool, float64, int, int64:
		return p.String(key, "")
	}
	encoded, err := json.Marshal(p[key])
	if err != nil {
		return ""
	}
	return string(encoded)
}
