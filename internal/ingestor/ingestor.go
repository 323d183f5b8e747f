package ingestor

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const utf8BOM = "\ufeff"

// Row is one data line of a period export, keyed by header name.
type Row struct {
	Line   int
	Values map[string]string
}

func (r Row) Get(column string) string {
	return strings.TrimSpace(r.Values[column])
}

// Table is a parsed period export. Rows keep file order.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Filter returns a copy of t holding only the rows for which keep is true.
func (t Table) Filter(keep func(Row) bool) Table {
	out := Table{Name: t.Name, Columns: t.Columns}
	for _, r := range t.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

func LoadFile(path string, cfg Config) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Load(filepath.Clean(path), f, cfg)
}

func Load(name string, r io.Reader, cfg Config) (Table, error) {
	reader := csv.NewReader(r)
	if cfg.Delimiter != 0 {
		reader.Comma = cfg.Delimiter
	}
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, fmt.Errorf("%s: empty file", name)
	}
	if err != nil {
		return Table{}, fmt.Errorf("%s: failed to read header: %w", name, err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		columns[i] = strings.TrimSpace(h)
	}

	table := Table{Name: name, Columns: columns}
	for {
		if cfg.MaxRows > 0 && len(table.Rows) >= cfg.MaxRows {
			log.Warn().Str("file", name).Int("maxRows", cfg.MaxRows).Msg("Row limit reached, ignoring remaining rows")
			break
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("%s: failed to read row: %w", name, err)
		}

		line, _ := reader.FieldPos(0)
		values := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				values[col] = record[i]
			}
		}
		table.Rows = append(table.Rows, Row{Line: line, Values: values})
	}

	log.Info().
		Str("file", name).
		Int("columns", len(table.Columns)).
		Int("rows", len(table.Rows)).
		Msg("Loaded dataset")

	return table, nil
}
