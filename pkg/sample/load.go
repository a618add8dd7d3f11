package sample

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options controls how the sample table is read.
type Options struct {
	// Delimiter of a text table, 0 to detect it from the content.
	Delimiter rune
	// IDColumn names the sample identifier column, empty for the first column.
	IDColumn string
}

type columnIndex struct {
	sample   int
	coverage int
	qcPass   int
	width    int
}

// Load reads the whole sample table at path.
// Any malformed row aborts the load; no partial result is returned.
func Load(path string, opts Options) ([]*Record, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Path: path, Kind: ErrNotFound, Err: err}
	} else if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrUnreadable, Err: err}
	}

	var (
		rows [][]string
		err  error
		pad  bool
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readXlsx(path)
		// excelize drops trailing empty cells
		pad = true
	default:
		rows, err = readDelimited(path, opts.Delimiter)
	}
	if err != nil {
		return nil, err
	}

	records, err := parseRows(path, rows, opts.IDColumn, pad)
	if err != nil {
		return nil, err
	}
	slog.Debug("Load", "path", path, "records", len(records))
	return records, nil
}

func readDelimited(path string, delimiter rune) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrUnreadable, Err: err}
	}

	if delimiter == 0 {
		delimiter = DetermineDelimiter(bytes.NewReader(data))
		slog.Debug("DetermineDelimiter", "path", path, "delimiter", string(delimiter))
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delimiter
	// column count is checked against the header in parseRows
	r.FieldsPerRecord = -1

	var rows [][]string
	for i := 0; ; i++ {
		cols, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &LoadError{Path: path, Row: i, Kind: ErrMalformedRow, Err: parseErr.Err}
			}
			return nil, &LoadError{Path: path, Kind: ErrUnreadable, Err: err}
		}
		rows = append(rows, cols)
	}

	return rows, nil
}

func parseRows(path string, rows [][]string, idColumn string, pad bool) ([]*Record, error) {
	if len(rows) == 0 {
		return nil, &SchemaError{Path: path, Reason: "empty file, header row required"}
	}

	idx, err := readHeader(path, rows[0], idColumn)
	if err != nil {
		return nil, err
	}

	records := make([]*Record, 0, len(rows)-1)
	for i, cols := range rows[1:] {
		row := i + 1
		if pad && len(cols) == 0 {
			continue
		}
		if pad && len(cols) < idx.width {
			cols = append(cols, make([]string, idx.width-len(cols))...)
		}
		if len(cols) != idx.width {
			return nil, &LoadError{
				Path: path,
				Row:  row,
				Kind: ErrMalformedRow,
				Err:  fmt.Errorf("expected %d columns, found %d", idx.width, len(cols)),
			}
		}

		record, err := parseRecord(row, cols, idx)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func readHeader(path string, cols []string, idColumn string) (idx columnIndex, err error) {
	idx = columnIndex{sample: -1, coverage: -1, qcPass: -1, width: len(cols)}
	if idColumn == "" {
		idx.sample = 0
	}

	for col, v := range cols {
		if col == 0 {
			v = strings.TrimPrefix(v, "\ufeff")
		}
		v = strings.TrimSpace(v)
		switch {
		case idColumn != "" && v == idColumn && idx.sample < 0:
			idx.sample = col
		case v == ColCoverage && idx.coverage < 0:
			idx.coverage = col
		case v == ColQCPass && idx.qcPass < 0:
			idx.qcPass = col
		}
	}

	var missing []string
	if idx.sample < 0 {
		missing = append(missing, idColumn)
	}
	if idx.coverage < 0 {
		missing = append(missing, ColCoverage)
	}
	if idx.qcPass < 0 {
		missing = append(missing, ColQCPass)
	}
	if len(missing) > 0 {
		return idx, &SchemaError{Path: path, Missing: missing}
	}

	return idx, nil
}
