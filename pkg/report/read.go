package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"samplesReport/pkg/qc"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// ReadSummary loads a summary file written by WriteSummary.
func ReadSummary(path string) ([]*qc.GroupSummary, error) {
	var (
		groups []*qc.GroupSummary
		in     gocsv.CSVReader
	)

	switch ext(path) {
	case ".xlsx":
		rows, err := readXlsxSheet(path, SummarySheet)
		if err != nil {
			return nil, err
		}
		in = &rowsReader{rows: rows}
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		r := csv.NewReader(bytes.NewReader(data))
		r.Comma = delimiterFor(path)
		in = r
	}

	if err := gocsv.UnmarshalCSV(in, &groups); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return groups, nil
}

func readXlsxSheet(path, sheet string) ([][]string, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer xlsx.Close()
	return xlsx.GetRows(sheet)
}

// rowsReader serves already materialized rows as a gocsv.CSVReader.
type rowsReader struct {
	rows [][]string
	next int
}

func (r *rowsReader) Read() ([]string, error) {
	if r.next >= len(r.rows) {
		return nil, io.EOF
	}
	row := r.rows[r.next]
	r.next++
	return row, nil
}

func (r *rowsReader) ReadAll() ([][]string, error) {
	rows := r.rows[r.next:]
	r.next = len(r.rows)
	return rows, nil
}
