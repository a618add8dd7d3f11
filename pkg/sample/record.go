package sample

import (
	"math"
	"strconv"
	"strings"
)

// column names of the sample metadata table
const (
	ColSample   = "sample"
	ColCoverage = "pct_covered_bases"
	ColQCPass   = "qc_pass"
)

// Record is one row of the sample metadata table.
type Record struct {
	Row             int // 1-based data row, header excluded
	SampleID        string
	PctCoveredBases float64
	QCPass          bool
}

var boolValues = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
}

// ParseBool normalizes the spellings spreadsheets and pandas exports use for
// booleans (TRUE, False, 1, yes, ...).
func ParseBool(s string) (bool, bool) {
	v, ok := boolValues[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

func parseRecord(row int, cols []string, idx columnIndex) (*Record, error) {
	var record = &Record{
		Row:      row,
		SampleID: cols[idx.sample],
	}

	coverage := strings.TrimSpace(cols[idx.coverage])
	pct, err := strconv.ParseFloat(coverage, 64)
	if err != nil || math.IsNaN(pct) || math.IsInf(pct, 0) {
		return nil, &TypeMismatchError{Row: row, Column: ColCoverage, Value: coverage, Want: "number"}
	}
	record.PctCoveredBases = pct

	pass, ok := ParseBool(cols[idx.qcPass])
	if !ok {
		return nil, &TypeMismatchError{Row: row, Column: ColQCPass, Value: cols[idx.qcPass], Want: "boolean"}
	}
	record.QCPass = pass

	return record, nil
}
