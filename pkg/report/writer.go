package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"samplesReport/pkg/qc"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

// SummaryWriter persists summary rows to path.
type SummaryWriter func(path string, groups []*qc.GroupSummary) error

// SummarySheet is the sheet name of xlsx summaries.
var SummarySheet = "samples_summary"

// delimiters of text summaries by lower-case file extension
var delimiters = map[string]rune{
	".csv": ',',
	".tsv": '\t',
	".txt": '\t',
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func delimiterFor(path string) rune {
	if comma, ok := delimiters[ext(path)]; ok {
		return comma
	}
	return ','
}

// WriterFor picks the writer for path by extension: xlsx for .xlsx, tab
// separated for .tsv/.txt, CSV otherwise.
func WriterFor(path string) SummaryWriter {
	if ext(path) == ".xlsx" {
		return WriteXlsx
	}
	return delimitedWriter(delimiterFor(path))
}

// WriteSummary writes groups to path in the format its extension implies.
func WriteSummary(path string, groups []*qc.GroupSummary) error {
	return WriterFor(path)(path, groups)
}

func delimitedWriter(comma rune) SummaryWriter {
	return func(path string, groups []*qc.GroupSummary) (err error) {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()

		w := csv.NewWriter(f)
		w.Comma = comma
		if err = gocsv.MarshalCSV(&groups, gocsv.NewSafeCSVWriter(w)); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		w.Flush()
		return w.Error()
	}
}

// WriteXlsx writes groups to a single SummarySheet workbook.
func WriteXlsx(path string, groups []*qc.GroupSummary) error {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	if _, err := xlsx.NewSheet(SummarySheet); err != nil {
		return err
	}
	if err := xlsx.SetSheetRow(SummarySheet, "A1", &qc.SummaryTitle); err != nil {
		return err
	}
	for i, g := range groups {
		row := g.Row()
		if err := xlsx.SetSheetRow(SummarySheet, CoordinatesToCellName(1, i+2), &row); err != nil {
			return err
		}
	}
	if err := xlsx.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	return xlsx.SaveAs(path)
}

func CoordinatesToCellName(col int, row int, abs ...bool) string {
	return simpleUtil.HandleError(
		excelize.CoordinatesToCellName(
			col, row, abs...,
		),
	)
}
