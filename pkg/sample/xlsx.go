package sample

import (
	"errors"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// readXlsx returns the rows of the first sheet.
func readXlsx(path string) ([][]string, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrUnreadable, Err: err}
	}
	defer func() {
		if err := xlsx.Close(); err != nil {
			slog.Error("Close xlsx", "path", path, "err", err)
		}
	}()

	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Path: path, Kind: ErrUnreadable, Err: errors.New("workbook has no sheets")}
	}

	rows, err := xlsx.GetRows(sheets[0])
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrUnreadable, Err: err}
	}
	return rows, nil
}
