package parser

import (
	"github.com/xuri/excelize/v2"
)

// SheetExtent returns the number of the last row element in a sheet,
// counting rows that carry only styling. GetRows drops such trailing rows.
func SheetExtent(f *excelize.File, sheetName string) (int, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return 0, err
	}

	n := 0
	for rows.Next() {
		n++
	}
	if err := rows.Close(); err != nil {
		return 0, err
	}
	return n, nil
}

// UsedColumns returns the 1-based index of the right-most non-empty cell
// across all rows, or 0 for an empty grid.
func UsedColumns(rows [][]string) int {
	maxCol := 0
	for _, row := range rows {
		for colIdx := len(row) - 1; colIdx >= 0; colIdx-- {
			if row[colIdx] != "" {
				if colIdx+1 > maxCol {
					maxCol = colIdx + 1
				}
				break
			}
		}
	}
	return maxCol
}
