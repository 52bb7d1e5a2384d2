package parser

import (
	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
	"github.com/xuri/excelize/v2"
)

// ExtractRows reads every row of a sheet as a RawRow.
// Blank rows are kept so that index i is worksheet row i+1.
func ExtractRows(f *excelize.File, sheetName string) ([]models.RawRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	result := make([]models.RawRow, len(rows))
	for i, row := range rows {
		result[i] = models.RowFromStrings(row)
	}
	return result, nil
}
