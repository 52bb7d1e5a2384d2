package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
	"github.com/xuri/excelize/v2"
)

type testSheet struct {
	name string
	rows [][]interface{}
}

// buildWorkbook writes sheets into a fresh workbook and returns its bytes.
func buildWorkbook(t *testing.T, sheets ...testSheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName(defaultSheet, s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(s.name, cell, &values))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func rawRow(values ...string) models.RawRow {
	return models.RowFromStrings(values)
}

// sheetOf builds SheetRows from literal rows; the first row is the header.
func sheetOf(name string, rows ...[]string) SheetRows {
	s := SheetRows{Name: name}
	for _, r := range rows {
		s.Rows = append(s.Rows, rawRow(r...))
	}
	return s
}
