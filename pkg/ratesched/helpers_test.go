package ratesched

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type testSheet struct {
	name string
	rows [][]interface{}
}

func buildWorkbook(t *testing.T, sheets ...testSheet) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), s.name))
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

// estimateWorkbook builds the two-sheet estimate used across tests.
func estimateWorkbook(t *testing.T) []byte {
	t.Helper()

	return buildWorkbook(t,
		testSheet{name: "ABSTRACT OF COST - PART-1", rows: [][]interface{}{
			{1, "Excavation", "cum", 150, ""},
		}},
		testSheet{name: "MEASUREMENT - PART-1"},
	)
}

func openBytes(t *testing.T, buf []byte) *excelize.File {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}
