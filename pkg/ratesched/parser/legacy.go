package parser

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// openLegacy reads a BIFF workbook and copies its cell values into a new
// excelize workbook. Formatting is not carried over.
func openLegacy(buf []byte) (f *excelize.File, err error) {
	// extrame/xls panics on some truncated streams
	defer func() {
		if r := recover(); r != nil {
			f, err = nil, fmt.Errorf("decode xls: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(buf), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("decode xls: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, ErrEmptyWorkbook
	}

	out := excelize.NewFile()
	defaultSheet := out.GetSheetName(0)
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}

		if i == 0 {
			if err := out.SetSheetName(defaultSheet, ws.Name); err != nil {
				out.Close()
				return nil, fmt.Errorf("sheet %q: %w", ws.Name, err)
			}
		} else if _, err := out.NewSheet(ws.Name); err != nil {
			out.Close()
			return nil, fmt.Errorf("sheet %q: %w", ws.Name, err)
		}

		for r := 0; r <= int(ws.MaxRow); r++ {
			row := legacyRow(ws, r)
			if row == nil {
				continue
			}
			first, last := row.FirstCol(), row.LastCol()
			if last <= first {
				// rows without a ROW record report no column span
				first, last = 0, legacyMaxColumns
			}
			for c := first; c < last; c++ {
				raw := row.Col(c)
				if raw == "" {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					out.Close()
					return nil, err
				}
				if err := out.SetCellValue(ws.Name, cell, legacyValue(raw)); err != nil {
					out.Close()
					return nil, err
				}
			}
		}
	}

	return out, nil
}

// legacyMaxColumns is the column limit of a BIFF8 worksheet.
const legacyMaxColumns = 256

// legacyRow returns row i of ws, or nil when the row holds no cells.
// WorkSheet.Row dereferences a nil row for such indexes.
func legacyRow(ws *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(i)
}

// legacyValue keeps a value numeric only when it round-trips unchanged, so
// code-shaped text such as "1.10" is not collapsed to 1.1.
func legacyValue(raw string) interface{} {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		if strconv.FormatFloat(f, 'f', -1, 64) == raw {
			return f
		}
	}
	return raw
}
