// Package estimate inserts catalog items into the paired cost-abstract and
// measurement sheets of an estimate workbook.
package estimate

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var (
	// ErrSheetNotFound indicates a sheet named by a pair is missing from the workbook.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrPartNotFound indicates no sheet pair exists for a part number.
	ErrPartNotFound = errors.New("part not found")
)

// DefaultBlankRows is the number of blank measurement rows under each header row.
const DefaultBlankRows = 3

// Column counts of the two sheet layouts.
const (
	// S.No, Description, Unit, Quantity, Rate, Amount
	costColumns = 6
	// S.No, Description, Nos, Length, Breadth, Depth, Unit
	measurementColumns = 7
)

// Options configures Insert.
type Options struct {
	// InsertAtRow is the 0-based cost grid index to splice the new row at.
	// Nil, negative or past-the-end values append.
	InsertAtRow *int
	// BlankRows is the number of blank measurement rows to append.
	// If nil, defaults to DefaultBlankRows.
	BlankRows *int
	// Logger receives debug output. Nil means no logging.
	Logger *zap.Logger
}

// ShouldBlankRows returns the number of blank measurement rows to append.
func (o Options) ShouldBlankRows() int {
	if o.BlankRows != nil && *o.BlankRows >= 0 {
		return *o.BlankRows
	}
	return DefaultBlankRows
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// Insert adds item to both sheets of pair under one serial number.
//
// The serial is derived from the cost sheet alone. The cost row is spliced at
// opts.InsertAtRow or appended; the measurement block is always appended.
// Column widths, custom row heights and the sheets' print areas are kept.
func Insert(f *excelize.File, pair models.SheetPair, item models.CatalogItem, opts Options) (*models.InsertResult, error) {
	for _, name := range []string{pair.CostSheetName, pair.MeasurementSheetName} {
		if !hasSheet(f, name) {
			return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
		}
	}

	costGrid, err := f.GetRows(pair.CostSheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read cost sheet: %w", err)
	}
	serial := NextSerial(costGrid)

	styles := &styleSource{f: f}

	costRow, err := insertCostRow(f, pair.CostSheetName, costGrid, serial, item, opts.InsertAtRow, styles)
	if err != nil {
		return nil, fmt.Errorf("insert cost row: %w", err)
	}

	blankRows := opts.ShouldBlankRows()
	measurementRow, err := appendMeasurementBlock(f, pair.MeasurementSheetName, serial, item, blankRows, styles)
	if err != nil {
		return nil, fmt.Errorf("append measurement rows: %w", err)
	}

	opts.logger().Debug("item inserted",
		zap.Int("part", pair.PartNumber),
		zap.Int("serial", serial),
		zap.Int("cost_row", costRow),
		zap.Int("measurement_row", measurementRow))

	return &models.InsertResult{
		SerialNumber:    serial,
		Pair:            pair,
		CostRow:         costRow,
		MeasurementRow:  measurementRow,
		MeasurementRows: blankRows + 1,
	}, nil
}

// insertCostRow writes [serial, description, unit, "", rate, ""] and returns
// its 1-based row number. Quantity and amount are left for manual entry.
func insertCostRow(f *excelize.File, sheet string, grid [][]string, serial int, item models.CatalogItem, at *int, styles *styleSource) (int, error) {
	target := len(grid) + 1
	spliced := at != nil && *at >= 0 && *at < len(grid)
	if spliced {
		target = *at + 1
		if err := f.InsertRows(sheet, target, 1); err != nil {
			return 0, err
		}
	}

	values := []interface{}{serial, item.Description, item.Unit, "", rateValue(item.Rate), ""}
	width := max(parser.UsedColumns(grid), costColumns)
	if err := writeRow(f, sheet, target, values, width, styles); err != nil {
		return 0, err
	}

	if !spliced {
		if err := extendPrintArea(f, sheet, len(grid), target); err != nil {
			return 0, err
		}
	}
	return target, nil
}

// appendMeasurementBlock appends the header row and blank rows after the last
// row element of the sheet and returns the header's 1-based row number.
func appendMeasurementBlock(f *excelize.File, sheet string, serial int, item models.CatalogItem, blankRows int, styles *styleSource) (int, error) {
	last, err := parser.SheetExtent(f, sheet)
	if err != nil {
		return 0, err
	}
	grid, err := f.GetRows(sheet)
	if err != nil {
		return 0, err
	}
	width := max(parser.UsedColumns(grid), measurementColumns)

	header := last + 1
	values := []interface{}{serial, item.Description, "", "", "", "", item.Unit}
	if err := writeRow(f, sheet, header, values, width, styles); err != nil {
		return 0, err
	}

	blank := make([]interface{}, measurementColumns)
	for i := range blank {
		blank[i] = ""
	}
	for i := 1; i <= blankRows; i++ {
		if err := writeRow(f, sheet, header+i, blank, width, styles); err != nil {
			return 0, err
		}
	}

	if err := extendPrintArea(f, sheet, last, header+blankRows); err != nil {
		return 0, err
	}
	return header, nil
}

// writeRow sets values starting at column A of row and styles the first
// width cells. Editing cells in place leaves column widths and row heights
// untouched, and InsertRows carries custom heights down with their rows.
func writeRow(f *excelize.File, sheet string, row int, values []interface{}, width int, styles *styleSource) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return err
	}
	return styles.apply(sheet, row, width)
}

// rateValue converts a canonical decimal string into a numeric cell value.
// Integral rates are written as integers so they read back without a fraction.
func rateValue(rate string) interface{} {
	d, err := decimal.NewFromString(rate)
	if err != nil {
		return rate
	}
	if d.IsInteger() {
		return d.IntPart()
	}
	return d.InexactFloat64()
}

func hasSheet(f *excelize.File, name string) bool {
	for _, s := range f.GetSheetList() {
		if s == name {
			return true
		}
	}
	return false
}
