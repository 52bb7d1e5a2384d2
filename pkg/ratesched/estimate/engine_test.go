package estimate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/parser"
	"github.com/xuri/excelize/v2"
)

const (
	costSheet        = "ABSTRACT OF COST - PART-1"
	measurementSheet = "MEASUREMENT - PART-1"
)

var pairOne = models.SheetPair{
	PartNumber:           1,
	CostSheetName:        costSheet,
	MeasurementSheetName: measurementSheet,
}

var concrete = models.CatalogItem{Code: "5.1", Description: "Concrete", Unit: "cum", Rate: "4500"}

// newEstimate builds a workbook with the two sheets of part 1.
func newEstimate(t *testing.T, costRows ...[]interface{}) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	require.NoError(t, f.SetSheetName(f.GetSheetName(0), costSheet))
	_, err := f.NewSheet(measurementSheet)
	require.NoError(t, err)

	for i, row := range costRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := row
		require.NoError(t, f.SetSheetRow(costSheet, cell, &values))
	}
	return f
}

// reopen writes f and opens the bytes again, as a caller downloading the result would.
func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	out, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })
	return out
}

func TestInsertAppendsCostAndMeasurementRows(t *testing.T) {
	f := newEstimate(t, []interface{}{1, "Excavation", "cum", 150, ""})

	res, err := Insert(f, pairOne, concrete, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, res.SerialNumber)
	assert.Equal(t, 2, res.CostRow)
	assert.Equal(t, 1, res.MeasurementRow)
	assert.Equal(t, 4, res.MeasurementRows)

	out := reopen(t, f)

	cost, err := out.GetRows(costSheet)
	require.NoError(t, err)
	require.Len(t, cost, 2)
	assert.Equal(t, []string{"2", "Concrete", "cum", "", "4500"}, cost[1])

	meas, err := out.GetRows(measurementSheet)
	require.NoError(t, err)
	require.NotEmpty(t, meas)
	assert.Equal(t, []string{"2", "Concrete", "", "", "", "", "cum"}, meas[0])

	extent, err := parser.SheetExtent(out, measurementSheet)
	require.NoError(t, err)
	assert.Equal(t, 4, extent)
	for _, row := range meas[1:] {
		assert.Empty(t, row)
	}
}

func TestInsertIsMonotonic(t *testing.T) {
	f := newEstimate(t,
		[]interface{}{"S.No", "Description", "Unit", "Qty", "Rate", "Amount"},
		[]interface{}{1, "Excavation", "cum", 10, 150, 1500},
		[]interface{}{4, "Filling", "cum", 5, 90, 450},
	)

	first, err := Insert(f, pairOne, concrete, Options{})
	require.NoError(t, err)
	second, err := Insert(f, pairOne, concrete, Options{})
	require.NoError(t, err)

	assert.Equal(t, 5, first.SerialNumber)
	assert.Equal(t, 6, second.SerialNumber)
	assert.Equal(t, 4, first.CostRow)
	assert.Equal(t, 5, second.CostRow)
	assert.Equal(t, 1, first.MeasurementRow)
	assert.Equal(t, 5, second.MeasurementRow, "second block goes below the first block's blank rows")
}

func TestInsertSameSerialInBothSheets(t *testing.T) {
	f := newEstimate(t, []interface{}{"S.No"}, []interface{}{7, "Existing"})

	res, err := Insert(f, pairOne, concrete, Options{})
	require.NoError(t, err)

	out := reopen(t, f)
	costSerial, err := out.GetCellValue(costSheet, "A3")
	require.NoError(t, err)
	measSerial, err := out.GetCellValue(measurementSheet, "A1")
	require.NoError(t, err)

	assert.Equal(t, "8", costSerial)
	assert.Equal(t, costSerial, measSerial)
	assert.Equal(t, 8, res.SerialNumber)
}

func TestInsertSplicesAtRow(t *testing.T) {
	f := newEstimate(t,
		[]interface{}{"S.No", "Description"},
		[]interface{}{1, "Excavation"},
		[]interface{}{2, "Filling"},
		[]interface{}{3, "Masonry"},
	)
	at := 2

	res, err := Insert(f, pairOne, concrete, Options{InsertAtRow: &at})
	require.NoError(t, err)
	assert.Equal(t, 3, res.CostRow)

	rows, err := f.GetRows(costSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "Excavation", rows[1][1])
	assert.Equal(t, []string{"4", "Concrete", "cum", "", "4500"}, rows[2])
	assert.Equal(t, "Filling", rows[3][1])
	assert.Equal(t, "Masonry", rows[4][1])
}

func TestInsertClampsOutOfRangeRow(t *testing.T) {
	for _, at := range []int{99, 2, -1} {
		f := newEstimate(t, []interface{}{"S.No"}, []interface{}{1, "Excavation"})
		idx := at

		res, err := Insert(f, pairOne, concrete, Options{InsertAtRow: &idx})
		require.NoError(t, err)
		assert.Equal(t, 3, res.CostRow, "at=%d", at)
	}
}

func TestInsertBlankRows(t *testing.T) {
	f := newEstimate(t, []interface{}{"S.No"})
	none := 0

	res, err := Insert(f, pairOne, concrete, Options{BlankRows: &none})
	require.NoError(t, err)
	assert.Equal(t, 1, res.MeasurementRows)

	extent, err := parser.SheetExtent(f, measurementSheet)
	require.NoError(t, err)
	assert.Equal(t, 1, extent)
}

func TestInsertMissingSheet(t *testing.T) {
	f := newEstimate(t)

	pair := pairOne
	pair.MeasurementSheetName = "MEASUREMENT - PART-9"
	_, err := Insert(f, pair, concrete, Options{})
	assert.ErrorIs(t, err, ErrSheetNotFound)

	pair = pairOne
	pair.CostSheetName = "ABSTRACT OF COST - PART-9"
	_, err = Insert(f, pair, concrete, Options{})
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestInsertKeepsLayout(t *testing.T) {
	f := newEstimate(t,
		[]interface{}{"S.No", "Description"},
		[]interface{}{1, "Excavation"},
		[]interface{}{2, "Filling"},
	)
	require.NoError(t, f.SetColWidth(costSheet, "B", "B", 42))
	require.NoError(t, f.SetRowHeight(costSheet, 2, 30))
	require.NoError(t, f.SetColWidth(measurementSheet, "B", "B", 38))
	at := 1

	_, err := Insert(f, pairOne, concrete, Options{InsertAtRow: &at})
	require.NoError(t, err)

	out := reopen(t, f)

	w, err := out.GetColWidth(costSheet, "B")
	require.NoError(t, err)
	assert.Equal(t, 42.0, w)

	h, err := out.GetRowHeight(costSheet, 3)
	require.NoError(t, err)
	assert.Equal(t, 30.0, h, "custom height follows the shifted row")

	w, err = out.GetColWidth(measurementSheet, "B")
	require.NoError(t, err)
	assert.Equal(t, 38.0, w)
}

func TestInsertStylesEveryUsedColumn(t *testing.T) {
	f := newEstimate(t,
		[]interface{}{"S.No", "Description", "Unit", "Qty", "Rate", "Amount", "Remarks", "Ref"},
		[]interface{}{1, "Excavation", "cum", 10, 150, 1500, "", "DSR 2.1"},
	)

	res, err := Insert(f, pairOne, concrete, Options{})
	require.NoError(t, err)

	cell, err := excelize.CoordinatesToCellName(8, res.CostRow)
	require.NoError(t, err)
	style, err := f.GetCellStyle(costSheet, cell)
	require.NoError(t, err)
	assert.NotZero(t, style)

	cell, err = excelize.CoordinatesToCellName(9, res.CostRow)
	require.NoError(t, err)
	style, err = f.GetCellStyle(costSheet, cell)
	require.NoError(t, err)
	assert.Zero(t, style)
}

func TestInsertExtendsPrintArea(t *testing.T) {
	f := newEstimate(t, []interface{}{"S.No"}, []interface{}{1, "Excavation"})
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     parser.PrintAreaName,
		RefersTo: "'" + costSheet + "'!$A$1:$F$2",
		Scope:    costSheet,
	}))

	_, err := Insert(f, pairOne, concrete, Options{})
	require.NoError(t, err)

	area, _, ok := parser.SheetPrintArea(f, costSheet)
	require.True(t, ok)
	assert.Equal(t, 3, area.R2)
}

func TestNextSerial(t *testing.T) {
	tests := []struct {
		name     string
		grid     [][]string
		expected int
	}{
		{"empty", nil, 1},
		{"header only", [][]string{{"S.No", "Description"}}, 1},
		{"sequential", [][]string{{"S.No"}, {"1"}, {"2"}, {"3"}}, 4},
		{"gaps and text", [][]string{{"1"}, {"a"}, {}, {" 12 "}, {"5"}}, 13},
		{"fractional", [][]string{{"2.5"}}, 3},
		{"negative ignored", [][]string{{"-4"}}, 1},
		{"huge ignored", [][]string{{"3"}, {"1e20"}, {"+Inf"}}, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NextSerial(tt.grid), tt.name)
	}
}

func TestRateValue(t *testing.T) {
	assert.Equal(t, int64(4500), rateValue("4500"))
	assert.Equal(t, 12.75, rateValue("12.75"))
	assert.Equal(t, "", rateValue(""))
}
