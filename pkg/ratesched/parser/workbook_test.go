package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
)

func TestOpenWorkbook(t *testing.T) {
	buf := buildWorkbook(t, testSheet{name: "Civil", rows: [][]interface{}{{"Code", "Description"}}})

	f, format, err := OpenWorkbook(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, FormatXLSX, format)
	assert.Equal(t, []string{"Civil"}, f.GetSheetList())
}

func TestOpenWorkbookMalformed(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"garbage", []byte("this is not a spreadsheet")},
		{"truncated zip", []byte("PK\x03\x04\x00\x00")},
		{"truncated ole", append(append([]byte{}, oleMagic...), 0x00, 0x01)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := OpenWorkbook(tt.buf)
			assert.ErrorIs(t, err, ErrMalformedWorkbook)
		})
	}
}

func TestOpenWorkbookLegacy(t *testing.T) {
	buf, err := os.ReadFile(filepath.Join("testdata", "schedule.xls"))
	require.NoError(t, err)

	f, format, err := OpenWorkbook(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, FormatXLS, format)
	assert.Equal(t, []string{"Earthwork", "Labour"}, f.GetSheetList())

	rows, err := ExtractRows(f, "Earthwork")
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, "1", rows[1].At(models.ColCode).String())
	assert.Equal(t, models.CellNumber, rows[1].At(models.ColCode).Kind)
	assert.Equal(t, "    Excavation in soil", rows[2].At(models.ColDescription).String())
	assert.Equal(t, 150.0, rows[2].At(models.ColRate).Number)
	assert.Empty(t, rows[3], "blank row kept in place")
	assert.Equal(t, "1.10", rows[5].At(models.ColCode).String(), "code text keeps its trailing zero")
	assert.Equal(t, "12.75", rows[5].At(models.ColRate).String())
}

func TestParseScheduleFromLegacyWorkbook(t *testing.T) {
	buf, err := os.ReadFile(filepath.Join("testdata", "schedule.xls"))
	require.NoError(t, err)

	f, _, err := OpenWorkbook(buf)
	require.NoError(t, err)
	defer f.Close()

	var sheets []SheetRows
	for _, name := range f.GetSheetList() {
		rows, err := ExtractRows(f, name)
		require.NoError(t, err)
		sheets = append(sheets, SheetRows{Name: name, Rows: rows})
	}

	res, err := ParseSchedule(sheets, sequentialOptions())
	require.NoError(t, err)

	assert.Equal(t, models.ParseModeHierarchical, res.Metadata.Mode)
	assert.Equal(t, 5, res.Metadata.TotalItems)
	assert.Equal(t, map[string]int{"Earthwork": 4, "Labour": 1}, res.Metadata.PerSheetItemCounts)

	var codes, rates []string
	for _, item := range res.HierarchicalItems {
		codes = append(codes, item.Code)
		rates = append(rates, item.Rate)
	}
	assert.Equal(t, []string{"1", "1.1", "1.2", "1.10", "L1"}, codes)
	assert.Equal(t, []string{"", "150", "1250.5", "12.75", "900"}, rates)

	rock := res.HierarchicalItems[2]
	assert.Equal(t, "1", rock.ParentCode)
	assert.Equal(t, "Earthwork > Excavation in rock", rock.FullDescription)
	assert.Equal(t, 5, rock.Row)

	mason := res.HierarchicalItems[4]
	assert.Equal(t, "Labor", mason.Category)
	assert.Equal(t, 0, mason.Level)
}
