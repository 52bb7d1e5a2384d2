package ratesched

import (
	"fmt"
	"os"

	"github.com/ukaji3/ratesched-go/pkg/ratesched/estimate"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Parse decodes a rate schedule workbook and returns its items.
func Parse(buf []byte, opts ParseOptions) (*models.ParseResult, error) {
	logger := loggerOrNop(opts.Logger)

	f, format, err := parser.OpenWorkbook(buf)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sheets []parser.SheetRows
	for _, sheetName := range f.GetSheetList() {
		rows, err := parser.ExtractRows(f, sheetName)
		if err != nil {
			return nil, NewSheetError(sheetName, "rows", err)
		}
		sheets = append(sheets, parser.SheetRows{Name: sheetName, Rows: rows})
	}

	result, err := parser.ParseSchedule(sheets, parser.ScheduleOptions{
		NewCode: opts.NewCode,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("rate schedule parsed",
		zap.String("format", string(format)),
		zap.Int("sheets", len(sheets)),
		zap.Int("items", result.Metadata.TotalItems),
		zap.String("mode", string(result.Metadata.Mode)),
		zap.Int("max_level", result.Metadata.MaxLevel))
	return result, nil
}

// ParseFile reads and parses a rate schedule file.
func ParseFile(path string, opts ParseOptions) (*models.ParseResult, error) {
	buf, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(buf, opts)
}

// PairReport lists the sheet pairs of an estimate workbook.
type PairReport struct {
	Pairs []models.SheetPair `json:"pairs"`
	// UnmatchedCostSheets are cost sheets with no measurement partner.
	// They are never paired.
	UnmatchedCostSheets []string `json:"unmatched_cost_sheets,omitempty"`
}

// LocatePairs decodes an estimate workbook and reports its sheet pairs.
func LocatePairs(buf []byte) (*PairReport, error) {
	f, _, err := parser.OpenWorkbook(buf)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return pairReport(f.GetSheetList()), nil
}

func pairReport(names []string) *PairReport {
	return &PairReport{
		Pairs:               parser.LocatePairs(names),
		UnmatchedCostSheets: parser.UnmatchedCostSheets(names),
	}
}

// WarnLegacyRewritten is reported by Insert when a legacy .xls workbook was
// returned as .xlsx. Cell formatting of the legacy workbook is not carried over.
const WarnLegacyRewritten = "legacy .xls workbook was rewritten as .xlsx without its formatting"

// Insert adds item to the cost and measurement sheets of part in the
// workbook held by buf, and returns the new workbook bytes.
// Legacy .xls input is returned as .xlsx.
func Insert(buf []byte, part int, item models.CatalogItem, opts InsertOptions) ([]byte, *models.InsertResult, error) {
	logger := loggerOrNop(opts.Logger)

	f, format, err := parser.OpenWorkbook(buf)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	result, err := insertPart(f, part, item, opts, logger)
	if err != nil {
		return nil, nil, err
	}

	out, err := f.WriteToBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("write workbook: %w", err)
	}

	result.Format = string(parser.FormatXLSX)
	result.SourceFormat = string(format)
	if format == parser.FormatXLS {
		logger.Warn("legacy workbook rewritten as xlsx", zap.Int("part", part))
		result.Warnings = append(result.Warnings, WarnLegacyRewritten)
	}
	return out.Bytes(), result, nil
}

func insertPart(f *excelize.File, part int, item models.CatalogItem, opts InsertOptions, logger *zap.Logger) (*models.InsertResult, error) {
	report := pairReport(f.GetSheetList())
	for _, name := range report.UnmatchedCostSheets {
		logger.Warn("cost sheet has no measurement sheet", zap.String("sheet", name))
	}

	pair, ok := parser.FindPair(report.Pairs, part)
	if !ok {
		return nil, fmt.Errorf("%w: part %d", ErrPartNotFound, part)
	}

	result, err := estimate.Insert(f, pair, item, opts.engineOptions())
	if err != nil {
		return nil, err
	}
	for _, name := range report.UnmatchedCostSheets {
		result.Warnings = append(result.Warnings, fmt.Sprintf("cost sheet %q has no measurement sheet", name))
	}

	logger.Info("item inserted",
		zap.Int("part", part),
		zap.Int("serial", result.SerialNumber),
		zap.String("code", item.Code),
		zap.String("cost_sheet", pair.CostSheetName),
		zap.String("measurement_sheet", pair.MeasurementSheetName))
	return result, nil
}

func readFile(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return buf, err
}
