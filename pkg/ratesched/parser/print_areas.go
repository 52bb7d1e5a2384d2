package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaName is the built-in defined name Excel uses for print areas.
const PrintAreaName = "_xlnm.Print_Area"

// SheetPrintArea returns the single-range print area defined for a sheet
// along with the defined name holding it. Multi-range print areas are
// reported as absent.
func SheetPrintArea(f *excelize.File, sheetName string) (models.PrintArea, excelize.DefinedName, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, PrintAreaName) {
			continue
		}
		name, areas := ParsePrintAreaReference(dn.RefersTo)
		if name != sheetName || len(areas) != 1 {
			continue
		}
		return areas[0], dn, true
	}
	return models.PrintArea{}, excelize.DefinedName{}, false
}

// ReplacePrintArea rewrites the print area held by dn.
func ReplacePrintArea(f *excelize.File, dn excelize.DefinedName, area models.PrintArea) error {
	ref, err := FormatPrintAreaReference(area)
	if err != nil {
		return err
	}
	if err := f.DeleteDefinedName(&excelize.DefinedName{Name: dn.Name, Scope: dn.Scope}); err != nil {
		return fmt.Errorf("delete print area: %w", err)
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     dn.Name,
		Comment:  dn.Comment,
		RefersTo: ref,
		Scope:    dn.Scope,
	})
}

// ParsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func ParsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var areas []models.PrintArea

	// Split by comma for multiple print areas
	parts := strings.Split(ref, ",")

	var sheetName string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Split by ! to separate sheet name and range
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			sheet := part[:idx]
			rangeStr := part[idx+1:]

			// Remove quotes from sheet name
			sheet = strings.ReplaceAll(strings.Trim(sheet, "'"), "''", "'")
			if sheetName == "" {
				sheetName = sheet
			}

			if area := parseRangeToArea(rangeStr); area != nil {
				area.SheetName = sheet
				areas = append(areas, *area)
			}
		}
	}

	return sheetName, areas
}

// FormatPrintAreaReference renders an area as 'Sheet'!$A$1:$D$10.
func FormatPrintAreaReference(area models.PrintArea) (string, error) {
	start, err := excelize.CoordinatesToCellName(area.C1, area.R1, true)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(area.C2, area.R2, true)
	if err != nil {
		return "", err
	}
	sheet := strings.ReplaceAll(area.SheetName, "'", "''")
	return fmt.Sprintf("'%s'!%s:%s", sheet, start, end), nil
}

// parseRangeToArea parses a range string like $A$1:$D$10 to PrintArea.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	// Split by :
	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.PrintArea{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
