package models

// ParseMode records which pass produced a ParseResult.
type ParseMode string

const (
	// ParseModeHierarchical means the hierarchical pass found nested rows.
	ParseModeHierarchical ParseMode = "hierarchical"
	// ParseModeFlat means no hierarchy was detected and the strict flat pass was used.
	ParseModeFlat ParseMode = "flat"
)

// ParseMetadata summarizes a parse.
type ParseMetadata struct {
	TotalItems         int            `json:"total_items"`
	Categories         []string       `json:"categories"`
	PerSheetItemCounts map[string]int `json:"per_sheet_item_counts"`
	HasHierarchy       bool           `json:"has_hierarchy"`
	MaxLevel           int            `json:"max_level"`
	Mode               ParseMode      `json:"mode"`
}

// ParseResult is the output of parsing a rate schedule workbook.
type ParseResult struct {
	Items             []CatalogItem             `json:"items"`
	HierarchicalItems []HierarchicalCatalogItem `json:"hierarchical_items"`
	Metadata          ParseMetadata             `json:"metadata"`
}

// FindByCode returns the first item whose code equals code.
func (r *ParseResult) FindByCode(code string) (CatalogItem, bool) {
	for _, item := range r.Items {
		if item.Code == code {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// InsertResult describes one dual-sheet insertion.
type InsertResult struct {
	// SerialNumber is the number written to both sheets.
	SerialNumber int `json:"serial_number"`
	// Pair is the sheet pair that was mutated.
	Pair SheetPair `json:"pair"`
	// CostRow is the 1-based row of the new cost row.
	CostRow int `json:"cost_row"`
	// MeasurementRow is the 1-based row of the new measurement header row.
	MeasurementRow int `json:"measurement_row"`
	// MeasurementRows is the number of rows appended to the measurement sheet.
	MeasurementRows int `json:"measurement_rows"`
	// Format is the format of the returned workbook ("xlsx").
	Format string `json:"format,omitempty"`
	// SourceFormat is the format the workbook was read in.
	SourceFormat string `json:"source_format,omitempty"`
	// Warnings describes conditions that did not stop the insertion.
	Warnings []string `json:"warnings,omitempty"`
}
