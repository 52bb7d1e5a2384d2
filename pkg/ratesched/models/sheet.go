package models

// SheetPair links a cost-abstract sheet with the measurement sheet of the same part.
type SheetPair struct {
	// PartNumber is the number following "PART" in both sheet names.
	PartNumber int `json:"part_number"`
	// CostSheetName is the "ABSTRACT OF COST ... PART n" sheet.
	CostSheetName string `json:"cost_sheet_name"`
	// MeasurementSheetName is the "MEASUREMENT ... PART n" sheet.
	MeasurementSheetName string `json:"measurement_sheet_name"`
}
