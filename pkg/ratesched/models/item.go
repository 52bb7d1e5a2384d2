package models

// CatalogItem is one line of a rate schedule.
type CatalogItem struct {
	// ID is a per-parse unique identifier.
	ID string `json:"id"`
	// Code is the business key from column 0, or a synthetic code when the row had none.
	// It is not guaranteed unique across a document.
	Code string `json:"code"`
	// Description is the trimmed item description.
	Description string `json:"description"`
	// Unit is the unit of measure (e.g. "cum", "sqm").
	Unit string `json:"unit"`
	// Rate is the canonical decimal string, empty when the row carried no parseable rate.
	Rate string `json:"rate"`
	// Category is the explicit or inferred category.
	Category string `json:"category,omitempty"`
}

// HierarchicalCatalogItem is a CatalogItem placed in its sheet's hierarchy.
//
// Invariants: len(Hierarchy) == Level+1, Hierarchy[Level] == Description,
// and ParentCode is set iff Level > 0.
type HierarchicalCatalogItem struct {
	CatalogItem
	// Level is the nesting depth, 0 through 3.
	Level int `json:"level"`
	// ParentCode is the code of the nearest enclosing ancestor.
	ParentCode string `json:"parent_code,omitempty"`
	// FullDescription is the hierarchy joined with HierarchySeparator.
	FullDescription string `json:"full_description"`
	// Hierarchy lists ancestor descriptions from the root down to the item itself.
	Hierarchy []string `json:"hierarchy"`
	// IndentLevel is the depth implied by leading whitespace in the description.
	IndentLevel int `json:"indent_level"`
	// SheetName is the sheet the row was read from.
	SheetName string `json:"sheet_name"`
	// Row is the 1-based worksheet row.
	Row int `json:"row"`
}

// HierarchySeparator joins hierarchy entries into FullDescription.
const HierarchySeparator = " > "

// MaxLevel is the deepest hierarchy level recognized.
const MaxLevel = 3
