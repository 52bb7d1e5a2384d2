package parser

import "strings"

// DefaultCategory is used when neither the row nor the sheet name names one.
const DefaultCategory = "General"

// categoryKeywords maps sheet name keywords to categories, first match wins.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"civil", "Civil"},
	{"electrical", "Electrical"},
	{"mechanical", "Mechanical"},
	{"plumbing", "Plumbing"},
	{"finishing", "Finishing"},
	{"material", "Material"},
	{"labour", "Labor"},
	{"labor", "Labor"},
}

// ResolveCategory returns explicit when set, otherwise the category inferred
// from the sheet name.
func ResolveCategory(explicit, sheetName string) string {
	if explicit != "" {
		return explicit
	}
	return InferCategory(sheetName)
}

// InferCategory infers a category from a sheet name.
func InferCategory(sheetName string) string {
	name := strings.ToLower(sheetName)
	for _, kw := range categoryKeywords {
		if strings.Contains(name, kw.keyword) {
			return kw.category
		}
	}
	return DefaultCategory
}
