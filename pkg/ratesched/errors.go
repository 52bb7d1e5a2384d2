package ratesched

import (
	"errors"
	"fmt"

	"github.com/ukaji3/ratesched-go/pkg/ratesched/estimate"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/parser"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/store"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

var (
	// ErrMalformedWorkbook indicates the buffer is not a decodable spreadsheet.
	ErrMalformedWorkbook = parser.ErrMalformedWorkbook
	// ErrEmptyWorkbook indicates the workbook has no sheets.
	ErrEmptyWorkbook = parser.ErrEmptyWorkbook
	// ErrNoValidRows indicates neither parsing pass produced an item.
	ErrNoValidRows = parser.ErrNoValidRows
	// ErrSheetNotFound indicates a paired sheet is missing at insertion time.
	ErrSheetNotFound = estimate.ErrSheetNotFound
	// ErrPartNotFound indicates no sheet pair exists for the requested part.
	ErrPartNotFound = estimate.ErrPartNotFound
	// ErrDocumentNotFound indicates the repository holds no document under an id.
	ErrDocumentNotFound = store.ErrNotFound
)

// SheetError represents an error while reading one sheet.
type SheetError struct {
	SheetName string
	Component string // "rows", "cost", "measurement"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, component string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
