// Package parser provides rate schedule workbook parsing utilities.
package parser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrMalformedWorkbook indicates the buffer is not a decodable spreadsheet.
	ErrMalformedWorkbook = errors.New("malformed workbook")
	// ErrEmptyWorkbook indicates the workbook has no sheets.
	ErrEmptyWorkbook = errors.New("workbook has no sheets")
	// ErrNoValidRows indicates no rows survived parsing.
	ErrNoValidRows = errors.New("no valid rows")
)

// Format is the container format of a decoded workbook.
type Format string

const (
	// FormatXLSX is an Office Open XML workbook.
	FormatXLSX Format = "xlsx"
	// FormatXLS is a legacy BIFF workbook.
	FormatXLS Format = "xls"
)

// oleMagic is the compound document signature used by legacy .xls files.
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// OpenWorkbook decodes a spreadsheet buffer.
// Legacy .xls input is converted into an in-memory OOXML workbook so callers
// only ever deal with *excelize.File. The caller must Close the result.
func OpenWorkbook(buf []byte) (*excelize.File, Format, error) {
	if len(buf) == 0 {
		return nil, "", fmt.Errorf("%w: empty buffer", ErrMalformedWorkbook)
	}

	if bytes.HasPrefix(buf, oleMagic) {
		f, err := openLegacy(buf)
		if err != nil {
			if errors.Is(err, ErrEmptyWorkbook) {
				return nil, "", err
			}
			return nil, "", fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
		}
		return f, FormatXLS, nil
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}
	if len(f.GetSheetList()) == 0 {
		f.Close()
		return nil, "", ErrEmptyWorkbook
	}
	return f, FormatXLSX, nil
}
