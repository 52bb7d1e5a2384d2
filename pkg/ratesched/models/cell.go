// Package models defines data structures for rate schedule parsing and estimate insertion.
package models

import (
	"strconv"
	"strings"
)

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	// CellEmpty is an absent or blank cell.
	CellEmpty CellKind = iota
	// CellNumber is a cell whose value parses as a number.
	CellNumber
	// CellText is any other non-blank cell.
	CellText
)

// String returns the lower-case kind name.
func (k CellKind) String() string {
	switch k {
	case CellNumber:
		return "number"
	case CellText:
		return "text"
	default:
		return "empty"
	}
}

// Cell is a single raw cell value.
// Raw holds the cell text as read from the workbook, including for numbers,
// so code-shaped values such as "1.10" keep their digits. Numbers stored with
// more than 15 significant digits are rounded to 15, the precision Excel
// displays, so "150.30000000000001" reads as "150.3".
type Cell struct {
	Kind   CellKind `json:"kind"`
	Number float64  `json:"number,omitempty"`
	Raw    string   `json:"raw,omitempty"`
}

// NewCell classifies a raw cell string.
func NewCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Cell{Kind: CellEmpty}
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if significantDigits(trimmed) > displayDigits {
			f, _ = strconv.ParseFloat(strconv.FormatFloat(f, 'g', displayDigits, 64), 64)
			raw = strconv.FormatFloat(f, 'f', -1, 64)
		}
		return Cell{Kind: CellNumber, Number: f, Raw: raw}
	}
	return Cell{Kind: CellText, Raw: raw}
}

// displayDigits is the number of significant digits Excel shows for a number.
const displayDigits = 15

// significantDigits counts the mantissa digits of a numeric literal,
// ignoring sign, decimal point, exponent and leading zeros.
func significantDigits(s string) int {
	s = strings.TrimLeft(s, "+-")
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	s = strings.Replace(s, ".", "", 1)
	return len(strings.TrimLeft(s, "0"))
}

// NumberCell builds a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f, Raw: strconv.FormatFloat(f, 'f', -1, 64)}
}

// TextCell builds a text cell, or an empty cell for blank input.
func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{Kind: CellEmpty}
	}
	return Cell{Kind: CellText, Raw: s}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String returns the raw text of the cell, untrimmed.
func (c Cell) String() string {
	if c.Kind == CellEmpty {
		return ""
	}
	return c.Raw
}

// Trimmed returns the raw text with surrounding whitespace removed.
func (c Cell) Trimmed() string {
	return strings.TrimSpace(c.String())
}

// RawRow is one spreadsheet row in column order.
// Positions are fixed by convention: 0 code, 1 description, 2 unit, 3 rate, 4 category.
type RawRow []Cell

// Column positions of a rate schedule row.
const (
	ColCode = iota
	ColDescription
	ColUnit
	ColRate
	ColCategory
)

// At returns the cell at position i, or an empty cell when the row is shorter.
func (r RawRow) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Cell{Kind: CellEmpty}
	}
	return r[i]
}

// RowFromStrings converts a row of raw cell strings into a RawRow.
func RowFromStrings(values []string) RawRow {
	row := make(RawRow, len(values))
	for i, v := range values {
		row[i] = NewCell(v)
	}
	return row
}
