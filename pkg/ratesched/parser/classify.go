package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/ratesched-go/pkg/ratesched/models"
)

// Code shapes, checked deepest first. Matching is unanchored.
var (
	level3CodePattern = regexp.MustCompile(`\d+\.\d+\.\d+\.\d+`)
	level2CodePattern = regexp.MustCompile(`\d+\.\d+\.\d+`)
	level1CodePattern = regexp.MustCompile(`\d+\.\d+`)
	level0CodePattern = regexp.MustCompile(`\d+`)
)

// spacesPerLevel is the indentation width of one hierarchy level.
const spacesPerLevel = 4

// Classification is the result of classifying a RawRow.
type Classification struct {
	Code        string
	Description string
	Unit        string
	Rate        decimal.NullDecimal
	Category    string
	// Level is the level signal, 0 through models.MaxLevel.
	Level int
	// IndentLevel is the depth implied by leading whitespace alone.
	IndentLevel int
}

// Skip reports whether the row has no description and must be treated as a
// blank or separator row.
func (c Classification) Skip() bool {
	return c.Description == ""
}

// RateString returns the canonical decimal string, or "" when there is no rate.
func (c Classification) RateString() string {
	if !c.Rate.Valid {
		return ""
	}
	return c.Rate.Decimal.String()
}

// Classify extracts the positional fields of a row and derives its level signal.
// It never fails: absent fields are empty and an unparseable rate is invalid.
func Classify(row models.RawRow) Classification {
	rawDescription := row.At(models.ColDescription).String()
	indent := indentLevel(rawDescription)

	c := Classification{
		Code:        row.At(models.ColCode).Trimmed(),
		Description: strings.TrimSpace(rawDescription),
		Unit:        row.At(models.ColUnit).Trimmed(),
		Rate:        parseRate(row.At(models.ColRate)),
		Category:    row.At(models.ColCategory).Trimmed(),
		IndentLevel: indent,
	}
	c.Level = levelSignal(c.Code, indent)
	return c
}

// levelSignal applies the code-shape rules in precedence order and falls back
// to indentation when the code carries no digits at all.
func levelSignal(code string, indent int) int {
	switch {
	case level3CodePattern.MatchString(code):
		return 3
	case level2CodePattern.MatchString(code):
		return 2
	case level1CodePattern.MatchString(code):
		return 1
	case level0CodePattern.MatchString(code):
		return 0
	default:
		return indent
	}
}

// indentLevel converts the leading whitespace of s into a level, capped at
// models.MaxLevel. A tab counts as one full level.
func indentLevel(s string) int {
	spaces := 0
	for _, r := range s {
		switch r {
		case ' ', '\u00a0':
			spaces++
		case '\t':
			spaces += spacesPerLevel
		default:
			return capLevel(spaces / spacesPerLevel)
		}
	}
	// whitespace-only descriptions are skipped by callers anyway
	return capLevel(spaces / spacesPerLevel)
}

func capLevel(level int) int {
	if level > models.MaxLevel {
		return models.MaxLevel
	}
	return level
}

// parseRate reads a rate cell. Text rates may carry thousands separators.
func parseRate(cell models.Cell) decimal.NullDecimal {
	switch cell.Kind {
	case models.CellNumber:
		if d, err := decimal.NewFromString(cell.Trimmed()); err == nil {
			return decimal.NewNullDecimal(d)
		}
		return decimal.NewNullDecimal(decimal.NewFromFloat(cell.Number))
	case models.CellText:
		s := strings.ReplaceAll(cell.Trimmed(), ",", "")
		s = strings.ReplaceAll(s, " ", "")
		if d, err := decimal.NewFromString(s); err == nil {
			return decimal.NewNullDecimal(d)
		}
	}
	return decimal.NullDecimal{}
}
