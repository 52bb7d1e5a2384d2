// Package ratesched parses construction rate schedule workbooks into catalog
// items and inserts chosen items into estimate workbooks.
package ratesched

import (
	"github.com/ukaji3/ratesched-go/pkg/ratesched/estimate"
	"go.uber.org/zap"
)

// ParseOptions configures Parse.
type ParseOptions struct {
	// Logger receives debug output. If nil, nothing is logged.
	Logger *zap.Logger
	// NewCode generates codes for rows that have none.
	// If nil, a timestamp plus random suffix is used.
	NewCode func() string
}

// DefaultParseOptions returns default parse options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{}
}

// InsertOptions configures Insert.
type InsertOptions struct {
	// InsertAtRow is the 0-based cost sheet row to splice the new row at.
	// If nil or out of range, the row is appended.
	InsertAtRow *int
	// BlankRows is the number of blank measurement rows under the header row.
	// If nil, defaults to estimate.DefaultBlankRows.
	BlankRows *int
	// Logger receives debug and warning output. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultInsertOptions returns default insert options.
func DefaultInsertOptions() InsertOptions {
	return InsertOptions{}
}

func (o InsertOptions) engineOptions() estimate.Options {
	return estimate.Options{
		InsertAtRow: o.InsertAtRow,
		BlankRows:   o.BlankRows,
		Logger:      o.Logger,
	}
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l != nil {
		return l
	}
	return zap.NewNop()
}
