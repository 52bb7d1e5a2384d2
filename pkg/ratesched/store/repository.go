// Package store persists estimate workbooks between insertions.
package store

import (
	"context"
	"errors"
)

// ErrNotFound indicates no document is stored under an id.
var ErrNotFound = errors.New("document not found")

// Repository loads and saves workbook documents by id.
// Implementations must be safe for concurrent use; they do not serialize
// read-modify-write cycles, which is the caller's job.
type Repository interface {
	Load(ctx context.Context, id string) ([]byte, error)
	Save(ctx context.Context, id string, content []byte) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
}
