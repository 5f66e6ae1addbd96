package shared

import (
	"context"
)

// Row is one record-store row: a 1-based position in the backing table and
// its raw cells. The index is only valid for the duration of one
// operation; concurrent appends shift positions, so nothing may cache it.
type Row struct {
	Index int
	Cells []string
}

// RecordStore is the port every backend (Google Sheets, Postgres mirror,
// in-memory) implements. The store is a plain shared mutable table with
// last-write-wins semantics: no transactions, no locking, by contract.
//
// FindByID resolves through the trailing id column, never through row
// position or client text. Failures surface as infra.RepositoryError
// kinds (NOT_FOUND, WRITE_FAILURE, ...).
type RecordStore interface {
	ReadAll(ctx context.Context) ([]Row, error)
	Append(ctx context.Context, cells []string) error
	Update(ctx context.Context, index int, cells []string) error
	FindByID(ctx context.Context, id string) (Row, error)
}
