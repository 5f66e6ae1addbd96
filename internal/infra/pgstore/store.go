// Package pgstore mirrors worksheet semantics onto a single Postgres
// table, for deployments without Google API access. Each row is a text[]
// of cells keyed by a serial position; the schema deliberately stays as
// dumb as the spreadsheet it stands in for.
package pgstore

import (
	"context"
	"log/slog"

	"adslot-panel/internal/domain/booking"
	"adslot-panel/internal/infra"
	"adslot-panel/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS sheet_rows (
    row_index bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    cells     text[] NOT NULL
)`

type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func New(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	return &Store{pool: pool, logger: logger}
}

// EnsureSchema creates the row table if missing. Idempotent; ran at boot.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to ensure schema", err)
	}
	return nil
}

func (s *Store) ReadAll(ctx context.Context) ([]shared.Row, error) {
	rows, err := s.pool.Query(ctx, `SELECT row_index, cells FROM sheet_rows ORDER BY row_index`)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read rows", err)
	}
	defer rows.Close()

	var result []shared.Row
	for rows.Next() {
		var index int64
		var cells []string
		if err := rows.Scan(&index, &cells); err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan row", err)
		}
		result = append(result, shared.Row{Index: int(index), Cells: cells})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate rows", err)
	}
	return result, nil
}

func (s *Store) Append(ctx context.Context, cells []string) error {
	if _, err := s.pool.Exec(ctx, `INSERT INTO sheet_rows (cells) VALUES ($1)`, cells); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindWriteFailure, "failed to append row", err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, index int, cells []string) error {
	tag, err := s.pool.Exec(ctx, `UPDATE sheet_rows SET cells = $1 WHERE row_index = $2`, cells, int64(index))
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindWriteFailure, "failed to update row", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "no row at index", nil)
	}
	return nil
}

func (s *Store) FindByID(ctx context.Context, id string) (shared.Row, error) {
	// The id lives in a fixed trailing cell, same as on the worksheet.
	// LIMIT 2 is enough to tell "exactly one" from "duplicated".
	rows, err := s.pool.Query(ctx,
		`SELECT row_index, cells FROM sheet_rows WHERE cells[$1] = $2 ORDER BY row_index LIMIT 2`,
		booking.ColID+1, id,
	)
	if err != nil {
		return shared.Row{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find row", err)
	}
	defer rows.Close()

	var matches []shared.Row
	for rows.Next() {
		var index int64
		var cells []string
		if err := rows.Scan(&index, &cells); err != nil {
			return shared.Row{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan row", err)
		}
		matches = append(matches, shared.Row{Index: int(index), Cells: cells})
	}
	if err := rows.Err(); err != nil {
		return shared.Row{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to find row", err)
	}

	switch len(matches) {
	case 0:
		return shared.Row{}, infra.WrapRepoErr(s.logger, infra.KindNotFound, "no row with id "+id, nil)
	case 1:
		return matches[0], nil
	default:
		return shared.Row{}, infra.WrapRepoErr(s.logger, infra.KindConflict, "duplicate rows with id "+id, nil)
	}
}
