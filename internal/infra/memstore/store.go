// Package memstore is an in-memory record store for tests and
// credential-less demo runs. It mimics worksheet semantics: 1-based row
// indexes, appends at the bottom, whole-row updates.
package memstore

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"adslot-panel/internal/domain/booking"
	"adslot-panel/internal/infra"
	"adslot-panel/internal/usecase/shared"
)

type Store struct {
	mu     sync.RWMutex
	rows   [][]string
	logger *slog.Logger
}

func New(logger *slog.Logger) *Store {
	return &Store{logger: logger}
}

func (s *Store) ReadAll(_ context.Context) ([]shared.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]shared.Row, len(s.rows))
	for i, cells := range s.rows {
		rows[i] = shared.Row{Index: i + 1, Cells: cloneCells(cells)}
	}
	return rows, nil
}

func (s *Store) Append(_ context.Context, cells []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = append(s.rows, cloneCells(cells))
	return nil
}

func (s *Store) Update(_ context.Context, index int, cells []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 1 || index > len(s.rows) {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "row index out of range", nil)
	}
	s.rows[index-1] = cloneCells(cells)
	return nil
}

func (s *Store) FindByID(_ context.Context, id string) (shared.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *shared.Row
	for i, cells := range s.rows {
		if len(cells) > booking.ColID && strings.TrimSpace(cells[booking.ColID]) == id {
			if found != nil {
				return shared.Row{}, infra.WrapRepoErr(s.logger, infra.KindConflict, "duplicate rows with id "+id, nil)
			}
			found = &shared.Row{Index: i + 1, Cells: cloneCells(cells)}
		}
	}
	if found == nil {
		return shared.Row{}, infra.WrapRepoErr(s.logger, infra.KindNotFound, "no row with id "+id, nil)
	}
	return *found, nil
}

func cloneCells(cells []string) []string {
	cloned := make([]string, len(cells))
	copy(cloned, cells)
	return cloned
}
