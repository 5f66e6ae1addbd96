// Package sheetstore implements the record store against the live Google
// Sheets worksheet the business already runs on. Row 1 is the header; data
// rows start at 2, and shared.Row.Index carries the sheet row number.
package sheetstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"adslot-panel/internal/domain/booking"
	"adslot-panel/internal/infra"
	"adslot-panel/internal/pkg/config"
	"adslot-panel/internal/usecase/shared"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const firstDataRow = 2

type Store struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
	logger        *slog.Logger
}

func New(ctx context.Context, cfg config.SheetsConfig, logger *slog.Logger) (*Store, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindWriteFailure, "failed to build sheets client", err)
	}

	return &Store{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.Worksheet,
		logger:        logger,
	}, nil
}

func (s *Store) ReadAll(ctx context.Context) ([]shared.Row, error) {
	readRange := fmt.Sprintf("%s!A%d:H", s.worksheet, firstDataRow)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, readRange).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindReadFailure, "failed to read worksheet", err)
	}

	rows := make([]shared.Row, 0, len(resp.Values))
	for i, values := range resp.Values {
		rows = append(rows, shared.Row{
			Index: firstDataRow + i,
			Cells: toCells(values),
		})
	}
	return rows, nil
}

func (s *Store) Append(ctx context.Context, cells []string) error {
	appendRange := fmt.Sprintf("%s!A:H", s.worksheet)
	vr := &sheets.ValueRange{Values: [][]any{toValues(cells)}}

	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, appendRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindWriteFailure, "failed to append row", err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, index int, cells []string) error {
	if index < firstDataRow {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "row index below data range", nil)
	}

	updateRange := fmt.Sprintf("%s!A%d:H%d", s.worksheet, index, index)
	vr := &sheets.ValueRange{Values: [][]any{toValues(cells)}}

	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, updateRange, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindWriteFailure, "failed to update row", err)
	}
	return nil
}

// FindByID scans the id column. The sheet has no index; the dataset is a
// few dozen rows, and a fresh scan per operation is what keeps row
// positions from going stale under concurrent appends. An id must resolve
// to exactly one row; duplicates mean the sheet was edited by hand.
func (s *Store) FindByID(ctx context.Context, id string) (shared.Row, error) {
	rows, err := s.ReadAll(ctx)
	if err != nil {
		return shared.Row{}, err
	}

	var found *shared.Row
	for _, row := range rows {
		if len(row.Cells) > booking.ColID && strings.TrimSpace(row.Cells[booking.ColID]) == id {
			if found != nil {
				return shared.Row{}, infra.WrapRepoErr(s.logger, infra.KindConflict, "duplicate rows with id "+id, nil)
			}
			found = &row
		}
	}
	if found == nil {
		return shared.Row{}, infra.WrapRepoErr(s.logger, infra.KindNotFound, "no row with id "+id, nil)
	}
	return *found, nil
}

func toCells(values []any) []string {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = fmt.Sprint(v)
	}
	return cells
}

func toValues(cells []string) []any {
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return values
}
