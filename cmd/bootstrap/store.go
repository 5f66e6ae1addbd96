package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"adslot-panel/internal/infra/memstore"
	"adslot-panel/internal/infra/pgstore"
	"adslot-panel/internal/infra/sheetstore"
	"adslot-panel/internal/pkg/config"
	"adslot-panel/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewRecordStore,
	),
)

// NewRecordStore builds the backend selected by STORE_BACKEND. The
// Postgres pool is owned here and closed on shutdown.
func NewRecordStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.RecordStore, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendSheets:
		return sheetstore.New(context.Background(), cfg.Sheets, logger)

	case config.StoreBackendPostgres:
		pool, err := pgxpool.New(context.Background(), cfg.DB.BuildDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to create connection pool: %w", err)
		}
		if err := pool.Ping(context.Background()); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}

		store := pgstore.New(pool, logger)
		if err := store.EnsureSchema(context.Background()); err != nil {
			pool.Close()
			return nil, err
		}

		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				pool.Close()
				return nil
			},
		})
		return store, nil

	case config.StoreBackendMemory:
		return memstore.New(logger), nil

	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}
}
