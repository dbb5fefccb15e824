package api

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chainsafe/ethbridge-events/pkg/config"
	"github.com/chainsafe/ethbridge-events/pkg/eventstore"
	"github.com/chainsafe/ethbridge-events/pkg/eventstore/kv"
	"github.com/chainsafe/ethbridge-events/pkg/eventstore/pg"
	"github.com/chainsafe/ethbridge-events/pkg/pgutil"
)

// openStore opens the event store backend selected by cfg.Store.Backend and
// wraps it with store metrics.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (eventstore.Store, error) {
	var (
		store eventstore.Store
		err   error
	)
	switch backend := cfg.Store.Backend; backend {
	case config.StoreBackendMemDB:
		store = kv.NewMemDB()
		logger.Warn("Using in-memory event store; events are lost on restart")
	case config.StoreBackendGoLevelDB:
		store, err = kv.OpenGoLevelDB(cfg.Store.Name, cfg.Store.Dir)
		if err != nil {
			return nil, fmt.Errorf("open goleveldb event store: %w", err)
		}
		logger.Info("Opened goleveldb event store",
			zap.String("dir", cfg.Store.Dir),
			zap.String("name", cfg.Store.Name),
		)
	case config.StoreBackendPostgres:
		db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		store = pg.NewStore(db)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
	return eventstore.WithMetrics(store, cfg.Store.Backend), nil
}
