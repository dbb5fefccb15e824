package eventsdb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/chainsafe/ethbridge-events/pkg/eventstore/pg"
	mghelper "github.com/chainsafe/ethbridge-events/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateSchema(ctx, db, &pg.EventAssetDao{}); err != nil {
			return err
		}
		// lookups by asset are served by the primary key; this one backs
		// the foreign key cascade
		if err := mghelper.CreateModelIndexes(ctx, db, &pg.EventAssetDao{}, "hash"); err != nil {
			return err
		}
		_, err := db.ExecContext(ctx, `ALTER TABLE eth_event_assets
			ADD CONSTRAINT fk_eth_event_assets_hash
			FOREIGN KEY (hash) REFERENCES eth_events (hash) ON DELETE CASCADE`)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &pg.EventAssetDao{})
	})
}
