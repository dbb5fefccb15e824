package eventsdb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/chainsafe/ethbridge-events/pkg/eventstore/pg"
	mghelper "github.com/chainsafe/ethbridge-events/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateSchema(ctx, db, &pg.EventDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &pg.EventDao{}, "kind", "nonce")
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &pg.EventDao{})
	})
}
