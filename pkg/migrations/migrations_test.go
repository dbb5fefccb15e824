package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/ethbridge-events/pkg/migrations/eventsdb"
	mghelper "github.com/chainsafe/ethbridge-events/pkg/pgutil"
	pgmigrations "github.com/chainsafe/ethbridge-events/pkg/pgutil/migrations"
)

func TestEventsDBMigrations_Apply(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, eventsdb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}

	for _, table := range []string{"eth_events", "eth_event_assets", "bun_migrations"} {
		mghelper.AssertTableExists(t, db, table)
	}

	mghelper.AssertIndexExists(t, db, "idx_eth_events_kind")
	mghelper.AssertIndexExists(t, db, "idx_eth_events_nonce")
	mghelper.AssertIndexExists(t, db, "idx_eth_event_assets_hash")
}

func TestMigrations_Idempotency(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, eventsdb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("First Migrate() failed: %v", err)
	}

	// Second run must be a no-op
	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Error("Expected no new migrations on second run")
	}

	mghelper.AssertTableExists(t, db, "eth_events")
}

func TestMigrations_Rollback(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, eventsdb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	// Rollback last migration group (all migrations run in one group by Migrate())
	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected rollback to process a migration")
	}

	mghelper.AssertTableNotExists(t, db, "eth_event_assets")
	mghelper.AssertTableNotExists(t, db, "eth_events")
}

func TestRunMigrations_Commands(t *testing.T) {
	db, cleanup := mghelper.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, eventsdb.Migrations)
	logger := zap.NewNop()

	for _, cmd := range []string{"init", "up", "status"} {
		if err := pgmigrations.RunMigrations(ctx, migrator, logger, cmd); err != nil {
			t.Fatalf("RunMigrations(%s) failed: %v", cmd, err)
		}
	}
	mghelper.AssertTableExists(t, db, "eth_events")

	if err := pgmigrations.RunMigrations(ctx, migrator, logger, "down"); err != nil {
		t.Fatalf("RunMigrations(down) failed: %v", err)
	}
	mghelper.AssertTableNotExists(t, db, "eth_events")
}
