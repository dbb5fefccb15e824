package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/ethbridge-events/pkg/config"
	"github.com/chainsafe/ethbridge-events/pkg/migrations/eventsdb"
	"github.com/chainsafe/ethbridge-events/pkg/pgutil"
	mghelper "github.com/chainsafe/ethbridge-events/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = func() { mghelper.PrintUsage(os.Stderr) }
	flag.Parse()

	if err := run(*cfgPath, flag.Args()); err != nil {
		if errors.Is(err, mghelper.ErrNoCommand) {
			mghelper.PrintUsage(os.Stderr)
		}
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("error reading configuration file: %w", err)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	logger.Info("Running migrations for events database", zap.String("database", cfg.Database.Database))

	migrator := migrate.NewMigrator(db, eventsdb.Migrations)
	return mghelper.RunMigrations(ctx, migrator, logger, args...)
}
