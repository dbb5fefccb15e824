// Package eventsdb holds all the migrations for the events database
package eventsdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the events database
var Migrations = migrate.NewMigrations()
