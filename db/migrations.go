package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/agglayer/aggsandbox/log"
	migrate "github.com/rubenv/sql-migrate"
)

const (
	upDownSeparator = "-- +migrate Up"
	dialect         = "sqlite3"
)

// Migration is one embedded .sql file. The down statements go first, the up
// statements follow the "-- +migrate Up" line.
type Migration struct {
	ID  string
	SQL string
}

// RunMigrations opens the sqlite file at dbPath and applies the pending migrations
func RunMigrations(logger *log.Logger, dbPath string, migrations []Migration) error {
	database, err := NewSQLiteDB(dbPath)
	if err != nil {
		return fmt.Errorf("error creating DB %w", err)
	}
	defer database.Close()

	return RunMigrationsDB(logger, database, migrations)
}

// RunMigrationsDB applies the pending migrations on an open database
func RunMigrationsDB(logger *log.Logger, database *sql.DB, migrations []Migration) error {
	source := &migrate.MemoryMigrationSource{}
	for _, m := range migrations {
		parts := strings.Split(m.SQL, upDownSeparator)
		if len(parts) != 2 { //nolint:mnd
			return fmt.Errorf("migration %s: expected exactly one %q line", m.ID, upDownSeparator)
		}
		source.Migrations = append(source.Migrations, &migrate.Migration{
			Id:   m.ID,
			Up:   []string{parts[1]},
			Down: []string{parts[0]},
		})
	}

	nMigrations, err := migrate.Exec(database, dialect, source, migrate.Up)
	if err != nil {
		return fmt.Errorf("error executing migration %w", err)
	}
	if logger != nil {
		logger.Infof("successfully ran %d migrations", nMigrations)
	}

	return nil
}
