package migrations

import (
	_ "embed"

	"github.com/agglayer/aggsandbox/db"
	"github.com/agglayer/aggsandbox/log"
)

//go:embed journal0001.sql
var mig001 string

// RunMigrations creates or upgrades the journal schema at dbPath
func RunMigrations(logger *log.Logger, dbPath string) error {
	migrations := []db.Migration{
		{
			ID:  "journal0001",
			SQL: mig001,
		},
	}

	return db.RunMigrations(logger, dbPath, migrations)
}
