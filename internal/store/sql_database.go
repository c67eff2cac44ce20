package store

import (
	"database/sql"

	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/migrations"
)

// DB wraps a database/sql handle with the error classifier of its dialect.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// MigratePostgres applies the remote document table schema.
func (db *DB) MigratePostgres() error {
	return migrations.MigratePostgres(db.DB)
}

// MigrateSQLite applies the local slot schema.
func (db *DB) MigrateSQLite() error {
	return migrations.MigrateSQLite(db.DB)
}
