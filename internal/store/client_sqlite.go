package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lyra-school/lyra-client/internal/config"
	"github.com/lyra-school/lyra-client/internal/logger"
)

// localSQLiteStorage is the SQLite implementation of [LocalStorage].
type localSQLiteStorage struct {
	db *DB
}

// NewLocalStorage opens the SQLite file named by cfg, applies migrations and
// returns the slot store over it.
func NewLocalStorage(ctx context.Context, cfg config.Local, log *logger.Logger) (LocalStorage, error) {
	log.Info().Str("dsn", cfg.DSN).Msg("opening local storage...")

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateSQLite(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newLocalSQLiteStorage(db), nil
}

func newLocalSQLiteStorage(db *DB) *localSQLiteStorage {
	return &localSQLiteStorage{db: db}
}

// Put implements [LocalStorage].
func (s *localSQLiteStorage) Put(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, putLocalValue, key, value); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localSQLiteStorage.Put").Str("key", key).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Get implements [LocalStorage].
func (s *localSQLiteStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, getLocalValue, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrLocalSessionNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*localSQLiteStorage.Get").Str("key", key).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, nil
}

// Delete implements [LocalStorage].
func (s *localSQLiteStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteLocalValue, key); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localSQLiteStorage.Delete").Str("key", key).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Close implements [LocalStorage].
func (s *localSQLiteStorage) Close() error {
	return s.db.Close()
}
