package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/lyra-school/lyra-client/internal/adapter"
	"github.com/lyra-school/lyra-client/internal/config"
	"github.com/lyra-school/lyra-client/internal/crypto"
	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/internal/store"
	"github.com/lyra-school/lyra-client/internal/utils"
	"github.com/lyra-school/lyra-client/models"
)

var ErrUnknownDriver = errors.New("unknown remote driver")

// demoAdminName is the display name of the admin seeded into the memory
// backend.
const demoAdminName = "Administrador"

// OpenStorages connects the remote document store selected by
// cfg.Storage.Remote.Driver and the local session slot store. The returned
// close function releases both.
func OpenStorages(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*store.Storages, func() error, error) {
	docs, closeRemote, err := newDocumentStore(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	local, err := store.NewLocalStorage(ctx, cfg.Storage.Local, log)
	if err != nil {
		_ = closeRemote()
		return nil, nil, fmt.Errorf("open local storage: %w", err)
	}

	storages := store.NewStorages(docs, local, log)

	if cfg.Storage.Remote.Driver == config.DriverMemory {
		if err = seedDemoAdmin(ctx, storages.UserRepository, cfg, log); err != nil {
			_ = local.Close()
			_ = closeRemote()
			return nil, nil, err
		}
	}

	closeAll := func() error {
		return errors.Join(local.Close(), closeRemote())
	}
	return storages, closeAll, nil
}

func newDocumentStore(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (store.DocumentStore, func() error, error) {
	remote := cfg.Storage.Remote
	noop := func() error { return nil }

	switch remote.Driver {
	case config.DriverPostgres:
		db, err := store.NewConnectPostgres(ctx, remote, log)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err = db.MigratePostgres(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return store.NewPostgresDocumentStore(db, log), db.Close, nil

	case config.DriverCouchDB:
		couch := adapter.NewCouchDBDocumentStore(adapter.CouchDBConfig{
			BaseURL:  remote.URL,
			Username: remote.Username,
			Password: remote.Password,
			Timeout:  cfg.App.RequestTimeout,
		}, log)
		tables := []string{models.User{}.TableName(), models.Class{}.TableName(), models.Activity{}.TableName()}
		if err := couch.EnsureDatabases(ctx, tables...); err != nil {
			return nil, nil, fmt.Errorf("prepare couchdb: %w", err)
		}
		return couch, noop, nil

	case config.DriverMemory:
		log.Warn().Msg("using in-memory remote store, records are lost on exit")
		return store.NewMemoryDocumentStore(), noop, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, remote.Driver)
}

// seedDemoAdmin puts one admin into the empty memory backend so the login
// screen is usable. The remote username is the email and the remote
// password the password; nothing is seeded without both.
func seedDemoAdmin(ctx context.Context, users store.UserRepository, cfg config.StructuredConfig, log *logger.Logger) error {
	email := models.NormalizeEmail(cfg.Storage.Remote.Username)
	password := cfg.Storage.Remote.Password
	if email == "" || password == "" {
		return nil
	}

	hash, err := crypto.NewBcryptHasher(cfg.App.PasswordHashCost).Hash(password)
	if err != nil {
		return fmt.Errorf("hash demo admin password: %w", err)
	}

	admin := models.User{
		ID:           utils.NewIDGenerator().Next(),
		Name:         demoAdminName,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err = users.Save(ctx, admin); err != nil {
		return fmt.Errorf("seed demo admin: %w", err)
	}

	log.Info().Str("email", email).Msg("seeded demo admin")
	return nil
}
