// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSignKey == "" {
		return fmt.Errorf("%w: session sign key is empty", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}

	if cfg.App.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.Remote.Driver {
	case DriverPostgres:
		if cfg.Storage.Remote.DSN == "" {
			return fmt.Errorf("%w: postgres driver needs a dsn", ErrInvalidStorageConfigs)
		}
	case DriverCouchDB:
		if cfg.Storage.Remote.URL == "" {
			return fmt.Errorf("%w: couchdb driver needs a url", ErrInvalidStorageConfigs)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown remote driver %q", ErrInvalidStorageConfigs, cfg.Storage.Remote.Driver)
	}

	if cfg.Storage.Local.DSN == "" {
		return fmt.Errorf("%w: local dsn is empty", ErrInvalidStorageConfigs)
	}

	return nil
}
