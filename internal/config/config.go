// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// lyra client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session signing, password hashing and request settings.
	App App `envPrefix:"APP_"`

	// Storage holds the remote credential store and the local session slot
	// settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionSignKey is the HMAC key used to sign the locally persisted
	// session token. Must be kept confidential.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim of the session token.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// PasswordHashCost is the bcrypt cost used for new password hashes.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// RequestTimeout bounds every call to the remote credential store.
	// Env: APP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for both storage backends.
type Storage struct {
	// Remote is the shared credential store holding users, classes and
	// activities.
	Remote Remote `envPrefix:"REMOTE_"`

	// Local is the on-device store holding the session slot.
	Local Local `envPrefix:"LOCAL_"`
}

// Remote holds connection settings of the remote document store.
type Remote struct {
	// Driver selects the backend: "postgres", "couchdb" or "memory".
	// Env: STORAGE_REMOTE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the PostgreSQL connection string used by the postgres driver.
	// Env: STORAGE_REMOTE_DSN
	DSN string `env:"DSN"`

	// URL is the CouchDB base URL used by the couchdb driver.
	// Env: STORAGE_REMOTE_URL
	URL string `env:"URL"`

	// Username and Password are the CouchDB basic auth credentials.
	// Env: STORAGE_REMOTE_USERNAME, STORAGE_REMOTE_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// Local holds the SQLite settings of the session slot store.
type Local struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to every field still empty after merging.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
