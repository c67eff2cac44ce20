package config

import "time"

// Remote store drivers.
const (
	DriverPostgres = "postgres"
	DriverCouchDB  = "couchdb"
	DriverMemory   = "memory"
)

const (
	defaultSessionIssuer    = "lyra-client"
	defaultPasswordHashCost = 10
	defaultRequestTimeout   = 15 * time.Second
	defaultRemoteDriver     = DriverMemory
	defaultLocalDSN         = "lyra-session.db"
)

// Defaults returns the configuration used for every field no source set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:    defaultSessionIssuer,
			PasswordHashCost: defaultPasswordHashCost,
			RequestTimeout:   defaultRequestTimeout,
		},
		Storage: Storage{
			Remote: Remote{Driver: defaultRemoteDriver},
			Local:  Local{DSN: defaultLocalDSN},
		},
	}
}
