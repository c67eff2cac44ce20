package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"session_sign_key": "jwt_secret",
			"session_issuer": "test_issuer",
			"password_hash_cost": 11,
			"request_timeout": "30s"
		},
		"storage": {
			"remote": { "driver": "couchdb", "url": "http://localhost:5984", "username": "u", "password": "p" },
			"local": { "dsn": "slot.db" }
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.SessionSignKey)
	assert.Equal(t, "test_issuer", cfg.App.SessionIssuer)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout)

	assert.Equal(t, "couchdb", cfg.Storage.Remote.Driver)
	assert.Equal(t, "http://localhost:5984", cfg.Storage.Remote.URL)
	assert.Equal(t, "u", cfg.Storage.Remote.Username)
	assert.Equal(t, "p", cfg.Storage.Remote.Password)
	assert.Equal(t, "slot.db", cfg.Storage.Local.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{"), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"1m"`)))
	assert.Equal(t, Duration(time.Minute), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`1000`)))
	assert.Equal(t, Duration(1000), d)

	assert.Error(t, d.UnmarshalJSON([]byte(`"later"`)))
}
