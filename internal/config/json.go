package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SessionSignKey   string   `json:"session_sign_key"`
		SessionIssuer    string   `json:"session_issuer"`
		PasswordHashCost int      `json:"password_hash_cost"`
		RequestTimeout   Duration `json:"request_timeout"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Remote struct {
			Driver   string `json:"driver"`
			DSN      string `json:"dsn"`
			URL      string `json:"url"`
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"remote,omitempty"`

		Local struct {
			DSN string `json:"dsn"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionSignKey:   jsonCfg.App.SessionSignKey,
			SessionIssuer:    jsonCfg.App.SessionIssuer,
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			RequestTimeout:   time.Duration(jsonCfg.App.RequestTimeout),
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			Remote: Remote{
				Driver:   jsonCfg.Storage.Remote.Driver,
				DSN:      jsonCfg.Storage.Remote.DSN,
				URL:      jsonCfg.Storage.Remote.URL,
				Username: jsonCfg.Storage.Remote.Username,
				Password: jsonCfg.Storage.Remote.Password,
			},
			Local: Local{DSN: jsonCfg.Storage.Local.DSN},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
