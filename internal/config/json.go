package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing for the optional config file.
type StructuredJSONConfig struct {
	App struct {
		Namespace     string   `json:"namespace"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Meta struct {
			DSN string `json:"dsn"`
		} `json:"meta,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Endpoint struct {
		URL            string   `json:"url"`
		Collection     string   `json:"collection"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"endpoint,omitempty"`

	Sync struct {
		BatchSize          int      `json:"batch_size"`
		Interval           Duration `json:"interval"`
		SyncRevisions      bool     `json:"sync_revisions"`
		LastPulledRevField string   `json:"last_pulled_rev_field"`
		PrimaryKey         string   `json:"primary_key"`
	} `json:"sync,omitempty"`
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
			Namespace:     jsonCfg.App.Namespace,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Meta: Meta{
				DSN: jsonCfg.Storage.Meta.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Endpoint: Endpoint{
			URL:            jsonCfg.Endpoint.URL,
			Collection:     jsonCfg.Endpoint.Collection,
			Token:          jsonCfg.Endpoint.Token,
			RequestTimeout: time.Duration(jsonCfg.Endpoint.RequestTimeout),
		},
		Sync: Sync{
			BatchSize:          jsonCfg.Sync.BatchSize,
			Interval:           time.Duration(jsonCfg.Sync.Interval),
			SyncRevisions:      jsonCfg.Sync.SyncRevisions,
			LastPulledRevField: jsonCfg.Sync.LastPulledRevField,
			PrimaryKey:         jsonCfg.Sync.PrimaryKey,
		},
		JSONFilePath: "",
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
