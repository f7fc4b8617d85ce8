package config

import (
	"fmt"
	"time"
)

// DaemonApp holds daemon-side application settings derived from the shared
// structured config.
type DaemonApp struct {
	// Namespace is the checkpoint key namespace.
	Namespace string
	// StatusAddress is the optional listen address for the daemon status
	// endpoint; empty disables the listener.
	StatusAddress string
}

// DaemonEndpoint holds network settings for the remote replication endpoint.
type DaemonEndpoint struct {
	// URL is the remote endpoint base address.
	URL string
	// Collection is the replicated collection name.
	Collection string
	// Token is the bearer token for the remote endpoint.
	Token string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// DaemonDB contains local document store connection settings.
type DaemonDB struct {
	// DSN is the SQLite database path or URI.
	DSN string
}

// DaemonStorage groups daemon storage backend settings.
type DaemonStorage struct {
	// DB holds local document store settings.
	DB DaemonDB
}

// DaemonSync contains replication-loop settings.
type DaemonSync struct {
	// BatchSize caps the change-feed window size; zero means the default.
	BatchSize int
	// Interval defines how often the background sync job runs.
	Interval time.Duration
	// SyncRevisions enables latest-winner revision refresh before push.
	SyncRevisions bool
	// LastPulledRevField is the loop-prevention body field name.
	LastPulledRevField string
	// PrimaryKey is the logical primary key field name.
	PrimaryKey string
}

// DaemonConfig is the top-level syncd configuration assembled from
// [StructuredConfig].
type DaemonConfig struct {
	// App contains application-level daemon settings.
	App DaemonApp
	// Endpoint contains remote endpoint addresses and timeouts.
	Endpoint DaemonEndpoint
	// Storage contains local store settings.
	Storage DaemonStorage
	// Sync contains replication-loop settings.
	Sync DaemonSync
}

// GetDaemonConfig builds and validates a daemon-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the syncd runtime, and validates the resulting [DaemonConfig].
func GetDaemonConfig() (*DaemonConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	daemonCfg := &DaemonConfig{
		App: DaemonApp{
			Namespace:     cfg.App.Namespace,
			StatusAddress: cfg.Server.HTTPAddress,
		},
		Endpoint: DaemonEndpoint{
			URL:            cfg.Endpoint.URL,
			Collection:     cfg.Endpoint.Collection,
			Token:          cfg.Endpoint.Token,
			RequestTimeout: cfg.Endpoint.RequestTimeout,
		},
		Storage: DaemonStorage{
			DB: DaemonDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: DaemonSync{
			BatchSize:          cfg.Sync.BatchSize,
			Interval:           cfg.Sync.Interval,
			SyncRevisions:      cfg.Sync.SyncRevisions,
			LastPulledRevField: cfg.Sync.LastPulledRevField,
			PrimaryKey:         cfg.Sync.PrimaryKey,
		},
	}

	return daemonCfg, daemonCfg.validate()
}
