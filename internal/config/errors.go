package config

import "errors"

// Validation errors returned by [DaemonConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidEndpointConfigs indicates invalid remote endpoint settings
	// (for example, missing URL, collection, or request timeout).
	ErrInvalidEndpointConfigs = errors.New("invalid endpoint configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// required by the daemon (for example, missing checkpoint namespace).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSyncConfigs indicates invalid replication-loop settings
	// (for example, zero sync interval).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
