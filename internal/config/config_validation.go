// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; validation rules will be added as the
// application matures (e.g. requiring non-empty DSN, token sign key, etc.).
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *DaemonConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Endpoint.URL == "" || cfg.Endpoint.Collection == "" || cfg.Endpoint.RequestTimeout == 0 {
		return ErrInvalidEndpointConfigs
	}

	if cfg.Sync.Interval == 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.App.Namespace == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
