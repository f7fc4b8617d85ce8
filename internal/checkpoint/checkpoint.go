// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

// Package checkpoint tracks replication progress between a local document
// store and a remote endpoint. Push progress is a monotonic cursor over the
// local change feed; pull progress is a snapshot of the last remote document
// accepted locally. Both live in local-only metadata records, one pair per
// remote endpoint.
//
// The package provides no internal locking. Callers must serialize push
// cycles per (collection, endpoint) pair; a violated single-writer
// assumption surfaces as store.ErrRevisionConflict from a checkpoint write.
package checkpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mirrorlake/docsync/internal/store"
	"github.com/mirrorlake/docsync/models"
)

func pushCheckpointKey(namespace string, endpointHash string) string {
	return namespace + "-push-checkpoint-" + endpointHash
}

func pullCheckpointKey(namespace string, endpointHash string) string {
	return namespace + "-pull-checkpoint-" + endpointHash
}

// readCheckpoint loads the record stored under key. A missing record is not
// an error: found reports whether it exists.
func readCheckpoint(ctx context.Context, meta MetaStore, key string) (record models.MetaRecord, found bool, err error) {
	record, err = meta.ReadLocalMeta(ctx, key)
	if errors.Is(err, store.ErrMetaNotFound) {
		return models.MetaRecord{}, false, nil
	}
	if err != nil {
		return models.MetaRecord{}, false, fmt.Errorf("failed to read checkpoint %q: %w", key, err)
	}

	return record, true, nil
}

// writeCheckpoint performs the read-modify-write shared by both managers:
// create the record when absent, otherwise update it under the revision the
// read observed, so the write is accepted as an update rather than a
// conflicting create.
func writeCheckpoint(ctx context.Context, meta MetaStore, key string, payload json.RawMessage) (models.MetaRecord, error) {
	current, found, err := readCheckpoint(ctx, meta, key)
	if err != nil {
		return models.MetaRecord{}, err
	}

	expectedRevision := ""
	if found {
		expectedRevision = current.Revision
	}

	record, err := meta.WriteLocalMeta(ctx, key, payload, expectedRevision)
	if err != nil {
		return models.MetaRecord{}, fmt.Errorf("failed to write checkpoint %q: %w", key, err)
	}

	return record, nil
}
