// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package checkpoint

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/models"
)

// PullManager owns the pull-direction checkpoint for each remote endpoint: a
// snapshot of the last remote document accepted locally. The remote-fetch
// stage reads it before a pull round to ask for "documents after this one"
// and writes it back after the round has been applied.
type PullManager struct {
	namespace string
	store     MetaStore
	logger    *logger.Logger
}

func NewPullManager(namespace string, st MetaStore, log *logger.Logger) *PullManager {
	return &PullManager{
		namespace: namespace,
		store:     st,
		logger:    log,
	}
}

// LastDocument returns the snapshot of the last remote document accepted
// locally, or nil when no pull has ever completed for the endpoint.
func (m *PullManager) LastDocument(ctx context.Context, endpointHash string) (json.RawMessage, error) {
	record, found, err := readCheckpoint(ctx, m.store, pullCheckpointKey(m.namespace, endpointHash))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var cp models.PullCheckpoint
	if err := json.Unmarshal(record.Payload, &cp); err != nil {
		return nil, fmt.Errorf("failed to decode pull checkpoint payload: %w", err)
	}

	return cp.Doc, nil
}

// SetLastDocument persists doc as the endpoint's pull checkpoint. Creates
// the record on the first completed pull, updates it afterwards.
func (m *PullManager) SetLastDocument(ctx context.Context, endpointHash string, doc json.RawMessage) (models.MetaRecord, error) {
	log := logger.FromContext(ctx)

	cp, err := models.NewPullCheckpoint(doc)
	if err != nil {
		return models.MetaRecord{}, err
	}

	payload, err := json.Marshal(cp)
	if err != nil {
		return models.MetaRecord{}, fmt.Errorf("failed to encode pull checkpoint payload: %w", err)
	}

	record, err := writeCheckpoint(ctx, m.store, pullCheckpointKey(m.namespace, endpointHash), payload)
	if err != nil {
		log.Err(err).
			Str("func", "PullManager.SetLastDocument").
			Str("endpoint_hash", endpointHash).
			Msg("failed to persist pull checkpoint")
		return models.MetaRecord{}, err
	}

	return record, nil
}
