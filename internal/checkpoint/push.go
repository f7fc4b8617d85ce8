// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package checkpoint

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/models"
)

// PushManager owns the push-direction cursor for each remote endpoint:
// everything up to the persisted sequence has been offered to the remote.
// It selects the next outgoing change batch through a retry loop that keeps
// scanning past runs of non-pushable changes without persisting intermediate
// progress; committed progress only moves when the caller invokes
// [PushManager.SetLastSequence] after a successful transmit.
type PushManager struct {
	namespace string
	store     PushStore
	codec     Codec
	oracle    Oracle
	opts      options
	logger    *logger.Logger
}

func NewPushManager(namespace string, st PushStore, codec Codec, oracle Oracle, log *logger.Logger, opts ...Option) *PushManager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &PushManager{
		namespace: namespace,
		store:     st,
		codec:     codec,
		oracle:    oracle,
		opts:      o,
		logger:    log,
	}
}

// LastSequence returns the persisted push cursor for the endpoint, or 0 when
// the endpoint has never been pushed to.
func (m *PushManager) LastSequence(ctx context.Context, endpointHash string) (int64, error) {
	record, found, err := readCheckpoint(ctx, m.store, pushCheckpointKey(m.namespace, endpointHash))
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}

	var cp models.PushCheckpoint
	if err := json.Unmarshal(record.Payload, &cp); err != nil {
		return 0, fmt.Errorf("failed to decode push checkpoint payload: %w", err)
	}

	return cp.Value, nil
}

// SetLastSequence persists sequence as the endpoint's committed push
// progress. Creates the checkpoint record on first use, updates it
// afterwards. A concurrent writer surfaces as store.ErrRevisionConflict.
func (m *PushManager) SetLastSequence(ctx context.Context, endpointHash string, sequence int64) (models.MetaRecord, error) {
	log := logger.FromContext(ctx)

	cp, err := models.NewPushCheckpoint(sequence)
	if err != nil {
		return models.MetaRecord{}, err
	}

	payload, err := json.Marshal(cp)
	if err != nil {
		return models.MetaRecord{}, fmt.Errorf("failed to encode push checkpoint payload: %w", err)
	}

	record, err := writeCheckpoint(ctx, m.store, pushCheckpointKey(m.namespace, endpointHash), payload)
	if err != nil {
		log.Err(err).
			Str("func", "PushManager.SetLastSequence").
			Str("endpoint_hash", endpointHash).
			Int64("sequence", sequence).
			Msg("failed to persist push checkpoint")
		return models.MetaRecord{}, err
	}

	return record, nil
}

// ChangesSinceLastPush selects the next batch of pushable changes for the
// endpoint.
//
// The selector reads fixed-size windows from the change feed starting after
// the persisted cursor and filters out changes that must not go to the
// remote: revisions the oracle reports as pull-originated, documents whose
// lastPulledRevField still equals their current revision, and reserved
// design documents. When a whole window is filtered away but the feed is not
// exhausted, the scan cursor advances in memory and the next window is
// fetched; nothing is persisted until the caller commits the returned
// LastSequence via SetLastSequence. A crash mid-scan therefore rescans from
// the last committed cursor, which is safe, just not free.
//
// An empty batch is not an error: it means the feed held nothing pushable,
// and the returned LastSequence still marks the end of the scanned region so
// the caller can advance the checkpoint past it.
func (m *PushManager) ChangesSinceLastPush(ctx context.Context, endpointHash string) (models.ChangeBatch, error) {
	log := logger.FromContext(ctx)

	since, err := m.LastSequence(ctx, endpointHash)
	if err != nil {
		return models.ChangeBatch{}, err
	}

	cursor := since
	var (
		page     models.ChangeFeedPage
		selected []models.ChangeRecord
	)
	for {
		page, err = m.store.ChangesSince(ctx, cursor, m.opts.batchSize)
		if err != nil {
			return models.ChangeBatch{}, fmt.Errorf("failed to read change feed: %w", err)
		}

		selected, err = m.filterPushable(ctx, endpointHash, page.Results)
		if err != nil {
			return models.ChangeBatch{}, err
		}

		exhausted := len(page.Results) < m.opts.batchSize
		if len(selected) > 0 || exhausted {
			break
		}

		// The whole window was filtered away. Advance the scan cursor and
		// keep going; the persisted checkpoint stays where it is.
		log.Debug().
			Str("func", "PushManager.ChangesSinceLastPush").
			Str("endpoint_hash", endpointHash).
			Int64("cursor", page.LastSequence).
			Msg("change window fully filtered, scanning further")
		cursor = page.LastSequence
	}

	if m.opts.syncRevisions && len(selected) > 0 {
		selected, err = m.refreshLatest(ctx, selected)
		if err != nil {
			return models.ChangeBatch{}, err
		}
	}

	batch := models.ChangeBatch{LastSequence: page.LastSequence}
	for _, record := range selected {
		doc, decodeErr := m.codec.DecodeStoredDocument(record.Document)
		if decodeErr != nil {
			return models.ChangeBatch{}, fmt.Errorf("failed to decode change %q: %w", record.ID, decodeErr)
		}

		doc.Revision = record.Revision
		doc.Deleted = doc.Deleted || record.Deleted
		batch.Results = append(batch.Results, m.codec.NormalizePrimaryKey(doc))
	}

	return batch, nil
}

// filterPushable drops every change that must not reach the remote.
func (m *PushManager) filterPushable(ctx context.Context, endpointHash string, records []models.ChangeRecord) ([]models.ChangeRecord, error) {
	var pushable []models.ChangeRecord
	for _, record := range records {
		if strings.HasPrefix(record.ID, reservedIDPrefix) {
			continue
		}

		pulled, err := m.oracle.WasPulled(ctx, endpointHash, record.ID, record.Revision)
		if err != nil {
			return nil, fmt.Errorf("failed to query pull origin of %q: %w", record.ID, err)
		}
		if pulled {
			continue
		}

		if m.opts.lastPulledRevField != "" {
			body := models.Document{Body: record.Document}
			if body.Field(m.opts.lastPulledRevField) == record.Revision {
				// Still exactly at the state last received from the remote.
				continue
			}
		}

		pushable = append(pushable, record)
	}

	return pushable, nil
}

// refreshLatest replaces each selected change with the store's current
// latest-winner state, covering mutations that landed between the feed read
// and batch assembly. Documents deleted from the store in that window drop
// out of the batch.
func (m *PushManager) refreshLatest(ctx context.Context, selected []models.ChangeRecord) ([]models.ChangeRecord, error) {
	refs := make([]models.DocRef, 0, len(selected))
	for _, record := range selected {
		refs = append(refs, models.DocRef{ID: record.ID, Revision: record.Revision})
	}

	latest, err := m.store.BulkGetLatest(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh selected changes: %w", err)
	}

	byID := make(map[string]models.ChangeRecord, len(latest))
	for _, record := range latest {
		byID[record.ID] = record
	}

	refreshed := make([]models.ChangeRecord, 0, len(selected))
	for _, record := range selected {
		current, ok := byID[record.ID]
		if !ok {
			continue
		}

		record.Revision = current.Revision
		record.Document = current.Document
		record.Deleted = current.Deleted
		refreshed = append(refreshed, record)
	}

	return refreshed, nil
}
