// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/internal/store"
	"github.com/mirrorlake/docsync/internal/utils"
	"github.com/mirrorlake/docsync/models"
)

// EndpointStore is the authoritative-store surface the endpoint service
// needs: change feed, point lookups, pushed-batch application and the ledger
// that remembers which replica sent which revision.
type EndpointStore interface {
	ChangesSince(ctx context.Context, since int64, limit int) (models.ChangeFeedPage, error)
	GetDocument(ctx context.Context, docID string) (models.Document, error)
	ApplyPulled(ctx context.Context, endpointHash string, docs []models.Document) error
	WasPulled(ctx context.Context, endpointHash string, docID string, revision string) (bool, error)
}

// pullCursor is the server-side pull checkpoint snapshot: the feed position
// and identifier of the last document handed out. Opaque to clients, echoed
// back verbatim on the next pull.
type pullCursor struct {
	ID  string `json:"id"`
	Seq int64  `json:"seq"`
}

const defaultPullLimit = 100

type endpointService struct {
	store      EndpointStore
	codec      Codec
	collection string

	logger *logger.Logger
}

// Codec decodes stored bodies for outgoing pull windows.
type Codec interface {
	DecodeStoredDocument(raw json.RawMessage) (models.Document, error)
	NormalizePrimaryKey(doc models.Document) models.Document
}

func NewEndpointService(st EndpointStore, codec Codec, collection string, log *logger.Logger) EndpointService {
	return &endpointService{
		store:      st,
		codec:      codec,
		collection: collection,
		logger:     log,
	}
}

func (s *endpointService) Collection() string {
	return s.collection
}

// HandlePush implements EndpointService. The batch is applied atomically:
// either every acceptable document lands, or a stale revision rejects the
// whole batch so the replica can pull and retry.
func (s *endpointService) HandlePush(ctx context.Context, replicaID string, docs []models.Document) error {
	log := logger.FromContext(ctx)

	if len(docs) == 0 {
		return ErrNoDocumentsProvided
	}

	accepted := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return fmt.Errorf("pushed document: %w", err)
		}

		current, err := s.store.GetDocument(ctx, doc.ID)
		if errors.Is(err, store.ErrDocumentNotFound) {
			accepted = append(accepted, doc)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to load current state of %q: %w", doc.ID, err)
		}

		if current.Revision == doc.Revision {
			// Idempotent re-push of a revision already stored.
			continue
		}

		stale, err := lagsBehind(doc.Revision, current.Revision)
		if err != nil {
			return fmt.Errorf("pushed document %q: %w", doc.ID, err)
		}
		if stale {
			log.Warn().
				Str("func", "endpointService.HandlePush").
				Str("replica_id", replicaID).
				Str("doc_id", doc.ID).
				Str("pushed", doc.Revision).
				Str("stored", current.Revision).
				Msg("rejecting push of stale revision")
			return fmt.Errorf("document %q: %w", doc.ID, ErrPushConflict)
		}

		accepted = append(accepted, doc)
	}

	if len(accepted) == 0 {
		return nil
	}

	if err := s.store.ApplyPulled(ctx, replicaID, accepted); err != nil {
		return fmt.Errorf("failed to apply pushed batch: %w", err)
	}

	return nil
}

// HandlePull implements EndpointService. Like the client-side batch
// selector, it keeps scanning when a whole window consists of the replica's
// own pushes, so a pull never stalls behind them.
func (s *endpointService) HandlePull(ctx context.Context, replicaID string, checkpoint json.RawMessage, limit int) (models.PullResponse, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = defaultPullLimit
	}

	var cursor pullCursor
	if len(checkpoint) > 0 {
		if err := json.Unmarshal(checkpoint, &cursor); err != nil {
			return models.PullResponse{}, fmt.Errorf("%w: %w", ErrInvalidPullCheckpoint, err)
		}
	}

	since := cursor.Seq
	var (
		page     models.ChangeFeedPage
		selected []models.ChangeRecord
	)
	for {
		var err error
		page, err = s.store.ChangesSince(ctx, since, limit)
		if err != nil {
			return models.PullResponse{}, fmt.Errorf("failed to read change feed: %w", err)
		}

		selected = selected[:0]
		for _, record := range page.Results {
			if strings.HasPrefix(record.ID, "_design/") {
				continue
			}

			own, err := s.store.WasPulled(ctx, replicaID, record.ID, record.Revision)
			if err != nil {
				return models.PullResponse{}, fmt.Errorf("failed to query push origin of %q: %w", record.ID, err)
			}
			if own {
				// The replica pushed this revision itself.
				continue
			}

			selected = append(selected, record)
		}

		if len(selected) > 0 || len(page.Results) < limit {
			break
		}

		log.Debug().
			Str("func", "endpointService.HandlePull").
			Str("replica_id", replicaID).
			Int64("cursor", page.LastSequence).
			Msg("pull window fully filtered, scanning further")
		since = page.LastSequence
	}

	resp := models.PullResponse{}
	for _, record := range selected {
		doc, err := s.codec.DecodeStoredDocument(record.Document)
		if err != nil {
			return models.PullResponse{}, fmt.Errorf("failed to decode change %q: %w", record.ID, err)
		}

		doc.Revision = record.Revision
		doc.Deleted = doc.Deleted || record.Deleted
		resp.Documents = append(resp.Documents, s.codec.NormalizePrimaryKey(doc))
	}
	resp.Length = len(resp.Documents)

	if resp.Length > 0 {
		next := pullCursor{
			ID:  resp.Documents[resp.Length-1].ID,
			Seq: page.LastSequence,
		}
		snapshot, err := json.Marshal(next)
		if err != nil {
			return models.PullResponse{}, fmt.Errorf("failed to encode pull checkpoint: %w", err)
		}
		resp.Checkpoint = snapshot
	}

	return resp, nil
}

// lagsBehind reports whether pushed is at a strictly earlier generation than
// stored. Same-generation divergence is accepted last-writer-wins; only a
// replica that demonstrably has not seen the stored generation is forced to
// pull first.
func lagsBehind(pushed string, stored string) (bool, error) {
	pushedGen, err := utils.RevisionGeneration(pushed)
	if err != nil {
		return false, err
	}
	storedGen, err := utils.RevisionGeneration(stored)
	if err != nil {
		return false, err
	}

	return pushedGen < storedGen, nil
}
