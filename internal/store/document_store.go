// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/internal/utils"
	"github.com/mirrorlake/docsync/models"
)

// documentStore is the SQLite-backed implementation of [DocumentStore].
// All writes go through a single transaction per call: the document row, its
// revision-history row, the sequence bump and (for pulls) the pulled-ledger
// row become visible atomically.
type documentStore struct {
	*DB
	uuid *utils.UUIDGenerator
}

func NewDocumentStore(db *DB) DocumentStore {
	return &documentStore{
		DB:   db,
		uuid: utils.NewUUIDGenerator(),
	}
}

func (s *documentStore) ChangesSince(ctx context.Context, since int64, limit int) (models.ChangeFeedPage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildChangesSinceQuery(since, limit)
	if err != nil {
		log.Err(err).Str("func", "documentStore.ChangesSince").Msg("failed to build changes query")
		return models.ChangeFeedPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "documentStore.ChangesSince").Int64("since", since).Msg("failed to query change feed")
		return models.ChangeFeedPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	page := models.ChangeFeedPage{LastSequence: since}
	for rows.Next() {
		record, scanErr := scanChangeRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "documentStore.ChangesSince").Msg("failed to scan change record")
			return models.ChangeFeedPage{}, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		page.Results = append(page.Results, record)
		page.LastSequence = record.Sequence
	}
	if err := rows.Err(); err != nil {
		return models.ChangeFeedPage{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return page, nil
}

func (s *documentStore) BulkGetLatest(ctx context.Context, refs []models.DocRef) ([]models.ChangeRecord, error) {
	log := logger.FromContext(ctx)

	if len(refs) == 0 {
		return nil, nil
	}

	query, args, err := buildBulkGetLatestQuery(refs)
	if err != nil {
		log.Err(err).Str("func", "documentStore.BulkGetLatest").Msg("failed to build bulk get query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "documentStore.BulkGetLatest").Int("refs", len(refs)).Msg("failed to query latest documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.ChangeRecord
	for rows.Next() {
		record, scanErr := scanChangeRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "documentStore.BulkGetLatest").Msg("failed to scan change record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (s *documentStore) GetDocument(ctx context.Context, docID string) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDocumentQuery(docID)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.ChangeRecord
	row := s.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&record.ID, &record.Revision, &record.Deleted, (*[]byte)(&record.Document), &record.Sequence)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Document{}, ErrDocumentNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).Str("func", "documentStore.GetDocument").Str("doc_id", docID).Msg("failed to scan document row")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return models.Document{
		ID:       record.ID,
		Revision: record.Revision,
		Deleted:  record.Deleted,
		Body:     record.Document,
	}, nil
}

func (s *documentStore) PutDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx)

	// A new document arrives without a revision; only the id is mandatory.
	if doc.ID == "" {
		return models.Document{}, fmt.Errorf("document: %w: id", models.ErrMissingField)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "documentStore.PutDocument").Msg("error during opening transaction")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	current, err := currentRevision(ctx, tx, doc.ID)
	if err != nil {
		log.Err(err).Str("func", "documentStore.PutDocument").Str("doc_id", doc.ID).Msg("failed to read current revision")
		return models.Document{}, err
	}

	// Optimistic check: a caller that read the document must still hold the
	// latest revision when writing it back.
	if doc.Revision != "" && doc.Revision != current {
		log.Warn().
			Str("func", "documentStore.PutDocument").
			Str("doc_id", doc.ID).
			Str("expected", doc.Revision).
			Str("current", current).
			Msg("revision conflict on local write")
		return models.Document{}, ErrRevisionConflict
	}

	next, err := utils.NextRevision(current, doc.Body)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to generate next revision: %w", err)
	}
	doc.Revision = next

	if err := s.writeDocumentTx(ctx, tx, doc); err != nil {
		log.Err(err).Str("func", "documentStore.PutDocument").Str("doc_id", doc.ID).Msg("failed to write document")
		return models.Document{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "documentStore.PutDocument").Msg("error during committing transaction")
		return models.Document{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return doc, nil
}

func (s *documentStore) ApplyPulled(ctx context.Context, endpointHash string, docs []models.Document) error {
	log := logger.FromContext(ctx)

	if len(docs) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "documentStore.ApplyPulled").Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return fmt.Errorf("pulled document %q: %w", doc.ID, err)
		}

		if err := s.writeDocumentTx(ctx, tx, doc); err != nil {
			log.Err(err).Str("func", "documentStore.ApplyPulled").Str("doc_id", doc.ID).Msg("failed to write pulled document")
			return err
		}

		// The ledger row lands in the same transaction as the document, so
		// a change-feed reader can never observe the revision before the
		// ledger does.
		markQuery, markArgs, buildErr := buildMarkPulledQuery(endpointHash, doc)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, execErr := tx.ExecContext(ctx, markQuery, markArgs...); execErr != nil {
			log.Err(execErr).Str("func", "documentStore.ApplyPulled").Str("doc_id", doc.ID).Msg("failed to record pulled revision")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "documentStore.ApplyPulled").Msg("error during committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (s *documentStore) WasPulled(ctx context.Context, endpointHash string, docID string, revision string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildWasPulledQuery(endpointHash, docID, revision)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "documentStore.WasPulled").Str("doc_id", docID).Msg("failed to query pulled ledger")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

func (s *documentStore) ReadLocalMeta(ctx context.Context, key string) (models.MetaRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildReadLocalMetaQuery(sqliteBuilder, key)
	if err != nil {
		return models.MetaRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.MetaRecord
	row := s.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&record.Key, &record.Revision, (*[]byte)(&record.Payload), &record.UpdatedAt)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.MetaRecord{}, ErrMetaNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).Str("func", "documentStore.ReadLocalMeta").Str("key", key).Msg("failed to scan meta record")
		return models.MetaRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return record, nil
}

func (s *documentStore) WriteLocalMeta(ctx context.Context, key string, payload json.RawMessage, expectedRevision string) (models.MetaRecord, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	newRevision := s.uuid.Generate()

	var (
		query string
		args  []any
		err   error
	)
	if expectedRevision == "" {
		query, args, err = buildInsertLocalMetaQuery(sqliteBuilder, key, newRevision, payload, now)
	} else {
		query, args, err = buildUpdateLocalMetaQuery(sqliteBuilder, key, newRevision, payload, expectedRevision, now)
	}
	if err != nil {
		return models.MetaRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if expectedRevision == "" && isSQLiteConstraintErr(err) {
			// The key already exists; the caller lost the create race.
			return models.MetaRecord{}, ErrRevisionConflict
		}
		log.Err(err).Str("func", "documentStore.WriteLocalMeta").Str("key", key).Msg("failed to write meta record")
		return models.MetaRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "documentStore.WriteLocalMeta").
			Str("key", key).
			Str("expected", expectedRevision).
			Msg("conditional meta write matched no rows")
		return models.MetaRecord{}, ErrRevisionConflict
	}

	return models.MetaRecord{
		Key:       key,
		Revision:  newRevision,
		Payload:   payload,
		UpdatedAt: now,
	}, nil
}

// writeDocumentTx upserts the document row at the next free sequence position
// and appends the revision to the history table.
func (s *documentStore) writeDocumentTx(ctx context.Context, tx *sql.Tx, doc models.Document) error {
	seqQuery, seqArgs, err := buildMaxSequenceQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var maxSeq int64
	if err := tx.QueryRowContext(ctx, seqQuery, seqArgs...).Scan(&maxSeq); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	upsertQuery, upsertArgs, err := buildUpsertDocumentQuery(doc, maxSeq+1)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, upsertQuery, upsertArgs...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return ErrDocumentNotSaved
	}

	revisionQuery, revisionArgs, err := buildInsertRevisionQuery(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, revisionQuery, revisionArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func currentRevision(ctx context.Context, tx *sql.Tx, docID string) (string, error) {
	query, args, err := buildCurrentRevisionQuery(docID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var revision string
	scanErr := tx.QueryRowContext(ctx, query, args...).Scan(&revision)
	if errors.Is(scanErr, sql.ErrNoRows) {
		// New document.
		return "", nil
	}
	if scanErr != nil {
		return "", fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return revision, nil
}

func scanChangeRecord(rows *sql.Rows) (models.ChangeRecord, error) {
	var record models.ChangeRecord
	err := rows.Scan(&record.ID, &record.Revision, &record.Deleted, (*[]byte)(&record.Document), &record.Sequence)
	return record, err
}
