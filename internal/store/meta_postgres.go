package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/mirrorlake/docsync/internal/config"
	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/internal/utils"
	"github.com/mirrorlake/docsync/models"
)

// postgresMetaStore keeps checkpoint records in PostgreSQL for server-side
// deployments. Semantics mirror the SQLite [MetaStore]: conditional writes
// keyed on the stored revision, conflicts surfaced as ErrRevisionConflict.
type postgresMetaStore struct {
	*DB
	uuid *utils.UUIDGenerator
}

func NewPostgresMetaStore(cfg config.Meta, log *logger.Logger) (MetaStore, error) {
	db, err := NewConnectPostgres(context.Background(), cfg, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("checkpoint store migration failed")
		return nil, err
	}

	return &postgresMetaStore{DB: db, uuid: utils.NewUUIDGenerator()}, nil
}

// NewPostgresMetaStoreWithDB wraps an already-open connection. Used by tests
// and by callers that manage the connection lifecycle themselves.
func NewPostgresMetaStoreWithDB(db *DB) MetaStore {
	return &postgresMetaStore{DB: db, uuid: utils.NewUUIDGenerator()}
}

func (p *postgresMetaStore) ReadLocalMeta(ctx context.Context, key string) (models.MetaRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildReadLocalMetaQuery(postgresBuilder, key)
	if err != nil {
		return models.MetaRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.MetaRecord
	row := p.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&record.Key, &record.Revision, (*[]byte)(&record.Payload), &record.UpdatedAt)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.MetaRecord{}, ErrMetaNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).Str("func", "postgresMetaStore.ReadLocalMeta").Str("key", key).Msg("failed to scan meta record")
		return models.MetaRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return record, nil
}

func (p *postgresMetaStore) WriteLocalMeta(ctx context.Context, key string, payload json.RawMessage, expectedRevision string) (models.MetaRecord, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	newRevision := p.uuid.Generate()

	var (
		query string
		args  []any
		err   error
	)
	if expectedRevision == "" {
		query, args, err = buildInsertLocalMetaQuery(postgresBuilder, key, newRevision, payload, now)
	} else {
		query, args, err = buildUpdateLocalMetaQuery(postgresBuilder, key, newRevision, payload, expectedRevision, now)
	}
	if err != nil {
		return models.MetaRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if expectedRevision == "" && postgresError(err) == pgerrcode.UniqueViolation {
			// The key already exists; the caller lost the create race.
			return models.MetaRecord{}, ErrRevisionConflict
		}
		log.Err(err).
			Str("func", "postgresMetaStore.WriteLocalMeta").
			Str("key", key).
			Bool("retryable", p.errorClassificator.Classify(err) == Retryable).
			Msg("failed to write meta record")
		return models.MetaRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "postgresMetaStore.WriteLocalMeta").
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
