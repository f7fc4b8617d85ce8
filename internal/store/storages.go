package store

import (
	"context"
	"fmt"

	"github.com/mirrorlake/docsync/internal/config"
	"github.com/mirrorlake/docsync/internal/logger"
)

// CheckpointStore combines the local change feed with a checkpoint meta
// store that may live in a different database. Deployments that keep
// checkpoint records in Postgres still read the feed from the local
// document store.
type CheckpointStore struct {
	ChangeFeed
	BulkGetter
	MetaStore
}

// Storages aggregates every storage backend one process needs.
type Storages struct {
	// Documents is the local SQLite document store.
	Documents DocumentStore

	// Meta holds checkpoint and metadata records. Backed by the document
	// store's own metadata table unless a Postgres DSN is configured.
	Meta MetaStore

	// Checkpoints is the surface the checkpoint managers consume: feed and
	// bulk reads from Documents, meta records from Meta.
	Checkpoints CheckpointStore
}

func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, config.DaemonDB{DSN: cfg.DB.DSN}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}
	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate document store: %w", err)
	}

	documents := NewDocumentStore(db)

	meta := MetaStore(documents)
	if cfg.Meta.DSN != "" {
		meta, err = NewPostgresMetaStore(cfg.Meta, log)
		if err != nil {
			return nil, fmt.Errorf("failed to open checkpoint store: %w", err)
		}
	}

	return &Storages{
		Documents: documents,
		Meta:      meta,
		Checkpoints: CheckpointStore{
			ChangeFeed: documents,
			BulkGetter: documents,
			MetaStore:  meta,
		},
	}, nil
}
