package store

import (
	"context"
	"encoding/json"

	"github.com/mirrorlake/docsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ChangeFeed exposes the ordered change feed of a document store. The feed is
// deduplicated per document: each document appears at most once, at its
// latest sequence position.
type ChangeFeed interface {
	// ChangesSince returns up to limit changes with sequence strictly greater
	// than since, ordered by ascending sequence.
	ChangesSince(ctx context.Context, since int64, limit int) (models.ChangeFeedPage, error)
}

// BulkGetter resolves document references to their latest stored state.
type BulkGetter interface {
	// BulkGetLatest returns the current change record for every referenced
	// document that still exists. Missing documents are silently skipped.
	BulkGetLatest(ctx context.Context, refs []models.DocRef) ([]models.ChangeRecord, error)
}

// MetaStore persists small keyed metadata records with optimistic
// concurrency control. It is the durable home of replication checkpoints.
type MetaStore interface {
	// ReadLocalMeta returns the record stored under key, or ErrMetaNotFound.
	ReadLocalMeta(ctx context.Context, key string) (models.MetaRecord, error)

	// WriteLocalMeta stores payload under key. An empty expectedRevision
	// means "create": the key must not exist yet. A non-empty
	// expectedRevision must match the stored revision. A mismatch in either
	// direction returns ErrRevisionConflict.
	WriteLocalMeta(ctx context.Context, key string, payload json.RawMessage, expectedRevision string) (models.MetaRecord, error)
}

// DocumentWriter is the write path of the local store.
type DocumentWriter interface {
	// PutDocument writes a locally-originated change. The stored revision is
	// advanced and the document is moved to the end of the change feed. When
	// doc.Revision is non-empty it must match the current stored revision,
	// otherwise ErrRevisionConflict is returned.
	PutDocument(ctx context.Context, doc models.Document) (models.Document, error)

	// ApplyPulled writes documents received from the remote endpoint
	// identified by endpointHash. Remote revisions are authoritative and
	// stored as-is. Every applied revision is recorded in the pulled ledger
	// before the transaction commits, so the ledger observes it strictly
	// before any subsequent change-feed read.
	ApplyPulled(ctx context.Context, endpointHash string, docs []models.Document) error
}

// PullLedger answers whether a document revision entered the store through a
// pull from the given endpoint.
type PullLedger interface {
	WasPulled(ctx context.Context, endpointHash string, docID string, revision string) (bool, error)
}

// Codec translates between store-native document bodies and the logical
// document schema.
type Codec interface {
	// DecodeStoredDocument parses a raw stored body into a Document.
	DecodeStoredDocument(raw json.RawMessage) (models.Document, error)

	// NormalizePrimaryKey rewrites the store-internal identifier field in the
	// document body to the schema's logical primary key.
	NormalizePrimaryKey(doc models.Document) models.Document
}

// DocumentStore is the full surface of the local SQLite-backed store.
type DocumentStore interface {
	ChangeFeed
	BulkGetter
	MetaStore
	DocumentWriter
	PullLedger

	// GetDocument returns the latest state of a single document, or
	// ErrDocumentNotFound.
	GetDocument(ctx context.Context, docID string) (models.Document, error)
}
