package checkpoint

import (
	"context"
	"encoding/json"

	"github.com/mirrorlake/docsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/checkpoint_mock.go -package=mock

// PushStore is the slice of the local document store consumed by
// [PushManager]: the ordered change feed, latest-winner bulk lookup, and the
// local-only metadata records that hold checkpoints.
type PushStore interface {
	ChangesSince(ctx context.Context, since int64, limit int) (models.ChangeFeedPage, error)
	BulkGetLatest(ctx context.Context, refs []models.DocRef) ([]models.ChangeRecord, error)
	ReadLocalMeta(ctx context.Context, key string) (models.MetaRecord, error)
	WriteLocalMeta(ctx context.Context, key string, payload json.RawMessage, expectedRevision string) (models.MetaRecord, error)
}

// MetaStore is the slice consumed by [PullManager]: checkpoint records only.
type MetaStore interface {
	ReadLocalMeta(ctx context.Context, key string) (models.MetaRecord, error)
	WriteLocalMeta(ctx context.Context, key string, payload json.RawMessage, expectedRevision string) (models.MetaRecord, error)
}

// Codec translates store-native document bodies into the logical schema
// before they leave the selector.
type Codec interface {
	DecodeStoredDocument(raw json.RawMessage) (models.Document, error)
	NormalizePrimaryKey(doc models.Document) models.Document
}

// Oracle answers whether a revision was written as the direct result of
// applying a pulled remote document for the given endpoint, as opposed to a
// genuine local mutation. The marking side lives with the store; this
// package only consumes the query.
type Oracle interface {
	WasPulled(ctx context.Context, endpointHash string, docID string, revision string) (bool, error)
}
