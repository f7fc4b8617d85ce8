package service

import (
	"context"
	"encoding/json"

	"github.com/mirrorlake/docsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ReplicationService drives replication rounds against one remote endpoint
// on behalf of the local store.
type ReplicationService interface {
	// PushOnce runs a single push cycle: select the next pushable batch,
	// offer it to the remote, and commit the push checkpoint. Returns the
	// number of documents transmitted.
	PushOnce(ctx context.Context, endpoint models.RemoteEndpoint) (int, error)

	// PullOnce runs a single pull cycle: fetch remote documents after the
	// pull checkpoint, apply them locally, and commit the new checkpoint.
	// Returns the number of documents applied.
	PullOnce(ctx context.Context, endpoint models.RemoteEndpoint) (int, error)

	// SyncOnce runs a pull cycle followed by a push cycle. A push rejected
	// because the remote moved ahead triggers one more pull-then-push round.
	SyncOnce(ctx context.Context, endpoint models.RemoteEndpoint) error
}

// ReplicationJob runs SyncOnce on a ticker in the background.
type ReplicationJob interface {
	Run()
	Stop()
}

// PushCheckpoints is the push-direction progress tracker consumed by the
// replicator.
type PushCheckpoints interface {
	LastSequence(ctx context.Context, endpointHash string) (int64, error)
	SetLastSequence(ctx context.Context, endpointHash string, sequence int64) (models.MetaRecord, error)
	ChangesSinceLastPush(ctx context.Context, endpointHash string) (models.ChangeBatch, error)
}

// PullCheckpoints is the pull-direction progress tracker consumed by the
// replicator.
type PullCheckpoints interface {
	LastDocument(ctx context.Context, endpointHash string) (json.RawMessage, error)
	SetLastDocument(ctx context.Context, endpointHash string, doc json.RawMessage) (models.MetaRecord, error)
}

// PulledApplier writes remote documents into the local store and marks them
// in the pulled ledger.
type PulledApplier interface {
	ApplyPulled(ctx context.Context, endpointHash string, docs []models.Document) error
}

// EndpointService is the server-side counterpart: it applies pushed batches
// to the authoritative store and serves pull windows from its change feed.
type EndpointService interface {
	// HandlePush applies a batch pushed by replicaID. A document whose
	// revision lags the stored one is rejected with ErrPushConflict and the
	// whole batch is discarded.
	HandlePush(ctx context.Context, replicaID string, docs []models.Document) error

	// HandlePull returns documents changed after the given checkpoint
	// snapshot, excluding documents replicaID itself pushed, so a replica
	// never receives its own writes back.
	HandlePull(ctx context.Context, replicaID string, checkpoint json.RawMessage, limit int) (models.PullResponse, error)

	// Collection returns the name of the collection this service serves.
	Collection() string
}

// AppInfoService reports build information for the status endpoint.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
