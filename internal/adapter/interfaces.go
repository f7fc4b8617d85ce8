// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

// Package adapter provides transport-layer abstractions for talking to a
// remote replication endpoint.
//
// The primary abstraction is [EndpointAdapter], which decouples the
// replication orchestrator from the underlying protocol. The package ships
// an HTTP/REST implementation ([NewHTTPEndpointAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/mirrorlake/docsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/endpoint_adapter_mock.go -package=mock

// EndpointAdapter defines transport-agnostic communication with a remote
// replication endpoint. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type EndpointAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set.
	Token() string

	// PushBatch offers a batch of local documents to the remote. Returns
	// [ErrConflict] (wrapped) if the remote rejects the batch because of
	// concurrent writes, or another error if the request fails.
	PushBatch(ctx context.Context, batch models.ChangeBatch) error

	// PullSince asks the remote for documents written after the given
	// checkpoint snapshot; a nil checkpoint requests the feed from the
	// beginning. Returns the pulled documents (oldest first) together with
	// the checkpoint snapshot to persist once they have been applied
	// locally. An empty window returns no documents and a nil checkpoint.
	PullSince(ctx context.Context, checkpoint json.RawMessage, limit int) ([]models.Document, json.RawMessage, error)
}
