package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMissingField is returned by model constructors and validators when a
// required field is absent.
var ErrMissingField = errors.New("missing required field")

// MetaRecord is a single local-only metadata record as stored by the
// document store. Local metadata is never replicated; it carries per-endpoint
// replication state keyed by an arbitrary string.
type MetaRecord struct {
	// Key is the record's unique identifier within the local metadata
	// space.
	Key string `json:"key"`

	// Revision is the storage revision of the record. A writer must present
	// the revision it last read for an update to be accepted; a mismatch
	// means a concurrent writer got there first.
	Revision string `json:"revision"`

	// Payload is the record body, opaque to the store.
	Payload json.RawMessage `json:"payload"`

	UpdatedAt time.Time `json:"updated_at"`
}

// PushCheckpoint is the payload of a push checkpoint record: the last local
// change-feed position fully processed for push. Zero means the endpoint has
// never been pushed to.
//
// The JSON field name is part of the on-disk format and must not change, or
// checkpoints written by earlier deployments become unreadable.
type PushCheckpoint struct {
	Value int64 `json:"value"`
}

// NewPushCheckpoint validates and wraps a feed sequence as a checkpoint
// payload.
func NewPushCheckpoint(sequence int64) (PushCheckpoint, error) {
	if sequence < 0 {
		return PushCheckpoint{}, fmt.Errorf("push checkpoint: sequence must be >= 0, got %d", sequence)
	}
	return PushCheckpoint{Value: sequence}, nil
}

// PullCheckpoint is the payload of a pull checkpoint record: a snapshot of
// the last remote document accepted locally. A nil Doc means no pull has
// ever completed for the endpoint.
type PullCheckpoint struct {
	Doc json.RawMessage `json:"doc"`
}

// NewPullCheckpoint wraps a remote document snapshot as a checkpoint
// payload. The snapshot must be non-empty; "no pull yet" is represented by
// the absence of the record, not by an empty one.
func NewPullCheckpoint(doc json.RawMessage) (PullCheckpoint, error) {
	if len(doc) == 0 {
		return PullCheckpoint{}, fmt.Errorf("pull checkpoint: %w: doc", ErrMissingField)
	}
	return PullCheckpoint{Doc: doc}, nil
}
