package models

import "encoding/json"

// PushRequest is sent to the remote endpoint to offer a batch of local
// documents. The documents are already decoded, filtered and normalized;
// the remote decides per document whether to accept or report a conflict.
type PushRequest struct {
	// Documents is the outgoing batch, in local change-feed order.
	Documents []Document `json:"documents"`

	// Length is the total number of entries in Documents. Provided so the
	// remote can validate the payload without iterating the slice.
	Length int `json:"length"`
}

// PullRequest asks the remote endpoint for documents written after the given
// checkpoint document. A nil Checkpoint requests the feed from the
// beginning.
type PullRequest struct {
	// Checkpoint is the snapshot of the last remote document the local
	// side accepted, exactly as previously returned in PullResponse.
	Checkpoint json.RawMessage `json:"checkpoint,omitempty"`

	// Limit caps the number of documents the remote should return.
	Limit int `json:"limit"`
}

// PullResponse carries one window of remote documents plus the checkpoint
// snapshot to persist after the window has been applied locally.
type PullResponse struct {
	// Documents are the remote documents, oldest first.
	Documents []Document `json:"documents"`

	// Checkpoint is an opaque snapshot of the last document in this window.
	// Empty when Documents is empty.
	Checkpoint json.RawMessage `json:"checkpoint,omitempty"`

	// Length is the total number of entries in Documents.
	Length int `json:"length"`
}
