package models

import "encoding/json"

// ChangeRecord is one entry of the store's change feed: the document in its
// store-native encoding together with the feed position it was observed at.
type ChangeRecord struct {
	// ID is the store-internal document identifier as it appears on the
	// feed, before primary-key normalization.
	ID string `json:"id"`

	// Revision is the document's current revision at feed-read time.
	Revision string `json:"revision"`

	// Deleted marks a tombstone entry.
	Deleted bool `json:"deleted"`

	// Document is the raw store-native body, decoded later by the store's
	// codec before the record leaves the replication layer.
	Document json.RawMessage `json:"document,omitempty"`

	// Sequence is the change-feed position of this entry.
	Sequence int64 `json:"sequence"`
}

// ChangeFeedPage is one raw window of the change feed as returned by the
// store: up to the requested limit of records plus the sequence of the last
// record in the window (the resume point for the next read).
type ChangeFeedPage struct {
	Results      []ChangeRecord `json:"results"`
	LastSequence int64          `json:"last_sequence"`
}

// ChangeBatch is the unit handed to the transport layer: the pushable,
// decoded documents selected from one or more feed windows, plus the feed
// sequence the caller should persist once the batch has been transmitted.
//
// LastSequence may run ahead of the records in Results: when trailing feed
// entries were filtered out, it still points at the end of the last window
// read so the next cycle does not rescan them.
type ChangeBatch struct {
	Results      []Document `json:"results"`
	LastSequence int64      `json:"last_sequence"`
}

// Empty reports whether the batch carries no pushable documents.
func (b ChangeBatch) Empty() bool {
	return len(b.Results) == 0
}
