package models

import (
	"encoding/json"
	"fmt"
)

// Document is the logical shape of a replicated document after the store's
// native encoding has been stripped away. The body stays opaque so the
// replication layer remains schema-agnostic: only the identifier, revision
// and deletion flag are interpreted here.
type Document struct {
	// ID is the logical primary key of the document, already normalized
	// from the store-internal identifier convention.
	ID string `json:"id"`

	// Revision identifies the exact document state, in "<generation>-<hash>"
	// form. Two documents with equal ID and Revision are byte-identical.
	Revision string `json:"revision"`

	// Deleted marks a tombstone. Tombstones replicate like live documents
	// so deletions propagate to the other side.
	Deleted bool `json:"deleted"`

	// Body is the document payload. Never inspected by the checkpoint
	// layer except for the configured last-pulled-revision field.
	Body json.RawMessage `json:"body,omitempty"`
}

// Field returns the string value of a top-level body field, or "" when the
// body is empty, the field is absent, or it is not a string.
func (d Document) Field(name string) string {
	if len(d.Body) == 0 || name == "" {
		return ""
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(d.Body, &m); err != nil {
		return ""
	}

	raw, ok := m[name]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Validate reports whether the document carries the fields every replicated
// document must have.
func (d Document) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("document: %w: id", ErrMissingField)
	}
	if d.Revision == "" {
		return fmt.Errorf("document: %w: revision", ErrMissingField)
	}
	return nil
}

// DocRef identifies one exact revision of one document. Used for bulk
// latest-winner lookups when revision refresh is enabled.
type DocRef struct {
	ID       string `json:"id"`
	Revision string `json:"revision"`
}
