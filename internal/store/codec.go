package store

import (
	"encoding/json"
	"fmt"

	"github.com/mirrorlake/docsync/models"
)

// InternalIDField is the identifier field used inside store-native document
// bodies. Replication payloads carry the schema's logical primary key
// instead; [Codec.NormalizePrimaryKey] converts between the two.
const InternalIDField = "_docsync_id"

type jsonCodec struct {
	primaryKey string
}

// NewJSONCodec returns a [Codec] for a collection whose logical primary key
// field is primaryKey. An empty primaryKey leaves bodies untouched.
func NewJSONCodec(primaryKey string) Codec {
	return &jsonCodec{primaryKey: primaryKey}
}

func (c *jsonCodec) DecodeStoredDocument(raw json.RawMessage) (models.Document, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.Document{}, fmt.Errorf("failed to decode stored document: %w", err)
	}

	idRaw, ok := fields[InternalIDField]
	if !ok && c.primaryKey != "" {
		idRaw, ok = fields[c.primaryKey]
	}
	if !ok {
		return models.Document{}, fmt.Errorf("stored document has no identifier: %w", models.ErrMissingField)
	}

	var id string
	if err := json.Unmarshal(idRaw, &id); err != nil {
		return models.Document{}, fmt.Errorf("stored document identifier is not a string: %w", err)
	}

	doc := models.Document{ID: id, Body: raw}
	if deletedRaw, ok := fields["_deleted"]; ok {
		// Ignore a malformed flag; a missing or broken _deleted means live.
		_ = json.Unmarshal(deletedRaw, &doc.Deleted)
	}

	return doc, nil
}

func (c *jsonCodec) NormalizePrimaryKey(doc models.Document) models.Document {
	if c.primaryKey == "" || c.primaryKey == InternalIDField || len(doc.Body) == 0 {
		return doc
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc.Body, &fields); err != nil {
		return doc
	}

	idRaw, ok := fields[InternalIDField]
	if !ok {
		return doc
	}

	delete(fields, InternalIDField)
	fields[c.primaryKey] = idRaw

	normalized, err := json.Marshal(fields)
	if err != nil {
		return doc
	}

	doc.Body = normalized
	return doc
}
