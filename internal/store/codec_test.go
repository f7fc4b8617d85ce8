package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirrorlake/docsync/models"
)

func TestJSONCodec_DecodeStoredDocument(t *testing.T) {
	codec := NewJSONCodec("user_id")

	tests := []struct {
		name    string
		raw     string
		want    models.Document
		wantErr bool
	}{
		{
			name: "success: internal identifier field",
			raw:  `{"_docsync_id":"u-1","name":"alice"}`,
			want: models.Document{ID: "u-1"},
		},
		{
			name: "success: falls back to the logical primary key",
			raw:  `{"user_id":"u-2","name":"bob"}`,
			want: models.Document{ID: "u-2"},
		},
		{
			name: "success: deleted flag is picked up",
			raw:  `{"_docsync_id":"u-3","_deleted":true}`,
			want: models.Document{ID: "u-3", Deleted: true},
		},
		{
			name:    "error: no identifier at all",
			raw:     `{"name":"carol"}`,
			wantErr: true,
		},
		{
			name:    "error: identifier is not a string",
			raw:     `{"_docsync_id":42}`,
			wantErr: true,
		},
		{
			name:    "error: not a JSON object",
			raw:     `[1,2,3]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := codec.DecodeStoredDocument(json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.ID, doc.ID)
			assert.Equal(t, tt.want.Deleted, doc.Deleted)
			assert.JSONEq(t, tt.raw, string(doc.Body))
		})
	}
}

func TestJSONCodec_NormalizePrimaryKey(t *testing.T) {
	t.Run("renames the internal field to the logical key", func(t *testing.T) {
		codec := NewJSONCodec("user_id")

		doc := codec.NormalizePrimaryKey(models.Document{
			ID:   "u-1",
			Body: json.RawMessage(`{"_docsync_id":"u-1","name":"alice"}`),
		})

		assert.JSONEq(t, `{"user_id":"u-1","name":"alice"}`, string(doc.Body))
	})

	t.Run("body without the internal field is untouched", func(t *testing.T) {
		codec := NewJSONCodec("user_id")
		raw := `{"user_id":"u-1","name":"alice"}`

		doc := codec.NormalizePrimaryKey(models.Document{ID: "u-1", Body: json.RawMessage(raw)})

		assert.JSONEq(t, raw, string(doc.Body))
	})

	t.Run("empty primary key disables normalization", func(t *testing.T) {
		codec := NewJSONCodec("")
		raw := `{"_docsync_id":"u-1"}`

		doc := codec.NormalizePrimaryKey(models.Document{ID: "u-1", Body: json.RawMessage(raw)})

		assert.JSONEq(t, raw, string(doc.Body))
	})

	t.Run("empty body is untouched", func(t *testing.T) {
		codec := NewJSONCodec("user_id")

		doc := codec.NormalizePrimaryKey(models.Document{ID: "u-1"})

		assert.Empty(t, doc.Body)
	})
}
