package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirrorlake/docsync/internal/config"
	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/models"
)

func newTestStore(t *testing.T) DocumentStore {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "docsync-test.db")
	db, err := NewConnectSQLite(context.Background(), config.DaemonDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() { _ = db.Close() })

	return NewDocumentStore(db)
}

func TestDocumentStore_PutDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("success: new document gets a generation-1 revision", func(t *testing.T) {
		s := newTestStore(t)

		doc, err := s.PutDocument(ctx, models.Document{
			ID:   "doc-1",
			Body: json.RawMessage(`{"title":"first"}`),
		})
		require.NoError(t, err)
		assert.Regexp(t, `^1-[0-9a-f]+$`, doc.Revision)

		stored, err := s.GetDocument(ctx, "doc-1")
		require.NoError(t, err)
		assert.Equal(t, doc.Revision, stored.Revision)
	})

	t.Run("success: update with current revision advances the generation", func(t *testing.T) {
		s := newTestStore(t)

		first, err := s.PutDocument(ctx, models.Document{ID: "doc-1", Body: json.RawMessage(`{"v":1}`)})
		require.NoError(t, err)

		second, err := s.PutDocument(ctx, models.Document{
			ID:       "doc-1",
			Revision: first.Revision,
			Body:     json.RawMessage(`{"v":2}`),
		})
		require.NoError(t, err)
		assert.Regexp(t, `^2-[0-9a-f]+$`, second.Revision)
		assert.NotEqual(t, first.Revision, second.Revision)
	})

	t.Run("error: stale revision is rejected", func(t *testing.T) {
		s := newTestStore(t)

		first, err := s.PutDocument(ctx, models.Document{ID: "doc-1", Body: json.RawMessage(`{"v":1}`)})
		require.NoError(t, err)

		_, err = s.PutDocument(ctx, models.Document{
			ID:       "doc-1",
			Revision: first.Revision,
			Body:     json.RawMessage(`{"v":2}`),
		})
		require.NoError(t, err)

		// first.Revision is no longer current.
		_, err = s.PutDocument(ctx, models.Document{
			ID:       "doc-1",
			Revision: first.Revision,
			Body:     json.RawMessage(`{"v":3}`),
		})
		assert.ErrorIs(t, err, ErrRevisionConflict)
	})

	t.Run("error: missing id", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.PutDocument(ctx, models.Document{Body: json.RawMessage(`{}`)})
		assert.ErrorIs(t, err, models.ErrMissingField)
	})
}

func TestDocumentStore_ChangesSince(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, id := range []string{"doc-a", "doc-b", "doc-c"} {
		_, err := s.PutDocument(ctx, models.Document{ID: id, Body: json.RawMessage(`{}`)})
		require.NoError(t, err)
	}

	t.Run("window respects the limit and is ordered by sequence", func(t *testing.T) {
		page, err := s.ChangesSince(ctx, 0, 2)
		require.NoError(t, err)

		require.Len(t, page.Results, 2)
		assert.Equal(t, "doc-a", page.Results[0].ID)
		assert.Equal(t, "doc-b", page.Results[1].ID)
		assert.Less(t, page.Results[0].Sequence, page.Results[1].Sequence)
		assert.Equal(t, page.Results[1].Sequence, page.LastSequence)
	})

	t.Run("next window resumes after the previous one", func(t *testing.T) {
		first, err := s.ChangesSince(ctx, 0, 2)
		require.NoError(t, err)

		second, err := s.ChangesSince(ctx, first.LastSequence, 10)
		require.NoError(t, err)

		require.Len(t, second.Results, 1)
		assert.Equal(t, "doc-c", second.Results[0].ID)
	})

	t.Run("empty window keeps the cursor", func(t *testing.T) {
		tail, err := s.ChangesSince(ctx, 0, 10)
		require.NoError(t, err)

		page, err := s.ChangesSince(ctx, tail.LastSequence, 10)
		require.NoError(t, err)

		assert.Empty(t, page.Results)
		assert.Equal(t, tail.LastSequence, page.LastSequence)
	})

	t.Run("feed is deduplicated per document", func(t *testing.T) {
		stored, err := s.GetDocument(ctx, "doc-a")
		require.NoError(t, err)

		updated, err := s.PutDocument(ctx, models.Document{
			ID:       "doc-a",
			Revision: stored.Revision,
			Body:     json.RawMessage(`{"v":2}`),
		})
		require.NoError(t, err)

		page, err := s.ChangesSince(ctx, 0, 10)
		require.NoError(t, err)

		var seen int
		for _, record := range page.Results {
			if record.ID == "doc-a" {
				seen++
				assert.Equal(t, updated.Revision, record.Revision)
			}
		}
		assert.Equal(t, 1, seen)

		// doc-a moved to the end of the feed
		assert.Equal(t, "doc-a", page.Results[len(page.Results)-1].ID)
	})
}

func TestDocumentStore_ApplyPulled(t *testing.T) {
	ctx := context.Background()
	const endpointHash = "0a1b2c3d"

	t.Run("success: pulled revision is stored and recorded in the ledger", func(t *testing.T) {
		s := newTestStore(t)

		err := s.ApplyPulled(ctx, endpointHash, []models.Document{
			{ID: "doc-1", Revision: "5-remote", Body: json.RawMessage(`{"origin":"remote"}`)},
		})
		require.NoError(t, err)

		stored, err := s.GetDocument(ctx, "doc-1")
		require.NoError(t, err)
		assert.Equal(t, "5-remote", stored.Revision)

		pulled, err := s.WasPulled(ctx, endpointHash, "doc-1", "5-remote")
		require.NoError(t, err)
		assert.True(t, pulled)
	})

	t.Run("local edit after a pull leaves the ledger behind", func(t *testing.T) {
		s := newTestStore(t)

		err := s.ApplyPulled(ctx, endpointHash, []models.Document{
			{ID: "doc-1", Revision: "5-remote", Body: json.RawMessage(`{"v":1}`)},
		})
		require.NoError(t, err)

		edited, err := s.PutDocument(ctx, models.Document{
			ID:       "doc-1",
			Revision: "5-remote",
			Body:     json.RawMessage(`{"v":2}`),
		})
		require.NoError(t, err)
		assert.Regexp(t, `^6-[0-9a-f]+$`, edited.Revision)

		pulled, err := s.WasPulled(ctx, endpointHash, "doc-1", edited.Revision)
		require.NoError(t, err)
		assert.False(t, pulled)
	})

	t.Run("ledger is scoped per endpoint", func(t *testing.T) {
		s := newTestStore(t)

		err := s.ApplyPulled(ctx, endpointHash, []models.Document{
			{ID: "doc-1", Revision: "1-abc", Body: json.RawMessage(`{}`)},
		})
		require.NoError(t, err)

		pulled, err := s.WasPulled(ctx, "other-endpoint", "doc-1", "1-abc")
		require.NoError(t, err)
		assert.False(t, pulled)
	})

	t.Run("error: pulled document without revision", func(t *testing.T) {
		s := newTestStore(t)

		err := s.ApplyPulled(ctx, endpointHash, []models.Document{
			{ID: "doc-1", Body: json.RawMessage(`{}`)},
		})
		assert.ErrorIs(t, err, models.ErrMissingField)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		s := newTestStore(t)

		require.NoError(t, s.ApplyPulled(ctx, endpointHash, nil))
	})
}

func TestDocumentStore_BulkGetLatest(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, err := s.PutDocument(ctx, models.Document{ID: "doc-1", Body: json.RawMessage(`{"v":1}`)})
	require.NoError(t, err)

	second, err := s.PutDocument(ctx, models.Document{
		ID:       "doc-1",
		Revision: first.Revision,
		Body:     json.RawMessage(`{"v":2}`),
	})
	require.NoError(t, err)

	t.Run("stale references resolve to the latest revision", func(t *testing.T) {
		records, err := s.BulkGetLatest(ctx, []models.DocRef{{ID: "doc-1", Revision: first.Revision}})
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, second.Revision, records[0].Revision)
	})

	t.Run("missing documents are skipped", func(t *testing.T) {
		records, err := s.BulkGetLatest(ctx, []models.DocRef{
			{ID: "doc-1", Revision: second.Revision},
			{ID: "no-such-doc", Revision: "1-x"},
		})
		require.NoError(t, err)

		require.Len(t, records, 1)
		assert.Equal(t, "doc-1", records[0].ID)
	})

	t.Run("no references means no lookup", func(t *testing.T) {
		records, err := s.BulkGetLatest(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestDocumentStore_LocalMeta(t *testing.T) {
	ctx := context.Background()
	const key = "ns-push-checkpoint-0a1b2c3d"

	t.Run("create then read round-trip", func(t *testing.T) {
		s := newTestStore(t)

		created, err := s.WriteLocalMeta(ctx, key, json.RawMessage(`{"value":5}`), "")
		require.NoError(t, err)
		assert.NotEmpty(t, created.Revision)

		record, err := s.ReadLocalMeta(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, created.Revision, record.Revision)
		assert.JSONEq(t, `{"value":5}`, string(record.Payload))
	})

	t.Run("missing key", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.ReadLocalMeta(ctx, "no-such-key")
		assert.ErrorIs(t, err, ErrMetaNotFound)
	})

	t.Run("conditional update succeeds with the current revision", func(t *testing.T) {
		s := newTestStore(t)

		created, err := s.WriteLocalMeta(ctx, key, json.RawMessage(`{"value":5}`), "")
		require.NoError(t, err)

		updated, err := s.WriteLocalMeta(ctx, key, json.RawMessage(`{"value":8}`), created.Revision)
		require.NoError(t, err)
		assert.NotEqual(t, created.Revision, updated.Revision)

		record, err := s.ReadLocalMeta(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"value":8}`, string(record.Payload))
	})

	t.Run("error: stale expected revision", func(t *testing.T) {
		s := newTestStore(t)

		created, err := s.WriteLocalMeta(ctx, key, json.RawMessage(`{"value":5}`), "")
		require.NoError(t, err)

		_, err = s.WriteLocalMeta(ctx, key, json.RawMessage(`{"value":8}`), created.Revision)
		require.NoError(t, err)

		_, err = s.WriteLocalMeta(ctx, key, json.RawMessage(`{"value":9}`), created.Revision)
		assert.ErrorIs(t, err, ErrRevisionConflict)
	})

	t.Run("error: create on an existing key", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.WriteLocalMeta(ctx, key, json.RawMessage(`{"value":5}`), "")
		require.NoError(t, err)

		_, err = s.WriteLocalMeta(ctx, key, json.RawMessage(`{"value":6}`), "")
		assert.ErrorIs(t, err, ErrRevisionConflict)
	})
}
