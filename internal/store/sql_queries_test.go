// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package store

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mirrorlake/docsync/models"
)

func Test_buildChangesSinceQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildChangesSinceQuery(42, 10)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from documents")
	require.Contains(t, q, "where")
	require.Contains(t, q, "seq")
	require.Contains(t, q, "order by seq asc")
	require.Contains(t, q, "limit 10")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")

	// columns presence (subset / key columns)
	require.Contains(t, q, "doc_id")
	require.Contains(t, q, "revision")
	require.Contains(t, q, "deleted")
	require.Contains(t, q, "body")
}

func Test_buildBulkGetLatestQuery(t *testing.T) {
	tests := []struct {
		name       string
		refs       []models.DocRef
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name: "success: single reference",
			refs: []models.DocRef{{ID: "doc-1", Revision: "1-abc"}},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "from documents")
				require.Contains(t, q, "doc_id")

				// Only the identifier is bound; the stale revision from the
				// reference must not constrain the lookup.
				require.Len(t, args, 1)
				require.Equal(t, "doc-1", args[0])
			},
		},
		{
			name: "success: multiple references",
			refs: []models.DocRef{
				{ID: "doc-1", Revision: "1-abc"},
				{ID: "doc-2", Revision: "3-def"},
				{ID: "doc-3", Revision: "2-ghi"},
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				// squirrel generates IN (?,?,?) for a slice.
				require.Contains(t, q, "in (?,?,?)")

				require.Len(t, args, 3)
				require.Equal(t, "doc-1", args[0])
				require.Equal(t, "doc-2", args[1])
				require.Equal(t, "doc-3", args[2])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildBulkGetLatestQuery(tt.refs)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildUpsertDocumentQuery_SQLContainsParts(t *testing.T) {
	doc := models.Document{
		ID:       "doc-1",
		Revision: "2-abc",
		Body:     json.RawMessage(`{"title":"hello"}`),
	}

	query, args, err := buildUpsertDocumentQuery(doc, 7)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into documents")
	require.Contains(t, q, "on conflict (doc_id) do update")
	require.Contains(t, q, "excluded.revision")
	require.Contains(t, q, "excluded.seq")

	require.Len(t, args, 5)
	require.Equal(t, "doc-1", args[0])
	require.Equal(t, "2-abc", args[1])
	require.Equal(t, int64(7), args[4])
}

func Test_buildMarkPulledQuery_SQLContainsParts(t *testing.T) {
	doc := models.Document{ID: "doc-1", Revision: "2-abc", Body: json.RawMessage(`{}`)}

	query, args, err := buildMarkPulledQuery("ep-hash", doc)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into pulled_revisions")
	require.Contains(t, q, "on conflict (endpoint_hash, doc_id) do update")

	require.Len(t, args, 3)
	require.Equal(t, "ep-hash", args[0])
	require.Equal(t, "doc-1", args[1])
	require.Equal(t, "2-abc", args[2])
}

func Test_buildLocalMetaQueries_PlaceholderFormats(t *testing.T) {
	payload := json.RawMessage(`{"value":5}`)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("sqlite uses question placeholders", func(t *testing.T) {
		query, args, err := buildUpdateLocalMetaQuery(sqliteBuilder, "k", "rev-new", payload, "rev-old", now)
		require.NoError(t, err)

		require.Contains(t, query, "?")
		require.NotContains(t, query, "$1")
		require.Len(t, args, 5)
	})

	t.Run("postgres uses dollar placeholders", func(t *testing.T) {
		query, args, err := buildUpdateLocalMetaQuery(postgresBuilder, "k", "rev-new", payload, "rev-old", now)
		require.NoError(t, err)

		require.Contains(t, query, "$1")
		require.Contains(t, query, "$5")
		require.Len(t, args, 5)
	})

	t.Run("conditional update binds expected revision", func(t *testing.T) {
		query, args, err := buildUpdateLocalMetaQuery(sqliteBuilder, "k", "rev-new", payload, "rev-old", now)
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "update local_meta")
		require.Contains(t, q, "where")
		require.Contains(t, q, "meta_key")
		require.Contains(t, q, "revision")

		require.Equal(t, "rev-old", args[len(args)-1])
	})

	t.Run("insert lists all columns", func(t *testing.T) {
		query, args, err := buildInsertLocalMetaQuery(sqliteBuilder, "k", "rev-new", payload, now)
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "insert into local_meta")
		require.Contains(t, q, "meta_key")
		require.Contains(t, q, "payload")
		require.Contains(t, q, "updated_at")
		require.Len(t, args, 4)
	})
}

func Test_buildWasPulledQuery_BindsAllThreeColumns(t *testing.T) {
	query, args, err := buildWasPulledQuery("ep-hash", "doc-1", "2-abc")
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "count(*)")
	require.Contains(t, q, "from pulled_revisions")
	require.Contains(t, q, "endpoint_hash")
	require.Contains(t, q, "doc_id")
	require.Contains(t, q, "revision")

	require.Len(t, args, 3)
	require.ElementsMatch(t, []any{"ep-hash", "doc-1", "2-abc"}, args)
}
