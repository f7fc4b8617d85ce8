package store

import (
	"encoding/json"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mirrorlake/docsync/models"
)

// Query builders. The SQLite store uses `?` placeholders, the PostgreSQL
// meta store uses `$N`.
var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

var documentColumns = []string{"doc_id", "revision", "deleted", "body", "seq"}

func buildChangesSinceQuery(since int64, limit int) (string, []any, error) {
	return sqliteBuilder.
		Select(documentColumns...).
		From("documents").
		Where(sq.Gt{"seq": since}).
		OrderBy("seq ASC").
		Limit(uint64(limit)).
		ToSql()
}

func buildBulkGetLatestQuery(refs []models.DocRef) (string, []any, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}

	return sqliteBuilder.
		Select(documentColumns...).
		From("documents").
		Where(sq.Eq{"doc_id": ids}).
		OrderBy("seq ASC").
		ToSql()
}

func buildGetDocumentQuery(docID string) (string, []any, error) {
	return sqliteBuilder.
		Select(documentColumns...).
		From("documents").
		Where(sq.Eq{"doc_id": docID}).
		ToSql()
}

func buildCurrentRevisionQuery(docID string) (string, []any, error) {
	return sqliteBuilder.
		Select("revision").
		From("documents").
		Where(sq.Eq{"doc_id": docID}).
		ToSql()
}

func buildMaxSequenceQuery() (string, []any, error) {
	return sqliteBuilder.
		Select("COALESCE(MAX(seq), 0)").
		From("documents").
		ToSql()
}

func buildUpsertDocumentQuery(doc models.Document, seq int64) (string, []any, error) {
	return sqliteBuilder.
		Insert("documents").
		Columns("doc_id", "revision", "deleted", "body", "seq").
		Values(doc.ID, doc.Revision, doc.Deleted, []byte(doc.Body), seq).
		Suffix(`ON CONFLICT (doc_id) DO UPDATE SET
			revision = excluded.revision,
			deleted = excluded.deleted,
			body = excluded.body,
			seq = excluded.seq`).
		ToSql()
}

func buildInsertRevisionQuery(doc models.Document) (string, []any, error) {
	return sqliteBuilder.
		Insert("revisions").
		Columns("doc_id", "revision", "deleted", "body").
		Values(doc.ID, doc.Revision, doc.Deleted, []byte(doc.Body)).
		Suffix(`ON CONFLICT (doc_id, revision) DO NOTHING`).
		ToSql()
}

func buildMarkPulledQuery(endpointHash string, doc models.Document) (string, []any, error) {
	return sqliteBuilder.
		Insert("pulled_revisions").
		Columns("endpoint_hash", "doc_id", "revision").
		Values(endpointHash, doc.ID, doc.Revision).
		Suffix(`ON CONFLICT (endpoint_hash, doc_id) DO UPDATE SET
			revision = excluded.revision`).
		ToSql()
}

func buildWasPulledQuery(endpointHash string, docID string, revision string) (string, []any, error) {
	return sqliteBuilder.
		Select("COUNT(*)").
		From("pulled_revisions").
		Where(sq.Eq{
			"endpoint_hash": endpointHash,
			"doc_id":        docID,
			"revision":      revision,
		}).
		ToSql()
}

func buildReadLocalMetaQuery(builder sq.StatementBuilderType, key string) (string, []any, error) {
	return builder.
		Select("meta_key", "revision", "payload", "updated_at").
		From("local_meta").
		Where(sq.Eq{"meta_key": key}).
		ToSql()
}

func buildInsertLocalMetaQuery(builder sq.StatementBuilderType, key string, revision string, payload json.RawMessage, now time.Time) (string, []any, error) {
	return builder.
		Insert("local_meta").
		Columns("meta_key", "revision", "payload", "updated_at").
		Values(key, revision, []byte(payload), now).
		ToSql()
}

func buildUpdateLocalMetaQuery(builder sq.StatementBuilderType, key string, newRevision string, payload json.RawMessage, expectedRevision string, now time.Time) (string, []any, error) {
	return builder.
		Update("local_meta").
		Set("revision", newRevision).
		Set("payload", []byte(payload)).
		Set("updated_at", now).
		Where(sq.Eq{"meta_key": key, "revision": expectedRevision}).
		ToSql()
}
