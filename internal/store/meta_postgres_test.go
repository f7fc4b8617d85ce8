package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostgresMetaMock(t *testing.T) (MetaStore, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db := &DB{
		DB:                 mockDB,
		errorClassificator: NewPostgresErrorClassifier(),
		dialect:            dialectPostgres,
	}

	return NewPostgresMetaStoreWithDB(db), mock
}

func TestPostgresMetaStore_ReadLocalMeta(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		s, mock := newPostgresMetaMock(t)

		now := time.Now().UTC()
		mock.ExpectQuery(`SELECT .+ FROM local_meta`).
			WithArgs("ns-push-checkpoint-abc").
			WillReturnRows(sqlmock.NewRows([]string{"meta_key", "revision", "payload", "updated_at"}).
				AddRow("ns-push-checkpoint-abc", "rev-1", []byte(`{"value":5}`), now))

		record, err := s.ReadLocalMeta(ctx, "ns-push-checkpoint-abc")
		require.NoError(t, err)

		assert.Equal(t, "ns-push-checkpoint-abc", record.Key)
		assert.Equal(t, "rev-1", record.Revision)
		assert.JSONEq(t, `{"value":5}`, string(record.Payload))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: missing key", func(t *testing.T) {
		s, mock := newPostgresMetaMock(t)

		mock.ExpectQuery(`SELECT .+ FROM local_meta`).
			WithArgs("no-such-key").
			WillReturnRows(sqlmock.NewRows([]string{"meta_key", "revision", "payload", "updated_at"}))

		_, err := s.ReadLocalMeta(ctx, "no-such-key")
		assert.ErrorIs(t, err, ErrMetaNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresMetaStore_WriteLocalMeta(t *testing.T) {
	ctx := context.Background()
	payload := json.RawMessage(`{"value":5}`)

	t.Run("success: create", func(t *testing.T) {
		s, mock := newPostgresMetaMock(t)

		mock.ExpectExec(`INSERT INTO local_meta`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		record, err := s.WriteLocalMeta(ctx, "key", payload, "")
		require.NoError(t, err)

		assert.Equal(t, "key", record.Key)
		assert.NotEmpty(t, record.Revision)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: conditional update", func(t *testing.T) {
		s, mock := newPostgresMetaMock(t)

		mock.ExpectExec(`UPDATE local_meta`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		record, err := s.WriteLocalMeta(ctx, "key", payload, "rev-1")
		require.NoError(t, err)

		assert.NotEqual(t, "rev-1", record.Revision)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: create races an existing key", func(t *testing.T) {
		s, mock := newPostgresMetaMock(t)

		mock.ExpectExec(`INSERT INTO local_meta`).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := s.WriteLocalMeta(ctx, "key", payload, "")
		assert.ErrorIs(t, err, ErrRevisionConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: stale expected revision matches no rows", func(t *testing.T) {
		s, mock := newPostgresMetaMock(t)

		mock.ExpectExec(`UPDATE local_meta`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := s.WriteLocalMeta(ctx, "key", payload, "rev-stale")
		assert.ErrorIs(t, err, ErrRevisionConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: driver failure is wrapped", func(t *testing.T) {
		s, mock := newPostgresMetaMock(t)

		mock.ExpectExec(`UPDATE local_meta`).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

		_, err := s.WriteLocalMeta(ctx, "key", payload, "rev-1")
		assert.ErrorIs(t, err, ErrExecutingStatement)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
