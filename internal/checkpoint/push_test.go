// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package checkpoint

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mirrorlake/docsync/internal/logger"
	"github.com/mirrorlake/docsync/internal/mock"
	"github.com/mirrorlake/docsync/internal/store"
	"github.com/mirrorlake/docsync/models"
)

const (
	testNamespace = "testns"
	testEndpoint  = "0a1b2c3d"
	testPushKey   = "testns-push-checkpoint-0a1b2c3d"
)

// newTestPushManager builds a PushManager on gomock doubles and a real JSON
// codec (bodies use the internal identifier field, normalized to "id").
func newTestPushManager(
	t *testing.T,
	ctrl *gomock.Controller,
	opts ...Option,
) (*PushManager, *mock.MockPushStore, *mock.MockOracle) {
	t.Helper()

	mockStore := mock.NewMockPushStore(ctrl)
	mockOracle := mock.NewMockOracle(ctrl)

	m := NewPushManager(testNamespace, mockStore, store.NewJSONCodec("id"), mockOracle, logger.Nop(), opts...)

	return m, mockStore, mockOracle
}

func rawChange(id string, revision string, seq int64) models.ChangeRecord {
	return models.ChangeRecord{
		ID:       id,
		Revision: revision,
		Document: json.RawMessage(`{"_docsync_id":"` + id + `"}`),
		Sequence: seq,
	}
}

func notFound(mockStore *mock.MockPushStore, key string) *gomock.Call {
	return mockStore.EXPECT().
		ReadLocalMeta(gomock.Any(), key).
		Return(models.MetaRecord{}, store.ErrMetaNotFound)
}

// ── checkpoint record round-trip ─────────────────────────────────────────────

func TestPushManager_LastSequence_FreshEndpointDefaultsToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, _ := newTestPushManager(t, ctrl)
	ctx := context.Background()

	notFound(mockStore, testPushKey)

	seq, err := m.LastSequence(ctx, testEndpoint)
	require.NoError(t, err)
	assert.Equal(t, int64(0), seq)
}

func TestPushManager_SetLastSequence_CreatesThenUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, _ := newTestPushManager(t, ctrl)
	ctx := context.Background()

	// First write: no record yet, created without an expected revision.
	notFound(mockStore, testPushKey)
	mockStore.EXPECT().
		WriteLocalMeta(ctx, testPushKey, gomock.Any(), "").
		DoAndReturn(func(_ context.Context, key string, payload json.RawMessage, _ string) (models.MetaRecord, error) {
			assert.JSONEq(t, `{"value":5}`, string(payload))
			return models.MetaRecord{Key: key, Revision: "rev-1", Payload: payload}, nil
		})

	record, err := m.SetLastSequence(ctx, testEndpoint, 5)
	require.NoError(t, err)
	assert.Equal(t, "rev-1", record.Revision)

	// Second write: record exists, updated under the observed revision.
	mockStore.EXPECT().
		ReadLocalMeta(gomock.Any(), testPushKey).
		Return(models.MetaRecord{Key: testPushKey, Revision: "rev-1", Payload: json.RawMessage(`{"value":5}`)}, nil)
	mockStore.EXPECT().
		WriteLocalMeta(ctx, testPushKey, gomock.Any(), "rev-1").
		DoAndReturn(func(_ context.Context, key string, payload json.RawMessage, _ string) (models.MetaRecord, error) {
			assert.JSONEq(t, `{"value":9}`, string(payload))
			return models.MetaRecord{Key: key, Revision: "rev-2", Payload: payload}, nil
		})

	record, err = m.SetLastSequence(ctx, testEndpoint, 9)
	require.NoError(t, err)
	assert.Equal(t, "rev-2", record.Revision)
}

func TestPushManager_SetLastSequence_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, _ := newTestPushManager(t, ctrl)
	ctx := context.Background()

	stored := models.MetaRecord{Key: testPushKey, Revision: "rev-1", Payload: json.RawMessage(`{"value":9}`)}
	mockStore.EXPECT().
		ReadLocalMeta(gomock.Any(), testPushKey).
		Return(stored, nil)

	seq, err := m.LastSequence(ctx, testEndpoint)
	require.NoError(t, err)
	assert.Equal(t, int64(9), seq)
}

func TestPushManager_SetLastSequence_RejectsNegative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _ := newTestPushManager(t, ctrl)

	_, err := m.SetLastSequence(context.Background(), testEndpoint, -1)
	require.Error(t, err)
}

func TestPushManager_SetLastSequence_SurfacesRevisionConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, _ := newTestPushManager(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().
		ReadLocalMeta(gomock.Any(), testPushKey).
		Return(models.MetaRecord{Key: testPushKey, Revision: "rev-1"}, nil)
	mockStore.EXPECT().
		WriteLocalMeta(ctx, testPushKey, gomock.Any(), "rev-1").
		Return(models.MetaRecord{}, store.ErrRevisionConflict)

	_, err := m.SetLastSequence(ctx, testEndpoint, 7)
	assert.ErrorIs(t, err, store.ErrRevisionConflict)
}

// ── batch selection ──────────────────────────────────────────────────────────

func TestPushManager_ChangesSinceLastPush_BatchShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockOracle := newTestPushManager(t, ctrl)
	ctx := context.Background()

	notFound(mockStore, testPushKey)
	mockStore.EXPECT().
		ChangesSince(ctx, int64(0), DefaultBatchSize).
		Return(models.ChangeFeedPage{
			Results: []models.ChangeRecord{
				rawChange("A", "1-a", 1),
				rawChange("B", "1-b", 2),
				rawChange("C", "1-c", 3),
			},
			LastSequence: 3,
		}, nil)

	mockOracle.EXPECT().WasPulled(ctx, testEndpoint, "A", "1-a").Return(false, nil)
	mockOracle.EXPECT().WasPulled(ctx, testEndpoint, "B", "1-b").Return(true, nil)
	mockOracle.EXPECT().WasPulled(ctx, testEndpoint, "C", "1-c").Return(false, nil)

	batch, err := m.ChangesSinceLastPush(ctx, testEndpoint)
	require.NoError(t, err)

	require.Len(t, batch.Results, 2)
	assert.Equal(t, "A", batch.Results[0].ID)
	assert.Equal(t, "C", batch.Results[1].ID)
	assert.Equal(t, int64(3), batch.LastSequence)
}

func TestPushManager_ChangesSinceLastPush_PrimaryKeyNormalization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockOracle := newTestPushManager(t, ctrl)
	ctx := context.Background()

	notFound(mockStore, testPushKey)
	mockStore.EXPECT().
		ChangesSince(ctx, int64(0), DefaultBatchSize).
		Return(models.ChangeFeedPage{
			Results:      []models.ChangeRecord{rawChange("A", "1-a", 1)},
			LastSequence: 1,
		}, nil)
	mockOracle.EXPECT().WasPulled(ctx, testEndpoint, "A", "1-a").Return(false, nil)

	batch, err := m.ChangesSinceLastPush(ctx, testEndpoint)
	require.NoError(t, err)

	require.Len(t, batch.Results, 1)
	body := batch.Results[0].Body
	assert.Contains(t, string(body), `"id"`)
	assert.NotContains(t, string(body), store.InternalIDField)
	assert.Equal(t, "1-a", batch.Results[0].Revision)
}

func TestPushManager_ChangesSinceLastPush_SkipsUnchangedPulledDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockOracle := newTestPushManager(t, ctrl, WithLastPulledRevField("lastPulledRev"))
	ctx := context.Background()

	// The oracle does not flag the revision, but the body says it is still
	// exactly at the state last received from the remote.
	unchanged := models.ChangeRecord{
		ID:       "A",
		Revision: "2-a",
		Document: json.RawMessage(`{"_docsync_id":"A","lastPulledRev":"2-a"}`),
		Sequence: 1,
	}
	edited := models.ChangeRecord{
		ID:       "B",
		Revision: "3-b",
		Document: json.RawMessage(`{"_docsync_id":"B","lastPulledRev":"2-b"}`),
		Sequence: 2,
	}

	notFound(mockStore, testPushKey)
	mockStore.EXPECT().
		ChangesSince(ctx, int64(0), DefaultBatchSize).
		Return(models.ChangeFeedPage{Results: []models.ChangeRecord{unchanged, edited}, LastSequence: 2}, nil)

	mockOracle.EXPECT().WasPulled(ctx, testEndpoint, "A", "2-a").Return(false, nil)
	mockOracle.EXPECT().WasPulled(ctx, testEndpoint, "B", "3-b").Return(false, nil)

	batch, err := m.ChangesSinceLastPush(ctx, testEndpoint)
	require.NoError(t, err)

	require.Len(t, batch.Results, 1)
	assert.Equal(t, "B", batch.Results[0].ID)
}

func TestPushManager_ChangesSinceLastPush_SkipsReservedIdentifiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockOracle := newTestPushManager(t, ctrl)
	ctx := context.Background()

	notFound(mockStore, testPushKey)
	mockStore.EXPECT().
		ChangesSince(ctx, int64(0), DefaultBatchSize).
		Return(models.ChangeFeedPage{
			Results: []models.ChangeRecord{
				rawChange("_design/by-user", "1-d", 1),
				rawChange("A", "1-a", 2),
			},
			LastSequence: 2,
		}, nil)

	// The oracle is only consulted for the non-reserved change.
	mockOracle.EXPECT().WasPulled(ctx, testEndpoint, "A", "1-a").Return(false, nil)

	batch, err := m.ChangesSinceLastPush(ctx, testEndpoint)
	require.NoError(t, err)

	require.Len(t, batch.Results, 1)
	assert.Equal(t, "A", batch.Results[0].ID)
}

func TestPushManager_ChangesSinceLastPush_EmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, _ := newTestPushManager(t, ctrl)
	ctx := context.Background()

	notFound(mockStore, testPushKey)
	mockStore.EXPECT().
		ChangesSince(ctx, int64(0), DefaultBatchSize).
		Return(models.ChangeFeedPage{LastSequence: 0}, nil)

	batch, err := m.ChangesSinceLastPush(ctx, testEndpoint)
	require.NoError(t, err)

	assert.True(t, batch.Empty())
	assert.Equal(t, int64(0), batch.LastSequence)
}

func TestPushManager_ChangesSinceLastPush_ProgressUnderTotalFiltering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockOracle := newTestPushManager(t, ctrl)
	ctx := context.Background()

	// 25 raw changes, every one pull-originated. The selector must scan in
	// three rounds (10, 10, 5) and come back empty without stalling.
	window := func(from, to int64) models.ChangeFeedPage {
		var page models.ChangeFeedPage
		for seq := from; seq <= to; seq++ {
			page.Results = append(page.Results, rawChange("doc", "1-x", seq))
		}
		page.LastSequence = to
		return page
	}

	notFound(mockStore, testPushKey)
	gomock.InOrder(
		mockStore.EXPECT().ChangesSince(ctx, int64(0), DefaultBatchSize).Return(window(1, 10), nil),
		mockStore.EXPECT().ChangesSince(ctx, int64(10), DefaultBatchSize).Return(window(11, 20), nil),
		mockStore.EXPECT().ChangesSince(ctx, int64(20), DefaultBatchSize).Return(window(21, 25), nil),
	)
	mockOracle.EXPECT().
		WasPulled(ctx, testEndpoint, "doc", "1-x").
		Return(true, nil).
		Times(25)

	batch, err := m.ChangesSinceLastPush(ctx, testEndpoint)
	require.NoError(t, err)

	assert.True(t, batch.Empty())
	assert.Equal(t, int64(25), batch.LastSequence)
}

func TestPushManager_ChangesSinceLastPush_RetryLoopFindsLaterWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockOracle := newTestPushManager(t, ctrl, WithBatchSize(1))
	ctx := context.Background()

	notFound(mockStore, testPushKey)
	gomock.InOrder(
		mockStore.EXPECT().ChangesSince(ctx, int64(0), 1).
			Return(models.ChangeFeedPage{Results: []models.ChangeRecord{rawChange("B", "1-b", 1)}, LastSequence: 1}, nil),
		mockStore.EXPECT().ChangesSince(ctx, int64(1), 1).
			Return(models.ChangeFeedPage{Results: []models.ChangeRecord{rawChange("C", "1-c", 2)}, LastSequence: 2}, nil),
	)
	mockOracle.EXPECT().WasPulled(ctx, testEndpoint, "B", "1-b").Return(true, nil)
	mockOracle.EXPECT().WasPulled(ctx, testEndpoint, "C", "1-c").Return(false, nil)

	batch, err := m.ChangesSinceLastPush(ctx, testEndpoint)
	require.NoError(t, err)

	require.Len(t, batch.Results, 1)
	assert.Equal(t, "C", batch.Results[0].ID)
	assert.Equal(t, int64(2), batch.LastSequence)
}

func TestPushManager_ChangesSinceLastPush_ResumesFromPersistedCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockOracle := newTestPushManager(t, ctrl)
	ctx := context.Background()

	mockStore.EXPECT().
		ReadLocalMeta(gomock.Any(), testPushKey).
		Return(models.MetaRecord{Key: testPushKey, Revision: "rev-3", Payload: json.RawMessage(`{"value":17}`)}, nil)
	mockStore.EXPECT().
		ChangesSince(ctx, int64(17), DefaultBatchSize).
		Return(models.ChangeFeedPage{
			Results:      []models.ChangeRecord{rawChange("A", "4-a", 18)},
			LastSequence: 18,
		}, nil)
	mockOracle.EXPECT().WasPulled(ctx, testEndpoint, "A", "4-a").Return(false, nil)

	batch, err := m.ChangesSinceLastPush(ctx, testEndpoint)
	require.NoError(t, err)

	require.Len(t, batch.Results, 1)
	assert.Equal(t, int64(18), batch.LastSequence)
}

// ── revision refresh ─────────────────────────────────────────────────────────

func TestPushManager_ChangesSinceLastPush_SyncRevisions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockOracle := newTestPushManager(t, ctrl, WithSyncRevisions(true))
	ctx := context.Background()

	notFound(mockStore, testPushKey)
	mockStore.EXPECT().
		ChangesSince(ctx, int64(0), DefaultBatchSize).
		Return(models.ChangeFeedPage{
			Results: []models.ChangeRecord{{
				ID:       "A",
				Revision: "1-a",
				Document: json.RawMessage(`{"_docsync_id":"A","state":"stale"}`),
				Sequence: 1,
			}},
			LastSequence: 1,
		}, nil)
	mockOracle.EXPECT().WasPulled(ctx, testEndpoint, "A", "1-a").Return(false, nil)

	// The document mutated between the feed read and batch assembly; the
	// emitted body must be the refresh-time winner.
	mockStore.EXPECT().
		BulkGetLatest(ctx, []models.DocRef{{ID: "A", Revision: "1-a"}}).
		Return([]models.ChangeRecord{{
			ID:       "A",
			Revision: "2-a",
			Document: json.RawMessage(`{"_docsync_id":"A","state":"fresh"}`),
		}}, nil)

	batch, err := m.ChangesSinceLastPush(ctx, testEndpoint)
	require.NoError(t, err)

	require.Len(t, batch.Results, 1)
	assert.Equal(t, "2-a", batch.Results[0].Revision)
	assert.Contains(t, string(batch.Results[0].Body), "fresh")
}

func TestPushManager_ChangesSinceLastPush_SyncRevisionsDropsVanishedDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockOracle := newTestPushManager(t, ctrl, WithSyncRevisions(true))
	ctx := context.Background()

	notFound(mockStore, testPushKey)
	mockStore.EXPECT().
		ChangesSince(ctx, int64(0), DefaultBatchSize).
		Return(models.ChangeFeedPage{
			Results:      []models.ChangeRecord{rawChange("A", "1-a", 1)},
			LastSequence: 1,
		}, nil)
	mockOracle.EXPECT().WasPulled(ctx, testEndpoint, "A", "1-a").Return(false, nil)
	mockStore.EXPECT().
		BulkGetLatest(ctx, []models.DocRef{{ID: "A", Revision: "1-a"}}).
		Return(nil, nil)

	batch, err := m.ChangesSinceLastPush(ctx, testEndpoint)
	require.NoError(t, err)

	assert.True(t, batch.Empty())
	assert.Equal(t, int64(1), batch.LastSequence)
}

// ── failure propagation ──────────────────────────────────────────────────────

func TestPushManager_ChangesSinceLastPush_PropagatesStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, _ := newTestPushManager(t, ctrl)
	ctx := context.Background()

	feedErr := errors.New("feed unavailable")
	notFound(mockStore, testPushKey)
	mockStore.EXPECT().
		ChangesSince(ctx, int64(0), DefaultBatchSize).
		Return(models.ChangeFeedPage{}, feedErr)

	_, err := m.ChangesSinceLastPush(ctx, testEndpoint)
	assert.ErrorIs(t, err, feedErr)
}

func TestPushManager_ChangesSinceLastPush_PropagatesOracleFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, mockStore, mockOracle := newTestPushManager(t, ctrl)
	ctx := context.Background()

	oracleErr := errors.New("ledger unavailable")
	notFound(mockStore, testPushKey)
	mockStore.EXPECT().
		ChangesSince(ctx, int64(0), DefaultBatchSize).
		Return(models.ChangeFeedPage{
			Results:      []models.ChangeRecord{rawChange("A", "1-a", 1)},
			LastSequence: 1,
		}, nil)
	mockOracle.EXPECT().WasPulled(ctx, testEndpoint, "A", "1-a").Return(false, oracleErr)

	_, err := m.ChangesSinceLastPush(ctx, testEndpoint)
	assert.ErrorIs(t, err, oracleErr)
}
