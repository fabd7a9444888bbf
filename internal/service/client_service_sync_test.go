package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-sync/internal/adapter"
	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/mock"
	"github.com/MKhiriev/go-task-sync/models"
)

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

type syncMocks struct {
	local  *mock.MockLocalStore
	remote *mock.MockRemoteClient
	svc    ClientSyncService
}

func newSyncMocks(t *testing.T) syncMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	local := mock.NewMockLocalStore(ctrl)
	remote := mock.NewMockRemoteClient(ctrl)
	svc := NewClientSyncService(local, remote, config.ClientSync{Scope: "tasks"}, logger.Nop())

	return syncMocks{local: local, remote: remote, svc: svc}
}

// expectSnapshot стабит чтение локального состояния.
func (m syncMocks) expectSnapshot(lists []models.TaskList, tasks []models.Task, state models.SyncState) {
	all, toUpload := models.PartitionLists(lists)
	byList, tasksToUpload, ids := models.GroupTasks(tasks)

	m.local.EXPECT().GetAllLists(gomock.Any(), "alice").Return(all, toUpload, nil)
	m.local.EXPECT().GetAllTasks(gomock.Any(), "alice").Return(byList, tasksToUpload, ids, nil)
	m.local.EXPECT().GetSyncState(gomock.Any(), "alice").Return(state, nil)
}

// ── Authentication ───────────────────────────────────────────────────────────

func TestClientSyncService_LoginFailureSkipsStore(t *testing.T) {
	m := newSyncMocks(t)

	m.remote.EXPECT().Authenticate(gomock.Any(), testAccount, "tasks").Return(adapter.ErrUnauthorized)
	m.remote.EXPECT().Close()

	result := m.svc.FullSync(context.Background(), testAccount)

	assert.Equal(t, models.SyncLoginFailure, result.Status)
	assert.ErrorIs(t, result.Err, adapter.ErrUnauthorized)
	assert.Equal(t, int64(1), result.Stats.AuthErrors)
	assert.Zero(t, result.Stats.IOErrors)
}

func TestClientSyncService_UploadOnlyLoginFailure(t *testing.T) {
	m := newSyncMocks(t)

	m.remote.EXPECT().Authenticate(gomock.Any(), testAccount, "tasks").Return(adapter.ErrUnauthorized)
	m.remote.EXPECT().Close()

	result := m.svc.UploadOnlySync(context.Background(), testAccount)

	assert.Equal(t, models.SyncLoginFailure, result.Status)
}

// ── Local store ──────────────────────────────────────────────────────────────

func TestClientSyncService_StoreReadFailure(t *testing.T) {
	m := newSyncMocks(t)
	dbErr := errors.New("database is locked")

	m.remote.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.local.EXPECT().GetAllLists(gomock.Any(), "alice").Return(nil, nil, dbErr)
	m.remote.EXPECT().Close()

	result := m.svc.FullSync(context.Background(), testAccount)

	assert.Equal(t, models.SyncError, result.Status)
	assert.ErrorIs(t, result.Err, ErrLocalStore)
	assert.ErrorIs(t, result.Err, dbErr)
	assert.Zero(t, result.Stats.IOErrors)
}

func TestClientSyncService_CommitFailure(t *testing.T) {
	m := newSyncMocks(t)
	lists := []models.TaskList{{ID: 1, RemoteID: "r1"}}
	state := models.SyncState{Account: "alice", ETag: "e1"}

	m.remote.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.expectSnapshot(lists, nil, state)
	m.remote.EXPECT().FetchChangeTokenAndLists(gomock.Any(), "e1", lists).Return("e1", nil, nil)
	m.local.EXPECT().Commit(gomock.Any(), "alice", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))
	m.remote.EXPECT().Close()

	result := m.svc.FullSync(context.Background(), testAccount)

	assert.Equal(t, models.SyncError, result.Status)
	assert.ErrorIs(t, result.Err, ErrLocalStore)
}

// ── Full sync ────────────────────────────────────────────────────────────────

func TestClientSyncService_UnchangedTokenCommitsSameState(t *testing.T) {
	m := newSyncMocks(t)
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	state := models.SyncState{Account: "alice", ETag: "e1", LastSynced: t0}

	m.remote.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.expectSnapshot(nil, nil, state)
	m.remote.EXPECT().FetchChangeTokenAndLists(gomock.Any(), "e1", gomock.Any()).Return("e1", nil, nil)
	m.local.EXPECT().Commit(gomock.Any(), "alice", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, set *models.SaveSet, _ *models.IDMap, got *models.SyncState) error {
			require.NotNil(t, got)
			assert.Equal(t, state, *got)
			assert.Zero(t, set.TaskCount())
			return nil
		})
	m.remote.EXPECT().Close()

	result := m.svc.FullSync(context.Background(), testAccount)

	require.True(t, result.OK())
	assert.Equal(t, models.SyncStats{}, result.Stats)
}

func TestClientSyncService_ListConflictKeepsTasksPending(t *testing.T) {
	m := newSyncMocks(t)
	lists := []models.TaskList{{ID: 2, Title: "new"}}
	tasks := []models.Task{{ID: 9, ListID: 2, Title: "t"}}

	m.remote.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.expectSnapshot(lists, tasks, models.SyncState{ETag: "e1"})
	m.remote.EXPECT().FetchChangeTokenAndLists(gomock.Any(), "e1", gomock.Any()).Return("e1", nil, nil)
	m.remote.EXPECT().UploadList(gomock.Any(), lists[0]).Return(nil, nil)
	// the list has no remote id, so its tasks cannot go out
	m.remote.EXPECT().UploadTask(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	// an upload call was made, so the token is re-read
	m.remote.EXPECT().FetchChangeToken(gomock.Any()).Return("e1", nil)
	m.local.EXPECT().Commit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.remote.EXPECT().Close()

	result := m.svc.FullSync(context.Background(), testAccount)

	require.True(t, result.OK())
	assert.Equal(t, 1, result.Stats.Conflicts)
	assert.Zero(t, result.Stats.ListsUploaded)
}

func TestClientSyncService_TaskFetchFailure(t *testing.T) {
	m := newSyncMocks(t)
	lists := []models.TaskList{{ID: 1, RemoteID: "r1"}}

	m.remote.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.expectSnapshot(lists, nil, models.SyncState{ETag: "e1"})
	m.remote.EXPECT().FetchChangeTokenAndLists(gomock.Any(), "e1", gomock.Any()).Return("e2", lists, nil)
	m.remote.EXPECT().FetchModifiedTasks(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: EOF", adapter.ErrTransport))
	m.remote.EXPECT().Close()

	result := m.svc.FullSync(context.Background(), testAccount)

	assert.Equal(t, models.SyncError, result.Status)
	assert.Equal(t, int64(1), result.Stats.IOErrors)
}

func TestClientSyncService_DeletedRemoteListNotFetched(t *testing.T) {
	m := newSyncMocks(t)
	remoteLists := []models.TaskList{
		{ID: 1, RemoteID: "r1", Deleted: true},
		{RemoteID: "r2"},
	}
	fresh := remoteLists[1]
	fresh.Account = "alice"

	m.remote.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.expectSnapshot([]models.TaskList{{ID: 1, RemoteID: "r1"}}, nil, models.SyncState{ETag: "e1"})
	m.remote.EXPECT().FetchChangeTokenAndLists(gomock.Any(), "e1", gomock.Any()).Return("e2", remoteLists, nil)
	m.remote.EXPECT().FetchModifiedTasks(gomock.Any(), fresh, gomock.Any(), time.Time{}, gomock.Any()).
		Return(nil, nil)
	m.local.EXPECT().Commit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, set *models.SaveSet, _ *models.IDMap, state *models.SyncState) error {
			assert.Len(t, set.Lists, 2)
			assert.Equal(t, "e2", state.ETag)
			return nil
		})
	m.remote.EXPECT().Close()

	result := m.svc.FullSync(context.Background(), testAccount)
	require.True(t, result.OK())
}

// ── Upload-only ──────────────────────────────────────────────────────────────

func TestClientSyncService_UploadOnlyNothingToSend(t *testing.T) {
	m := newSyncMocks(t)

	m.remote.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.expectSnapshot([]models.TaskList{{ID: 1, RemoteID: "r1"}}, nil, models.SyncState{ETag: "e1"})
	m.remote.EXPECT().Close()
	// no FetchChangeTokenAndLists, no FetchChangeToken, no Commit

	result := m.svc.UploadOnlySync(context.Background(), testAccount)

	require.True(t, result.OK())
}

func TestClientSyncService_UploadOnlyCommitsWithoutState(t *testing.T) {
	m := newSyncMocks(t)
	lists := []models.TaskList{{ID: 1, RemoteID: "r1"}}
	task := models.Task{ID: 5, ListID: 1, RemoteID: "t5", ETag: "3", Title: "edited", Modified: true}

	m.remote.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.expectSnapshot(lists, []models.Task{task}, models.SyncState{ETag: "e1"})
	m.remote.EXPECT().UploadTask(gomock.Any(), task, lists[0], true).
		DoAndReturn(func(_ context.Context, t models.Task, _ models.TaskList, _ bool) (*models.Task, error) {
			t.Modified = false
			t.ETag = "4"
			return &t, nil
		})
	m.local.EXPECT().Commit(gomock.Any(), "alice", gomock.Any(), gomock.Any(), (*models.SyncState)(nil)).Return(nil)
	m.remote.EXPECT().Close()

	result := m.svc.UploadOnlySync(context.Background(), testAccount)

	require.True(t, result.OK())
	assert.Equal(t, 1, result.Stats.TasksUploaded)
}

func TestClientSyncService_UploadOnlyAllConflictsSkipsCommit(t *testing.T) {
	m := newSyncMocks(t)
	lists := []models.TaskList{
		{ID: 1, RemoteID: "r1"},
		{ID: 2, Title: "new"},
	}
	task := models.Task{ID: 5, ListID: 1, RemoteID: "t5", ETag: "3", Title: "edited", Modified: true}

	m.remote.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.expectSnapshot(lists, []models.Task{task}, models.SyncState{ETag: "e1"})
	m.remote.EXPECT().UploadList(gomock.Any(), lists[1]).Return(nil, nil)
	// strict upload: the etag moved on the server, so the task is rejected
	m.remote.EXPECT().UploadTask(gomock.Any(), task, lists[0], true).Return(nil, nil)
	m.local.EXPECT().Commit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.remote.EXPECT().FetchChangeToken(gomock.Any()).Times(0)
	m.remote.EXPECT().Close()

	result := m.svc.UploadOnlySync(context.Background(), testAccount)

	require.True(t, result.OK())
	assert.Equal(t, 2, result.Stats.Conflicts)
	assert.Zero(t, result.Stats.ListsUploaded)
	assert.Zero(t, result.Stats.TasksUploaded)
}

// ── Local-only deletes ───────────────────────────────────────────────────────

func TestClientSyncService_ListDeletedBeforeUploadIsPurged(t *testing.T) {
	m := newSyncMocks(t)
	gone := models.TaskList{ID: 3, Title: "gone", Deleted: true, Modified: true}
	tasks := []models.Task{{ID: 4, ListID: 3, Title: "t"}}

	m.remote.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.expectSnapshot([]models.TaskList{gone}, tasks, models.SyncState{ETag: "e1"})
	m.remote.EXPECT().FetchChangeTokenAndLists(gomock.Any(), "e1", gomock.Any()).Return("e1", nil, nil)
	// ни список, ни его задачи на сервер не уходят
	m.remote.EXPECT().UploadList(gomock.Any(), gomock.Any()).Times(0)
	m.remote.EXPECT().UploadTask(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.local.EXPECT().Commit(gomock.Any(), "alice", gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, set *models.SaveSet, _ *models.IDMap, state *models.SyncState) error {
			require.Len(t, set.PurgeLists, 1)
			assert.Equal(t, int64(3), set.PurgeLists[0].ID)
			assert.Equal(t, "e1", state.ETag)
			return nil
		})
	m.remote.EXPECT().Close()

	result := m.svc.FullSync(context.Background(), testAccount)

	require.True(t, result.OK())
	assert.Equal(t, 1, result.Stats.Purged)
	assert.Zero(t, result.Stats.ListsUploaded)
}

func TestClientSyncService_ContextCanceledIsNotIOError(t *testing.T) {
	m := newSyncMocks(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.remote.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(ctx.Err())
	m.remote.EXPECT().Close()

	result := m.svc.FullSync(ctx, testAccount)

	assert.Equal(t, models.SyncError, result.Status)
	assert.Zero(t, result.Stats.IOErrors)
}
