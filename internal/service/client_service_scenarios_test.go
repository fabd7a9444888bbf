// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-sync/internal/adapter"
	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/models"
)

var testAccount = models.Account{Name: "alice", Login: "alice", Password: "secret"}

func newFakeSync(local *fakeLocalStore, remote *fakeRemote) ClientSyncService {
	return NewClientSyncService(local, remote, config.ClientSync{Scope: "tasks"}, logger.Nop())
}

// ── Scenario A ───────────────────────────────────────────────────────────────

func TestFullSync_UnchangedTokenUploadsInOrder(t *testing.T) {
	remote := newFakeRemote()
	remote.lists = []models.TaskList{{RemoteID: "r1", Title: "home"}}

	local := &fakeLocalStore{
		lists: []models.TaskList{{ID: 1, RemoteID: "r1", Title: "home", Account: "alice"}},
		tasks: []models.Task{
			// stored out of order on purpose
			{ID: 11, ListID: 1, Title: "I2", Modified: true, LocalPrevious: ref(10)},
			{ID: 10, ListID: 1, Title: "I1", Modified: true},
		},
		state: models.SyncState{Account: "alice", ETag: remote.token()},
	}

	result := newFakeSync(local, remote).FullSync(context.Background(), testAccount)

	require.True(t, result.OK(), "unexpected error: %v", result.Err)
	assert.Zero(t, remote.fetchCalls, "no task download expected with an unchanged token")

	require.Len(t, remote.uploadedTasks, 2)
	assert.Equal(t, int64(10), remote.uploadedTasks[0].ID)
	assert.Equal(t, int64(11), remote.uploadedTasks[1].ID)
	assert.Empty(t, remote.uploadedTasks[0].RemotePrevious)

	i1 := local.task(10)
	require.NotEmpty(t, i1.RemoteID)
	assert.Equal(t, i1.RemoteID, remote.uploadedTasks[1].RemotePrevious)

	assert.Equal(t, 2, result.Stats.TasksUploaded)
	assert.Equal(t, 1, remote.refreshCalls)
	require.NotNil(t, local.lastState)
	assert.Equal(t, remote.token(), local.lastState.ETag)
	assert.Equal(t, 1, remote.closed)
}

// ── Scenario B ───────────────────────────────────────────────────────────────

func TestFullSync_RemoteWinsOverDirtyTask(t *testing.T) {
	t0 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	remote := newFakeRemote()
	remote.revision = 7
	remote.lists = []models.TaskList{{RemoteID: "r1", Title: "home"}}
	remote.tasks["r1"] = []models.Task{
		{RemoteID: "t3", Title: "remote title", Updated: t0.Add(time.Hour)},
	}

	local := &fakeLocalStore{
		lists: []models.TaskList{{ID: 1, RemoteID: "r1", Title: "home"}},
		tasks: []models.Task{
			{ID: 12, ListID: 1, RemoteID: "t3", Title: "local title", Modified: true, Updated: t0},
		},
		state: models.SyncState{Account: "alice", ETag: "tok-1", LastSynced: t0},
	}

	result := newFakeSync(local, remote).FullSync(context.Background(), testAccount)

	require.True(t, result.OK(), "unexpected error: %v", result.Err)
	assert.Empty(t, remote.uploadedTasks)
	assert.Equal(t, 1, result.Stats.Conflicts)
	assert.Equal(t, 1, result.Stats.TasksDownloaded)

	require.Equal(t, 1, local.commits)
	saved := local.lastSet.RemoteTasks(models.TaskList{ID: 1})
	require.Len(t, saved, 1)
	assert.Equal(t, "remote title", saved[0].Title)
	assert.Equal(t, int64(12), saved[0].ID)

	assert.Equal(t, "remote title", local.task(12).Title)
	assert.False(t, local.task(12).Modified)

	// nothing uploaded, so the fetched token is reused
	assert.Zero(t, remote.refreshCalls)
	assert.Equal(t, "tok-7", local.lastState.ETag)
	assert.Equal(t, t0.Add(time.Hour), local.lastState.LastSynced)
}

// ── Scenario C ───────────────────────────────────────────────────────────────

func TestUploadOnlySync_SkipsTaskWithUnresolvedParent(t *testing.T) {
	remote := newFakeRemote()
	remote.lists = []models.TaskList{{RemoteID: "r1"}}
	// I5 is rejected, so I4's parent never gets a remote id
	remote.conflicts[20] = true

	local := &fakeLocalStore{
		lists: []models.TaskList{{ID: 1, RemoteID: "r1"}},
		tasks: []models.Task{
			{ID: 21, ListID: 1, Title: "I4", LocalParent: ref(20)},
			{ID: 20, ListID: 1, Title: "I5"},
			{ID: 22, ListID: 1, Title: "sibling"},
		},
		state: models.SyncState{Account: "alice", ETag: "tok-0"},
	}

	result := newFakeSync(local, remote).UploadOnlySync(context.Background(), testAccount)

	require.True(t, result.OK(), "unexpected error: %v", result.Err)

	_, sent := remote.uploadedByID(21)
	assert.False(t, sent, "I4 must not be sent")
	_, sent = remote.uploadedByID(20)
	assert.True(t, sent, "I5 is tried on its own merits")

	for _, task := range remote.uploadedTasks {
		assert.Empty(t, task.RemoteParent, "task %d sent with a parent reference", task.ID)
	}
	for _, strict := range remote.strictFlags {
		assert.True(t, strict)
	}

	assert.Equal(t, 1, result.Stats.TasksUploaded)
	assert.Equal(t, 1, result.Stats.Conflicts)
	assert.True(t, local.task(21).NeedsUpload(), "I4 stays pending")

	// upload-only never touches the change-token
	assert.Zero(t, remote.refreshCalls)
	assert.Nil(t, local.lastState)
	assert.Equal(t, "tok-0", local.state.ETag)
}

func TestUploadOnlySync_DeletedParentLeavesChildPending(t *testing.T) {
	remote := newFakeRemote()
	local := &fakeLocalStore{
		lists: []models.TaskList{{ID: 1, RemoteID: "r1"}},
		tasks: []models.Task{
			{ID: 20, ListID: 1, Title: "I5", Deleted: true},
			{ID: 21, ListID: 1, Title: "I4", LocalParent: ref(20)},
		},
	}

	result := newFakeSync(local, remote).UploadOnlySync(context.Background(), testAccount)

	require.True(t, result.OK())
	assert.Empty(t, remote.uploadedTasks)
	// nothing succeeded, so the purge waits for a later run
	assert.Zero(t, local.commits)
	assert.Len(t, local.tasks, 2)
}

func TestUploadOnlySync_ParentUploadedInSameRunResolvesChild(t *testing.T) {
	remote := newFakeRemote()
	local := &fakeLocalStore{
		lists: []models.TaskList{{ID: 1, RemoteID: "r1"}},
		tasks: []models.Task{
			{ID: 21, ListID: 1, Title: "child", LocalParent: ref(20)},
			{ID: 20, ListID: 1, Title: "parent"},
		},
	}

	result := newFakeSync(local, remote).UploadOnlySync(context.Background(), testAccount)

	require.True(t, result.OK())
	require.Len(t, remote.uploadedTasks, 2)
	assert.Equal(t, int64(20), remote.uploadedTasks[0].ID)
	assert.Equal(t, local.task(20).RemoteID, remote.uploadedTasks[1].RemoteParent)
	assert.Equal(t, 1, local.commits)
}

// ── Scenario D ───────────────────────────────────────────────────────────────

func TestFullSync_TransportFailureOnTokenFetch(t *testing.T) {
	t0 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	remote := newFakeRemote()
	remote.fetchErr = fmt.Errorf("%w: connection reset", adapter.ErrTransport)

	state := models.SyncState{Account: "alice", ETag: "tok-3", LastSynced: t0}
	local := &fakeLocalStore{
		lists: []models.TaskList{{ID: 1, RemoteID: "r1"}},
		tasks: []models.Task{{ID: 1, ListID: 1, Modified: true}},
		state: state,
	}

	result := newFakeSync(local, remote).FullSync(context.Background(), testAccount)

	assert.Equal(t, models.SyncError, result.Status)
	assert.ErrorIs(t, result.Err, adapter.ErrTransport)
	assert.GreaterOrEqual(t, result.Stats.IOErrors, int64(1))
	assert.Zero(t, local.commits)
	assert.Equal(t, state, local.state)
	assert.Empty(t, remote.uploadedTasks)
	assert.Equal(t, 1, remote.closed)
}

func TestFullSync_TransportFailureOnTokenRefresh(t *testing.T) {
	remote := newFakeRemote()
	remote.refreshErr = fmt.Errorf("%w: timeout", adapter.ErrTransport)

	state := models.SyncState{Account: "alice", ETag: remote.token()}
	local := &fakeLocalStore{
		lists: []models.TaskList{{ID: 1, RemoteID: "r1"}},
		tasks: []models.Task{{ID: 1, ListID: 1, Title: "x", Modified: true}},
		state: state,
	}

	result := newFakeSync(local, remote).FullSync(context.Background(), testAccount)

	assert.Equal(t, models.SyncError, result.Status)
	assert.Equal(t, int64(1), result.Stats.IOErrors)
	assert.Len(t, remote.uploadedTasks, 1)
	assert.Zero(t, local.commits)
	assert.Equal(t, state, local.state)
}

// ── Properties ───────────────────────────────────────────────────────────────

func TestFullSync_NoOpRunIsIdempotent(t *testing.T) {
	remote := newFakeRemote()
	remote.lists = []models.TaskList{{RemoteID: "r1"}}
	local := &fakeLocalStore{
		lists: []models.TaskList{{ID: 1, RemoteID: "r1"}},
		tasks: []models.Task{
			{ID: 10, ListID: 1, Title: "a", Modified: true},
			{ID: 11, ListID: 1, Title: "b", Modified: true, LocalPrevious: ref(10)},
		},
		state: models.SyncState{Account: "alice", ETag: remote.token()},
	}
	svc := newFakeSync(local, remote)

	first := svc.FullSync(context.Background(), testAccount)
	require.True(t, first.OK())
	afterFirst := local.state

	second := svc.FullSync(context.Background(), testAccount)
	require.True(t, second.OK())

	assert.Equal(t, afterFirst, local.state)
	assert.Len(t, remote.uploadedTasks, 2, "second run must not upload")
	assert.Zero(t, second.Stats.TasksUploaded)
	assert.Zero(t, second.Stats.TasksDownloaded)
	assert.Equal(t, 1, remote.refreshCalls)
}

func TestFullSync_DeletedBeforeUploadIsPurged(t *testing.T) {
	remote := newFakeRemote()
	local := &fakeLocalStore{
		lists: []models.TaskList{{ID: 1, RemoteID: "r1"}},
		tasks: []models.Task{
			{ID: 30, ListID: 1, Title: "oops", Deleted: true},
		},
		state: models.SyncState{ETag: remote.token()},
	}

	result := newFakeSync(local, remote).FullSync(context.Background(), testAccount)

	require.True(t, result.OK())
	assert.Empty(t, remote.uploadedTasks)
	assert.Equal(t, 1, result.Stats.Purged)
	require.NotNil(t, local.lastSet)
	require.Len(t, local.lastSet.Purge, 1)
	assert.Equal(t, int64(30), local.lastSet.Purge[0].ID)
	assert.Empty(t, local.tasks)
	// nothing was sent, so no token refresh
	assert.Zero(t, remote.refreshCalls)
}

func TestFullSync_OrderingPreserved(t *testing.T) {
	remote := newFakeRemote()
	// a root chain 1..4 with children under 2, all stored shuffled
	tasks := []models.Task{
		{ID: 4, ListID: 1, Title: "4", Modified: true, LocalPrevious: ref(3)},
		{ID: 7, ListID: 1, Title: "7", Modified: true, LocalParent: ref(2), LocalPrevious: ref(6)},
		{ID: 2, ListID: 1, Title: "2", Modified: true, LocalPrevious: ref(1)},
		{ID: 6, ListID: 1, Title: "6", Modified: true, LocalParent: ref(2)},
		{ID: 1, ListID: 1, Title: "1", Modified: true},
		{ID: 3, ListID: 1, Title: "3", Modified: true, LocalPrevious: ref(2)},
	}
	local := &fakeLocalStore{
		lists: []models.TaskList{{ID: 1, RemoteID: "r1"}},
		tasks: tasks,
		state: models.SyncState{ETag: remote.token()},
	}

	result := newFakeSync(local, remote).FullSync(context.Background(), testAccount)
	require.True(t, result.OK())
	require.Len(t, remote.uploadedTasks, len(tasks))

	for _, a := range tasks {
		sent, ok := remote.uploadedByID(a.ID)
		require.True(t, ok)
		if a.LocalPrevious != nil {
			assert.Equal(t, local.task(*a.LocalPrevious).RemoteID, sent.RemotePrevious, "previous of %d", a.ID)
		}
		if a.LocalParent != nil {
			assert.Equal(t, local.task(*a.LocalParent).RemoteID, sent.RemoteParent, "parent of %d", a.ID)
		}
	}
}

func TestFullSync_NewRemoteListFetchedFromScratch(t *testing.T) {
	t0 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	remote := newFakeRemote()
	remote.revision = 2
	remote.lists = []models.TaskList{{RemoteID: "shared", Title: "shared"}}
	remote.tasks["shared"] = []models.Task{
		{RemoteID: "old", Title: "older than the floor", Updated: t0.Add(-time.Hour)},
	}

	local := &fakeLocalStore{state: models.SyncState{ETag: "tok-1", LastSynced: t0}}

	result := newFakeSync(local, remote).FullSync(context.Background(), testAccount)

	require.True(t, result.OK())
	assert.Equal(t, 1, result.Stats.TasksDownloaded)
	require.Len(t, local.lists, 1)
	require.Len(t, local.tasks, 1)
	assert.Equal(t, local.lists[0].ID, local.tasks[0].ListID)
	// the floor never moves backwards
	assert.Equal(t, t0, local.state.LastSynced)
}

func TestFullSync_NewListUploadedBeforeItsTasks(t *testing.T) {
	remote := newFakeRemote()
	local := &fakeLocalStore{
		lists: []models.TaskList{{ID: 5, Title: "fresh"}},
		tasks: []models.Task{{ID: 50, ListID: 5, Title: "first"}},
	}

	result := newFakeSync(local, remote).FullSync(context.Background(), testAccount)

	require.True(t, result.OK(), "unexpected error: %v", result.Err)
	assert.Equal(t, 1, result.Stats.ListsUploaded)
	assert.Equal(t, 1, result.Stats.TasksUploaded)
	assert.NotEmpty(t, local.lists[0].RemoteID)
	assert.NotEmpty(t, local.task(50).RemoteID)
}

func TestFullSync_LoginFailure(t *testing.T) {
	remote := newFakeRemote()
	remote.authErr = fmt.Errorf("%w: bad password", adapter.ErrUnauthorized)
	local := &fakeLocalStore{}

	result := newFakeSync(local, remote).FullSync(context.Background(), testAccount)

	assert.Equal(t, models.SyncLoginFailure, result.Status)
	assert.Equal(t, int64(1), result.Stats.AuthErrors)
	assert.Zero(t, local.commits)
	assert.Equal(t, 1, remote.closed)
}
