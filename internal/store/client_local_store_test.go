// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	localListCols = []string{"id", "account", "remote_id", "title", "etag", "deleted", "updated", "modified"}
	localTaskCols = []string{"id", "list_id", "remote_id", "title", "notes", "status", "due", "deleted",
		"updated", "etag", "parent_id", "previous_id", "remote_parent", "remote_previous", "modified"}
)

func newTestLocalStore(t *testing.T) (*localTaskStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := newLocalTaskStore(&DB{DB: db, logger: logger.Nop()}, logger.Nop())
	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	return s, mock
}

// ── reads ──

func TestLocalStore_GetAllLists_Partitions(t *testing.T) {
	s, mock := newTestLocalStore(t)
	now := time.Now().UTC()

	mock.ExpectQuery("FROM task_lists").
		WithArgs("acc").
		WillReturnRows(sqlmock.NewRows(localListCols).
			AddRow(1, "acc", "L1", "Synced", "e1", false, now, false).
			AddRow(2, "acc", nil, "New", "", false, now, true).
			AddRow(3, "acc", "L3", "Edited", "e3", false, now, true))

	all, toUpload, err := s.GetAllLists(context.Background(), "acc")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	require.Len(t, toUpload, 2)
	assert.Equal(t, int64(2), toUpload[0].ID)
	assert.Empty(t, toUpload[0].RemoteID)
	assert.Equal(t, int64(3), toUpload[1].ID)
}

func TestLocalStore_GetAllTasks_BuildsIDMap(t *testing.T) {
	s, mock := newTestLocalStore(t)
	now := time.Now().UTC()

	mock.ExpectQuery("FROM tasks t").
		WithArgs("acc").
		WillReturnRows(sqlmock.NewRows(localTaskCols).
			AddRow(10, 1, "T10", "a", "", "needsAction", nil, false, now, "1", nil, nil, "", "", false).
			AddRow(11, 1, nil, "b", "", "needsAction", now, false, now, "", 10, nil, "", "", true))

	byList, toUpload, ids, err := s.GetAllTasks(context.Background(), "acc")
	require.NoError(t, err)

	assert.Len(t, byList[1], 2)
	require.Len(t, toUpload[1], 1)
	assert.Equal(t, int64(11), toUpload[1][0].ID)
	require.NotNil(t, toUpload[1][0].LocalParent)
	assert.Equal(t, int64(10), *toUpload[1][0].LocalParent)
	assert.NotNil(t, toUpload[1][0].Due)

	remote, ok := ids.Get(10)
	assert.True(t, ok)
	assert.Equal(t, "T10", remote)
	assert.Equal(t, 1, ids.Len())
}

func TestLocalStore_GetAllTasks_QueryFailed(t *testing.T) {
	s, mock := newTestLocalStore(t)

	mock.ExpectQuery("FROM tasks t").WillReturnError(errors.New("disk I/O error"))

	_, _, _, err := s.GetAllTasks(context.Background(), "acc")
	assert.ErrorIs(t, err, ErrQueryFailed)
}

func TestLocalStore_GetSyncState(t *testing.T) {
	s, mock := newTestLocalStore(t)
	synced := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM sync_state").
		WithArgs("fresh").
		WillReturnRows(sqlmock.NewRows([]string{"account", "etag", "last_synced"}))
	mock.ExpectQuery("FROM sync_state").
		WithArgs("acc").
		WillReturnRows(sqlmock.NewRows([]string{"account", "etag", "last_synced"}).AddRow("acc", "tok", synced))

	state, err := s.GetSyncState(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, models.SyncState{Account: "fresh"}, state)

	state, err = s.GetSyncState(context.Background(), "acc")
	require.NoError(t, err)
	assert.Equal(t, "tok", state.ETag)
	assert.True(t, synced.Equal(state.LastSynced))
}

// ── Commit ──

func TestLocalStore_Commit_NewRemoteListWithTree(t *testing.T) {
	s, mock := newTestLocalStore(t)
	now := time.Now().UTC()

	set := models.NewSaveSet()
	list := set.PutList(models.TaskList{RemoteID: "L1", Title: "Remote", Updated: now})
	set.AddTasks(list,
		// child arrives before its parent
		models.Task{RemoteID: "T2", Title: "child", RemoteParent: "T1", Updated: now},
		models.Task{RemoteID: "T1", Title: "parent", Updated: now},
	)
	ids := models.NewIDMap()
	state := &models.SyncState{Account: "acc", ETag: "tok2", LastSynced: now}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM task_lists").
		WithArgs("acc", "L1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO task_lists").WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT id FROM tasks").
		WithArgs(int64(5), "T2").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO tasks").WillReturnResult(sqlmock.NewResult(20, 1))
	mock.ExpectQuery("SELECT id FROM tasks").
		WithArgs(int64(5), "T1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO tasks").WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectExec("SET parent_id").
		WithArgs(int64(21), nil, int64(20)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO sync_state").
		WithArgs("acc", "tok2", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Commit(context.Background(), "acc", set, ids, state)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, int64(5), list.ID, "inserted list id is written back")
	local, ok := ids.GetKey("T1")
	assert.True(t, ok)
	assert.Equal(t, int64(21), local)
}

func TestLocalStore_Commit_RemoteTombstoneDeletesList(t *testing.T) {
	s, mock := newTestLocalStore(t)

	set := models.NewSaveSet()
	set.PutList(models.TaskList{RemoteID: "L3", Deleted: true})

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM task_lists").
		WithArgs("acc", "L3").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec("DELETE FROM tasks WHERE list_id").WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM task_lists").WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Commit(context.Background(), "acc", set, nil, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStore_Commit_UploadedTaskAndPurge(t *testing.T) {
	s, mock := newTestLocalStore(t)
	now := time.Now().UTC()
	parent := int64(7)

	set := models.NewSaveSet()
	list := set.PutList(models.TaskList{ID: 1, RemoteID: "L1", Title: "Home", Updated: now})
	set.AddTasks(list, models.Task{ID: 8, RemoteID: "T8", Title: "x", LocalParent: &parent, RemoteParent: "T7", Updated: now})
	set.Purge = []models.Task{{ID: 9, Deleted: true}}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE task_lists").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE tasks").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM tasks WHERE id").WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Commit(context.Background(), "acc", set, models.NewIDMap(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStore_Commit_PurgesListDeletedBeforeUpload(t *testing.T) {
	s, mock := newTestLocalStore(t)

	set := models.NewSaveSet()
	set.PurgeLists = []models.TaskList{{ID: 4, Deleted: true}, {Deleted: true}}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM tasks WHERE list_id").WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM task_lists").WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.Commit(context.Background(), "acc", set, nil, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStore_Commit_RollsBackOnFailure(t *testing.T) {
	s, mock := newTestLocalStore(t)

	set := models.NewSaveSet()
	set.PutList(models.TaskList{ID: 1, RemoteID: "L1", Title: "Home"})

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE task_lists").WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := s.Commit(context.Background(), "acc", set, nil, &models.SyncState{ETag: "tok"})
	assert.ErrorIs(t, err, ErrCommitFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── editing ──

func TestLocalTaskRepository_CreateTask(t *testing.T) {
	t.Run("unknown list", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectQuery("SELECT id FROM task_lists").
			WithArgs("acc", int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := s.CreateTask(context.Background(), "acc", models.Task{ListID: 4, Title: "x"})
		assert.ErrorIs(t, err, ErrListNotFound)
	})

	t.Run("parent in another list", func(t *testing.T) {
		s, mock := newTestLocalStore(t)
		parent := int64(99)

		mock.ExpectQuery("SELECT id FROM task_lists").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(int64(1), int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		_, err := s.CreateTask(context.Background(), "acc", models.Task{ListID: 1, Title: "x", LocalParent: &parent})
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("created dirty", func(t *testing.T) {
		s, mock := newTestLocalStore(t)

		mock.ExpectQuery("SELECT id FROM task_lists").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectExec("INSERT INTO tasks").WillReturnResult(sqlmock.NewResult(42, 1))

		task, err := s.CreateTask(context.Background(), "acc", models.Task{ListID: 1, Title: "x", RemoteID: "ignored"})
		require.NoError(t, err)
		assert.Equal(t, int64(42), task.ID)
		assert.Empty(t, task.RemoteID)
		assert.True(t, task.Modified)
		assert.Equal(t, models.TaskStatusNeedsAction, task.Status)
		assert.Equal(t, s.now(), task.Updated)
	})
}

func TestLocalTaskRepository_MarkTaskDeleted(t *testing.T) {
	s, mock := newTestLocalStore(t)

	mock.ExpectExec("SET deleted = 1").
		WithArgs(s.now(), int64(5), "acc").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("SET deleted = 1").
		WithArgs(s.now(), int64(6), "acc").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, s.MarkTaskDeleted(context.Background(), "acc", 5))
	assert.ErrorIs(t, s.MarkTaskDeleted(context.Background(), "acc", 6), ErrTaskNotFound)
}

func TestLocalTaskRepository_UpdateTask_NotFound(t *testing.T) {
	s, mock := newTestLocalStore(t)

	mock.ExpectQuery("FROM tasks t").
		WithArgs("acc", int64(5)).
		WillReturnError(sql.ErrNoRows)

	err := s.UpdateTask(context.Background(), "acc", models.Task{ID: 5, Title: "x"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
