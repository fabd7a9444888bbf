// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/models"
)

func (s *localTaskStore) GetAllLists(ctx context.Context, account string) ([]models.TaskList, []models.TaskList, error) {
	lists, err := s.queryLists(ctx, getAllLocalLists, account)
	if err != nil {
		return nil, nil, err
	}

	all, toUpload := models.PartitionLists(lists)
	return all, toUpload, nil
}

func (s *localTaskStore) GetAllTasks(ctx context.Context, account string) (map[int64][]models.Task, map[int64][]models.Task, *models.IDMap, error) {
	tasks, err := s.queryTasks(ctx, "*localTaskStore.GetAllTasks", getAllLocalTasks, account)
	if err != nil {
		return nil, nil, nil, err
	}

	byList, toUpload, ids := models.GroupTasks(tasks)
	return byList, toUpload, ids, nil
}

func (s *localTaskStore) GetSyncState(ctx context.Context, account string) (models.SyncState, error) {
	log := logger.FromContext(ctx)

	state := models.SyncState{Account: account}
	err := s.DB.QueryRowContext(ctx, getSyncState, account).Scan(&state.Account, &state.ETag, &state.LastSynced)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncState{Account: account}, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "*localTaskStore.GetSyncState").
			Str("account", account).
			Msg("failed to read sync state")
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	return state, nil
}

func (s *localTaskStore) queryLists(ctx context.Context, query string, account string) ([]models.TaskList, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, query, account)
	if err != nil {
		log.Err(err).
			Str("func", "*localTaskStore.queryLists").
			Str("account", account).
			Msg("failed to query lists")
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	defer rows.Close()

	lists := make([]models.TaskList, 0, 8)
	for rows.Next() {
		list, scanErr := scanLocalList(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*localTaskStore.queryLists").
				Str("account", account).
				Msg("failed to scan list row")
			return nil, fmt.Errorf("%w: %w: %w", ErrQueryFailed, ErrScanningRow, scanErr)
		}
		lists = append(lists, list)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrQueryFailed, ErrScanningRows, err)
	}

	return lists, nil
}

func (s *localTaskStore) queryTasks(ctx context.Context, caller, query string, args ...any) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to query tasks")
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 32)
	for rows.Next() {
		task, scanErr := scanLocalTask(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w: %w", ErrQueryFailed, ErrScanningRow, scanErr)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrQueryFailed, ErrScanningRows, err)
	}

	return tasks, nil
}

// Commit writes lists first so tasks of new lists get their list id, then
// tasks, then resolves tree references that only became known locally while
// this transaction inserted the referenced tasks.
func (s *localTaskStore) Commit(ctx context.Context, account string, set *models.SaveSet, ids *models.IDMap, state *models.SyncState) error {
	log := logger.FromContext(ctx).With().
		Str("func", "*localTaskStore.Commit").
		Str("account", account).
		Logger()

	if set == nil {
		set = models.NewSaveSet()
	}
	if ids == nil {
		ids = models.NewIDMap()
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w: %w", ErrCommitFailed, ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	w := &commitWriter{tx: tx, account: account, ids: ids}

	for _, batch := range set.Batches() {
		if err = w.saveList(ctx, batch.List); err != nil {
			log.Err(err).Int64("list_id", batch.List.ID).Str("remote_id", batch.List.RemoteID).Msg("failed to save list")
			return fmt.Errorf("%w: %w", ErrCommitFailed, err)
		}
		if batch.List.Deleted || batch.List.ID == 0 {
			continue
		}
		for _, task := range batch.Tasks {
			if err = w.saveTask(ctx, batch.List, task); err != nil {
				log.Err(err).Int64("task_id", task.ID).Str("remote_id", task.RemoteID).Msg("failed to save task")
				return fmt.Errorf("%w: %w", ErrCommitFailed, err)
			}
		}
	}

	if err = w.resolveRefs(ctx); err != nil {
		log.Err(err).Msg("failed to resolve task references")
		return fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}

	for _, task := range set.Purge {
		if task.ID == 0 {
			continue
		}
		if _, err = tx.ExecContext(ctx, deleteLocalTask, task.ID); err != nil {
			log.Err(err).Int64("task_id", task.ID).Msg("failed to purge task")
			return fmt.Errorf("%w: %w: %w", ErrCommitFailed, ErrExecutingStatement, err)
		}
	}

	for _, list := range set.PurgeLists {
		if list.ID == 0 {
			continue
		}
		if err = w.purgeList(ctx, list.ID); err != nil {
			log.Err(err).Int64("list_id", list.ID).Msg("failed to purge list")
			return fmt.Errorf("%w: %w", ErrCommitFailed, err)
		}
	}

	if state != nil {
		_, err = tx.ExecContext(ctx, upsertSyncState, account, state.ETag, state.LastSynced.UTC())
		if err != nil {
			log.Err(err).Msg("failed to save sync state")
			return fmt.Errorf("%w: %w: %w", ErrCommitFailed, ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w: %w", ErrCommitFailed, ErrCommitingTransaction, err)
	}

	log.Debug().
		Int("lists", len(set.Lists)).
		Int("tasks", len(w.saved)).
		Int("purged", len(set.Purge)+len(set.PurgeLists)).
		Bool("state", state != nil).
		Msg("local store committed")

	return nil
}

type commitWriter struct {
	tx      *sql.Tx
	account string
	ids     *models.IDMap
	saved   []models.Task
}

// purgeList removes a local list and its tasks.
func (w *commitWriter) purgeList(ctx context.Context, listID int64) error {
	if _, err := w.tx.ExecContext(ctx, deleteLocalListTasks, listID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if _, err := w.tx.ExecContext(ctx, deleteLocalList, listID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// saveList upserts list and writes the assigned local id back into it.
func (w *commitWriter) saveList(ctx context.Context, list *models.TaskList) error {
	if list.ID == 0 && list.RemoteID != "" {
		err := w.tx.QueryRowContext(ctx, findLocalListByRemoteID, w.account, list.RemoteID).Scan(&list.ID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}
	list.Account = w.account

	if list.Deleted {
		if list.ID == 0 {
			return nil
		}
		return w.purgeList(ctx, list.ID)
	}

	if list.ID == 0 {
		res, err := w.tx.ExecContext(ctx, insertLocalList,
			w.account,
			nullString(list.RemoteID),
			list.Title,
			list.ETag,
			list.Deleted,
			list.Updated.UTC(),
			list.Modified,
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if list.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	}

	_, err := w.tx.ExecContext(ctx, updateLocalList,
		nullString(list.RemoteID),
		list.Title,
		list.ETag,
		list.Deleted,
		list.Updated.UTC(),
		list.Modified,
		list.ID,
		w.account,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (w *commitWriter) saveTask(ctx context.Context, list *models.TaskList, task models.Task) error {
	task.ListID = list.ID

	if task.ID == 0 && task.RemoteID != "" {
		err := w.tx.QueryRowContext(ctx, findLocalTaskByRemoteID, list.ID, task.RemoteID).Scan(&task.ID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if task.Deleted {
		if task.ID == 0 {
			return nil
		}
		if _, err := w.tx.ExecContext(ctx, deleteLocalTask, task.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	}

	args := []any{
		task.ListID,
		nullString(task.RemoteID),
		task.Title,
		task.Notes,
		string(task.Status),
		nullTime(task.Due),
		task.Deleted,
		task.Updated.UTC(),
		task.ETag,
		nullInt64(task.LocalParent),
		nullInt64(task.LocalPrevious),
		task.RemoteParent,
		task.RemotePrevious,
		task.Modified,
	}

	if task.ID == 0 {
		res, err := w.tx.ExecContext(ctx, insertLocalTask, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if task.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	} else {
		if _, err := w.tx.ExecContext(ctx, updateLocalTask, append(args, task.ID)...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if task.IsUploaded() {
		w.ids.Put(task.ID, task.RemoteID)
	}
	w.saved = append(w.saved, task)

	return nil
}

// resolveRefs fills local parent/previous of saved tasks whose remote
// reference points at a task inserted later in the same commit.
func (w *commitWriter) resolveRefs(ctx context.Context) error {
	for _, task := range w.saved {
		parent, previous := task.LocalParent, task.LocalPrevious
		if parent == nil {
			parent = models.LocalRef(w.ids, task.RemoteParent)
		}
		if previous == nil {
			previous = models.LocalRef(w.ids, task.RemotePrevious)
		}
		if sameRef(parent, task.LocalParent) && sameRef(previous, task.LocalPrevious) {
			continue
		}

		_, err := w.tx.ExecContext(ctx, resolveLocalTaskRefs, nullInt64(parent), nullInt64(previous), task.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}
