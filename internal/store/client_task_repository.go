package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/models"
)

func (s *localTaskStore) CreateList(ctx context.Context, account, title string) (models.TaskList, error) {
	log := logger.FromContext(ctx)

	list := models.TaskList{
		Account:  account,
		Title:    title,
		Updated:  s.now(),
		Modified: true,
	}

	res, err := s.DB.ExecContext(ctx, insertLocalList,
		account,
		nullString(""),
		list.Title,
		"",
		false,
		list.Updated,
		true,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*localTaskStore.CreateList").
			Str("account", account).
			Msg("failed to insert list")
		return models.TaskList{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if list.ID, err = res.LastInsertId(); err != nil {
		return models.TaskList{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return list, nil
}

// GetLists returns the lists of account that are not deleted.
func (s *localTaskStore) GetLists(ctx context.Context, account string) ([]models.TaskList, error) {
	return s.queryLists(ctx, getActiveLocalLists, account)
}

func (s *localTaskStore) CreateTask(ctx context.Context, account string, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	var listID int64
	err := s.DB.QueryRowContext(ctx, findActiveLocalList, account, task.ListID).Scan(&listID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrListNotFound
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = s.checkRefs(ctx, task); err != nil {
		return models.Task{}, err
	}

	task.ID = 0
	task.RemoteID = ""
	task.Deleted = false
	task.Modified = true
	task.Updated = s.now()
	if task.Status == "" {
		task.Status = models.TaskStatusNeedsAction
	}

	res, err := s.DB.ExecContext(ctx, insertLocalTask,
		task.ListID,
		nullString(""),
		task.Title,
		task.Notes,
		string(task.Status),
		nullTime(task.Due),
		false,
		task.Updated,
		"",
		nullInt64(task.LocalParent),
		nullInt64(task.LocalPrevious),
		"",
		"",
		true,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*localTaskStore.CreateTask").
			Int64("list_id", task.ListID).
			Msg("failed to insert task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if task.ID, err = res.LastInsertId(); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return task, nil
}

func (s *localTaskStore) GetTask(ctx context.Context, account string, taskID int64) (models.Task, error) {
	task, err := scanLocalTask(s.DB.QueryRowContext(ctx, getLocalTask, account, taskID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return task, nil
}

// UpdateTask overwrites the editable fields of a task and marks it dirty.
func (s *localTaskStore) UpdateTask(ctx context.Context, account string, task models.Task) error {
	log := logger.FromContext(ctx)

	existing, err := s.GetTask(ctx, account, task.ID)
	if err != nil {
		return err
	}
	task.ListID = existing.ListID

	if err = s.checkRefs(ctx, task); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx, editLocalTask,
		task.Title,
		task.Notes,
		string(task.Status),
		nullTime(task.Due),
		nullInt64(task.LocalParent),
		nullInt64(task.LocalPrevious),
		s.now(),
		task.ID,
		account,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*localTaskStore.UpdateTask").
			Int64("task_id", task.ID).
			Msg("failed to update task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectOneRow(res, ErrTaskNotFound)
}

// MarkTaskDeleted flags a task as deleted. The row is removed by the next
// sync: after the remote side confirms the deletion, or right away when the
// task never reached it.
func (s *localTaskStore) MarkTaskDeleted(ctx context.Context, account string, taskID int64) error {
	res, err := s.DB.ExecContext(ctx, markLocalTaskDeleted, s.now(), taskID, account)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*localTaskStore.MarkTaskDeleted").
			Int64("task_id", taskID).
			Msg("failed to mark task deleted")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectOneRow(res, ErrTaskNotFound)
}

func (s *localTaskStore) ListTasks(ctx context.Context, account string, listID int64) ([]models.Task, error) {
	return s.queryTasks(ctx, "*localTaskStore.ListTasks", getActiveLocalTasksOfList, account, listID)
}

// checkRefs verifies that parent and previous name other tasks of the same list.
func (s *localTaskStore) checkRefs(ctx context.Context, task models.Task) error {
	for _, ref := range []*int64{task.LocalParent, task.LocalPrevious} {
		if ref == nil {
			continue
		}
		if *ref == task.ID && task.ID != 0 {
			return ErrInvalidReference
		}

		var n int
		if err := s.DB.QueryRowContext(ctx, countTasksOfList, task.ListID, *ref).Scan(&n); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if n == 0 {
			return ErrInvalidReference
		}
	}
	return nil
}

func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
