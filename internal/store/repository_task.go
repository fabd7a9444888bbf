package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
type taskRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by db.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		now:    time.Now,
		logger: logger,
	}
}

type listRow struct {
	id        string
	title     string
	deleted   bool
	version   int64
	updatedAt time.Time
}

func listRowOf(list models.TaskList) listRow {
	return listRow{
		id:        list.RemoteID,
		title:     list.Title,
		deleted:   list.Deleted,
		updatedAt: list.Updated,
	}
}

func (r listRow) model() models.TaskList {
	return models.TaskList{
		RemoteID: r.id,
		Title:    r.title,
		Deleted:  r.deleted,
		ETag:     strconv.FormatInt(r.version, 10),
		Updated:  r.updatedAt.UTC(),
	}
}

type taskRow struct {
	id        string
	listID    string
	title     string
	notes     string
	status    string
	due       sql.NullTime
	parent    string
	previous  string
	deleted   bool
	version   int64
	updatedAt time.Time
}

func taskRowOf(task models.Task) taskRow {
	return taskRow{
		id:        task.RemoteID,
		title:     task.Title,
		notes:     task.Notes,
		status:    string(task.Status),
		due:       nullTime(task.Due),
		parent:    task.RemoteParent,
		previous:  task.RemotePrevious,
		deleted:   task.Deleted,
		updatedAt: task.Updated,
	}
}

func (r taskRow) model() models.Task {
	task := models.Task{
		RemoteID:       r.id,
		Title:          r.title,
		Notes:          r.notes,
		Status:         models.TaskStatus(r.status),
		Deleted:        r.deleted,
		Updated:        r.updatedAt.UTC(),
		ETag:           strconv.FormatInt(r.version, 10),
		RemoteParent:   r.parent,
		RemotePrevious: r.previous,
	}
	if r.due.Valid {
		due := r.due.Time.UTC()
		task.Due = &due
	}
	return task
}

type taskFilter struct {
	updatedMin  *time.Time
	showDeleted bool
}

func scanListRow(row rowScanner) (listRow, error) {
	var r listRow
	err := row.Scan(&r.id, &r.title, &r.deleted, &r.version, &r.updatedAt)
	return r, err
}

func scanTaskRow(row rowScanner) (taskRow, error) {
	var r taskRow
	err := row.Scan(&r.id, &r.listID, &r.title, &r.notes, &r.status, &r.due, &r.parent, &r.previous, &r.deleted, &r.version, &r.updatedAt)
	return r, err
}

// GetLists returns every list of the user, deleted ones included.
func (t *taskRepository) GetLists(ctx context.Context, userID int64) ([]models.TaskList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetListsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.GetLists").
			Int64("user_id", userID).
			Msg("failed to execute query for getting lists")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lists := make([]models.TaskList, 0, 8)
	for rows.Next() {
		row, scanErr := scanListRow(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*taskRepository.GetLists").
				Int64("user_id", userID).
				Msg("failed to scan list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		lists = append(lists, row.model())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return lists, nil
}

func (t *taskRepository) GetList(ctx context.Context, userID int64, listID string) (models.TaskList, error) {
	query, args, err := buildGetListQuery(userID, listID)
	if err != nil {
		return models.TaskList{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row, err := scanListRow(t.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TaskList{}, ErrListNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*taskRepository.GetList").
			Int64("user_id", userID).
			Str("list_id", listID).
			Msg("failed to get list")
		return models.TaskList{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return row.model(), nil
}

// CreateList inserts list. Its Updated is replaced by the write stamp.
func (t *taskRepository) CreateList(ctx context.Context, userID int64, list models.TaskList) (models.TaskList, error) {
	var saved listRow
	err := t.inTx(ctx, userID, "*taskRepository.CreateList", func(tx *sql.Tx, stamp time.Time) error {
		list.Updated = stamp
		query, args, buildErr := buildInsertListQuery(userID, listRowOf(list))
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		var scanErr error
		saved, scanErr = scanListRow(tx.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		return models.TaskList{}, err
	}

	return saved.model(), nil
}

// UpdateList overwrites a list. Deleting a list also deletes its tasks.
func (t *taskRepository) UpdateList(ctx context.Context, userID int64, list models.TaskList) (models.TaskList, error) {
	var saved listRow
	err := t.inTx(ctx, userID, "*taskRepository.UpdateList", func(tx *sql.Tx, stamp time.Time) error {
		list.Updated = stamp
		query, args, buildErr := buildUpdateListQuery(userID, listRowOf(list))
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		var scanErr error
		saved, scanErr = scanListRow(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrListNotFound
		}
		if scanErr != nil {
			return scanErr
		}

		if saved.deleted {
			if _, execErr := tx.ExecContext(ctx, deleteListTasks, saved.id, userID, saved.updatedAt); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
		}
		return nil
	})
	if err != nil {
		return models.TaskList{}, err
	}

	return saved.model(), nil
}

func (t *taskRepository) GetTasks(ctx context.Context, q models.TaskQuery) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTasksQuery(q.UserID, q.ListID, taskFilter{updatedMin: q.UpdatedMin, showDeleted: q.ShowDeleted})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.GetTasks").
			Int64("user_id", q.UserID).
			Str("list_id", q.ListID).
			Msg("failed to execute query for getting tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 32)
	for rows.Next() {
		row, scanErr := scanTaskRow(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*taskRepository.GetTasks").
				Int64("user_id", q.UserID).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tasks = append(tasks, row.model())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

func (t *taskRepository) CreateTask(ctx context.Context, userID int64, listID string, task models.Task) (models.Task, error) {
	var saved taskRow
	err := t.inTx(ctx, userID, "*taskRepository.CreateTask", func(tx *sql.Tx, stamp time.Time) error {
		if lockErr := lockList(ctx, tx, userID, listID); lockErr != nil {
			return lockErr
		}

		task.Updated = stamp
		query, args, buildErr := buildInsertTaskQuery(userID, listID, taskRowOf(task))
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		var scanErr error
		saved, scanErr = scanTaskRow(tx.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		return models.Task{}, err
	}

	return saved.model(), nil
}

func (t *taskRepository) UpdateTask(ctx context.Context, userID int64, listID string, task models.Task, ifMatch *int64) (models.Task, error) {
	var saved taskRow
	err := t.inTx(ctx, userID, "*taskRepository.UpdateTask", func(tx *sql.Tx, stamp time.Time) error {
		if lockErr := lockList(ctx, tx, userID, listID); lockErr != nil {
			return lockErr
		}

		var version int64
		scanErr := tx.QueryRowContext(ctx, lockTask, task.RemoteID, listID, userID).Scan(&version)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrTaskNotFound
		}
		if scanErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
		}
		if ifMatch != nil && *ifMatch != version {
			return ErrVersionConflict
		}

		task.Updated = stamp
		query, args, buildErr := buildUpdateTaskQuery(userID, listID, taskRowOf(task))
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		saved, scanErr = scanTaskRow(tx.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		return models.Task{}, err
	}

	return saved.model(), nil
}

func (t *taskRepository) Revision(ctx context.Context, userID int64) (int64, error) {
	var revision int64
	err := t.DB.QueryRowContext(ctx, getRevision, userID).Scan(&revision)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*taskRepository.Revision").
			Int64("user_id", userID).
			Msg("failed to read revision")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return revision, nil
}

// lockList fails with [ErrListNotFound] unless the list exists, belongs to
// the user and is not deleted.
func lockList(ctx context.Context, tx *sql.Tx, userID int64, listID string) error {
	var deleted bool
	err := tx.QueryRowContext(ctx, lockActiveList, listID, userID).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && deleted) {
		return ErrListNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// maxTxAttempts bounds reruns of a transaction aborted by a retryable
// Postgres error, such as two concurrent revision bumps of one user.
const maxTxAttempts = 3

// inTx bumps the user revision and runs fn in one transaction. fn gets the
// write stamp taken from the locked revision row: stamps of one user grow
// strictly in commit order, which keeps the exclusive updated_min filter
// from skipping a late commit. fn may run more than once, so it must only
// assign its results.
func (t *taskRepository) inTx(ctx context.Context, userID int64, caller string, fn func(tx *sql.Tx, stamp time.Time) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		if err = t.runTx(ctx, userID, caller, fn); err == nil || !t.DB.Retryable(err) || ctx.Err() != nil {
			return err
		}
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", caller).
			Int("attempt", attempt).
			Msg("transaction aborted, retrying")
	}
	return err
}

func (t *taskRepository) runTx(ctx context.Context, userID int64, caller string, fn func(tx *sql.Tx, stamp time.Time) error) error {
	log := logger.FromContext(ctx)

	tx, err := t.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	var stamp time.Time
	if err = tx.QueryRowContext(ctx, bumpRevision, userID, t.now().UTC().Truncate(time.Microsecond)).Scan(&stamp); err != nil {
		log.Err(err).Str("func", caller).Msg("failed to bump revision")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = fn(tx, stamp.UTC()); err != nil {
		if !errors.Is(err, ErrListNotFound) && !errors.Is(err, ErrTaskNotFound) && !errors.Is(err, ErrVersionConflict) {
			log.Err(err).
				Str("func", caller).
				Int64("user_id", userID).
				Msg("statement failed")
		}
		if postgresError(err) != "" {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", caller).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
