package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`

	// bumpRevision locks the revision row of the user until commit and
	// returns the write stamp: $2 unless that is not after the previous one.
	bumpRevision = `INSERT INTO revisions (user_id, revision, last_stamp)
    VALUES ($1, 1, $2)
    ON CONFLICT (user_id) DO UPDATE SET
        revision = revisions.revision + 1,
        last_stamp = GREATEST(EXCLUDED.last_stamp, revisions.last_stamp + INTERVAL '1 microsecond')
    RETURNING last_stamp;`

	getRevision = `SELECT revision FROM revisions WHERE user_id = $1;`

	lockActiveList = `SELECT deleted FROM task_lists
    WHERE id = $1 AND user_id = $2
    FOR UPDATE;`

	lockTask = `SELECT version FROM tasks
    WHERE id = $1 AND list_id = $2 AND user_id = $3
    FOR UPDATE;`

	deleteListTasks = `UPDATE tasks
    SET deleted = TRUE, version = version + 1, updated_at = $3
    WHERE list_id = $1 AND user_id = $2 AND NOT deleted;`
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	listColumns = []string{"id", "title", "deleted", "version", "updated_at"}
	taskColumns = []string{"id", "list_id", "title", "notes", "status", "due", "parent", "previous", "deleted", "version", "updated_at"}
)

func buildGetListsQuery(userID int64) (string, []any, error) {
	return psql.Select(listColumns...).
		From("task_lists").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at", "id").
		ToSql()
}

func buildGetListQuery(userID int64, listID string) (string, []any, error) {
	return psql.Select(listColumns...).
		From("task_lists").
		Where(sq.Eq{"user_id": userID, "id": listID}).
		ToSql()
}

func buildInsertListQuery(userID int64, list listRow) (string, []any, error) {
	return psql.Insert("task_lists").
		Columns("id", "user_id", "title", "deleted", "version", "updated_at").
		Values(list.id, userID, list.title, list.deleted, 1, list.updatedAt).
		Suffix("RETURNING id, title, deleted, version, updated_at").
		ToSql()
}

func buildUpdateListQuery(userID int64, list listRow) (string, []any, error) {
	return psql.Update("task_lists").
		Set("title", list.title).
		Set("deleted", list.deleted).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", list.updatedAt).
		Where(sq.Eq{"id": list.id, "user_id": userID}).
		Suffix("RETURNING id, title, deleted, version, updated_at").
		ToSql()
}

// buildGetTasksQuery selects the tasks of one list. UpdatedMin is exclusive.
func buildGetTasksQuery(userID int64, listID string, filter taskFilter) (string, []any, error) {
	query := psql.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"user_id": userID, "list_id": listID})

	if filter.updatedMin != nil {
		query = query.Where(sq.Gt{"updated_at": *filter.updatedMin})
	}
	if !filter.showDeleted {
		query = query.Where(sq.Eq{"deleted": false})
	}

	return query.OrderBy("updated_at", "id").ToSql()
}

func buildInsertTaskQuery(userID int64, listID string, task taskRow) (string, []any, error) {
	return psql.Insert("tasks").
		Columns("id", "list_id", "user_id", "title", "notes", "status", "due", "parent", "previous", "deleted", "version", "updated_at").
		Values(task.id, listID, userID, task.title, task.notes, task.status, task.due, task.parent, task.previous, task.deleted, 1, task.updatedAt).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
}

func buildUpdateTaskQuery(userID int64, listID string, task taskRow) (string, []any, error) {
	return psql.Update("tasks").
		SetMap(map[string]any{
			"title":      task.title,
			"notes":      task.notes,
			"status":     task.status,
			"due":        task.due,
			"parent":     task.parent,
			"previous":   task.previous,
			"deleted":    task.deleted,
			"version":    sq.Expr("version + 1"),
			"updated_at": task.updatedAt,
		}).
		Where(sq.Eq{"id": task.id, "list_id": listID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
}
