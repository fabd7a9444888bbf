// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	localListColumns = `id, account, remote_id, title, etag, deleted, updated, modified`

	localTaskColumns = `t.id, t.list_id, t.remote_id, t.title, t.notes, t.status, t.due, t.deleted,
		t.updated, t.etag, t.parent_id, t.previous_id, t.remote_parent, t.remote_previous, t.modified`

	getAllLocalLists = `
		SELECT ` + localListColumns + `
		FROM task_lists
		WHERE account = ?
		ORDER BY id;`

	getActiveLocalLists = `
		SELECT ` + localListColumns + `
		FROM task_lists
		WHERE account = ? AND deleted = 0
		ORDER BY id;`

	getAllLocalTasks = `
		SELECT ` + localTaskColumns + `
		FROM tasks t
		JOIN task_lists l ON l.id = t.list_id
		WHERE l.account = ?
		ORDER BY t.list_id, t.id;`

	getActiveLocalTasksOfList = `
		SELECT ` + localTaskColumns + `
		FROM tasks t
		JOIN task_lists l ON l.id = t.list_id
		WHERE l.account = ? AND t.list_id = ? AND t.deleted = 0
		ORDER BY t.id;`

	getLocalTask = `
		SELECT ` + localTaskColumns + `
		FROM tasks t
		JOIN task_lists l ON l.id = t.list_id
		WHERE l.account = ? AND t.id = ?;`

	getSyncState = `
		SELECT account, etag, last_synced
		FROM sync_state
		WHERE account = ?;`

	findLocalListByRemoteID = `
		SELECT id FROM task_lists
		WHERE account = ? AND remote_id = ?;`

	findActiveLocalList = `
		SELECT id FROM task_lists
		WHERE account = ? AND id = ? AND deleted = 0;`

	insertLocalList = `
		INSERT INTO task_lists (account, remote_id, title, etag, deleted, updated, modified)
		VALUES (?, ?, ?, ?, ?, ?, ?);`

	updateLocalList = `
		UPDATE task_lists
		SET remote_id = ?, title = ?, etag = ?, deleted = ?, updated = ?, modified = ?
		WHERE id = ? AND account = ?;`

	deleteLocalListTasks = `DELETE FROM tasks WHERE list_id = ?;`

	deleteLocalList = `DELETE FROM task_lists WHERE id = ?;`

	findLocalTaskByRemoteID = `
		SELECT id FROM tasks
		WHERE list_id = ? AND remote_id = ?;`

	countTasksOfList = `
		SELECT COUNT(*) FROM tasks
		WHERE list_id = ? AND id = ?;`

	insertLocalTask = `
		INSERT INTO tasks (
			list_id, remote_id, title, notes, status, due, deleted, updated, etag,
			parent_id, previous_id, remote_parent, remote_previous, modified
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	updateLocalTask = `
		UPDATE tasks
		SET list_id = ?, remote_id = ?, title = ?, notes = ?, status = ?, due = ?, deleted = ?,
			updated = ?, etag = ?, parent_id = ?, previous_id = ?, remote_parent = ?,
			remote_previous = ?, modified = ?
		WHERE id = ?;`

	resolveLocalTaskRefs = `
		UPDATE tasks
		SET parent_id = ?, previous_id = ?
		WHERE id = ?;`

	deleteLocalTask = `DELETE FROM tasks WHERE id = ?;`

	upsertSyncState = `
		INSERT INTO sync_state (account, etag, last_synced)
		VALUES (?, ?, ?)
		ON CONFLICT (account) DO UPDATE
		SET etag = excluded.etag, last_synced = excluded.last_synced;`

	editLocalTask = `
		UPDATE tasks
		SET title = ?, notes = ?, status = ?, due = ?, parent_id = ?, previous_id = ?,
			updated = ?, modified = 1
		WHERE id = ? AND deleted = 0
			AND list_id IN (SELECT id FROM task_lists WHERE account = ?);`

	markLocalTaskDeleted = `
		UPDATE tasks
		SET deleted = 1, updated = ?, modified = 1
		WHERE id = ? AND deleted = 0
			AND list_id IN (SELECT id FROM task_lists WHERE account = ?);`
)
