// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeSet is a read-only snapshot of the local store taken at the start
// of a sync run.
type ChangeSet struct {
	// Lists holds every local list of the account.
	Lists []TaskList
	// ListsToUpload holds lists that were never uploaded or are dirty.
	ListsToUpload []TaskList

	// Tasks holds every local task keyed by local list id.
	Tasks map[int64][]Task
	// TasksToUpload holds never-uploaded or dirty tasks keyed by local list id.
	TasksToUpload map[int64][]Task

	// IDs is preloaded with every task that already has a remote id.
	IDs *IDMap

	// State is the change-token and timestamp saved by the last full sync.
	State SyncState
}

// AllTasks flattens Tasks into one slice.
func (c ChangeSet) AllTasks() []Task {
	n := 0
	for _, tasks := range c.Tasks {
		n += len(tasks)
	}
	all := make([]Task, 0, n)
	for _, list := range c.Lists {
		all = append(all, c.Tasks[list.ID]...)
	}
	return all
}

// PendingUploads returns the number of lists and tasks waiting for upload.
func (c ChangeSet) PendingUploads() int {
	n := len(c.ListsToUpload)
	for _, tasks := range c.TasksToUpload {
		n += len(tasks)
	}
	return n
}

// PartitionLists splits lists into the full set and the upload candidates.
func PartitionLists(lists []TaskList) (all, toUpload []TaskList) {
	all = make([]TaskList, 0, len(lists))
	for _, l := range lists {
		all = append(all, l)
		if l.NeedsUpload() {
			toUpload = append(toUpload, l)
		}
	}
	return all, toUpload
}

// GroupTasks groups tasks by local list id, picks the upload candidates of
// every list and builds an [IDMap] of all tasks known to the remote side.
func GroupTasks(tasks []Task) (byList, toUpload map[int64][]Task, ids *IDMap) {
	byList = make(map[int64][]Task)
	toUpload = make(map[int64][]Task)
	ids = NewIDMap()

	for _, t := range tasks {
		byList[t.ListID] = append(byList[t.ListID], t)
		if t.NeedsUpload() {
			toUpload[t.ListID] = append(toUpload[t.ListID], t)
		}
		if t.IsUploaded() {
			ids.Put(t.ID, t.RemoteID)
		}
	}
	return byList, toUpload, ids
}
