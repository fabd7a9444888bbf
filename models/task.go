// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	TaskStatusNeedsAction TaskStatus = "needsAction"
	TaskStatusCompleted   TaskStatus = "completed"
)

// Task is an item of a [TaskList].
//
// Tree position is described twice. LocalParent and LocalPrevious point at
// local ids of tasks in the same list; RemoteParent and RemotePrevious carry
// the remote equivalents and are filled in lazily, once the referenced task
// has a remote id.
type Task struct {
	// ID is the local identifier assigned by the client store.
	ID int64 `json:"-"`

	// RemoteID is the identifier assigned by the remote service.
	RemoteID string `json:"id,omitempty"`

	// ListID is the local id of the owning list.
	ListID int64 `json:"-"`

	Title  string     `json:"title"`
	Notes  string     `json:"notes,omitempty"`
	Status TaskStatus `json:"status,omitempty"`
	Due    *time.Time `json:"due,omitempty"`

	Deleted bool `json:"deleted,omitempty"`

	// Updated is the last modification time as reported by the remote service.
	Updated time.Time `json:"updated"`

	// ETag is the remote version tag, sent as If-Match in strict uploads.
	ETag string `json:"etag,omitempty"`

	LocalParent   *int64 `json:"-"`
	LocalPrevious *int64 `json:"-"`

	RemoteParent   string `json:"parent,omitempty"`
	RemotePrevious string `json:"previous,omitempty"`

	// Modified marks a task changed locally since the last sync.
	Modified bool `json:"-"`
}

// IsUploaded reports whether the remote service has accepted the task at least once.
func (t Task) IsUploaded() bool {
	return t.RemoteID != ""
}

// NeedsUpload reports whether the task must be pushed to the remote service.
func (t Task) NeedsUpload() bool {
	return !t.IsUploaded() || t.Modified
}

// DeletedBeforeUpload reports a task removed locally before the remote
// service ever saw it. Such a task is never sent; it is only purged locally.
func (t Task) DeletedBeforeUpload() bool {
	return t.Deleted && !t.IsUploaded()
}

// SameAs reports whether t and other describe the same task.
func (t Task) SameAs(other Task) bool {
	if t.ID != 0 && other.ID != 0 {
		return t.ID == other.ID
	}
	return t.RemoteID != "" && t.RemoteID == other.RemoteID
}
