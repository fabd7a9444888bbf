// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TaskList is a named container of tasks.
//
// The same type is used on both sides of the wire. ID is the local database
// identifier and never leaves the client; RemoteID is assigned by the remote
// service on first successful upload and stays empty until then.
type TaskList struct {
	// ID is the local identifier assigned by the client store.
	ID int64 `json:"-"`

	// RemoteID is the identifier assigned by the remote service.
	RemoteID string `json:"id,omitempty"`

	// Account is the local account the list belongs to.
	Account string `json:"-"`

	Title string `json:"title"`

	// ETag is the remote version tag of the list.
	ETag string `json:"etag,omitempty"`

	Deleted bool `json:"deleted,omitempty"`

	// Updated is the remote modification time.
	Updated time.Time `json:"updated"`

	// Modified marks a list changed locally since the last sync.
	Modified bool `json:"-"`
}

// IsUploaded reports whether the remote service has accepted the list at least once.
func (l TaskList) IsUploaded() bool {
	return l.RemoteID != ""
}

// NeedsUpload reports whether the list must be pushed to the remote service.
func (l TaskList) NeedsUpload() bool {
	return !l.IsUploaded() || l.Modified
}

// DeletedBeforeUpload reports a list removed locally before the remote
// service ever saw it. It is purged locally instead of being sent.
func (l TaskList) DeletedBeforeUpload() bool {
	return l.Deleted && !l.IsUploaded()
}

// SameAs reports whether l and other describe the same list.
// Local ids win when both sides carry one; otherwise remote ids are compared.
func (l TaskList) SameAs(other TaskList) bool {
	if l.ID != 0 && other.ID != 0 {
		return l.ID == other.ID
	}
	return l.RemoteID != "" && l.RemoteID == other.RemoteID
}
