// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState is the per-account bookkeeping written with every successful full sync.
type SyncState struct {
	Account string
	// ETag is the remote change-token observed by the last full sync.
	ETag string
	// LastSynced is the floor for the next incremental task fetch.
	LastSynced time.Time
}

// SyncStatus is the terminal state of a sync run.
type SyncStatus int

const (
	SyncSuccess SyncStatus = iota
	SyncLoginFailure
	SyncError
)

func (s SyncStatus) String() string {
	switch s {
	case SyncSuccess:
		return "success"
	case SyncLoginFailure:
		return "login_failure"
	case SyncError:
		return "error"
	default:
		return "unknown"
	}
}

// SyncStats counts what happened during one or more runs.
type SyncStats struct {
	IOErrors   int64
	AuthErrors int64

	ListsUploaded   int
	TasksUploaded   int
	TasksDownloaded int
	Conflicts       int
	Purged          int
}

// Add accumulates other into s.
func (s *SyncStats) Add(other SyncStats) {
	s.IOErrors += other.IOErrors
	s.AuthErrors += other.AuthErrors
	s.ListsUploaded += other.ListsUploaded
	s.TasksUploaded += other.TasksUploaded
	s.TasksDownloaded += other.TasksDownloaded
	s.Conflicts += other.Conflicts
	s.Purged += other.Purged
}

// SyncResult is the outcome of a sync run. Err is set only for SyncLoginFailure
// and SyncError.
type SyncResult struct {
	Status SyncStatus
	Err    error
	Stats  SyncStats
}

// OK reports a successful run.
func (r SyncResult) OK() bool {
	return r.Status == SyncSuccess
}

// Account identifies a local account and the credentials used to reach the
// remote service on its behalf.
type Account struct {
	// Name keys local data and sync state.
	Name     string
	Login    string
	Password string
}
