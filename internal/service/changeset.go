// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-sync/internal/store"
	"github.com/MKhiriev/go-task-sync/models"
)

// ChangeSetBuilder snapshots the local store at the start of a run.
// It never talks to the network and never writes.
type ChangeSetBuilder struct {
	local store.LocalStore
}

func NewChangeSetBuilder(local store.LocalStore) *ChangeSetBuilder {
	return &ChangeSetBuilder{local: local}
}

// Build reads every list and task of account together with the saved sync state.
func (b *ChangeSetBuilder) Build(ctx context.Context, account string) (models.ChangeSet, error) {
	lists, listsToUpload, err := b.local.GetAllLists(ctx, account)
	if err != nil {
		return models.ChangeSet{}, fmt.Errorf("%w: reading lists: %w", ErrLocalStore, err)
	}

	tasks, tasksToUpload, ids, err := b.local.GetAllTasks(ctx, account)
	if err != nil {
		return models.ChangeSet{}, fmt.Errorf("%w: reading tasks: %w", ErrLocalStore, err)
	}
	if ids == nil {
		ids = models.NewIDMap()
	}

	state, err := b.local.GetSyncState(ctx, account)
	if err != nil {
		return models.ChangeSet{}, fmt.Errorf("%w: reading sync state: %w", ErrLocalStore, err)
	}

	return models.ChangeSet{
		Lists:         lists,
		ListsToUpload: listsToUpload,
		Tasks:         tasks,
		TasksToUpload: tasksToUpload,
		IDs:           ids,
		State:         state,
	}, nil
}
