// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-sync/internal/adapter"
	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/store"
	"github.com/MKhiriev/go-task-sync/models"
)

const (
	modeFull       = "full"
	modeUploadOnly = "upload_only"
)

// clientSyncService runs the sync protocols for one local store and one
// remote client. Runs are sequential; the caller must not start two at once.
type clientSyncService struct {
	local    store.LocalStore
	remote   adapter.RemoteClient
	builder  *ChangeSetBuilder
	resolver ConflictResolver
	metrics  *syncMetrics

	scope string

	logger *logger.Logger
}

func NewClientSyncService(local store.LocalStore, remote adapter.RemoteClient, cfg config.ClientSync, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		local:   local,
		remote:  remote,
		builder: NewChangeSetBuilder(local),
		metrics: newSyncMetrics(),
		scope:   cfg.Scope,
		logger:  logger,
	}
}

func (s *clientSyncService) FullSync(ctx context.Context, account models.Account) models.SyncResult {
	return s.run(ctx, modeFull, account, s.fullSync)
}

func (s *clientSyncService) UploadOnlySync(ctx context.Context, account models.Account) models.SyncResult {
	return s.run(ctx, modeUploadOnly, account, s.uploadOnlySync)
}

type syncRun func(ctx context.Context, account models.Account, stats *models.SyncStats) error

// run is the boundary of a sync run: the remote session is always closed
// and every failure is classified into the result.
func (s *clientSyncService) run(ctx context.Context, mode string, account models.Account, fn syncRun) models.SyncResult {
	runLogger := s.logger.With().Str("sync_mode", mode).Logger()
	ctx = runLogger.WithContext(ctx)
	ctx, span := s.metrics.start(ctx, mode, account.Name)
	log := logger.FromContext(ctx)
	started := time.Now()

	var stats models.SyncStats
	err := func() error {
		defer s.remote.Close()
		return fn(ctx, account, &stats)
	}()

	status, errStats := classifySyncError(err)
	stats.Add(errStats)
	result := models.SyncResult{Status: status, Err: err, Stats: stats}

	s.metrics.finish(ctx, span, mode, result)

	event := log.Info()
	if err != nil {
		event = log.Err(err)
	}
	event.
		Str("func", "*clientSyncService.run").
		Str("mode", mode).
		Str("account", account.Name).
		Stringer("status", status).
		Int("lists_uploaded", stats.ListsUploaded).
		Int("tasks_uploaded", stats.TasksUploaded).
		Int("tasks_downloaded", stats.TasksDownloaded).
		Int("conflicts", stats.Conflicts).
		Int("purged", stats.Purged).
		Dur("took", time.Since(started)).
		Msg("sync run finished")

	return result
}

func (s *clientSyncService) fullSync(ctx context.Context, account models.Account, stats *models.SyncStats) error {
	if err := s.remote.Authenticate(ctx, account, s.scope); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	cs, err := s.builder.Build(ctx, account.Name)
	if err != nil {
		return err
	}

	token, set, err := s.fetchRemote(ctx, account, cs, stats)
	if err != nil {
		return err
	}

	res := s.resolver.Resolve(cs.Lists, cs.TasksToUpload, set)
	stats.Conflicts += res.Conflicts
	set.Purge = append(set.Purge, res.Purge...)
	stats.Purged += len(res.Purge)

	listsToUpload, listsToPurge := s.resolver.ResolveLists(cs.ListsToUpload)
	set.PurgeLists = append(set.PurgeLists, listsToPurge...)
	stats.Purged += len(listsToPurge)

	uploaded, err := s.uploadLists(ctx, listsToUpload, set, stats)
	if err != nil {
		return err
	}

	tasksUploaded, err := s.uploadTasks(ctx, cs, res.Upload, set, false, stats)
	if err != nil {
		return err
	}
	uploaded = uploaded || tasksUploaded

	// Our own uploads moved the remote token; without them the token read
	// in the fetch step is still current.
	if uploaded {
		if token, err = s.remote.FetchChangeToken(ctx); err != nil {
			return fmt.Errorf("refresh change-token: %w", err)
		}
	}

	state := models.SyncState{
		Account:    account.Name,
		ETag:       token,
		LastSynced: set.LatestUpdate(cs.State.LastSynced),
	}
	if err = s.local.Commit(ctx, account.Name, set, cs.IDs, &state); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrLocalStore, err)
	}

	return nil
}

// fetchRemote downloads the remote lists and, when the change-token moved,
// the tasks modified since the last full sync. The returned set holds the
// remote-win state.
func (s *clientSyncService) fetchRemote(ctx context.Context, account models.Account, cs models.ChangeSet, stats *models.SyncStats) (string, *models.SaveSet, error) {
	log := logger.FromContext(ctx)
	set := models.NewSaveSet()

	token, remoteLists, err := s.remote.FetchChangeTokenAndLists(ctx, cs.State.ETag, cs.Lists)
	if err != nil {
		return "", nil, fmt.Errorf("fetch change-token: %w", err)
	}

	if token == cs.State.ETag {
		log.Debug().
			Str("func", "*clientSyncService.fetchRemote").
			Str("account", account.Name).
			Msg("change-token unchanged, skipping download")
		return token, set, nil
	}

	for _, list := range remoteLists {
		list.Account = account.Name
		entry := set.PutList(list)
		if !list.IsUploaded() || list.Deleted {
			continue
		}

		// A list new to this client may hold tasks older than the floor.
		since := cs.State.LastSynced
		if list.ID == 0 {
			since = time.Time{}
		}

		tasks, err := s.remote.FetchModifiedTasks(ctx, list, cs.Tasks[list.ID], since, cs.IDs)
		if err != nil {
			return "", nil, fmt.Errorf("fetch tasks of list %s: %w", list.RemoteID, err)
		}
		set.AddTasks(entry, tasks...)
		stats.TasksDownloaded += len(tasks)
	}

	log.Debug().
		Str("func", "*clientSyncService.fetchRemote").
		Str("account", account.Name).
		Int("lists", len(remoteLists)).
		Int("tasks", stats.TasksDownloaded).
		Msg("remote changes downloaded")

	return token, set, nil
}

// uploadLists pushes dirty lists and reports whether any upload call was
// made. A rejected list is counted as a conflict and stays dirty locally.
func (s *clientSyncService) uploadLists(ctx context.Context, lists []models.TaskList, set *models.SaveSet, stats *models.SyncStats) (bool, error) {
	called := false
	for _, list := range lists {
		called = true
		saved, err := s.remote.UploadList(ctx, list)
		if err != nil {
			return called, fmt.Errorf("upload list %d: %w", list.ID, err)
		}
		if saved == nil {
			stats.Conflicts++
			logger.FromContext(ctx).Warn().
				Str("func", "*clientSyncService.uploadLists").
				Int64("list_id", list.ID).
				Msg("list upload conflicted")
			continue
		}

		set.PutList(*saved)
		stats.ListsUploaded++
	}
	return called, nil
}

// uploadTasks pushes the eligible tasks list by list in tree order. In
// strict mode a task whose tree references cannot be translated yet is
// skipped and uploads are conditional on the task etag.
func (s *clientSyncService) uploadTasks(ctx context.Context, cs models.ChangeSet, pending map[int64][]models.Task, set *models.SaveSet, strict bool, stats *models.SyncStats) (bool, error) {
	log := logger.FromContext(ctx)
	called := false

	for _, list := range cs.Lists {
		tasks := pending[list.ID]
		if len(tasks) == 0 {
			continue
		}

		target := list
		if entry := set.Lookup(list); entry != nil {
			target = *entry
		}
		if !target.IsUploaded() || target.Deleted {
			log.Info().
				Str("func", "*clientSyncService.uploadTasks").
				Int64("list_id", list.ID).
				Int("tasks", len(tasks)).
				Msg("list not available remotely, tasks stay pending")
			continue
		}

		for _, task := range sortForUpload(tasks, cs.Tasks[list.ID]) {
			parent, parentOK := models.RemoteRef(cs.IDs, task.LocalParent)
			previous, previousOK := models.RemoteRef(cs.IDs, task.LocalPrevious)
			if strict && (!parentOK || !previousOK) {
				log.Info().
					Str("func", "*clientSyncService.uploadTasks").
					Int64("task_id", task.ID).
					Msg("tree reference not uploaded yet, task skipped")
				continue
			}
			task.RemoteParent, task.RemotePrevious = parent, previous

			called = true
			saved, err := s.remote.UploadTask(ctx, task, target, strict)
			if err != nil {
				return called, fmt.Errorf("upload task %d: %w", task.ID, err)
			}
			if saved == nil {
				stats.Conflicts++
				continue
			}

			cs.IDs.Put(saved.ID, saved.RemoteID)
			set.AddTasks(set.ListFor(target), *saved)
			stats.TasksUploaded++
		}
	}

	return called, nil
}

func (s *clientSyncService) uploadOnlySync(ctx context.Context, account models.Account, stats *models.SyncStats) error {
	if err := s.remote.Authenticate(ctx, account, s.scope); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	cs, err := s.builder.Build(ctx, account.Name)
	if err != nil {
		return err
	}

	set := models.NewSaveSet()
	res := s.resolver.Resolve(cs.Lists, cs.TasksToUpload, nil)
	set.Purge = res.Purge

	listsToUpload, listsToPurge := s.resolver.ResolveLists(cs.ListsToUpload)
	set.PurgeLists = listsToPurge

	if _, err = s.uploadLists(ctx, listsToUpload, set, stats); err != nil {
		return err
	}
	if _, err = s.uploadTasks(ctx, cs, res.Upload, set, true, stats); err != nil {
		return err
	}

	if stats.ListsUploaded+stats.TasksUploaded == 0 {
		logger.FromContext(ctx).Debug().
			Str("func", "*clientSyncService.uploadOnlySync").
			Str("account", account.Name).
			Msg("nothing uploaded, commit skipped")
		return nil
	}

	stats.Purged += len(res.Purge) + len(listsToPurge)
	if err = s.local.Commit(ctx, account.Name, set, cs.IDs, nil); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrLocalStore, err)
	}

	return nil
}
