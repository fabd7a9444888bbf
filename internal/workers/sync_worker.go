// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	movingaverage "github.com/RobinUS2/golang-moving-average"

	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/service"
	"github.com/MKhiriev/go-task-sync/models"
)

const (
	defaultSyncInterval = 5 * time.Minute
	// durationWindow is the number of recent runs averaged by AvgRunDuration.
	durationWindow = 10
)

// SyncWorker runs sync for one account on a ticker. Two runs never overlap:
// a tick that arrives while a run is still in flight is dropped.
type SyncWorker struct {
	syncService service.ClientSyncService
	account     models.Account
	interval    time.Duration
	uploadOnly  bool

	// running guards a single sync run.
	running sync.Mutex

	statsMu sync.Mutex
	stats   models.SyncStats
	last    models.SyncResult
	runs    int
	// durations holds run times in milliseconds.
	durations *movingaverage.MovingAverage

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewSyncWorker(syncService service.ClientSyncService, cfg *config.ClientConfig, logger *logger.Logger) *SyncWorker {
	interval := cfg.Workers.SyncInterval
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	return &SyncWorker{
		syncService: syncService,
		account: models.Account{
			Name:     cfg.Sync.Account,
			Login:    cfg.Sync.Login,
			Password: cfg.Sync.Password,
		},
		interval:   interval,
		uploadOnly: cfg.Sync.UploadOnly,
		durations:  movingaverage.New(durationWindow),
		logger:     logger,
	}
}

// RunOnce performs one sync run. ok is false when another run was already in
// progress and nothing was done.
func (w *SyncWorker) RunOnce(ctx context.Context) (result models.SyncResult, ok bool) {
	if !w.running.TryLock() {
		w.logger.Debug().
			Str("func", "*SyncWorker.RunOnce").
			Str("account", w.account.Name).
			Msg("previous sync still running, tick skipped")
		return models.SyncResult{}, false
	}
	defer w.running.Unlock()

	start := time.Now()
	if w.uploadOnly {
		result = w.syncService.UploadOnlySync(ctx, w.account)
	} else {
		result = w.syncService.FullSync(ctx, w.account)
	}

	elapsed := time.Since(start)

	w.statsMu.Lock()
	w.stats.Add(result.Stats)
	w.last = result
	w.runs++
	w.durations.Add(float64(elapsed) / float64(time.Millisecond))
	w.statsMu.Unlock()

	w.logger.Debug().
		Str("func", "*SyncWorker.RunOnce").
		Str("account", w.account.Name).
		Stringer("status", result.Status).
		Dur("elapsed", elapsed).
		Msg("sync run finished")

	return result, true
}

// Run syncs immediately and then on every tick until ctx is done.
func (w *SyncWorker) Run(ctx context.Context) {
	w.logger.Info().
		Str("func", "*SyncWorker.Run").
		Str("account", w.account.Name).
		Dur("interval", w.interval).
		Bool("upload_only", w.uploadOnly).
		Msg("sync worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().
				Str("func", "*SyncWorker.Run").
				Str("account", w.account.Name).
				Msg("sync worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// Start launches Run in the background, stopping a previous instance first.
func (w *SyncWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		w.Run(runCtx)
	}()
}

// Stop cancels the background loop and waits for it to exit. A run in
// progress is aborted through its context. Safe to call when not started.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Stats returns the counters accumulated over all finished runs, the number
// of runs and the last result.
func (w *SyncWorker) Stats() (models.SyncStats, int, models.SyncResult) {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	return w.stats, w.runs, w.last
}

// AvgRunDuration returns the mean duration of the last few runs, zero before
// the first one.
func (w *SyncWorker) AvgRunDuration() time.Duration {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()

	if w.runs == 0 {
		return 0
	}
	return time.Duration(w.durations.Avg() * float64(time.Millisecond))
}
