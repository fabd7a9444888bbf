// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-task-sync/internal/adapter"
	"github.com/MKhiriev/go-task-sync/models"
)

// classifySyncError turns the error that ended a run into its outcome and
// the error counters it contributes.
func classifySyncError(err error) (models.SyncStatus, models.SyncStats) {
	var stats models.SyncStats

	switch {
	case err == nil:
		return models.SyncSuccess, stats
	case errors.Is(err, adapter.ErrUnauthorized):
		stats.AuthErrors++
		return models.SyncLoginFailure, stats
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// aborted by the caller; not a network fault
		return models.SyncError, stats
	case errors.Is(err, adapter.ErrTransport):
		stats.IOErrors++
		return models.SyncError, stats
	default:
		return models.SyncError, stats
	}
}
