package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/go-task-sync/models"
)

const instrumentationName = "github.com/MKhiriev/go-task-sync/internal/service"

// syncMetrics reports runs to the global OpenTelemetry providers, which are
// no-ops unless telemetry was set up.
type syncMetrics struct {
	tracer trace.Tracer

	runs       metric.Int64Counter
	ioErrors   metric.Int64Counter
	authErrors metric.Int64Counter
	uploaded   metric.Int64Counter
	downloaded metric.Int64Counter
	conflicts  metric.Int64Counter
}

func newSyncMetrics() *syncMetrics {
	meter := otel.Meter(instrumentationName)

	return &syncMetrics{
		tracer:     otel.Tracer(instrumentationName),
		runs:       counter(meter, "tasksync.runs", "Finished sync runs by mode and status."),
		ioErrors:   counter(meter, "tasksync.errors.io", "Runs ended by a transport failure."),
		authErrors: counter(meter, "tasksync.errors.auth", "Runs ended by a rejected login."),
		uploaded:   counter(meter, "tasksync.tasks.uploaded", "Tasks accepted by the remote side."),
		downloaded: counter(meter, "tasksync.tasks.downloaded", "Tasks fetched from the remote side."),
		conflicts:  counter(meter, "tasksync.conflicts", "Local changes dropped in favour of remote ones."),
	}
}

func counter(meter metric.Meter, name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		otel.Handle(err)
		return noop.Int64Counter{}
	}
	return c
}

func (m *syncMetrics) start(ctx context.Context, mode, account string) (context.Context, trace.Span) {
	return m.tracer.Start(ctx, "tasksync."+mode,
		trace.WithAttributes(
			attribute.String("tasksync.mode", mode),
			attribute.String("tasksync.account", account),
		),
	)
}

func (m *syncMetrics) finish(ctx context.Context, span trace.Span, mode string, result models.SyncResult) {
	defer span.End()

	stats := result.Stats
	span.SetAttributes(
		attribute.String("tasksync.status", result.Status.String()),
		attribute.Int("tasksync.lists.uploaded", stats.ListsUploaded),
		attribute.Int("tasksync.tasks.uploaded", stats.TasksUploaded),
		attribute.Int("tasksync.tasks.downloaded", stats.TasksDownloaded),
		attribute.Int("tasksync.conflicts", stats.Conflicts),
	)
	if result.Err != nil {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, result.Status.String())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	modeAttr := metric.WithAttributes(attribute.String("mode", mode))
	m.runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("status", result.Status.String()),
	))
	m.ioErrors.Add(ctx, stats.IOErrors, modeAttr)
	m.authErrors.Add(ctx, stats.AuthErrors, modeAttr)
	m.uploaded.Add(ctx, int64(stats.TasksUploaded), modeAttr)
	m.downloaded.Add(ctx, int64(stats.TasksDownloaded), modeAttr)
	m.conflicts.Add(ctx, int64(stats.Conflicts), modeAttr)
}
