// SPDX-License-Identifier: MIT
//
// Package run carries the bookkeeping every engine run shares: the Result
// record, the run ID, the OpenTelemetry span, structured logging and the
// Prometheus recorder. Engines call Start once, report phases while they
// work, and Finish exactly once.
package run

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvstep/ctxlog"
	"github.com/katalvlaran/lvstep/distance"
	"github.com/katalvlaran/lvstep/metrics"
)

const tracerName = "github.com/katalvlaran/lvstep"

// Result describes one completed (or aborted) run.
type Result struct {
	RunID       uuid.UUID
	Algorithm   string
	Source      int
	Bound       int64 // rounds for the sweep, bucket width for stepping
	Parallelism int

	Phases         int   // barrier-separated phases executed
	BucketAdvances int   // windows opened by a rescan
	Enqueued       int64 // frontier entries produced by relaxations and rescans
	Relaxations    int64 // TryRelax calls
	Improvements   int64 // successful TryRelax calls
	Duration       time.Duration
}

// Tracker accumulates a Result while a run is in flight.
// It is used by the single goroutine driving the run.
type Tracker struct {
	span   trace.Span
	logger *slog.Logger
	rec    *metrics.Recorder
	start  time.Time
	res    Result
}

// Start opens the run span and logs the start. logger may be nil, in which
// case the logger carried by ctx (if any) is used.
func Start(ctx context.Context, algorithm string, source int, bound int64, parallelism int,
	rec *metrics.Recorder, logger *slog.Logger) (context.Context, *Tracker) {
	if logger == nil {
		logger = ctxlog.FromContext(ctx)
	}
	id := uuid.New()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "lvstep."+algorithm,
		trace.WithAttributes(
			attribute.String("run_id", id.String()),
			attribute.Int("source", source),
			attribute.Int64("bound", bound),
			attribute.Int("parallelism", parallelism),
		),
	)
	logger = logger.With("run_id", id.String(), "algorithm", algorithm)
	logger.Info("Run started.", "source", source, "bound", bound, "parallelism", parallelism)

	return ctx, &Tracker{
		span:   span,
		logger: logger,
		rec:    rec,
		start:  time.Now(),
		res: Result{
			RunID:       id,
			Algorithm:   algorithm,
			Source:      source,
			Bound:       bound,
			Parallelism: parallelism,
		},
	}
}

// Logger returns the run-scoped logger.
func (t *Tracker) Logger() *slog.Logger { return t.logger }

// Phases returns the number of phases recorded so far.
func (t *Tracker) Phases() int { return t.res.Phases }

// Phase records a finished phase that processed width work items and
// produced enqueued entries for the next one.
func (t *Tracker) Phase(width int, enqueued int, bound int64) {
	t.res.Phases++
	t.res.Enqueued += int64(enqueued)
	t.rec.Phase(t.res.Algorithm)
	t.logger.Debug("Phase finished.", "phase", t.res.Phases, "width", width, "next", enqueued, "bound", bound)
}

// BucketAdvance records a rescan that opened the window [lo, hi) with size
// vertices in it.
func (t *Tracker) BucketAdvance(lo, hi int64, size int) {
	t.res.BucketAdvances++
	t.res.Enqueued += int64(size)
	t.rec.BucketAdvance(t.res.Algorithm)
	t.span.AddEvent("bucket_advance", trace.WithAttributes(
		attribute.Int64("lo", lo),
		attribute.Int64("hi", hi),
		attribute.Int("size", size),
	))
	t.logger.Debug("Bucket window opened.", "lo", lo, "hi", hi, "size", size)
}

// Finish closes the run. It copies the relaxation counters into the result,
// ends the span with the right status and records metrics. err is returned
// unchanged so callers can write `return t.Finish(stats, err)`.
func (t *Tracker) Finish(stats distance.Stats, err error) (Result, error) {
	t.res.Relaxations = stats.Attempts
	t.res.Improvements = stats.Improvements
	t.res.Duration = time.Since(t.start)

	outcome := metrics.OutcomeCompleted
	if err != nil {
		outcome = metrics.OutcomeFailed
		t.span.RecordError(err)
		t.span.SetStatus(codes.Error, "run aborted")
		t.logger.Error("Run aborted.", "phase", t.res.Phases, "error", err)
	} else {
		t.span.SetAttributes(
			attribute.Int("phases", t.res.Phases),
			attribute.Int64("improvements", t.res.Improvements),
		)
		t.logger.Info("Run completed.",
			"phases", t.res.Phases,
			"bucket_advances", t.res.BucketAdvances,
			"relaxations", t.res.Relaxations,
			"improvements", t.res.Improvements,
			"duration", t.res.Duration,
		)
	}
	t.rec.Run(t.res.Algorithm, outcome, t.res.Duration, stats.Attempts, stats.Improvements)
	t.span.End()

	return t.res, err
}
