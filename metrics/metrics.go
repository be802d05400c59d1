// SPDX-License-Identifier: MIT
//
// Package metrics exposes Prometheus collectors for shortest-path runs.
//
// A nil *Recorder is valid and records nothing, so engines can call it
// unconditionally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lvstep"

// Run outcomes used as the "outcome" label.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
)

// Recorder groups the collectors of one registry.
type Recorder struct {
	runs           *prometheus.CounterVec
	phases         *prometheus.CounterVec
	relaxations    *prometheus.CounterVec
	bucketAdvances *prometheus.CounterVec
	duration       *prometheus.HistogramVec
}

// New creates and registers the collectors on reg. Registering twice on the
// same registry panics, as promauto does.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Shortest-path runs by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		phases: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phases_total",
			Help:      "Barrier-separated phases (rounds) executed.",
		}, []string{"algorithm"}),
		relaxations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relaxations_total",
			Help:      "Relax attempts by result (improved or rejected).",
		}, []string{"algorithm", "result"}),
		bucketAdvances: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bucket_advances_total",
			Help:      "Bucket windows opened by a rescan.",
		}, []string{"algorithm"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of completed and failed runs.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"algorithm"}),
	}
}

// Phase counts one finished phase.
func (r *Recorder) Phase(algorithm string) {
	if r == nil {
		return
	}
	r.phases.WithLabelValues(algorithm).Inc()
}

// BucketAdvance counts one opened bucket window.
func (r *Recorder) BucketAdvance(algorithm string) {
	if r == nil {
		return
	}
	r.bucketAdvances.WithLabelValues(algorithm).Inc()
}

// Run records the end of a run.
func (r *Recorder) Run(algorithm, outcome string, elapsed time.Duration, attempts, improvements int64) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(algorithm, outcome).Inc()
	r.duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	r.relaxations.WithLabelValues(algorithm, "improved").Add(float64(improvements))
	r.relaxations.WithLabelValues(algorithm, "rejected").Add(float64(attempts - improvements))
}
