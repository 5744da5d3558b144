// internal/app/system/metrics/metrics.go
//
// Package metrics holds the Prometheus collectors for the reporting service.
// Collectors register with the default registry at init and are exposed on
// /metrics through Handler.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	counterWrites = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "schoolreports_counter_writes_total",
			Help: "Page view increments persisted",
		},
	)

	counterWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "schoolreports_counter_write_failures_total",
			Help: "Page view increments that failed and were dropped",
		},
	)

	reportBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schoolreports_report_builds_total",
			Help: "Reports built, by report and outcome",
		},
		[]string{"report", "outcome"},
	)

	reportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "schoolreports_report_duration_seconds",
			Help:    "Time to load a snapshot and build a report",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"report"},
	)

	snapshotRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schoolreports_snapshot_refreshes_total",
			Help: "Live snapshot reloads, by watcher and outcome",
		},
		[]string{"watch", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(counterWrites, counterWriteFailures, reportBuilds, reportDuration, snapshotRefreshes)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// CounterWrite records a persisted page view.
func CounterWrite() { counterWrites.Inc() }

// CounterWriteFailure records a dropped page view.
func CounterWriteFailure() { counterWriteFailures.Inc() }

// ObserveReport records one report build. err decides the outcome label.
func ObserveReport(report string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	reportBuilds.WithLabelValues(report, outcome).Inc()
	reportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}

// SnapshotRefresh records one watcher reload.
func SnapshotRefresh(watch string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	snapshotRefreshes.WithLabelValues(watch, outcome).Inc()
}
