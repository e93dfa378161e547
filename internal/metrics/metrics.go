// Package metrics defines Prometheus metrics for item-price-scanner.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ips"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, else 0.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded, else 0.",
	})
)

// Normalization metrics.
var (
	ItemsNormalizedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_normalized_total",
		Help:      "Total number of items successfully normalized.",
	})

	ItemsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_rejected_total",
		Help:      "Total number of items rejected during normalization, by reason.",
	}, []string{"reason"})
)

// Scan pipeline metrics.
var (
	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scan_duration_seconds",
		Help:      "Duration of scan requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	ScanBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "scan_batch_size",
		Help:      "Number of items per scan request.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
	})

	ReconcileDroppedColumnsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconcile_dropped_columns_total",
		Help:      "Total feature columns dropped because the schema does not know them.",
	})

	EstimateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "estimate_duration_seconds",
		Help:      "Duration of estimator backend calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Record source metrics.
var (
	SourcePagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "source_pages_total",
		Help:      "Total pages pulled from the record source.",
	})

	SourceErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "source_errors_total",
		Help:      "Total record source request failures.",
	})
)

// Dataset metrics.
var (
	DatasetRowsExportedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dataset_rows_exported_total",
		Help:      "Total dataset rows exported, by category.",
	}, []string{"category"})

	PrepareDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "prepare_duration_seconds",
		Help:      "Duration of dataset preparation runs in seconds.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1s .. ~34m
	})

	SchedulerNextPrepareTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_prepare_timestamp_seconds",
		Help:      "Unix timestamp of the next scheduled prepare run.",
	})
)

// Deal metrics.
var (
	DealsFlaggedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deals_flagged_total",
		Help:      "Total number of listings flagged as deals.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})
)
