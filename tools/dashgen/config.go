package main

import "errors"

// KnownMetrics is the set of metric names exported by item-price-scanner
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"ips_http_request_duration_seconds": true,
	"ips_http_requests_total":           true,

	// Health metrics.
	"ips_healthz_up": true,
	"ips_readyz_up":  true,

	// Normalization metrics.
	"ips_items_normalized_total": true,
	"ips_items_rejected_total":   true,

	// Scan pipeline metrics.
	"ips_scan_duration_seconds":           true,
	"ips_scan_batch_size":                 true,
	"ips_reconcile_dropped_columns_total": true,
	"ips_estimate_duration_seconds":       true,

	// Record source metrics.
	"ips_source_pages_total":  true,
	"ips_source_errors_total": true,

	// Dataset and scheduler metrics.
	"ips_dataset_rows_exported_total":              true,
	"ips_prepare_duration_seconds":                 true,
	"ips_scheduler_next_prepare_timestamp_seconds": true,

	// Deal metrics.
	"ips_deals_flagged_total":         true,
	"ips_notification_failures_total": true,

	// Recording rules.
	"ips:http_requests:rate5m":         true,
	"ips:http_errors:rate5m":           true,
	"ips:items_normalized:rate5m":      true,
	"ips:items_rejected:rate5m":        true,
	"ips:source_errors:rate5m":         true,
	"ips:deals_flagged:rate5m":         true,
	"ips:notification_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
