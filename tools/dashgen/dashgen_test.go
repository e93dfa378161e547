package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/exilemarket/item-price-scanner/tools/dashgen/dashboards"
	"github.com/exilemarket/item-price-scanner/tools/dashgen/rules"
	"github.com/exilemarket/item-price-scanner/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	// Verify dashboard metadata.
	require.NotNil(t, dash.Uid)
	assert.Equal(t, "ips-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "IPS Overview", *dash.Title)

	// Verify template variable.
	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	// Verify we have 7 rows.
	assert.Len(t, dash.Panels, 7)

	// Count total inner panels.
	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 20, totalPanels)

	// Validate PromQL and metrics.
	data, err := json.Marshal(dash)
	require.NoError(t, err)
	result := validate.DashboardJSON(data, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "ips-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "ips-recording", group.Name)
	require.Len(t, group.Rules, 7)

	expectedRecords := []string{
		"ips:http_requests:rate5m",
		"ips:http_errors:rate5m",
		"ips:items_normalized:rate5m",
		"ips:items_rejected:rate5m",
		"ips:source_errors:rate5m",
		"ips:deals_flagged:rate5m",
		"ips:notification_failures:rate5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	result := validate.Exprs(cr.Exprs(), KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	// Verify YAML marshaling works.
	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "ips-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "ips-alerts", group.Name)
	require.Len(t, group.Rules, 8)

	expectedAlerts := []string{
		"IpsDown",
		"IpsReadinessDown",
		"IpsHighErrorRate",
		"IpsSourceErrors",
		"IpsHighRejectRate",
		"IpsEstimatorSlow",
		"IpsPrepareOverdue",
		"IpsNotificationFailures",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Exprs(cr.Exprs(), KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestBuildArtifacts(t *testing.T) {
	t.Parallel()

	artifacts, err := buildArtifacts(DefaultConfig())
	require.NoError(t, err)
	require.Len(t, artifacts, 3)

	for path, data := range artifacts {
		assert.NotEmpty(t, data, "artifact %s is empty", path)
	}
}

func TestValidateCatchesUnknownMetric(t *testing.T) {
	t.Parallel()

	result := validate.Exprs([]string{`rate(ips_no_such_metric_total[5m])`}, KnownMetrics)
	assert.False(t, result.Ok())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "ips_no_such_metric_total")
}

func TestValidateCatchesBadPromQL(t *testing.T) {
	t.Parallel()

	result := validate.Exprs([]string{`rate(ips_http_requests_total[5m`}, KnownMetrics)
	assert.False(t, result.Ok())
}
