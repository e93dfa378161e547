package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ScanRate returns a timeseries panel showing scan requests per second.
func ScanRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Scan Rate").
		Description("Scan requests per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`rate(ips_scan_duration_seconds_count[5m])`, "scans/s", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ScanLatency returns a timeseries panel showing scan duration percentiles.
func ScanLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Scan Latency").
		Description("Scan request duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(ips_scan_duration_seconds_bucket[5m])) by (le))`,
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(ips_scan_duration_seconds_bucket[5m])) by (le))`,
			"p95",
			"B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// BatchSize returns a timeseries panel showing the median scan batch size.
func BatchSize() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Batch Size").
		Description("Median number of items per scan request").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(ips_scan_batch_size_bucket[5m])) by (le))`,
			"p50 items", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DroppedColumns returns a timeseries panel showing feature columns dropped
// during schema reconciliation. A sustained nonzero rate means the catalog
// drifted from the trained schema.
func DroppedColumns() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Dropped Columns").
		Description("Feature columns dropped at reconciliation per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`rate(ips_reconcile_dropped_columns_total[5m])`,
			"dropped/s", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// EstimateLatency returns a timeseries panel showing model server call
// duration percentiles.
func EstimateLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Estimator Latency").
		Description("Model server call duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.50, sum(rate(ips_estimate_duration_seconds_bucket[5m])) by (le))`,
			"p50",
			"A",
		)).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(ips_estimate_duration_seconds_bucket[5m])) by (le))`,
			"p95",
			"B",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
