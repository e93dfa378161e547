package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SourcePages returns a timeseries panel showing pages pulled from the
// trade index per second.
func SourcePages() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Source Pages").
		Description("Scroll pages pulled from the trade index per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`rate(ips_source_pages_total[5m])`, "pages/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SourceErrors returns a timeseries panel showing trade index request
// failures per second.
func SourceErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Source Errors").
		Description("Trade index request failures per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`ips:source_errors:rate5m`, "errors/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// PrepareDuration returns a timeseries panel showing how long prepare
// runs take.
func PrepareDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Prepare Duration").
		Description("p95 dataset preparation run duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(ips_prepare_duration_seconds_bucket[1h])) by (le))`,
			"p95", "A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RowsExported returns a timeseries panel showing training rows exported
// per category.
func RowsExported() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rows Exported").
		Description("Training dataset rows exported per second, by category").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(ips_dataset_rows_exported_total[1h])) by (category)`,
			"{{category}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
