package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// NormalizedRate returns a timeseries panel showing items normalized per
// second.
func NormalizedRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Items Normalized").
		Description("Items successfully normalized per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`ips:items_normalized:rate5m`, "items/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RejectedByReason returns a timeseries panel breaking the rejection rate
// down by reason.
func RejectedByReason() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Rejections by Reason").
		Description("Items rejected during normalization per second, by reason").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(ips_items_rejected_total[5m])) by (reason)`,
			"{{reason}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
