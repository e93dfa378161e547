package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// DealsRate returns a timeseries panel showing deals flagged per second.
func DealsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Deals Flagged").
		Description("Underpriced listings flagged per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`ips:deals_flagged:rate5m`, "deals/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// NotificationFailures returns a timeseries panel showing notification
// send failures per second.
func NotificationFailures() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Notification Failures").
		Description("Deal notification send failures per second").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`ips:notification_failures:rate5m`, "failures/s", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
