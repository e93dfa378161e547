// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/exilemarket/item-price-scanner/tools/dashgen/panels"
)

// BuildOverview constructs the IPS Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("IPS Overview").
		Uid("ips-overview").
		Tags([]string{"ips", "item-price-scanner"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.NextPrepareStat()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Scan pipeline.
	b.WithRow(dashboard.NewRowBuilder("Scan").
		WithPanel(panels.ScanRate()).
		WithPanel(panels.ScanLatency()).
		WithPanel(panels.BatchSize()).
		WithPanel(panels.DroppedColumns()))

	// Row 4: Normalization.
	b.WithRow(dashboard.NewRowBuilder("Normalization").
		WithPanel(panels.NormalizedRate()).
		WithPanel(panels.RejectedByReason()))

	// Row 5: Estimator.
	b.WithRow(dashboard.NewRowBuilder("Estimator").
		WithPanel(panels.EstimateLatency()))

	// Row 6: Prepare.
	b.WithRow(dashboard.NewRowBuilder("Prepare").
		WithPanel(panels.SourcePages()).
		WithPanel(panels.SourceErrors()).
		WithPanel(panels.PrepareDuration()).
		WithPanel(panels.RowsExported()))

	// Row 7: Deals.
	b.WithRow(dashboard.NewRowBuilder("Deals").
		WithPanel(panels.DealsRate()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
