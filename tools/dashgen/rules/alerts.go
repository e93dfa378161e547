package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// item-price-scanner operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "ips-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ips-alerts",
					Rules: []Rule{
						{
							Alert: "IpsDown",
							Expr:  `absent(up{job="item-price-scanner"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Item price scanner is down",
								"description": "The item-price-scanner job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "IpsReadinessDown",
							Expr:  `ips_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Item price scanner readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "IpsHighErrorRate",
							Expr:  `ips:http_errors:rate5m / ips:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on item price scanner",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "IpsSourceErrors",
							Expr:  `ips:source_errors:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Trade index request failures",
								"description": "The scroll client has been failing against the trade index for more than 5 minutes.",
							},
						},
						{
							Alert: "IpsHighRejectRate",
							Expr:  `ips:items_rejected:rate5m / (ips:items_normalized:rate5m + ips:items_rejected:rate5m) > 0.5`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Most incoming items are being rejected",
								"description": "More than half of incoming items have failed normalization over the last 10 minutes. The upstream item format may have changed.",
							},
						},
						{
							Alert: "IpsEstimatorSlow",
							Expr:  `histogram_quantile(0.95, sum(rate(ips_estimate_duration_seconds_bucket[5m])) by (le)) > 5`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Model server is slow",
								"description": "p95 model server call latency has been above 5 seconds for 10 minutes.",
							},
						},
						{
							Alert: "IpsPrepareOverdue",
							Expr:  `time() - ips_scheduler_next_prepare_timestamp_seconds > 3600`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Dataset refresh is overdue",
								"description": "The scheduled prepare run is more than an hour past due. Column schemas may be going stale.",
							},
						},
						{
							Alert: "IpsNotificationFailures",
							Expr:  `ips:notification_failures:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Deal notifications are failing",
								"description": "Deal alert delivery has been failing for more than 5 minutes. Check the Discord webhook.",
							},
						},
					},
				},
			},
		},
	}
}
