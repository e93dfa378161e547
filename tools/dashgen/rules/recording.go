package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "ips-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ips-recording",
					Rules: []Rule{
						{
							Record: "ips:http_requests:rate5m",
							Expr:   `sum(rate(ips_http_requests_total[5m]))`,
						},
						{
							Record: "ips:http_errors:rate5m",
							Expr:   `sum(rate(ips_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "ips:items_normalized:rate5m",
							Expr:   `rate(ips_items_normalized_total[5m])`,
						},
						{
							Record: "ips:items_rejected:rate5m",
							Expr:   `sum(rate(ips_items_rejected_total[5m]))`,
						},
						{
							Record: "ips:source_errors:rate5m",
							Expr:   `rate(ips_source_errors_total[5m])`,
						},
						{
							Record: "ips:deals_flagged:rate5m",
							Expr:   `rate(ips_deals_flagged_total[5m])`,
						},
						{
							Record: "ips:notification_failures:rate5m",
							Expr:   `rate(ips_notification_failures_total[5m])`,
						},
					},
				},
			},
		},
	}
}
