// Package validate checks generated dashboards and rules against the set of
// metrics the service actually exports, so a renamed metric fails the build
// instead of silently producing an empty panel.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation passed.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Exprs parses each PromQL expression and checks that every metric it
// selects is in the known set.
func Exprs(exprs []string, known map[string]bool) Result {
	var res Result
	for _, expr := range exprs {
		res.merge(checkExpr(expr, known))
	}
	return res
}

// DashboardJSON walks a marshaled dashboard and validates every "expr"
// field it finds. Validating the JSON keeps this independent of the SDK's
// panel types.
func DashboardJSON(data []byte, known map[string]bool) Result {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Result{Errors: []string{fmt.Sprintf("parsing dashboard JSON: %v", err)}}
	}

	exprs := collectExprs(doc)
	if len(exprs) == 0 {
		return Result{Warnings: []string{"dashboard contains no query expressions"}}
	}
	return Exprs(exprs, known)
}

func collectExprs(node any) []string {
	var exprs []string
	switch v := node.(type) {
	case map[string]any:
		for key, val := range v {
			if key == "expr" {
				if s, ok := val.(string); ok {
					exprs = append(exprs, s)
					continue
				}
			}
			exprs = append(exprs, collectExprs(val)...)
		}
	case []any:
		for _, item := range v {
			exprs = append(exprs, collectExprs(item)...)
		}
	}
	return exprs
}

func checkExpr(expr string, known map[string]bool) Result {
	var res Result
	if strings.TrimSpace(expr) == "" {
		res.Warnings = append(res.Warnings, "empty expression")
		return res
	}

	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("invalid PromQL %q: %v", expr, err))
		return res
	}

	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !knownMetric(vs.Name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("unknown metric %q in %q", vs.Name, expr))
		}
		return nil
	})
	return res
}

// histogram and summary series carry suffixes the exporter never registers
// directly.
var seriesSuffixes = []string{"_bucket", "_sum", "_count"}

func knownMetric(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range seriesSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}
