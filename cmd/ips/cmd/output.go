package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/exilemarket/item-price-scanner/internal/engine"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printPredictionsTable(preds []engine.Prediction) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ITEM\tCATEGORY\tESTIMATE\tTOP BUCKET\tDEAL\n")
	for i := range preds {
		p := &preds[i]
		top := "-"
		if len(p.Top) > 0 {
			top = fmt.Sprintf("%s (%.1f%%)", p.Top[0].Label, p.Top[0].Percent)
		}
		deal := "-"
		if p.Deal != nil {
			deal = fmt.Sprintf("+%.1fc", p.Deal.Profit)
		}
		tw.writef("%s\t%s\t%.1fc\t%s\t%s\n",
			truncate(p.ItemID, 16),
			p.Category,
			p.Estimate,
			top,
			deal,
		)
	}
	return tw.finish()
}

func printRejectedTable(rejected []engine.RejectedItem) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ITEM\tREASON\n")
	for i := range rejected {
		tw.writef("%s\t%s\n", truncate(rejected[i].ItemID, 16), rejected[i].Reason)
	}
	return tw.finish()
}

func printSchemasTable(schemas []domain.ColumnSchemaRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("CATEGORY\tVERSION\tCOLUMNS\tCREATED\n")
	for i := range schemas {
		s := &schemas[i]
		tw.writef("%s\t%d\t%d\t%s\n",
			s.Category,
			s.Version,
			len(s.Columns),
			s.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printSchemaDetail(s *domain.ColumnSchemaRecord) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Category:\t%s\n", s.Category)
	tw.writef("Version:\t%d\n", s.Version)
	tw.writef("Created:\t%s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
	tw.writef("Columns:\t%s\n", strings.Join(s.Columns, ", "))
	return tw.finish()
}

func printDealsTable(deals []domain.DealEvent) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ITEM\tCATEGORY\tLISTED\tESTIMATE\tPROFIT\tFLAGGED\n")
	for i := range deals {
		d := &deals[i]
		tw.writef("%s\t%s\t%.1fc\t%.1fc\t%.1fc\t%s\n",
			truncate(d.ItemID, 16),
			d.Category,
			d.ListedChaos,
			d.Estimate,
			d.Profit,
			d.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
