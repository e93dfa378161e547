package dataset

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// WriteParquet writes the table to a parquet file. Every column is a DOUBLE;
// missing values export as 0, matching the CSV form.
func (t *Table) WriteParquet(path string) error {
	cols := t.Columns()

	md := make([]string, len(cols))
	for i, col := range cols {
		md[i] = fmt.Sprintf("name=%s, type=DOUBLE", col)
	}

	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("creating parquet file: %w", err)
	}

	pw, err := writer.NewCSVWriter(md, fw, 4)
	if err != nil {
		fw.Close() //nolint:errcheck,gosec // already failing
		return fmt.Errorf("creating parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	record := make([]any, len(cols))
	for _, row := range t.rows {
		for i, col := range cols {
			v, _ := row.Get(col)
			record[i] = v
		}
		if err := pw.Write(record); err != nil {
			fw.Close() //nolint:errcheck,gosec // already failing
			return fmt.Errorf("writing parquet row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		fw.Close() //nolint:errcheck,gosec // already failing
		return fmt.Errorf("finalizing parquet file: %w", err)
	}
	return fw.Close()
}
