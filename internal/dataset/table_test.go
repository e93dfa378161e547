package dataset

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exilemarket/item-price-scanner/pkg/feature"
)

func rowWith(t *testing.T, values map[string]float64) *feature.Row {
	t.Helper()

	row := feature.NewRow()
	for name, v := range values {
		row.Set(name, v)
	}
	return row
}

func TestTableColumnUnion(t *testing.T) {
	t.Parallel()

	table := NewTable("Dagger")
	table.Append(rowWith(t, map[string]float64{"ilvl": 70, "priceChaos": 5}))
	table.Append(rowWith(t, map[string]float64{"ilvl": 80, "explicit_X_to_maximum_Life": 55}))

	assert.Equal(t, []string{"explicit_X_to_maximum_Life", "ilvl", "priceChaos"}, table.Columns())
	assert.Equal(t, 2, table.Len())
}

func TestTableLabelColumnStaysLast(t *testing.T) {
	t.Parallel()

	table := NewTable("Dagger")
	table.Append(rowWith(t, map[string]float64{"priceChaos": 5}))
	table.Append(rowWith(t, map[string]float64{"zz_late_column": 1}))

	cols := table.Columns()
	assert.Equal(t, "priceChaos", cols[len(cols)-1])
}

func TestTableMeans(t *testing.T) {
	t.Parallel()

	table := NewTable("Dagger")
	table.Append(rowWith(t, map[string]float64{"ilvl": 70}))
	table.Append(rowWith(t, map[string]float64{"ilvl": 80, "req_Dex": 90}))

	// Missing values count as zero: req_Dex mean is 90/2.
	assert.Equal(t, []float64{75, 45}, table.Means())
}

func TestTableSchemaExcludesLabel(t *testing.T) {
	t.Parallel()

	table := NewTable("Dagger")
	table.Append(rowWith(t, map[string]float64{"ilvl": 70, "priceChaos": 5}))
	table.Append(rowWith(t, map[string]float64{"ilvl": 80, "priceChaos": 10}))

	s, err := table.Schema(3)
	require.NoError(t, err)
	assert.Equal(t, "Dagger", s.Category)
	assert.Equal(t, 3, s.Version)
	assert.Equal(t, []string{"ilvl"}, s.Columns)
	assert.Equal(t, []float64{75}, s.Means)
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	table := NewTable("Dagger")
	table.Append(rowWith(t, map[string]float64{"ilvl": 70, "priceChaos": 5}))
	table.Append(rowWith(t, map[string]float64{"ilvl": 80, "req_Dex": 90.5, "priceChaos": 10}))

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"ilvl", "req_Dex", "priceChaos"}, records[0])
	assert.Equal(t, []string{"70", "0", "5"}, records[1])
	assert.Equal(t, []string{"80", "90.5", "10"}, records[2])
}

func TestExporterCSV(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e, err := NewExporter(dir, FormatCSV)
	require.NoError(t, err)

	table := NewTable("One Hand Axe")
	table.Append(rowWith(t, map[string]float64{"ilvl": 60, "priceChaos": 2}))

	path, err := e.Export(table)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "one_hand_axe.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ilvl")
}

func TestExporterParquet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	e, err := NewExporter(dir, FormatParquet)
	require.NoError(t, err)

	table := NewTable("Dagger")
	table.Append(rowWith(t, map[string]float64{"ilvl": 60, "priceChaos": 2}))

	path, err := e.Export(table)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "dagger.parquet"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExporterSkipsEmptyTable(t *testing.T) {
	t.Parallel()

	e, err := NewExporter(t.TempDir(), FormatCSV)
	require.NoError(t, err)

	path, err := e.Export(NewTable("Dagger"))
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestNewExporterRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := NewExporter(t.TempDir(), "avro")
	assert.Error(t, err)
}
