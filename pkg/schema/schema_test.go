package schema

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exilemarket/item-price-scanner/pkg/feature"
)

func newTestSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := New("Dagger", 1, []string{"ilvl", "corrupted", "explicit_X_to_maximum_Life"}, nil)
	require.NoError(t, err)
	return s
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		columns []string
		means   []float64
		wantErr error
	}{
		{name: "empty columns", columns: nil, wantErr: ErrNoColumns},
		{name: "duplicate column", columns: []string{"ilvl", "ilvl"}, wantErr: ErrDuplicateCol},
		{name: "label excluded", columns: []string{"ilvl", "priceChaos"}, wantErr: ErrLabelInColumns},
		{name: "means mismatch", columns: []string{"ilvl"}, means: []float64{1, 2}, wantErr: ErrMeansMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New("Dagger", 1, tt.columns, tt.means)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReconcile(t *testing.T) {
	t.Parallel()

	s := newTestSchema(t)

	row := feature.NewRow()
	row.Set("ilvl", 74)
	row.Set("explicit_X_to_maximum_Life", 55)
	row.Set("explicit_Brand_New_Mod", 12)
	row.Set("priceChaos", 5)

	vector, dropped, err := s.Reconcile(row, FillZero)
	require.NoError(t, err)

	assert.Equal(t, []float64{74, 0, 55}, vector)
	assert.Equal(t, []string{"explicit_Brand_New_Mod"}, dropped)
}

func TestReconcileIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestSchema(t)

	row := feature.NewRow()
	row.Set("ilvl", 74)
	row.Set("unknown_col", 1)

	first, _, err := s.Reconcile(row, FillZero)
	require.NoError(t, err)

	again := feature.NewRow()
	for i, col := range s.Columns {
		again.Set(col, first[i])
	}
	second, dropped, err := s.Reconcile(again, FillZero)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Empty(t, dropped)
}

func TestReconcileMeanFill(t *testing.T) {
	t.Parallel()

	s, err := New("Dagger", 1, []string{"ilvl", "req_Dex"}, []float64{68.2, 90.5})
	require.NoError(t, err)

	row := feature.NewRow()
	row.Set("ilvl", 80)

	vector, _, err := s.Reconcile(row, FillMean)
	require.NoError(t, err)
	assert.Equal(t, []float64{80, 90.5}, vector)

	_, _, err = newTestSchema(t).Reconcile(row, FillMean)
	assert.ErrorIs(t, err, ErrMeansUnset)
}

func TestArtifactRoundTrip(t *testing.T) {
	t.Parallel()

	a := NewArtifact([]*Schema{newTestSchema(t)})
	path := filepath.Join(t.TempDir(), "schemas", "schemas.json")
	require.NoError(t, a.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	s, ok := loaded.Get("Dagger")
	require.True(t, ok)
	assert.Equal(t, 1, s.Version)
	assert.Equal(t, []string{"ilvl", "corrupted", "explicit_X_to_maximum_Life"}, s.Columns)
	assert.True(t, s.Contains("ilvl"))
}

func TestLoadRejectsBrokenArtifact(t *testing.T) {
	t.Parallel()

	a := &Artifact{Schemas: map[string]*Schema{
		"Dagger": {Category: "Dagger", Version: 1, Columns: []string{"ilvl", "priceChaos"}},
	}}
	path := filepath.Join(t.TempDir(), "schemas.json")
	require.NoError(t, a.Save(path))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrLabelInColumns)
}
