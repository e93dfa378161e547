package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exilemarket/item-price-scanner/pkg/catalog"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	reg := catalog.New()

	tests := []struct {
		name         string
		typeLine     string
		wantCategory string
		wantSubType  int
		wantErr      error
	}{
		{
			name:         "known dagger base",
			typeLine:     "Platinum Kris",
			wantCategory: "Dagger",
			wantSubType:  15,
		},
		{
			name:         "first base in its category list",
			typeLine:     "Ambusher",
			wantCategory: "Dagger",
			wantSubType:  0,
		},
		{
			name:         "known amulet base",
			typeLine:     "Agate Amulet",
			wantCategory: "Amulet",
			wantSubType:  0,
		},
		{
			name:     "unknown type line",
			typeLine: "Orb of Mystery",
			wantErr:  catalog.ErrUnknownItemType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			category, subType, err := reg.Resolve(tt.typeLine)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, category)
			assert.Equal(t, tt.wantSubType, subType)
		})
	}
}

func TestCleanTypeLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Platinum Kris", catalog.CleanTypeLine("Superior Platinum Kris"))
	assert.Equal(t, "Platinum Kris", catalog.CleanTypeLine("Platinum Kris"))
}

func TestCategoryIDs_SortedAndStable(t *testing.T) {
	t.Parallel()

	reg := catalog.New()
	categories := reg.Categories()
	require.NotEmpty(t, categories)

	// Ids follow the sorted category list exactly.
	for i, category := range categories {
		id, ok := reg.CategoryID(category)
		require.True(t, ok, category)
		assert.Equal(t, i, id)
		if i > 0 {
			assert.Less(t, categories[i-1], category)
		}
	}

	// A second registry built from the same catalog agrees on every id.
	other := catalog.New()
	for _, category := range categories {
		wantID, _ := reg.CategoryID(category)
		gotID, ok := other.CategoryID(category)
		require.True(t, ok)
		assert.Equal(t, wantID, gotID)
	}
}

func TestCategoryID_Unknown(t *testing.T) {
	t.Parallel()

	reg := catalog.New()
	_, ok := reg.CategoryID("Fishing Rod")
	assert.False(t, ok)
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	reg := catalog.New()

	got := reg.Suggest("Platnum Kris")
	assert.Equal(t, "Platinum Kris", got)
}

func TestResolve_UnknownIncludesSuggestion(t *testing.T) {
	t.Parallel()

	reg := catalog.New()

	_, _, err := reg.Resolve("Platnum Kris")
	require.ErrorIs(t, err, catalog.ErrUnknownItemType)
	assert.Contains(t, err.Error(), "Platinum Kris")
}
