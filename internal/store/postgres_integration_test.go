//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/exilemarket/item-price-scanner/internal/store"
	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ips_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testSchemaRecord(category string) *domain.ColumnSchemaRecord {
	return &domain.ColumnSchemaRecord{
		Category: category,
		Columns:  []string{"ilvl", "prop_Physical_Damage", "req_Str", "day"},
		Means:    []float64{68.2, 112.4, 41.0, 210.5},
	}
}

func testDealEvent() *domain.DealEvent {
	return &domain.DealEvent{
		ItemID:      "abc123def456",
		Category:    "One Hand Sword",
		ListedChaos: 5.0,
		Estimate:    42.5,
		Profit:      37.5,
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_SaveColumnSchema(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("first save gets version 1", func(t *testing.T) {
		rec := testSchemaRecord("One Hand Sword")
		err := s.SaveColumnSchema(ctx, rec)
		require.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, 1, rec.Version)
		assert.False(t, rec.CreatedAt.IsZero())
	})

	t.Run("second save increments version", func(t *testing.T) {
		rec := testSchemaRecord("Body Armour")
		require.NoError(t, s.SaveColumnSchema(ctx, rec))
		assert.Equal(t, 1, rec.Version)

		rec2 := testSchemaRecord("Body Armour")
		rec2.Columns = append(rec2.Columns, "explicit_X_to_maximum_Life")
		rec2.Means = append(rec2.Means, 62.0)
		require.NoError(t, s.SaveColumnSchema(ctx, rec2))
		assert.Equal(t, 2, rec2.Version)
		assert.NotEqual(t, rec.ID, rec2.ID)
	})
}

func TestPostgresStore_GetLatestColumnSchema(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("found returns highest version", func(t *testing.T) {
		first := testSchemaRecord("Wand")
		require.NoError(t, s.SaveColumnSchema(ctx, first))

		second := testSchemaRecord("Wand")
		second.Means = []float64{70.0, 0.0, 55.0, 300.0}
		require.NoError(t, s.SaveColumnSchema(ctx, second))

		got, err := s.GetLatestColumnSchema(ctx, "Wand")
		require.NoError(t, err)
		assert.Equal(t, second.ID, got.ID)
		assert.Equal(t, 2, got.Version)
		assert.Equal(t, second.Columns, got.Columns)
		assert.InDeltaSlice(t, second.Means, got.Means, 0.001)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.GetLatestColumnSchema(ctx, "Fishing Rod")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPostgresStore_ListLatestColumnSchemas(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for _, cat := range []string{"Claw", "Dagger", "Claw"} {
		require.NoError(t, s.SaveColumnSchema(ctx, testSchemaRecord(cat)))
	}

	recs, err := s.ListLatestColumnSchemas(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	byCategory := map[string]domain.ColumnSchemaRecord{}
	for _, r := range recs {
		byCategory[r.Category] = r
	}
	assert.Equal(t, 2, byCategory["Claw"].Version, "only the latest version per category")
	assert.Equal(t, 1, byCategory["Dagger"].Version)
}

func TestPostgresStore_DealEvents(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("insert sets id and created_at", func(t *testing.T) {
		d := testDealEvent()
		require.NoError(t, s.InsertDealEvent(ctx, d))
		assert.NotEmpty(t, d.ID)
		assert.False(t, d.CreatedAt.IsZero())
	})

	t.Run("list with filters", func(t *testing.T) {
		for i := range 5 {
			d := testDealEvent()
			d.ItemID = "filter-" + string(rune('a'+i))
			d.Profit = float64(10 + i*10)
			require.NoError(t, s.InsertDealEvent(ctx, d))
		}

		q := &store.DealQuery{Limit: 10}
		deals, total, err := s.ListDealEvents(ctx, q)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, 5)
		assert.NotEmpty(t, deals)

		minProfit := 35.0
		q = &store.DealQuery{MinProfit: &minProfit, Limit: 10}
		deals, _, err = s.ListDealEvents(ctx, q)
		require.NoError(t, err)
		for _, d := range deals {
			assert.GreaterOrEqual(t, d.Profit, minProfit)
		}

		cat := "Fishing Rod"
		q = &store.DealQuery{Category: &cat, Limit: 10}
		deals, total, err = s.ListDealEvents(ctx, q)
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, deals)
	})

	t.Run("pagination total count is correct", func(t *testing.T) {
		q := &store.DealQuery{Limit: 2, Offset: 1}
		deals, total, err := s.ListDealEvents(ctx, q)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, 6)
		assert.Len(t, deals, 2)
	})
}

func TestPostgresStore_JobRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("lifecycle", func(t *testing.T) {
		id, err := s.InsertJobRun(ctx, "prepare")
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		runs, err := s.ListJobRuns(ctx, "prepare", 10)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "running", runs[0].Status)
		assert.Nil(t, runs[0].CompletedAt)

		require.NoError(t, s.CompleteJobRun(ctx, id, "succeeded", "", 1234))

		runs, err = s.ListJobRuns(ctx, "prepare", 10)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "succeeded", runs[0].Status)
		require.NotNil(t, runs[0].CompletedAt)
		require.NotNil(t, runs[0].RowsAffected)
		assert.Equal(t, 1234, *runs[0].RowsAffected)
		assert.Empty(t, runs[0].ErrorText)
	})

	t.Run("failed run records error text", func(t *testing.T) {
		id, err := s.InsertJobRun(ctx, "scan")
		require.NoError(t, err)

		require.NoError(t, s.CompleteJobRun(ctx, id, "failed", "source unreachable", 0))

		runs, err := s.ListJobRuns(ctx, "scan", 1)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "failed", runs[0].Status)
		assert.Equal(t, "source unreachable", runs[0].ErrorText)
	})

	t.Run("complete unknown run", func(t *testing.T) {
		err := s.CompleteJobRun(ctx, "00000000-0000-0000-0000-000000000000", "succeeded", "", 0)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
