// Package store defines the datastore abstraction for item-price-scanner.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running
// database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// DealQuery defines optional filters for deal event queries.
type DealQuery struct {
	Category  *string
	MinProfit *float64
	Since     *time.Time
	Limit     int // default 50
	Offset    int
}

// Store defines all data access operations for item-price-scanner.
type Store interface {
	// Column schemas
	SaveColumnSchema(ctx context.Context, rec *domain.ColumnSchemaRecord) error
	GetLatestColumnSchema(ctx context.Context, category string) (*domain.ColumnSchemaRecord, error)
	ListLatestColumnSchemas(ctx context.Context) ([]domain.ColumnSchemaRecord, error)

	// Deal events
	InsertDealEvent(ctx context.Context, d *domain.DealEvent) error
	ListDealEvents(ctx context.Context, opts *DealQuery) ([]domain.DealEvent, int, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
