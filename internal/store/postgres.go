package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/exilemarket/item-price-scanner/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// SaveColumnSchema inserts a schema as the next version for its category.
// The assigned id, version, and created_at are written back to rec.
func (s *PostgresStore) SaveColumnSchema(ctx context.Context, rec *domain.ColumnSchemaRecord) error {
	args := pgx.NamedArgs{
		"category": rec.Category,
		"columns":  rec.Columns,
		"means":    rec.Means,
	}

	err := s.pool.QueryRow(ctx, querySaveColumnSchema, args).Scan(
		&rec.ID, &rec.Version, &rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving column schema for %s: %w", rec.Category, err)
	}
	return nil
}

// GetLatestColumnSchema returns the newest schema version for a category.
func (s *PostgresStore) GetLatestColumnSchema(
	ctx context.Context,
	category string,
) (*domain.ColumnSchemaRecord, error) {
	rec := &domain.ColumnSchemaRecord{}
	err := s.pool.QueryRow(ctx, queryGetLatestColumnSchema, category).Scan(
		&rec.ID, &rec.Category, &rec.Version, &rec.Columns, &rec.Means, &rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("column schema for %s: %w", category, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting column schema for %s: %w", category, err)
	}
	return rec, nil
}

// ListLatestColumnSchemas returns the newest schema version of every
// category.
func (s *PostgresStore) ListLatestColumnSchemas(
	ctx context.Context,
) ([]domain.ColumnSchemaRecord, error) {
	rows, err := s.pool.Query(ctx, queryListLatestColumnSchemas)
	if err != nil {
		return nil, fmt.Errorf("listing column schemas: %w", err)
	}
	defer rows.Close()

	var out []domain.ColumnSchemaRecord
	for rows.Next() {
		var rec domain.ColumnSchemaRecord
		if err := rows.Scan(
			&rec.ID, &rec.Category, &rec.Version, &rec.Columns, &rec.Means, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning column schema: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// InsertDealEvent records a flagged deal. The assigned id and created_at are
// written back to d.
func (s *PostgresStore) InsertDealEvent(ctx context.Context, d *domain.DealEvent) error {
	err := s.pool.QueryRow(ctx, queryInsertDealEvent,
		d.ItemID, d.Category, d.ListedChaos, d.Estimate, d.Profit,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting deal event: %w", err)
	}
	return nil
}

// ListDealEvents queries deal events with optional filters, returning
// results and total count.
func (s *PostgresStore) ListDealEvents(
	ctx context.Context,
	opts *DealQuery,
) ([]domain.DealEvent, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting deal events: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing deal events: %w", err)
	}
	defer rows.Close()

	var out []domain.DealEvent
	for rows.Next() {
		var d domain.DealEvent
		if err := rows.Scan(
			&d.ID, &d.ItemID, &d.Category, &d.ListedChaos, &d.Estimate, &d.Profit, &d.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning deal event: %w", err)
		}
		out = append(out, d)
	}
	return out, total, rows.Err()
}

// InsertJobRun starts tracking a job execution.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun finalizes a job execution.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	tag, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job run %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListJobRuns returns the most recent runs of a job.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("listing job runs: %w", err)
	}
	defer rows.Close()

	var out []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
