package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migration is one schema step. Versions apply in slice order and are
// tracked in a schema_migrations table. There are no down migrations; fix
// forward only.
type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "001_column_schemas",
		sql: `
			CREATE TABLE IF NOT EXISTS column_schemas (
				id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				category   TEXT NOT NULL,
				version    INTEGER NOT NULL,
				columns    TEXT[] NOT NULL,
				means      DOUBLE PRECISION[],
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				UNIQUE (category, version)
			);
			CREATE INDEX IF NOT EXISTS idx_column_schemas_category
				ON column_schemas (category, version DESC);`,
	},
	{
		version: "002_deal_events",
		sql: `
			CREATE TABLE IF NOT EXISTS deal_events (
				id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				item_id      TEXT NOT NULL,
				category     TEXT NOT NULL,
				listed_chaos DOUBLE PRECISION NOT NULL,
				estimate     DOUBLE PRECISION NOT NULL,
				profit       DOUBLE PRECISION NOT NULL,
				created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
			);
			CREATE INDEX IF NOT EXISTS idx_deal_events_created_at
				ON deal_events (created_at DESC);
			CREATE INDEX IF NOT EXISTS idx_deal_events_category
				ON deal_events (category);`,
	},
	{
		version: "003_job_runs",
		sql: `
			CREATE TABLE IF NOT EXISTS job_runs (
				id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				job_name      TEXT NOT NULL,
				started_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
				completed_at  TIMESTAMPTZ,
				status        TEXT NOT NULL,
				error_text    TEXT,
				rows_affected INTEGER
			);
			CREATE INDEX IF NOT EXISTS idx_job_runs_name_started
				ON job_runs (job_name, started_at DESC);`,
	},
}

// RunMigrations applies pending schema migrations in order.
//
// TODO(test): RunMigrations requires a live Postgres instance, tested via integration tests only.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists bool
		err := pool.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)",
			m.version,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking migration %s: %w", m.version, err)
		}
		if exists {
			continue
		}

		if _, err := pool.Exec(ctx, m.sql); err != nil {
			return fmt.Errorf("applying migration %s: %w", m.version, err)
		}

		if _, err := pool.Exec(ctx,
			"INSERT INTO schema_migrations (version) VALUES ($1)",
			m.version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", m.version, err)
		}
	}

	return nil
}
