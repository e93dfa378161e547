package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Column schema queries.
const (
	querySaveColumnSchema = `
		INSERT INTO column_schemas (category, version, columns, means)
		VALUES (
			@category,
			(SELECT COALESCE(MAX(version), 0) + 1 FROM column_schemas WHERE category = @category),
			@columns,
			@means
		)
		RETURNING id, version, created_at`

	queryGetLatestColumnSchema = `
		SELECT id, category, version, columns, means, created_at
		FROM column_schemas
		WHERE category = $1
		ORDER BY version DESC
		LIMIT 1`

	queryListLatestColumnSchemas = `
		SELECT DISTINCT ON (category)
			id, category, version, columns, means, created_at
		FROM column_schemas
		ORDER BY category, version DESC`
)

// Deal event queries.
const (
	queryInsertDealEvent = `
		INSERT INTO deal_events (item_id, category, listed_chaos, estimate, profit)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
)

// Job run queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name, started_at, status)
		VALUES ($1, now(), 'running')
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs
		SET completed_at = now(),
			status = $2,
			error_text = NULLIF($3, ''),
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`
)
