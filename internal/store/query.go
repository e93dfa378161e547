package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseDealsSelect = `SELECT id, item_id, category, listed_chaos, estimate, profit, created_at
FROM deal_events`

const countDealsSelect = "SELECT COUNT(*) FROM deal_events"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a deal
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *DealQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIdx))
		args = append(args, *q.Category)
		paramIdx++
	}

	if q.MinProfit != nil {
		conditions = append(conditions, fmt.Sprintf("profit >= $%d", paramIdx))
		args = append(args, *q.MinProfit)
		paramIdx++
	}

	if q.Since != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", paramIdx))
		args = append(args, *q.Since)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		baseDealsSelect, whereClause, limit, offset,
	)

	countSQL = countDealsSelect + whereClause

	return dataSQL, countSQL, args
}
