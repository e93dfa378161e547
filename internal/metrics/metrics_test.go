package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, ItemsNormalizedTotal)
	assert.NotNil(t, ItemsRejectedTotal)
	assert.NotNil(t, ScanDuration)
	assert.NotNil(t, ScanBatchSize)
	assert.NotNil(t, ReconcileDroppedColumnsTotal)
	assert.NotNil(t, EstimateDuration)
	assert.NotNil(t, SourcePagesTotal)
	assert.NotNil(t, SourceErrorsTotal)
	assert.NotNil(t, DatasetRowsExportedTotal)
	assert.NotNil(t, PrepareDuration)
	assert.NotNil(t, DealsFlaggedTotal)
	assert.NotNil(t, NotificationFailuresTotal)
}
