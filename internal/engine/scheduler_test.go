package engine

import (
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exilemarket/item-price-scanner/internal/metrics"
	"github.com/exilemarket/item-price-scanner/internal/store/mocks"
	"github.com/exilemarket/item-price-scanner/pkg/logger"
)

func newSchedulerTestEngine(t *testing.T) *Engine {
	t.Helper()
	ms := mocks.NewMockStore(t)
	return newTestEngine(t, ms, &fakeSource{}, &fakeEstimator{}, nil)
}

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	sched, err := NewScheduler(newSchedulerTestEngine(t), 24*time.Hour, logger.NewNop())
	require.NoError(t, err)

	assert.Len(t, sched.Entries(), 1)
	assert.NotZero(t, sched.prepareEntryID)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	sched, err := NewScheduler(newSchedulerTestEngine(t), time.Hour, logger.NewNop())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_SyncNextRunTimestamp(t *testing.T) {
	t.Parallel()

	sched, err := NewScheduler(newSchedulerTestEngine(t), time.Hour, logger.NewNop())
	require.NoError(t, err)

	sched.Start()
	defer sched.Stop()

	sched.SyncNextRunTimestamp()

	next := ptestutil.ToFloat64(metrics.SchedulerNextPrepareTimestamp)
	assert.Greater(t, next, float64(0), "next prepare timestamp should be set")
}
