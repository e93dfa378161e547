package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exilemarket/item-price-scanner/internal/metrics"
)

func newMeteredEcho() *echo.Echo {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/api/v1/deals", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/readyz", func(c echo.Context) error {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	})
	return e
}

func TestMetrics_RecordsRequestCounter(t *testing.T) {
	e := newMeteredEcho()

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/deals", "200")
	before := ptestutil.ToFloat64(counter)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/deals", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before+1, ptestutil.ToFloat64(counter))
}

func TestMetrics_ProbesUpdateGaugesNotCounters(t *testing.T) {
	e := newMeteredEcho()

	healthCounter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/healthz", "200")
	before := ptestutil.ToFloat64(healthCounter)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, before, ptestutil.ToFloat64(healthCounter), "probe paths stay out of the request series")
	assert.Equal(t, float64(1), ptestutil.ToFloat64(metrics.HealthzUp))

	req = httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	assert.Equal(t, float64(0), ptestutil.ToFloat64(metrics.ReadyzUp))
}
