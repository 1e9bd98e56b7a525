package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movieapi/pkg/metrics"
)

func TestMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(metrics.Middleware())
	e.GET("/api/movies", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/api/broken", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "teapot")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	t.Run("records successful requests by route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies?genre=drama", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("records status written by the error handler", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/broken", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("exposes collected series", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `movieapi_http_requests_total{method="GET",path="/api/movies",status="200"}`)
		assert.Contains(t, body, `movieapi_http_requests_total{method="GET",path="/api/broken",status="418"}`)
		assert.NotContains(t, body, `path="/metrics"`)
	})
}

func TestRecordMetadataLookup(t *testing.T) {
	before, err := testutil.GatherAndCount(metrics.Registry, "movieapi_omdb_lookups_total")
	require.NoError(t, err)

	metrics.RecordMetadataLookup("not_found", 0)
	metrics.RecordMetadataLookup("error", 15*time.Millisecond)

	after, err := testutil.GatherAndCount(metrics.Registry, "movieapi_omdb_lookups_total")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, after, before)
	assert.GreaterOrEqual(t, after, 2)
}
