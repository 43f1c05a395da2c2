package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel/shared/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m metrics.Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return string(body)
}

func TestObserveStore(t *testing.T) {
	m := metrics.New()

	m.ObserveStore("memory", "put", nil)
	m.ObserveStore("memory", "put", errors.New("quota"))
	m.ObserveStore("memory", "get", nil)

	body := scrape(t, m)

	assert.Contains(t, body, `hotel_store_operations_total{driver="memory",operation="put",result="success"} 1`)
	assert.Contains(t, body, `hotel_store_operations_total{driver="memory",operation="put",result="error"} 1`)
	assert.Contains(t, body, `hotel_store_operations_total{driver="memory",operation="get",result="success"} 1`)
}

func TestObserveRequest(t *testing.T) {
	m := metrics.New()

	m.ObserveRequest(http.MethodGet, "/v1/rooms", http.StatusOK, 20*time.Millisecond)

	body := scrape(t, m)

	assert.Contains(t, body, `hotel_http_requests_total{method="GET",route="/v1/rooms",status="200"} 1`)
	assert.Contains(t, body, `hotel_http_request_duration_seconds_count{method="GET",route="/v1/rooms"} 1`)
}

func TestNewIsolatedRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New()
		metrics.New()
	})
}
