package middleware_test

import (
	"agency/config"
	"agency/infras/metrics"
	otelMocks "agency/infras/otel/mocks"
	"agency/shared/cache"
	"agency/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppMiddleware(t *testing.T, cfg *config.Config, reg *prometheus.Registry) middleware.AppMiddleware {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache.NewRedisCache(client, otelMocks.NewOtel()), metrics.NewWithRegisterer("test", reg))
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestAppMiddleware_RateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	app := newAppMiddleware(t, cfg, prometheus.NewRegistry())

	router := chi.NewRouter()
	router.Use(app.RateLimit())
	router.Get("/v1/consultations/slots", ok)

	codes := make([]int, 0, 3)
	retryAfter := ""

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/v1/consultations/slots", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		codes = append(codes, rec.Code)
		retryAfter = rec.Header().Get("Retry-After")
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "60", retryAfter)

	req := httptest.NewRequest(http.MethodGet, "/v1/consultations/slots", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestAppMiddleware_RateLimitByPeerAddress(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	handler := newAppMiddleware(t, cfg, prometheus.NewRegistry()).RateLimit()(http.HandlerFunc(ok))

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("192.0.2.10:51000"))
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.10:51001"))
	assert.Equal(t, http.StatusNoContent, send("192.0.2.11:51000"))
}

func TestAppMiddleware_RateLimitDisabled(t *testing.T) {
	app := newAppMiddleware(t, &config.Config{}, prometheus.NewRegistry())

	handler := app.RateLimit()(http.HandlerFunc(ok))

	for range 5 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestAppMiddleware_MetricsUsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	app := newAppMiddleware(t, &config.Config{}, reg)

	router := chi.NewRouter()
	router.Use(app.Tracing, app.Metrics)
	router.Delete("/v1/consultations/{bookingId}", ok)

	for _, id := range []string{"BOOK-A", "BOOK-B"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/consultations/"+id, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	var route string

	for _, family := range families {
		if !strings.HasSuffix(family.GetName(), "request_duration_seconds") {
			continue
		}

		require.Len(t, family.GetMetric(), 1)
		assert.Equal(t, uint64(2), family.GetMetric()[0].GetHistogram().GetSampleCount())

		for _, label := range family.GetMetric()[0].GetLabel() {
			if label.GetName() == "route" {
				route = label.GetValue()
			}
		}
	}

	assert.Equal(t, "/v1/consultations/{bookingId}", route)
}
