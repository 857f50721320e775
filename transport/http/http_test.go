package http_test

import (
	"agency/config"
	jwtMocks "agency/infras/jwt/mocks"
	"agency/infras/metrics"
	otelMocks "agency/infras/otel/mocks"
	authMocks "agency/internal/domains/auth/mocks"
	availabilityDto "agency/internal/domains/availability/model/dto"
	consultationMocks "agency/internal/domains/consultation/mocks"
	slotMocks "agency/internal/domains/slot/mocks"
	"agency/internal/handlers/admin"
	"agency/internal/handlers/auth"
	"agency/internal/handlers/consultation"
	"agency/permissions"
	"agency/shared/cache"
	transport "agency/transport/http"
	"agency/transport/http/middleware"
	"agency/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) (*transport.HTTP, *consultationMocks.MockConsultation) {
	t.Helper()

	ctrl := gomock.NewController(t)
	otl := otelMocks.NewOtel()
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.App.APIKey = "internal-key"

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	consultations := consultationMocks.NewMockConsultation(ctrl)

	app := middleware.NewAppMiddleware(otl, cfg, cache.NewRedisCache(client, otl), metrics.NewWithRegisterer("test", prometheus.NewRegistry()))
	authRole := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), otl, permissions.Get(), cfg)

	routes := router.New(router.DomainHandlers{
		Auth:         auth.New(authMocks.NewMockAuth(ctrl), otl),
		Consultation: consultation.New(consultations, otl),
		Admin:        admin.New(consultations, slotMocks.NewMockCatalog(ctrl), otl),
	}, app, authRole)

	return transport.New(cfg, routes, app, nil, nil, otl, nil), consultations
}

func TestHTTP_Routes(t *testing.T) {
	server, consultations := newServer(t)

	consultations.EXPECT().Slots(gomock.Any(), "2025-03-10").Return(availabilityDto.SlotsResponse{Date: "2025-03-10"}, nil)

	tests := []struct {
		name     string
		method   string
		target   string
		apiKey   string
		wantCode int
	}{
		{name: "health", method: http.MethodGet, target: "/health", wantCode: http.StatusOK},
		{name: "public slots", method: http.MethodGet, target: "/v1/consultations/slots?date=2025-03-10", wantCode: http.StatusOK},
		{name: "admin requires token", method: http.MethodGet, target: "/v1/admin/stats", wantCode: http.StatusUnauthorized},
		{name: "api key identity", method: http.MethodGet, target: "/v1/admin/me", apiKey: "internal-key", wantCode: http.StatusOK},
		{name: "metrics", method: http.MethodGet, target: "/metrics", wantCode: http.StatusOK},
		{name: "unknown", method: http.MethodGet, target: "/v2/consultations", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}

			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}

	assert.Equal(t, transport.ServerStateReady, server.State())
}
