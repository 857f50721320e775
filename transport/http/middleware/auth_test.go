package middleware_test

import (
	"agency/config"
	"agency/infras/jwt"
	jwtMocks "agency/infras/jwt/mocks"
	otelMocks "agency/infras/otel/mocks"
	"agency/permissions"
	"agency/shared/constant"
	"agency/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAdminRouter(t *testing.T) http.Handler {
	t.Helper()

	jwtService := jwtMocks.NewMockJWT(gomock.NewController(t))

	claims := map[string]*jwt.Claims{
		"admin": {OperatorID: "op-1", Email: "ops@northwind.dev", Role: constant.RoleAdmin},
		"super": {OperatorID: "op-2", Email: "root@northwind.dev", Role: constant.RoleSuperAdmin},
		"blank": {Email: "ghost@northwind.dev", Role: constant.RoleAdmin},
	}

	jwtService.EXPECT().ValidateToken(gomock.Any(), gomock.Any(), jwt.AccessToken).DoAndReturn(
		func(_ any, token string, _ jwt.TokenType) (*jwt.Claims, error) {
			if c, ok := claims[token]; ok {
				return c, nil
			}

			if token == "expired" {
				return nil, jwt.ErrExpiredToken
			}

			return nil, jwt.ErrInvalidToken
		}).AnyTimes()

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	authRole := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), permissions.Get(), cfg)

	echo := func(w http.ResponseWriter, r *http.Request) {
		operator, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		_, _ = w.Write([]byte(operator))
	}

	router := chi.NewRouter()
	router.Route("/v1", func(v1 chi.Router) {
		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
			admin.Get("/stats", echo)
			admin.Route("/slots", func(slots chi.Router) {
				slots.Post("/", echo)
			})
		})
	})

	return router
}

func TestAuthRole(t *testing.T) {
	router := newAdminRouter(t)

	tests := []struct {
		name     string
		method   string
		target   string
		header   map[string]string
		wantCode int
		wantBody string
	}{
		{name: "missing header", method: http.MethodGet, target: "/v1/admin/stats", wantCode: http.StatusUnauthorized},
		{name: "malformed header", method: http.MethodGet, target: "/v1/admin/stats", header: map[string]string{"Authorization": "Token admin"}, wantCode: http.StatusUnauthorized},
		{name: "expired token", method: http.MethodGet, target: "/v1/admin/stats", header: map[string]string{"Authorization": "Bearer expired"}, wantCode: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "claims without operator", method: http.MethodGet, target: "/v1/admin/stats", header: map[string]string{"Authorization": "Bearer blank"}, wantCode: http.StatusUnauthorized, wantBody: "Invalid token claims"},
		{name: "admin reads stats", method: http.MethodGet, target: "/v1/admin/stats", header: map[string]string{"Authorization": "Bearer admin"}, wantCode: http.StatusOK, wantBody: "op-1"},
		{name: "admin cannot edit schedule", method: http.MethodPost, target: "/v1/admin/slots", header: map[string]string{"Authorization": "Bearer admin"}, wantCode: http.StatusForbidden},
		{name: "superadmin edits schedule", method: http.MethodPost, target: "/v1/admin/slots", header: map[string]string{"Authorization": "Bearer super"}, wantCode: http.StatusOK, wantBody: "op-2"},
		{name: "api key skips auth", method: http.MethodPost, target: "/v1/admin/slots", header: map[string]string{"X-API-Key": "internal-key"}, wantCode: http.StatusOK, wantBody: "system"},
		{name: "wrong api key", method: http.MethodGet, target: "/v1/admin/stats", header: map[string]string{"X-API-Key": "guess"}, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			for key, value := range tt.header {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
