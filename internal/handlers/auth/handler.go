package auth

import (
	"agency/infras/otel"
	"agency/internal/domains/auth/model/dto"
	"agency/internal/domains/auth/service"
	"agency/shared/constant"
	"agency/shared/validator"
	"agency/transport/http/response"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the public token routes.
func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/refresh", handler.RefreshToken)
	})
}

// AdminRouter mounts the routes that need an authenticated operator.
func (handler *Handler) AdminRouter(r chi.Router) {
	r.Get("/me", handler.Me)
}

// RefreshToken handles token refresh
// @Summary Refresh operator token
// @Description Exchange a refresh token for a new token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.TokenResponse] "Token refreshed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/refresh [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("refresh token rejected")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Me reports the authenticated operator
// @Summary Current operator
// @Description Identity taken from the access token, or the system operator for API key callers.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Data[dto.OperatorResponse]
// @Failure 401 {object} response.Error
// @Router /v1/admin/me [get]
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	res := operatorFrom(r.Context())
	scope.SetAttribute("operator.id", res.OperatorID)

	response.WithJSON(w, http.StatusOK, res)
}

func operatorFrom(ctx context.Context) dto.OperatorResponse {
	value := func(key any) string {
		str, _ := ctx.Value(key).(string)

		return str
	}

	res := dto.OperatorResponse{
		OperatorID: value(constant.ContextKeyUserID),
		Email:      value(constant.ContextKeyUserEmail),
		Role:       value(constant.ContextKeyUserRole),
	}
	res.Internal = res.OperatorID == constant.ContextSystem

	return res
}
