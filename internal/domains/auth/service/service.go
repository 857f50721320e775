package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"agency/infras/jwt"
	"agency/infras/otel"
	"agency/internal/domains/auth/model/dto"
	"agency/shared/constant"
	"agency/shared/failure"
	"agency/shared/validator"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Auth mints and refreshes operator tokens. Operators are not stored; a token is the credential.
type Auth interface {
	Issue(ctx context.Context, req dto.IssueTokenRequest) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
}

type serviceImpl struct {
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Issue(ctx context.Context, req dto.IssueTokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Issue")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err // nolint:wrapcheck
	}

	req.Normalize()

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, req.OperatorID, req.Email, req.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	log.Info().Str("operator_id", req.OperatorID).Str("role", req.Role).Msg("issued operator token")

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
