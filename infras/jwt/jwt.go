package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"agency/config"
	"agency/infras/otel"
	"agency/shared/constant"
	"agency/shared/timezone"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrMissingToken = errors.New("authorization header is required")
	ErrTokenFormat  = errors.New("authorization header must start with 'Bearer '")
)

const (
	defaultAccessExpireMin  = 15
	defaultRefreshExpireMin = 60 * 24 * 7
	bearerPrefix            = "Bearer "
)

// TokenType represents the type of JWT token
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims identifies the operator behind an admin request.
type Claims struct {
	OperatorID string    `json:"operator_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role,omitempty"`
	TokenID    string    `json:"token_id"`
	Type       TokenType `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair represents access and refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type JWT interface {
	GenerateTokenPair(ctx context.Context, operatorID, email, role string) (*TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (*Claims, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type Service struct {
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) JWT {
	return &Service{config: cfg, otel: otl}
}

// policy is the signing key and lifetime of one token type.
type policy struct {
	key []byte
	ttl time.Duration
}

func minutesOr(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}

	return time.Duration(value) * time.Minute
}

func (s *Service) policy(tokenType TokenType) (policy, error) {
	cfg := s.config.JWT

	var p policy

	switch tokenType {
	case AccessToken:
		p = policy{key: []byte(cfg.AccessSecret), ttl: minutesOr(cfg.AccessExpireMin, defaultAccessExpireMin)}
	case RefreshToken:
		p = policy{key: []byte(cfg.RefreshSecret), ttl: minutesOr(cfg.RefreshExpireMin, defaultRefreshExpireMin)}
	default:
		return policy{}, fmt.Errorf("unknown token type: %s", tokenType)
	}

	if len(p.key) == 0 {
		return policy{}, fmt.Errorf("secret for %s tokens is not configured", tokenType)
	}

	return p, nil
}

func (s *Service) GenerateTokenPair(ctx context.Context, operatorID, email, role string) (pair *TokenPair, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".jwt.GenerateTokenPair")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	pair = &TokenPair{TokenType: strings.TrimSpace(bearerPrefix)}

	for _, issue := range []struct {
		kind TokenType
		into *string
	}{
		{AccessToken, &pair.AccessToken},
		{RefreshToken, &pair.RefreshToken},
	} {
		p, err := s.policy(issue.kind)
		if err != nil {
			return nil, err
		}

		if *issue.into, err = s.sign(operatorID, email, role, issue.kind, p, now); err != nil {
			return nil, fmt.Errorf("failed to generate %s token: %w", issue.kind, err)
		}

		if issue.kind == AccessToken {
			pair.ExpiresIn = int64(p.ttl / time.Second)
		}
	}

	return pair, nil
}

func (s *Service) sign(operatorID, email, role string, tokenType TokenType, p policy, now time.Time) (string, error) {
	id := uuid.NewString()

	claims := Claims{
		OperatorID: operatorID,
		Email:      email,
		Role:       role,
		TokenID:    id,
		Type:       tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    s.config.App.Name,
			Subject:   operatorID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.key)
}

func (s *Service) ValidateToken(ctx context.Context, tokenString string, tokenType TokenType) (claims *Claims, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".jwt.ValidateToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	p, err := s.policy(tokenType)
	if err != nil {
		return nil, err
	}

	claims = &Claims{}

	_, err = jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return p.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Type != tokenType, claims.OperatorID == "", claims.Email == "":
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// RefreshTokens issues a new pair for the operator behind a valid refresh token.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(ctx, refreshToken, RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	return s.GenerateTokenPair(ctx, claims.OperatorID, claims.Email, claims.Role)
}

// ExtractTokenFromHeader returns the token of a "Bearer <token>" header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingToken
	}

	token, found := strings.CutPrefix(authHeader, bearerPrefix)
	if !found || token == "" {
		return "", ErrTokenFormat
	}

	return token, nil
}
