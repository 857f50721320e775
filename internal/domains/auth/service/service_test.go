package service_test

import (
	"agency/infras/jwt"
	jwtMocks "agency/infras/jwt/mocks"
	"agency/infras/otel/mocks"
	"agency/internal/domains/auth/model/dto"
	"agency/internal/domains/auth/service"
	"agency/shared/failure"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Issue(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	svc := service.New(mocks.NewOtel(), mockJWT)

	tests := []struct {
		name      string
		req       dto.IssueTokenRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "issues a pair for an admin",
			req:  dto.IssueTokenRequest{OperatorID: "op-1", Email: "ops@example.com", Role: "admin"},
			setupMock: func() {
				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), "op-1", "ops@example.com", "admin").
					Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}, nil)
			},
		},
		{
			name:      "rejects unknown roles",
			req:       dto.IssueTokenRequest{Email: "ops@example.com", Role: "client"},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "signing failure",
			req:  dto.IssueTokenRequest{Email: "ops@example.com", Role: "superadmin"},
			setupMock: func() {
				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), gomock.Any(), "ops@example.com", "superadmin").
					Return(nil, errors.New("no secret"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Issue(context.Background(), tt.req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", res.AccessToken)
			assert.Equal(t, "refresh", res.RefreshToken)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	svc := service.New(mocks.NewOtel(), mockJWT)

	t.Run("valid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens(gomock.Any(), "refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})
		require.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens(gomock.Any(), "stale").
			Return(nil, jwt.ErrExpiredToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "stale"})
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
