package dto

import (
	"agency/infras/jwt"

	"github.com/google/uuid"
)

// IssueTokenRequest names the operator a token pair is minted for.
type IssueTokenRequest struct {
	OperatorID string `json:"operatorId"`
	Email      string `json:"email"      validate:"required,email"`
	Role       string `json:"role"       validate:"required,oneof=admin superadmin"`
}

// Normalize assigns a fresh operator id when none was given.
func (r *IssueTokenRequest) Normalize() {
	if r.OperatorID == "" {
		r.OperatorID = uuid.NewString()
	}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func (r *TokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

// OperatorResponse describes the caller behind the current admin request.
type OperatorResponse struct {
	OperatorID string `json:"operatorId"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role,omitempty"`
	Internal   bool   `json:"internal"`
}
