package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService issues and validates bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for the user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (*Token, error)

	// ValidateToken checks signature and time claims and returns the claims.
	// Expired tokens yield ErrExpiredToken; any other failure ErrInvalidToken
	// or ErrTokenNotYetValid.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Token is a signed token together with the claims a client needs to know.
type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// Claims is the validated content of a token.
type Claims struct {
	UserID    uuid.UUID `json:"uid,omitempty"`
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
