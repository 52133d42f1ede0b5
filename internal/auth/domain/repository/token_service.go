package repository

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for session token operations
type TokenService interface {
	Issue(ctx context.Context, userID, email string) (string, error)
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the identity embedded in a session token
type Claims struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
