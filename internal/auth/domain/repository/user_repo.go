package repository

import (
	"context"
	"time"

	"jobboard/internal/auth/domain/model"
)

// UserRepository defines the interface for credential store operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// PasswordHasher produces and checks salted one-way password digests.
// Plaintext never leaves this component.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A malformed digest
	// verifies false rather than erroring.
	Verify(plaintext, digest string) bool
}
