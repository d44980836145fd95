package usecase

import (
	"context"

	"inkq/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for opaque session management.
type SessionUsecase interface {
	// Issue creates and persists a new session for the user.
	Issue(ctx context.Context, userID uuid.UUID, ipAddress, userAgent *string) (*entity.Session, error)
	// Authenticate resolves a token to a live session and slides its expiry.
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
	// Revoke deletes the session. Revoking an unknown token succeeds.
	Revoke(ctx context.Context, token string) error
}
