package repository

import (
	"context"
	"time"

	"inkq/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when no session exists for a token.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists opaque bearer sessions keyed by their token.
type SessionRepository interface {
	// Create persists a freshly issued session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken retrieves a session by its token.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)

	// Touch slides expires_at and last_seen_at in a single statement.
	Touch(ctx context.Context, token string, expiresAt, lastSeenAt time.Time) error

	// DeleteByToken removes a session. Deleting a missing token is not an error.
	DeleteByToken(ctx context.Context, token string) error
}
