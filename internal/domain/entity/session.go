package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an opaque bearer credential with a sliding expiry.
// The token itself is the primary key; it is never derivable from anything else.
type Session struct {
	Token      string    // Opaque, URL-safe, 256 bits of entropy.
	UserID     uuid.UUID // Owning account.
	CreatedAt  time.Time
	ExpiresAt  time.Time // Always last refresh + window.
	LastSeenAt time.Time
	IPAddress  *string
	UserAgent  *string
}

// IsExpired reports whether the session is past its expiry at the given instant.
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}

// Refresh slides the expiry to now + window.
func (s *Session) Refresh(now time.Time, window time.Duration) {
	s.ExpiresAt = now.Add(window)
	s.LastSeenAt = now
}
