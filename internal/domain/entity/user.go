// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Exactly one role profile exists per user, matching AccountType.
type User struct {
	ID                  uuid.UUID   `json:"id"`                   // The Global Unique Identifier (GUID) for the user.
	Email               string      `json:"email"`                // Login identifier, matched case-insensitively.
	Username            string      `json:"username"`             // Alternative login identifier, unique.
	PasswordHash        string      `json:"-"`                    // Opaque bcrypt string, never serialized.
	AccountType         AccountType `json:"account_type"`         // The single role this account plays.
	OnboardingCompleted bool        `json:"onboarding_completed"` // Set by the onboarding flow, false at sign-up.
	AvatarURL           *string     `json:"avatar_url"`           // Public URL of the normalized avatar, if any.
	BannerURL           *string     `json:"banner_url"`           // Public URL of the normalized banner, if any.
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}
