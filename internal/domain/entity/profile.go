package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoleProfile is the per-role record owned 1:1 by a User.
// Artists, studios and models share this shape; AccountType selects the backing table.
type RoleProfile struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"user_id"`
	AccountType AccountType `json:"account_type"`
	Slug        string      `json:"slug"`
	DisplayName *string     `json:"display_name"`
	About       *string     `json:"about"`
	City        *string     `json:"city"`
	Instagram   *string     `json:"instagram"`
	Telegram    *string     `json:"telegram"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// RoleProfilePatch is a partial profile update; nil fields are left unchanged.
// OnboardingCompleted is stored on the user, not the profile.
type RoleProfilePatch struct {
	DisplayName         *string
	About               *string
	City                *string
	Instagram           *string
	Telegram            *string
	OnboardingCompleted *bool
}

// Apply copies the set fields of p onto profile.
func (p RoleProfilePatch) Apply(profile *RoleProfile) {
	if p.DisplayName != nil {
		profile.DisplayName = p.DisplayName
	}
	if p.About != nil {
		profile.About = p.About
	}
	if p.City != nil {
		profile.City = p.City
	}
	if p.Instagram != nil {
		profile.Instagram = p.Instagram
	}
	if p.Telegram != nil {
		profile.Telegram = p.Telegram
	}
}
