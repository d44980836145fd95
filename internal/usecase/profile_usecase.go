package usecase

import (
	"context"

	"inkq/internal/domain/entity"

	"github.com/google/uuid"
)

// ShareCode is a scannable link to a public profile.
type ShareCode struct {
	URL string // Public profile URL encoded in the code.
	PNG []byte
}

// ProfileUsecase defines operations on the caller's role profile.
type ProfileUsecase interface {
	// GetMine returns the caller's user and role profile, creating the profile if it is missing.
	// role must be the caller's account type.
	GetMine(ctx context.Context, userID uuid.UUID, role entity.AccountType) (*MeOutput, error)
	// UpdateMine applies patch to the caller's role profile and onboarding flag atomically.
	UpdateMine(ctx context.Context, userID uuid.UUID, role entity.AccountType, patch entity.RoleProfilePatch) (*MeOutput, error)

	ShareCode(ctx context.Context, userID uuid.UUID) (*ShareCode, error)
}
