package repository

import (
	"context"

	"inkq/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a user has no role profile.
var ErrProfileNotFound = errors.New("role profile not found")

// ProfileRepository manages the per-role profile rows (artists, studios, models).
type ProfileRepository interface {
	// Upsert creates the profile for a user or returns the existing one.
	// A conflict on user_id reloads the stored row.
	Upsert(ctx context.Context, profile *entity.RoleProfile) (*entity.RoleProfile, error)

	// FindByUserID looks up the profile of the given account type for a user.
	FindByUserID(ctx context.Context, accountType entity.AccountType, userID uuid.UUID) (*entity.RoleProfile, error)

	// Update writes the editable fields of an existing profile.
	Update(ctx context.Context, profile *entity.RoleProfile) error
}
