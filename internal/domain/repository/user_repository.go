// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"inkq/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// MediaField selects which user image URL column to update.
type MediaField string

const (
	MediaFieldAvatar MediaField = "avatar_url"
	MediaFieldBanner MediaField = "banner_url"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByLogin retrieves a user whose email matches login case-insensitively
	// or whose username matches exactly.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateMediaURL sets the avatar or banner URL of a user.
	UpdateMediaURL(ctx context.Context, id uuid.UUID, field MediaField, url string) error

	// SetOnboardingCompleted stores the user's onboarding flag.
	SetOnboardingCompleted(ctx context.Context, id uuid.UUID, completed bool) error
}
