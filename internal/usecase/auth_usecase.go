// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"inkq/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Email       string
	Username    string
	Password    string
	AccountType entity.AccountType
}

// SignInInput defines the data required to open a session.
type SignInInput struct {
	Login     string // Email (case-insensitive) or username.
	Password  string
	IPAddress string
	UserAgent string
}

// --- Output DTOs ---

// SignInOutput returns the issued session token and its owner.
type SignInOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// MeOutput returns the authenticated user together with their role profile.
type MeOutput struct {
	User    *entity.User
	Profile *entity.RoleProfile
}

// AuthUsecase defines the account and credential operations exposed to the delivery layer.
type AuthUsecase interface {
	SignUp(ctx context.Context, input SignUpInput) (*entity.User, error)
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)
	Me(ctx context.Context, userID uuid.UUID) (*MeOutput, error)
	SignOut(ctx context.Context, token string) error
}
