package usecase

import (
	"context"

	"inkq/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadedFile is a single file taken from a multipart request.
type UploadedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UploadImageInput carries an avatar or banner upload.
type UploadImageInput struct {
	UserID uuid.UUID
	Role   entity.AccountType // Role named by the route; must match the account.
	File   UploadedFile
}

// UploadPortfolioInput carries a batch portfolio upload.
type UploadPortfolioInput struct {
	UserID uuid.UUID
	Role   entity.AccountType
	Kind   string
	Files  []UploadedFile
}

// MediaUsecase defines the image upload and portfolio management operations.
type MediaUsecase interface {
	UploadAvatar(ctx context.Context, input UploadImageInput) (*entity.MediaUpload, error)
	UploadBanner(ctx context.Context, input UploadImageInput) (*entity.MediaUpload, error)
	UploadPortfolio(ctx context.Context, input UploadPortfolioInput) ([]*entity.PortfolioImage, error)
	// ListPortfolio lists the caller's images. An empty or unknown kind lists every kind.
	ListPortfolio(ctx context.Context, userID uuid.UUID, role entity.AccountType, kind string) ([]*entity.PortfolioImage, error)
	UpdatePortfolioImage(ctx context.Context, userID, imageID uuid.UUID, patch entity.PortfolioImagePatch) (*entity.PortfolioImage, error)
	DeletePortfolioImage(ctx context.Context, userID, imageID uuid.UUID) error
}
