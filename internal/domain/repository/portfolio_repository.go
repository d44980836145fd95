package repository

import (
	"context"

	"inkq/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPortfolioImageNotFound is returned when an image does not exist.
var ErrPortfolioImageNotFound = errors.New("portfolio image not found")

// PortfolioRepository stores metadata for processed portfolio images.
type PortfolioRepository interface {
	Create(ctx context.Context, image *entity.PortfolioImage) error

	// ListByUser returns a user's images, newest first. A nil kind lists every kind.
	ListByUser(ctx context.Context, userID uuid.UUID, kind *entity.PortfolioKind) ([]*entity.PortfolioImage, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.PortfolioImage, error)

	// Update writes the metadata columns of an existing image.
	Update(ctx context.Context, image *entity.PortfolioImage) error

	Delete(ctx context.Context, id uuid.UUID) error
}
