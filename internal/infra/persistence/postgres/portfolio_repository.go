package postgres

import (
	"context"

	"inkq/internal/domain/entity"
	domainerrors "inkq/internal/domain/errors"
	"inkq/internal/domain/repository"
	"inkq/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// portfolioRepository implements the domain.PortfolioRepository interface.
type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository is the constructor for portfolioRepository.
func NewPortfolioRepository(db *gorm.DB) repository.PortfolioRepository {
	return &portfolioRepository{db: db}
}

// Create records a stored image. A zero ID is replaced by a fresh UUIDv7.
func (repo *portfolioRepository) Create(ctx context.Context, image *entity.PortfolioImage) error {
	if image.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate portfolio image id")
		}
		image.ID = id
	}

	imageM := fromPortfolioImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid portfolio image")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create portfolio image")
	}

	image.CreatedAt = imageM.CreatedAt

	return nil
}

// ListByUser returns a user's images newest first, optionally filtered by kind.
func (repo *portfolioRepository) ListByUser(ctx context.Context, userID uuid.UUID, kind *entity.PortfolioKind) ([]*entity.PortfolioImage, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if kind != nil {
		query = query.Where("kind = ?", string(*kind))
	}

	var imageModels []*model.PortfolioImageModel
	if err := query.Order("created_at DESC").Find(&imageModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	images := make([]*entity.PortfolioImage, 0, len(imageModels))
	for _, imageM := range imageModels {
		images = append(images, toPortfolioImageDomain(imageM))
	}

	return images, nil
}

// FindByID retrieves a single image.
func (repo *portfolioRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PortfolioImage, error) {
	var imageM model.PortfolioImageModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPortfolioImageNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPortfolioImageDomain(&imageM), nil
}

// Update writes the editable metadata columns, including explicit NULLs.
func (repo *portfolioRepository) Update(ctx context.Context, image *entity.PortfolioImage) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PortfolioImageModel{}).
		Where("id = ?", image.ID).
		Updates(map[string]any{
			"title":        image.Title,
			"description":  image.Description,
			"approx_price": image.ApproxPrice,
			"placement":    image.Placement,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update portfolio image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPortfolioImageNotFound
	}

	return nil
}

// Delete removes an image record.
func (repo *portfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PortfolioImageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete portfolio image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPortfolioImageNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPortfolioImageDomain(data *model.PortfolioImageModel) *entity.PortfolioImage {
	if data == nil {
		return nil
	}

	return &entity.PortfolioImage{
		ID:          data.ID,
		UserID:      data.UserID,
		Kind:        entity.PortfolioKind(data.Kind),
		URL:         data.URL,
		ObjectKey:   data.ObjectKey,
		Width:       data.Width,
		Height:      data.Height,
		MimeType:    data.MimeType,
		Title:       data.Title,
		Description: data.Description,
		ApproxPrice: data.ApproxPrice,
		Placement:   data.Placement,
		CreatedAt:   data.CreatedAt,
	}
}

func fromPortfolioImageDomain(data *entity.PortfolioImage) *model.PortfolioImageModel {
	if data == nil {
		return nil
	}

	return &model.PortfolioImageModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Kind:        string(data.Kind),
		URL:         data.URL,
		ObjectKey:   data.ObjectKey,
		Width:       data.Width,
		Height:      data.Height,
		MimeType:    data.MimeType,
		Title:       data.Title,
		Description: data.Description,
		ApproxPrice: data.ApproxPrice,
		Placement:   data.Placement,
		CreatedAt:   data.CreatedAt,
	}
}
