package postgres

import (
	"context"
	"time"

	"inkq/internal/domain/entity"
	domainerrors "inkq/internal/domain/errors"
	"inkq/internal/domain/repository"
	"inkq/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//nolint:gochecknoglobals
var profileTables = map[entity.AccountType]string{
	entity.AccountTypeArtist: model.ArtistTableName,
	entity.AccountTypeStudio: model.StudioTableName,
	entity.AccountTypeModel:  model.ModelTableName,
}

// profileRepository implements the domain.ProfileRepository interface over the per-role tables.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert inserts the profile unless the user already has one, then returns the stored row.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.RoleProfile) (*entity.RoleProfile, error) {
	table, err := profileTable(profile.AccountType)
	if err != nil {
		return nil, err
	}

	if profile.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate profile id")
		}
		profile.ID = id
	}

	profileM := fromProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Table(table).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(profileM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("profile slug already taken")
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert role profile")
	}

	if result.RowsAffected == 0 {
		return repo.FindByUserID(ctx, profile.AccountType, profile.UserID)
	}

	return toProfileDomain(profileM, profile.AccountType), nil
}

// FindByUserID looks up the user's row in the table for accountType.
func (repo *profileRepository) FindByUserID(ctx context.Context, accountType entity.AccountType, userID uuid.UUID) (*entity.RoleProfile, error) {
	table, err := profileTable(accountType)
	if err != nil {
		return nil, err
	}

	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Table(table).Where("user_id = ?", userID).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find role profile")
	}

	return toProfileDomain(&profileM, accountType), nil
}

// Update writes the editable columns of the profile identified by ID.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.RoleProfile) error {
	table, err := profileTable(profile.AccountType)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Table(table).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"display_name": profile.DisplayName,
			"about":        profile.About,
			"city":         profile.City,
			"instagram":    profile.Instagram,
			"telegram":     profile.Telegram,
			"updated_at":   time.Now().UTC(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update role profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func profileTable(accountType entity.AccountType) (string, error) {
	table, ok := profileTables[accountType]
	if !ok {
		return "", domainerrors.ErrValidationFailed.WrapMessage("unknown account type " + accountType.String())
	}

	return table, nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel, accountType entity.AccountType) *entity.RoleProfile {
	if data == nil {
		return nil
	}

	return &entity.RoleProfile{
		ID:          data.ID,
		UserID:      data.UserID,
		AccountType: accountType,
		Slug:        data.Slug,
		DisplayName: data.DisplayName,
		About:       data.About,
		City:        data.City,
		Instagram:   data.Instagram,
		Telegram:    data.Telegram,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.RoleProfile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Slug:        data.Slug,
		DisplayName: data.DisplayName,
		About:       data.About,
		City:        data.City,
		Instagram:   data.Instagram,
		Telegram:    data.Telegram,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
