package postgres

import (
	"context"
	"time"

	"inkq/internal/domain/entity"
	domainerrors "inkq/internal/domain/errors"
	"inkq/internal/domain/repository"
	"inkq/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a freshly issued session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	return nil
}

// FindByToken retrieves a session by its token.
func (repo *sessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", token).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toSessionDomain(&sessionM), nil
}

// Touch slides the expiry with a single UPDATE; concurrent touches of one token are harmless.
func (repo *sessionRepository) Touch(ctx context.Context, token string, expiresAt, lastSeenAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", token).
		Updates(map[string]any{
			"expires_at":   expiresAt,
			"last_seen_at": lastSeenAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to refresh session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteByToken removes a session. Missing tokens are ignored.
func (repo *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", token).Delete(&model.SessionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

// --- Mapper Functions ---

func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		Token:      data.ID,
		UserID:     data.UserID,
		CreatedAt:  data.CreatedAt,
		ExpiresAt:  data.ExpiresAt,
		LastSeenAt: data.LastSeenAt,
		IPAddress:  data.IPAddress,
		UserAgent:  data.UserAgent,
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:         data.Token,
		UserID:     data.UserID,
		CreatedAt:  data.CreatedAt,
		ExpiresAt:  data.ExpiresAt,
		LastSeenAt: data.LastSeenAt,
		IPAddress:  data.IPAddress,
		UserAgent:  data.UserAgent,
	}
}
