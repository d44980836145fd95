package postgres

import (
	"context"
	"testing"
	"time"

	"inkq/internal/domain/entity"
	domainerrors "inkq/internal/domain/errors"
	"inkq/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileColumns = []string{
	"id", "user_id", "slug", "display_name", "about", "city", "instagram", "telegram", "created_at", "updated_at",
}

func TestProfileRepository_Upsert_Inserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectExec(`INSERT INTO "artists" .* ON CONFLICT \("user_id"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	userID := uuid.New()
	got, err := repo.Upsert(context.Background(), &entity.RoleProfile{
		UserID:      userID,
		AccountType: entity.AccountTypeArtist,
		Slug:        "inky",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, entity.AccountTypeArtist, got.AccountType)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Upsert_ConflictReloads(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	userID := uuid.New()
	existingID := uuid.New()
	now := time.Now()

	mock.ExpectExec(`INSERT INTO "studios"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "studios" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows(profileColumns).
			AddRow(existingID.String(), userID.String(), "old-slug", "Old Studio", "Walk-ins welcome", "Tbilisi", nil, nil, now, now))

	got, err := repo.Upsert(context.Background(), &entity.RoleProfile{
		UserID:      userID,
		AccountType: entity.AccountTypeStudio,
		Slug:        "new-slug",
	})
	require.NoError(t, err)
	assert.Equal(t, existingID, got.ID)
	assert.Equal(t, "old-slug", got.Slug)
	require.NotNil(t, got.City)
	assert.Equal(t, "Tbilisi", *got.City)
	assert.Nil(t, got.Instagram)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_UnknownAccountType(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewProfileRepository(db)

	_, err := repo.Upsert(context.Background(), &entity.RoleProfile{UserID: uuid.New(), AccountType: "client"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = repo.FindByUserID(context.Background(), "client", uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileRepository_FindByUserID_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "models" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows(profileColumns))

	_, err := repo.FindByUserID(context.Background(), entity.AccountTypeModel, uuid.New())
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	city := "Batumi"
	profile := &entity.RoleProfile{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		AccountType: entity.AccountTypeArtist,
		Slug:        "inky",
		City:        &city,
	}

	mock.ExpectExec(`UPDATE "artists" SET "about"=\$1,"city"=\$2,"display_name"=\$3,"instagram"=\$4,"telegram"=\$5,"updated_at"=\$6 WHERE id = \$7`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), profile))

	mock.ExpectExec(`UPDATE "artists"`).WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Update(context.Background(), profile)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	mock.ExpectExec(`UPDATE "artists"`).WillReturnError(errors.New("connection reset"))
	err = repo.Update(context.Background(), profile)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())

	require.NoError(t, mock.ExpectationsWereMet())
}
