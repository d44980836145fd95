package postgres

import (
	"context"
	"testing"
	"time"

	"inkq/internal/domain/entity"
	"inkq/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var portfolioColumns = []string{
	"id", "user_id", "kind", "url", "object_key", "width", "height", "mime_type",
	"title", "description", "approx_price", "placement", "created_at",
}

func TestPortfolioRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPortfolioRepository(db)

	mock.ExpectExec(`INSERT INTO "portfolio_images"`).WillReturnResult(sqlmock.NewResult(0, 1))

	image := &entity.PortfolioImage{
		UserID:   uuid.New(),
		Kind:     entity.PortfolioKindPortfolio,
		URL:      "/media/portfolio/user_1/a.jpg",
		Width:    1200,
		Height:   627,
		MimeType: "image/jpeg",
	}
	require.NoError(t, repo.Create(context.Background(), image))
	assert.NotEqual(t, uuid.Nil, image.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolioRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPortfolioRepository(db)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "portfolio_images" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows(portfolioColumns).
			AddRow(uuid.NewString(), userID.String(), "portfolio", "/media/a.jpg", "a.jpg", 1200, 627, "image/jpeg", "Rose", nil, "$150-200", nil, now).
			AddRow(uuid.NewString(), userID.String(), "wannado", "/media/b.jpg", "b.jpg", 1200, 1200, "image/jpeg", nil, nil, nil, "forearm", now))

	images, err := repo.ListByUser(context.Background(), userID, nil)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "Rose", *images[0].Title)
	assert.Equal(t, "$150-200", *images[0].ApproxPrice)
	assert.Equal(t, entity.PortfolioKindWannado, images[1].Kind)

	kind := entity.PortfolioKindWannado
	mock.ExpectQuery(`SELECT \* FROM "portfolio_images" WHERE user_id = \$1 AND kind = \$2 ORDER BY created_at DESC`).
		WithArgs(userID.String(), "wannado").
		WillReturnRows(sqlmock.NewRows(portfolioColumns))

	images, err = repo.ListByUser(context.Background(), userID, &kind)
	require.NoError(t, err)
	assert.Empty(t, images)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolioRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPortfolioRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "portfolio_images" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(portfolioColumns))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrPortfolioImageNotFound)
}

func TestPortfolioRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPortfolioRepository(db)

	mock.ExpectExec(`UPDATE "portfolio_images" SET .* WHERE id = \$5`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	title := "Koi"
	err := repo.Update(context.Background(), &entity.PortfolioImage{ID: uuid.New(), Title: &title})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPortfolioRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPortfolioRepository(db)

	mock.ExpectExec(`DELETE FROM "portfolio_images" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), uuid.New()))

	mock.ExpectExec(`DELETE FROM "portfolio_images" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), repository.ErrPortfolioImageNotFound)
}
