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

var sessionColumns = []string{"id", "user_id", "created_at", "expires_at", "last_seen_at", "ip_address", "user_agent"}

func TestSessionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	session := &entity.Session{
		Token:      "tok",
		UserID:     uuid.New(),
		CreatedAt:  now,
		LastSeenAt: now,
		ExpiresAt:  now.Add(15 * time.Minute),
	}

	mock.ExpectExec(`INSERT INTO "sessions"`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), session))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_FindByToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	userID := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT \* FROM "sessions" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("tok", userID.String(), now, now.Add(time.Minute), now, "10.0.0.1", nil))

	session, err := repo.FindByToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, userID, session.UserID)
	require.NotNil(t, session.IPAddress)
	assert.Equal(t, "10.0.0.1", *session.IPAddress)
	assert.Nil(t, session.UserAgent)
}

func TestSessionRepository_FindByToken_Unknown(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "sessions"`).WillReturnRows(sqlmock.NewRows(sessionColumns))

	_, err := repo.FindByToken(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_Touch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	expiresAt := time.Date(2026, 5, 1, 12, 15, 0, 0, time.UTC)
	lastSeen := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE "sessions" SET "expires_at"=\$1,"last_seen_at"=\$2 WHERE id = \$3`).
		WithArgs(expiresAt, lastSeen, "tok").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Touch(context.Background(), "tok", expiresAt, lastSeen))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Touch_Gone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec(`UPDATE "sessions"`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Touch(context.Background(), "tok", time.Now(), time.Now())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_DeleteByToken_Idempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectExec(`DELETE FROM "sessions" WHERE id = \$1`).
		WithArgs("tok").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "sessions" WHERE id = \$1`).
		WithArgs("tok").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteByToken(context.Background(), "tok"))
	require.NoError(t, repo.DeleteByToken(context.Background(), "tok"))
	require.NoError(t, mock.ExpectationsWereMet())
}
