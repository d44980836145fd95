package impl

import (
	"context"
	"testing"
	"time"

	"inkq/internal/domain/entity"
	"inkq/internal/domain/repository"
	mockRepo "inkq/internal/mocks/repository"
	mockSvc "inkq/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sessionTestNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSessionService(t *testing.T) (*sessionService, *mockRepo.MockSessionRepository, *mockSvc.MockTokenGenerator) {
	t.Helper()

	sessionRepo := mockRepo.NewMockSessionRepository(t)
	tokens := mockSvc.NewMockTokenGenerator(t)

	srv, ok := NewSessionService(SessionServiceParams{
		SessionRepo: sessionRepo,
		Tokens:      tokens,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*sessionService)
	require.True(t, ok)
	srv.now = func() time.Time { return sessionTestNow }

	return srv, sessionRepo, tokens
}

func TestSessionService_Issue(t *testing.T) {
	srv, sessionRepo, tokens := newTestSessionService(t)
	userID := uuid.New()
	ip := "203.0.113.7"

	tokens.EXPECT().Generate().Return("tok_abc", nil).Once()
	sessionRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
		return s.Token == "tok_abc" &&
			s.UserID == userID &&
			s.CreatedAt.Equal(sessionTestNow) &&
			s.LastSeenAt.Equal(sessionTestNow) &&
			s.ExpiresAt.Equal(sessionTestNow.Add(15*time.Minute)) &&
			s.IPAddress != nil && *s.IPAddress == ip &&
			s.UserAgent == nil
	})).Return(nil).Once()

	session, err := srv.Issue(context.Background(), userID, &ip, nil)

	require.NoError(t, err)
	assert.Equal(t, "tok_abc", session.Token)
	assert.Equal(t, sessionTestNow.Add(15*time.Minute), session.ExpiresAt)
}

func TestSessionService_Issue_GeneratorFailure(t *testing.T) {
	srv, _, tokens := newTestSessionService(t)

	tokens.EXPECT().Generate().Return("", errors.New("entropy exhausted")).Once()

	session, err := srv.Issue(context.Background(), uuid.New(), nil, nil)

	assert.Nil(t, session)
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestSessionService_Issue_PersistFailure(t *testing.T) {
	srv, sessionRepo, tokens := newTestSessionService(t)

	tokens.EXPECT().Generate().Return("tok_abc", nil).Once()
	sessionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	session, err := srv.Issue(context.Background(), uuid.New(), nil, nil)

	assert.Nil(t, session)
	assert.ErrorContains(t, err, "failed to create session")
}

func TestSessionService_Authenticate_EmptyToken(t *testing.T) {
	srv, _, _ := newTestSessionService(t)

	session, err := srv.Authenticate(context.Background(), "")

	assert.Nil(t, session)
	requireAppError(t, err, "UNAUTHENTICATED")
}

func TestSessionService_Authenticate_UnknownToken(t *testing.T) {
	srv, sessionRepo, _ := newTestSessionService(t)

	sessionRepo.EXPECT().FindByToken(mock.Anything, "nope").Return(nil, repository.ErrSessionNotFound).Once()

	session, err := srv.Authenticate(context.Background(), "nope")

	assert.Nil(t, session)
	requireAppError(t, err, "UNAUTHENTICATED")
}

func TestSessionService_Authenticate_ExpiredIsDeleted(t *testing.T) {
	srv, sessionRepo, _ := newTestSessionService(t)

	stored := &entity.Session{
		Token:     "old",
		UserID:    uuid.New(),
		ExpiresAt: sessionTestNow.Add(-time.Second),
	}
	sessionRepo.EXPECT().FindByToken(mock.Anything, "old").Return(stored, nil).Once()
	sessionRepo.EXPECT().DeleteByToken(mock.Anything, "old").Return(nil).Once()

	session, err := srv.Authenticate(context.Background(), "old")

	assert.Nil(t, session)
	requireAppError(t, err, "UNAUTHENTICATED")
}

func TestSessionService_Authenticate_ExpiringNowIsStillValid(t *testing.T) {
	srv, sessionRepo, _ := newTestSessionService(t)

	stored := &entity.Session{Token: "edge", UserID: uuid.New(), ExpiresAt: sessionTestNow}
	sessionRepo.EXPECT().FindByToken(mock.Anything, "edge").Return(stored, nil).Once()
	sessionRepo.EXPECT().
		Touch(mock.Anything, "edge", sessionTestNow.Add(15*time.Minute), sessionTestNow).
		Return(nil).Once()

	session, err := srv.Authenticate(context.Background(), "edge")

	require.NoError(t, err)
	assert.Equal(t, sessionTestNow.Add(15*time.Minute), session.ExpiresAt)
}

func TestSessionService_Authenticate_SlidesExpiry(t *testing.T) {
	srv, sessionRepo, _ := newTestSessionService(t)

	userID := uuid.New()
	stored := &entity.Session{
		Token:      "live",
		UserID:     userID,
		CreatedAt:  sessionTestNow.Add(-10 * time.Minute),
		ExpiresAt:  sessionTestNow.Add(5 * time.Minute),
		LastSeenAt: sessionTestNow.Add(-10 * time.Minute),
	}
	sessionRepo.EXPECT().FindByToken(mock.Anything, "live").Return(stored, nil).Once()
	sessionRepo.EXPECT().
		Touch(mock.Anything, "live", sessionTestNow.Add(15*time.Minute), sessionTestNow).
		Return(nil).Once()

	session, err := srv.Authenticate(context.Background(), "live")

	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, sessionTestNow, session.LastSeenAt)
	assert.Equal(t, sessionTestNow.Add(15*time.Minute), session.ExpiresAt)
	assert.Equal(t, sessionTestNow.Add(-10*time.Minute), session.CreatedAt)
}

func TestSessionService_Authenticate_RevokedDuringRefresh(t *testing.T) {
	srv, sessionRepo, _ := newTestSessionService(t)

	stored := &entity.Session{Token: "gone", UserID: uuid.New(), ExpiresAt: sessionTestNow.Add(time.Minute)}
	sessionRepo.EXPECT().FindByToken(mock.Anything, "gone").Return(stored, nil).Once()
	sessionRepo.EXPECT().Touch(mock.Anything, "gone", mock.Anything, mock.Anything).Return(repository.ErrSessionNotFound).Once()

	session, err := srv.Authenticate(context.Background(), "gone")

	assert.Nil(t, session)
	requireAppError(t, err, "UNAUTHENTICATED")
}

func TestSessionService_Authenticate_LookupFailure(t *testing.T) {
	srv, sessionRepo, _ := newTestSessionService(t)

	sessionRepo.EXPECT().FindByToken(mock.Anything, "tok").Return(nil, errors.New("connection reset")).Once()

	session, err := srv.Authenticate(context.Background(), "tok")

	assert.Nil(t, session)
	assert.ErrorContains(t, err, "connection reset")
}

func TestSessionService_Revoke(t *testing.T) {
	srv, sessionRepo, _ := newTestSessionService(t)

	sessionRepo.EXPECT().DeleteByToken(mock.Anything, "tok").Return(nil).Twice()

	require.NoError(t, srv.Revoke(context.Background(), "tok"))
	require.NoError(t, srv.Revoke(context.Background(), "tok"))
}
