// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"inkq/config"
	deliverycontext "inkq/internal/delivery/context"
	"inkq/internal/domain/entity"
	domainerrors "inkq/internal/domain/errors"
	"inkq/internal/domain/repository"
	"inkq/internal/domain/service"
	"inkq/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	tokens      service.TokenGenerator
	window      time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	Tokens      service.TokenGenerator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	var authCfg *config.AuthConfig
	if params.Config != nil {
		authCfg = params.Config.Auth
	}

	return &sessionService{
		sessionRepo: params.SessionRepo,
		tokens:      params.Tokens,
		window:      authCfg.SessionWindow(),
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue creates a session that expires one window from now.
func (srv *sessionService) Issue(ctx context.Context, userID uuid.UUID, ipAddress, userAgent *string) (*entity.Session, error) {
	token, err := srv.tokens.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	now := srv.now().UTC()
	session := &entity.Session{
		Token:      token,
		UserID:     userID,
		CreatedAt:  now,
		ExpiresAt:  now.Add(srv.window),
		LastSeenAt: now,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to persist session", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Debug("Session issued", slog.Any("user_id", userID), slog.Time("expires_at", session.ExpiresAt))

	return session, nil
}

// Authenticate resolves the token, deleting it if it has expired and sliding it otherwise.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	session, err := srv.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	now := srv.now().UTC()
	if session.IsExpired(now) {
		if err := srv.sessionRepo.DeleteByToken(ctx, token); err != nil {
			srv.log(ctx).Warn("Failed to delete expired session", slog.Any("error", err), slog.Any("user_id", session.UserID))
		}

		return nil, domainerrors.ErrUnauthenticated
	}

	session.Refresh(now, srv.window)
	if err := srv.sessionRepo.Touch(ctx, token, session.ExpiresAt, session.LastSeenAt); err != nil {
		// Revoked between the lookup and the refresh.
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to refresh session")
	}

	return session, nil
}

// Revoke deletes the session unconditionally.
func (srv *sessionService) Revoke(ctx context.Context, token string) error {
	if err := srv.sessionRepo.DeleteByToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}
