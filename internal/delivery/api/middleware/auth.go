// Package middleware contains the API-specific echo middleware.
package middleware

import (
	"strings"

	"inkq/config"
	"inkq/internal/delivery/api/response"
	deliverycontext "inkq/internal/delivery/context"
	"inkq/internal/domain/entity"
	"inkq/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerScheme = "bearer"

// AuthMiddleware resolves the caller's opaque session token.
type AuthMiddleware struct {
	sessions   usecase.SessionUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase, cfg *config.Config) *AuthMiddleware {
	cookieName := "inkq_session"
	if cfg != nil && cfg.Auth != nil && cfg.Auth.SessionCookieName != "" {
		cookieName = cfg.Auth.SessionCookieName
	}

	return &AuthMiddleware{sessions: sessions, cookieName: cookieName}
}

// Authenticate requires a live session. The Authorization header wins over the session cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.Token(c)

		session, err := m.sessions.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(string(deliverycontext.KeySession), session)
		c.Set(string(deliverycontext.KeyUserID), session.UserID)

		return next(c)
	}
}

// Token extracts the bearer token, falling back to the session cookie.
func (m *AuthMiddleware) Token(c echo.Context) string {
	if token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization)); token != "" {
		return token
	}

	if cookie, err := c.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// CookieName is the name of the session cookie.
func (m *AuthMiddleware) CookieName() string {
	return m.cookieName
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return ""
	}

	return strings.TrimSpace(token)
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(deliverycontext.KeyUserID)).(uuid.UUID)

	return userID, ok
}

// GetSession returns the authenticated session.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(deliverycontext.KeySession)).(*entity.Session)

	return session, ok && session != nil
}
