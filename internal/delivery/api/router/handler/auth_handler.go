// Package handler contains the echo handlers of the public API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"inkq/config"
	"inkq/internal/delivery/api/middleware"
	"inkq/internal/delivery/api/response"
	"inkq/internal/domain/entity"
	"inkq/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC         usecase.AuthUsecase
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
	Logger         *slog.Logger
}

// AuthHandler serves sign-up, sign-in, sign-out and the current-user endpoint.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	auth         *middleware.AuthMiddleware
	secureCookie bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	secure := false
	if params.Config != nil {
		secure = params.Config.Env.Env == "production"
	}

	return &AuthHandler{
		authUC:       params.AuthUC,
		auth:         params.AuthMiddleware,
		secureCookie: secure,
		logger:       params.Logger,
	}
}

// SignUpRequest is the body of POST /auth/signup.
type SignUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Password    string `json:"password" validate:"required,min=8,max=128"`
	AccountType string `json:"account_type" validate:"required,oneof=artist studio model"`
}

// SignInRequest is the body of POST /auth/signin.
type SignInRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// SignInResponse is returned by a successful sign-in.
type SignInResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *entity.User `json:"user"`
}

// MeResponse is the user with their role profile attached.
type MeResponse struct {
	*entity.User
	Profile *entity.RoleProfile `json:"profile"`
}

// SignUp creates an account and its role profile.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.authUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
		AccountType: entity.AccountType(req.AccountType),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// SignIn verifies credentials and opens a session. The token is also set as a cookie.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.authUC.SignIn(c.Request().Context(), usecase.SignInInput{
		Login:     req.Login,
		Password:  req.Password,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Browser-session cookie; expiry is enforced server-side.
	c.SetCookie(h.sessionCookie(out.AccessToken))

	return response.Success(c, http.StatusOK, SignInResponse{
		AccessToken: out.AccessToken,
		TokenType:   "bearer",
		ExpiresAt:   out.ExpiresAt,
		User:        out.User,
	})
}

// Me returns the authenticated user and their role profile.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authorization token")
	}

	out, err := h.authUC.Me(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MeResponse{User: out.User, Profile: out.Profile})
}

// SignOut revokes the current session and clears the cookie.
func (h *AuthHandler) SignOut(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authorization token")
	}

	if err := h.authUC.SignOut(c.Request().Context(), session.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	expired := h.sessionCookie("")
	expired.MaxAge = -1
	c.SetCookie(expired)

	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) sessionCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     h.auth.CookieName(),
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
