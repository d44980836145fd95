package handler

import (
	"net/http"

	"inkq/internal/delivery/api/middleware"
	"inkq/internal/delivery/api/response"
	"inkq/internal/domain/entity"
	domainerrors "inkq/internal/domain/errors"
	"inkq/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderProfileURL carries the URL encoded in a share code.
const HeaderProfileURL = "X-Profile-Url"

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the caller's role profile extras.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// UpdateRoleProfileRequest is the body of PUT /:role/me; omitted fields are unchanged.
// UpdateRoleProfileRequest carries a partial role profile update; omitted fields stay as they are.
type UpdateRoleProfileRequest struct {
	DisplayName         *string `json:"display_name" validate:"omitempty,max=100"`
	About               *string `json:"about" validate:"omitempty,max=2000"`
	City                *string `json:"city" validate:"omitempty,max=100"`
	Instagram           *string `json:"instagram" validate:"omitempty,max=100"`
	Telegram            *string `json:"telegram" validate:"omitempty,max=100"`
	OnboardingCompleted *bool   `json:"onboarding_completed"`
}

// GetMine handles GET /:role/me.
func (h *ProfileHandler) GetMine(c echo.Context) error {
	userID, role, err := callerWithRole(c)
	if err != nil {
		return err
	}

	out, err := h.profileUC.GetMine(c.Request().Context(), userID, role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MeResponse{User: out.User, Profile: out.Profile})
}

// UpdateMine handles PUT /:role/me.
func (h *ProfileHandler) UpdateMine(c echo.Context) error {
	userID, role, err := callerWithRole(c)
	if err != nil {
		return err
	}

	var req UpdateRoleProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.profileUC.UpdateMine(c.Request().Context(), userID, role, entity.RoleProfilePatch{
		DisplayName:         req.DisplayName,
		About:               req.About,
		City:                req.City,
		Instagram:           req.Instagram,
		Telegram:            req.Telegram,
		OnboardingCompleted: req.OnboardingCompleted,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MeResponse{User: out.User, Profile: out.Profile})
}

// ShareCode handles GET /auth/me/share-code and returns a PNG QR code of the public profile URL.
func (h *ProfileHandler) ShareCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	code, err := h.profileUC.ShareCode(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(HeaderProfileURL, code.URL)
	c.Response().Header().Set("Cache-Control", "private, max-age=300")

	return c.Blob(http.StatusOK, "image/png", code.PNG)
}
