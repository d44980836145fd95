package handler

import (
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"inkq/config"
	"inkq/internal/delivery/api/middleware"
	"inkq/internal/delivery/api/response"
	"inkq/internal/domain/entity"
	domainerrors "inkq/internal/domain/errors"
	"inkq/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// MediaHandler serves avatar, banner and portfolio uploads.
type MediaHandler struct {
	mediaUC        usecase.MediaUsecase
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	var mediaCfg *config.MediaConfig
	if params.Config != nil {
		mediaCfg = params.Config.Media
	}

	return &MediaHandler{
		mediaUC:        params.MediaUC,
		maxUploadBytes: mediaCfg.MaxUploadBytes(),
		logger:         params.Logger,
	}
}

// UpdatePortfolioImageRequest is a partial metadata update; omitted fields are unchanged.
type UpdatePortfolioImageRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ApproxPrice *string `json:"approx_price" validate:"omitempty,max=50"`
	Placement   *string `json:"placement" validate:"omitempty,max=100"`
}

// PortfolioItemsResponse wraps a list of portfolio images.
type PortfolioItemsResponse struct {
	Items []*entity.PortfolioImage `json:"items"`
}

// UploadAvatar handles POST /media/:role/me/avatar.
func (h *MediaHandler) UploadAvatar(c echo.Context) error {
	return h.uploadUserImage(c, h.mediaUC.UploadAvatar)
}

// UploadBanner handles POST /media/:role/me/banner.
func (h *MediaHandler) UploadBanner(c echo.Context) error {
	return h.uploadUserImage(c, h.mediaUC.UploadBanner)
}

type userImageUploader func(ctx context.Context, input usecase.UploadImageInput) (*entity.MediaUpload, error)

func (h *MediaHandler) uploadUserImage(c echo.Context, upload userImageUploader) error {
	userID, role, err := callerWithRole(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'file' is required")
	}

	file, err := h.readFile(fh)
	if err != nil {
		return errors.Wrap(err, "failed to read upload")
	}

	out, err := upload(c.Request().Context(), usecase.UploadImageInput{
		UserID: userID,
		Role:   role,
		File:   file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// UploadPortfolio handles POST /media/:role/me/portfolio.
func (h *MediaHandler) UploadPortfolio(c echo.Context) error {
	userID, role, err := callerWithRole(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Expected a multipart form")
	}

	headers := form.File["files"]
	files := make([]usecase.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		file, err := h.readFile(fh)
		if err != nil {
			return errors.Wrap(err, "failed to read upload")
		}
		files = append(files, file)
	}

	kind := c.FormValue("kind")
	if kind == "" {
		kind = string(entity.PortfolioKindPortfolio)
	}

	items, err := h.mediaUC.UploadPortfolio(c.Request().Context(), usecase.UploadPortfolioInput{
		UserID: userID,
		Role:   role,
		Kind:   kind,
		Files:  files,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PortfolioItemsResponse{Items: items})
}

// ListPortfolio handles GET /media/:role/me/portfolio?kind=.
func (h *MediaHandler) ListPortfolio(c echo.Context) error {
	userID, role, err := callerWithRole(c)
	if err != nil {
		return err
	}

	items, err := h.mediaUC.ListPortfolio(c.Request().Context(), userID, role, c.QueryParam("kind"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PortfolioItemsResponse{Items: items})
}

// UpdatePortfolioImage handles PATCH /media/portfolio/:id.
func (h *MediaHandler) UpdatePortfolioImage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authorization token")
	}

	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid portfolio image ID")
	}

	var req UpdatePortfolioImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid portfolio image update")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	img, err := h.mediaUC.UpdatePortfolioImage(c.Request().Context(), userID, imageID, entity.PortfolioImagePatch{
		Title:       req.Title,
		Description: req.Description,
		ApproxPrice: req.ApproxPrice,
		Placement:   req.Placement,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, img)
}

// DeletePortfolioImage handles DELETE /media/portfolio/:id.
func (h *MediaHandler) DeletePortfolioImage(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authorization token")
	}

	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid portfolio image ID")
	}

	if err := h.mediaUC.DeletePortfolioImage(c.Request().Context(), userID, imageID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// callerWithRole resolves the authenticated user and the role named by the route.
// Its errors are left to the HTTP error handler.
func callerWithRole(c echo.Context) (uuid.UUID, entity.AccountType, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", domainerrors.ErrUnauthenticated
	}

	role, ok := entity.AccountTypeFromRoutePrefix(c.Param("role"))
	if !ok {
		return uuid.Nil, "", echo.ErrNotFound
	}

	return userID, role, nil
}

// readFile reads at most one byte past the upload limit so oversized files are still detectable.
func (h *MediaHandler) readFile(fh *multipart.FileHeader) (usecase.UploadedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return usecase.UploadedFile{}, errors.WithStack(err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, h.maxUploadBytes+1))
	if err != nil {
		return usecase.UploadedFile{}, errors.WithStack(err)
	}

	return usecase.UploadedFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
