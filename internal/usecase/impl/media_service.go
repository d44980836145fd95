package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
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

const (
	avatarsPrefix   = "avatars"
	bannersPrefix   = "banners"
	portfolioPrefix = "portfolio"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	portfolioRepo  repository.PortfolioRepository
	processor      service.ImageProcessor
	storage        service.MediaStorage
	events         service.MediaEventPublisher
	maxUploadBytes int64
	newObjectID    func() string
	now            func() time.Time
	logger         *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	PortfolioRepo repository.PortfolioRepository
	Processor     service.ImageProcessor
	Storage       service.MediaStorage
	Events        service.MediaEventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	var mediaCfg *config.MediaConfig
	if params.Config != nil {
		mediaCfg = params.Config.Media
	}

	return &mediaService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		portfolioRepo:  params.PortfolioRepo,
		processor:      params.Processor,
		storage:        params.Storage,
		events:         params.Events,
		maxUploadBytes: mediaCfg.MaxUploadBytes(),
		newObjectID:    func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") },
		now:            time.Now,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadAvatar normalizes the file to the avatar geometry and sets it on the user.
func (srv *mediaService) UploadAvatar(ctx context.Context, input usecase.UploadImageInput) (*entity.MediaUpload, error) {
	return srv.uploadUserImage(ctx, input, entity.ImagePurposeAvatar, avatarsPrefix, repository.MediaFieldAvatar, service.MediaEventAvatarUpdated)
}

// UploadBanner normalizes the file to the banner geometry and sets it on the user.
func (srv *mediaService) UploadBanner(ctx context.Context, input usecase.UploadImageInput) (*entity.MediaUpload, error) {
	return srv.uploadUserImage(ctx, input, entity.ImagePurposeBanner, bannersPrefix, repository.MediaFieldBanner, service.MediaEventBannerUpdated)
}

func (srv *mediaService) uploadUserImage(
	ctx context.Context,
	input usecase.UploadImageInput,
	purpose entity.ImagePurpose,
	prefix string,
	field repository.MediaField,
	eventType service.MediaEventType,
) (*entity.MediaUpload, error) {
	user, err := srv.requireRole(ctx, input.UserID, input.Role)
	if err != nil {
		return nil, err
	}

	if !srv.processor.Accepts(input.File.ContentType) {
		return nil, domainerrors.ErrUnsupportedMediaType
	}
	if int64(len(input.File.Data)) > srv.maxUploadBytes {
		return nil, srv.fileTooLarge()
	}

	processed, err := srv.process(input.File, purpose)
	if err != nil {
		return nil, err
	}

	key := path.Join(prefix, srv.objectName(user.ID, string(purpose), processed.Extension))
	url, err := srv.storage.Put(ctx, key, processed.Data, processed.ContentType)
	if err != nil {
		srv.log(ctx).Error("Failed to store image", slog.Any("error", err), slog.String("key", key))

		return nil, domainerrors.ErrMediaStorageFailed.WrapMessage(err.Error())
	}

	if err := srv.userRepo.UpdateMediaURL(ctx, user.ID, field, url); err != nil {
		srv.removeObject(ctx, key)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to update user media url")
	}

	srv.log(ctx).Info("User image updated",
		slog.Any("user_id", user.ID),
		slog.String("purpose", string(purpose)),
		slog.String("key", key),
	)
	srv.publish(ctx, &service.MediaEvent{Type: eventType, UserID: user.ID.String(), URL: url, ObjectKey: key})

	return &entity.MediaUpload{URL: url, Width: processed.Width, Height: processed.Height}, nil
}

// UploadPortfolio stores every acceptable file of the batch and records them in one transaction.
// An unsupported content type rejects the batch before anything is stored; oversized or
// undecodable files are skipped.
func (srv *mediaService) UploadPortfolio(ctx context.Context, input usecase.UploadPortfolioInput) ([]*entity.PortfolioImage, error) {
	user, err := srv.requireRole(ctx, input.UserID, input.Role)
	if err != nil {
		return nil, err
	}

	kind := entity.PortfolioKind(input.Kind)
	if kind == "" {
		kind = entity.PortfolioKindPortfolio
	}
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("kind must be 'portfolio' or 'wannado'")
	}
	if len(input.Files) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("At least one file is required")
	}
	for _, file := range input.Files {
		if !srv.processor.Accepts(file.ContentType) {
			return nil, domainerrors.ErrUnsupportedMediaType.WrapMessage("Unsupported file type: " + file.ContentType)
		}
	}

	items := make([]*entity.PortfolioImage, 0, len(input.Files))
	for _, file := range input.Files {
		if int64(len(file.Data)) > srv.maxUploadBytes {
			srv.log(ctx).Info("Skipping oversized portfolio file", slog.String("filename", file.Filename), slog.Int("size", len(file.Data)))

			continue
		}

		processed, err := srv.process(file, entity.ImagePurposePortfolio)
		if err != nil {
			if errors.Is(err, domainerrors.ErrInvalidImage) {
				srv.log(ctx).Info("Skipping invalid portfolio file", slog.String("filename", file.Filename), slog.Any("error", err))

				continue
			}
			srv.removeImages(ctx, items)

			return nil, err
		}

		key := path.Join(portfolioPrefix, fmt.Sprintf("user_%s", user.ID), srv.objectName(user.ID, portfolioPrefix, processed.Extension))
		url, err := srv.storage.Put(ctx, key, processed.Data, processed.ContentType)
		if err != nil {
			srv.log(ctx).Error("Failed to store portfolio image", slog.Any("error", err), slog.String("key", key))
			srv.removeImages(ctx, items)

			return nil, domainerrors.ErrMediaStorageFailed.WrapMessage(err.Error())
		}

		items = append(items, &entity.PortfolioImage{
			UserID:    user.ID,
			Kind:      kind,
			URL:       url,
			ObjectKey: key,
			Width:     processed.Width,
			Height:    processed.Height,
			MimeType:  processed.ContentType,
		})
	}

	if len(items) > 0 {
		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			portfolioRepo := repoFactory.NewPortfolioRepository()
			for _, img := range items {
				if err := portfolioRepo.Create(ctx, img); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			srv.removeImages(ctx, items)

			return nil, errors.Wrap(err, "failed to record portfolio images")
		}
	}

	for _, img := range items {
		srv.publish(ctx, &service.MediaEvent{
			Type:      service.MediaEventPortfolioAdded,
			UserID:    user.ID.String(),
			ImageID:   img.ID.String(),
			URL:       img.URL,
			ObjectKey: img.ObjectKey,
		})
	}

	srv.log(ctx).Info("Portfolio upload finished",
		slog.Any("user_id", user.ID),
		slog.Int("received", len(input.Files)),
		slog.Int("stored", len(items)),
	)

	return items, nil
}

// ListPortfolio returns the caller's images, newest first.
func (srv *mediaService) ListPortfolio(ctx context.Context, userID uuid.UUID, role entity.AccountType, kind string) ([]*entity.PortfolioImage, error) {
	user, err := srv.requireRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	var filter *entity.PortfolioKind
	if k := entity.PortfolioKind(kind); k.IsValid() {
		filter = &k
	}

	images, err := srv.portfolioRepo.ListByUser(ctx, user.ID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list portfolio images")
	}

	return images, nil
}

// UpdatePortfolioImage applies a partial metadata update to an image the caller owns.
func (srv *mediaService) UpdatePortfolioImage(ctx context.Context, userID, imageID uuid.UUID, patch entity.PortfolioImagePatch) (*entity.PortfolioImage, error) {
	img, err := srv.portfolioRepo.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, repository.ErrPortfolioImageNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("Portfolio image not found")
		}

		return nil, errors.Wrap(err, "failed to find portfolio image")
	}
	// Foreign images are reported as missing.
	if img.UserID != userID {
		return nil, domainerrors.ErrNotFound.WithDetails("Portfolio image not found")
	}

	patch.Apply(img)
	if err := srv.portfolioRepo.Update(ctx, img); err != nil {
		if errors.Is(err, repository.ErrPortfolioImageNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("Portfolio image not found")
		}

		return nil, errors.Wrap(err, "failed to update portfolio image")
	}

	return img, nil
}

// DeletePortfolioImage removes an owned image and its stored object.
func (srv *mediaService) DeletePortfolioImage(ctx context.Context, userID, imageID uuid.UUID) error {
	img, err := srv.portfolioRepo.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, repository.ErrPortfolioImageNotFound) {
			return domainerrors.ErrNotFound.WithDetails("Portfolio image not found")
		}

		return errors.Wrap(err, "failed to find portfolio image")
	}
	if img.UserID != userID {
		return domainerrors.ErrForbidden.WrapMessage("You can only delete your own portfolio images")
	}

	if err := srv.portfolioRepo.Delete(ctx, imageID); err != nil {
		if errors.Is(err, repository.ErrPortfolioImageNotFound) {
			return domainerrors.ErrNotFound.WithDetails("Portfolio image not found")
		}

		return errors.Wrap(err, "failed to delete portfolio image")
	}

	if img.ObjectKey != "" {
		srv.removeObject(ctx, img.ObjectKey)
	}
	srv.publish(ctx, &service.MediaEvent{
		Type:      service.MediaEventPortfolioRemoved,
		UserID:    userID.String(),
		ImageID:   imageID.String(),
		URL:       img.URL,
		ObjectKey: img.ObjectKey,
	})

	return nil
}

// requireRole loads the user and checks that the route's role is theirs.
func (srv *mediaService) requireRole(ctx context.Context, userID uuid.UUID, role entity.AccountType) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.AccountType != role {
		return nil, domainerrors.ErrForbidden.WrapMessage(fmt.Sprintf("only %s accounts can use this endpoint", role))
	}

	return user, nil
}

func (srv *mediaService) process(file usecase.UploadedFile, purpose entity.ImagePurpose) (*service.ProcessedImage, error) {
	img, err := srv.processor.Decode(file.Data, file.ContentType)
	if err != nil {
		return nil, err
	}

	return srv.processor.Process(img, purpose)
}

func (srv *mediaService) objectName(userID uuid.UUID, prefix, extension string) string {
	return fmt.Sprintf("%s_user_%s_%s.%s", prefix, userID, srv.newObjectID(), extension)
}

func (srv *mediaService) fileTooLarge() error {
	// The ceiling is configured in whole megabytes.
	return domainerrors.ErrFileTooLarge.WithDetails(fmt.Sprintf("Maximum size: %d MB", srv.maxUploadBytes>>20))
}

func (srv *mediaService) removeObject(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to remove stored object", slog.Any("error", err), slog.String("key", key))
	}
}

// removeImages deletes the stored objects of a batch that will not be recorded.
func (srv *mediaService) removeImages(ctx context.Context, images []*entity.PortfolioImage) {
	for _, img := range images {
		srv.removeObject(ctx, img.ObjectKey)
	}
}

// publish delivers a media event. Failures are logged and never fail the request.
func (srv *mediaService) publish(ctx context.Context, event *service.MediaEvent) {
	if srv.events == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.OccurredAt = srv.now().UTC()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.events.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish media event",
			slog.Any("error", err),
			slog.String("type", string(event.Type)),
			slog.String("object_key", event.ObjectKey),
		)
	}
}
