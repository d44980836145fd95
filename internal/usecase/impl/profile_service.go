package impl

import (
	"context"
	"log/slog"
	"net/url"

	"inkq/config"
	deliverycontext "inkq/internal/delivery/context"
	domainerrors "inkq/internal/domain/errors"
	"inkq/internal/domain/entity"
	"inkq/internal/domain/repository"
	"inkq/internal/domain/service"
	"inkq/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	profileRepo   repository.ProfileRepository
	qrCodes       service.QRCodeGenerator
	publicBaseURL string
	logger        *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	QRCodes     service.QRCodeGenerator
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	var baseURL string
	if params.Config != nil && params.Config.Profile != nil {
		baseURL = params.Config.Profile.PublicBaseURL
	}

	return &profileService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		profileRepo:   params.ProfileRepo,
		qrCodes:       params.QRCodes,
		publicBaseURL: baseURL,
		logger:        params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMine returns the caller's profile, creating an empty one for accounts that predate it.
func (srv *profileService) GetMine(ctx context.Context, userID uuid.UUID, role entity.AccountType) (*usecase.MeOutput, error) {
	user, err := srv.requireRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	profile, err := ensureProfile(ctx, srv.profileRepo, user)
	if err != nil {
		return nil, err
	}

	return &usecase.MeOutput{User: user, Profile: profile}, nil
}

// UpdateMine writes the patch to the role profile and the onboarding flag to the user in one transaction.
func (srv *profileService) UpdateMine(ctx context.Context, userID uuid.UUID, role entity.AccountType, patch entity.RoleProfilePatch) (*usecase.MeOutput, error) {
	user, err := srv.requireRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	var profile *entity.RoleProfile
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		found, err := ensureProfile(ctx, profileRepo, user)
		if err != nil {
			return err
		}
		profile = found

		patch.Apply(profile)
		if err := profileRepo.Update(ctx, profile); err != nil {
			return err
		}

		if patch.OnboardingCompleted != nil {
			if err := repoFactory.NewUserRepository().SetOnboardingCompleted(ctx, user.ID, *patch.OnboardingCompleted); err != nil {
				return err
			}
			user.OnboardingCompleted = *patch.OnboardingCompleted
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("error", err), slog.Any("user_id", user.ID))

		return nil, errors.Wrap(err, "failed to update role profile")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("user_id", user.ID), slog.String("account_type", role.String()))

	return &usecase.MeOutput{User: user, Profile: profile}, nil
}

// requireRole loads the user and checks that the route's role is theirs.
func (srv *profileService) requireRole(ctx context.Context, userID uuid.UUID, role entity.AccountType) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.AccountType != role {
		return nil, domainerrors.ErrForbidden.WrapMessage("Only " + role.RoutePrefix() + " can access this endpoint")
	}

	return user, nil
}

// ensureProfile returns the user's role profile, creating it with the username as slug if missing.
func ensureProfile(ctx context.Context, profileRepo repository.ProfileRepository, user *entity.User) (*entity.RoleProfile, error) {
	profile, err := profileRepo.FindByUserID(ctx, user.AccountType, user.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find role profile")
	}

	return profileRepo.Upsert(ctx, &entity.RoleProfile{
		UserID:      user.ID,
		AccountType: user.AccountType,
		Slug:        user.Username,
	})
}

// ShareCode renders the caller's public profile URL, <base>/<role prefix>/<slug>, as a QR code.
func (srv *profileService) ShareCode(ctx context.Context, userID uuid.UUID) (*usecase.ShareCode, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, user.AccountType, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrDataIntegrity.WrapMessage("missing " + user.AccountType.String() + " profile")
		}

		return nil, errors.Wrap(err, "failed to find role profile")
	}

	profileURL, err := url.JoinPath(srv.publicBaseURL, user.AccountType.RoutePrefix(), profile.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build profile URL")
	}

	png, err := srv.qrCodes.PNG(profileURL)
	if err != nil {
		srv.log(ctx).Error("Failed to render share code", slog.Any("error", err), slog.Any("user_id", user.ID))

		return nil, domainerrors.ErrInternalError.WrapMessage(err.Error())
	}

	return &usecase.ShareCode{URL: profileURL, PNG: png}, nil
}
