package impl

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

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
	minPasswordLength = 8
	maxPasswordLength = 128
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	hasher      service.PasswordHasher
	sessions    usecase.SessionUsecase
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	Hasher      service.PasswordHasher
	Sessions    usecase.SessionUsecase
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		profileRepo: params.ProfileRepo,
		hasher:      params.Hasher,
		sessions:    params.Sessions,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates the account and its role profile atomically.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*entity.User, error) {
	if !input.AccountType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("invalid account_type %q, expected one of artist, studio, model", input.AccountType))
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Warn("Password hashing rejected input", slog.Any("error", err))

		return nil, err
	}

	user := &entity.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: passwordHash,
		AccountType:  input.AccountType,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			return err
		}

		_, err := repoFactory.NewProfileRepository().Upsert(ctx, &entity.RoleProfile{
			UserID:      user.ID,
			AccountType: user.AccountType,
			Slug:        user.Username,
		})

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.Any("error", err), slog.String("account_type", input.AccountType.String()))

		return nil, err
	}

	srv.log(ctx).Info("User signed up", slog.Any("user_id", user.ID), slog.String("account_type", user.AccountType.String()))

	return user, nil
}

// SignIn verifies the credentials and issues a session.
// Unknown logins and wrong passwords are indistinguishable to the caller.
func (srv *authService) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Sign-in rejected", slog.Any("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	session, err := srv.sessions.Issue(ctx, user.ID, optionalString(input.IPAddress), optionalString(input.UserAgent))
	if err != nil {
		return nil, err
	}

	return &usecase.SignInOutput{
		AccessToken: session.Token,
		ExpiresAt:   session.ExpiresAt,
		User:        user,
	}, nil
}

// Me loads the user and the role profile matching their account type.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*usecase.MeOutput, error) {
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
			srv.log(ctx).Error("User has no role profile", slog.Any("user_id", user.ID), slog.String("account_type", user.AccountType.String()))

			return nil, domainerrors.ErrDataIntegrity.WrapMessage("missing " + user.AccountType.String() + " profile")
		}

		return nil, errors.Wrap(err, "failed to find role profile")
	}

	return &usecase.MeOutput{User: user, Profile: profile}, nil
}

// SignOut revokes the session behind token.
func (srv *authService) SignOut(ctx context.Context, token string) error {
	return srv.sessions.Revoke(ctx, token)
}

func validatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < minPasswordLength || n > maxPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be between %d and %d characters", minPasswordLength, maxPasswordLength))
	}

	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
