package impl

import (
	"context"
	"testing"

	"inkq/config"
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

func newTestProfileService(t *testing.T) (*profileService, *mockRepo.MockUserRepository, *mockRepo.MockProfileRepository, *mockSvc.MockQRCodeGenerator) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	qrCodes := mockSvc.NewMockQRCodeGenerator(t)

	cfg := newTestConfig()
	cfg.Profile = &config.ProfileConfig{PublicBaseURL: "https://inkq.app"}

	srv, ok := NewProfileService(ProfileServiceParams{
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		QRCodes:     qrCodes,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	}).(*profileService)
	require.True(t, ok)

	return srv, userRepo, profileRepo, qrCodes
}

func TestProfileService_ShareCode(t *testing.T) {
	t.Run("encodes the public profile url", func(t *testing.T) {
		srv, userRepo, profileRepo, qrCodes := newTestProfileService(t)
		userID := uuid.New()
		png := []byte{0x89, 'P', 'N', 'G'}

		userRepo.EXPECT().FindByID(mock.Anything, userID).
			Return(&entity.User{ID: userID, Username: "Ink Master", AccountType: entity.AccountTypeStudio}, nil)
		profileRepo.EXPECT().FindByUserID(mock.Anything, entity.AccountTypeStudio, userID).
			Return(&entity.RoleProfile{UserID: userID, AccountType: entity.AccountTypeStudio, Slug: "Ink Master"}, nil)
		qrCodes.EXPECT().PNG("https://inkq.app/studios/Ink%20Master").Return(png, nil)

		code, err := srv.ShareCode(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, "https://inkq.app/studios/Ink%20Master", code.URL)
		assert.Equal(t, png, code.PNG)
	})

	t.Run("unknown user", func(t *testing.T) {
		srv, userRepo, _, _ := newTestProfileService(t)

		userRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)

		_, err := srv.ShareCode(context.Background(), uuid.New())

		requireAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("missing profile is an integrity error", func(t *testing.T) {
		srv, userRepo, profileRepo, _ := newTestProfileService(t)
		userID := uuid.New()

		userRepo.EXPECT().FindByID(mock.Anything, userID).
			Return(&entity.User{ID: userID, AccountType: entity.AccountTypeModel}, nil)
		profileRepo.EXPECT().FindByUserID(mock.Anything, entity.AccountTypeModel, userID).
			Return(nil, repository.ErrProfileNotFound)

		_, err := srv.ShareCode(context.Background(), userID)

		requireAppError(t, err, "DATA_INTEGRITY")
	})

	t.Run("render failure", func(t *testing.T) {
		srv, userRepo, profileRepo, qrCodes := newTestProfileService(t)
		userID := uuid.New()

		userRepo.EXPECT().FindByID(mock.Anything, userID).
			Return(&entity.User{ID: userID, AccountType: entity.AccountTypeArtist}, nil)
		profileRepo.EXPECT().FindByUserID(mock.Anything, entity.AccountTypeArtist, userID).
			Return(&entity.RoleProfile{Slug: "inkmaster"}, nil)
		qrCodes.EXPECT().PNG("https://inkq.app/artists/inkmaster").Return(nil, errors.New("data too long"))

		_, err := srv.ShareCode(context.Background(), userID)

		requireAppError(t, err, "INTERNAL_ERROR")
	})
}

// withTx gives srv a transaction manager whose callback receives a factory backed by the given repos.
func withTx(t *testing.T, srv *profileService, userRepo *mockRepo.MockUserRepository, profileRepo *mockRepo.MockProfileRepository) {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Once()
	factory.EXPECT().NewProfileRepository().Return(profileRepo).Maybe()
	factory.EXPECT().NewUserRepository().Return(userRepo).Maybe()
	srv.txManager = txManager
}

func TestProfileService_GetMine(t *testing.T) {
	t.Run("existing profile", func(t *testing.T) {
		srv, userRepo, profileRepo, _ := newTestProfileService(t)
		user := &entity.User{ID: uuid.New(), Username: "inky", AccountType: entity.AccountTypeArtist}
		profile := &entity.RoleProfile{ID: uuid.New(), UserID: user.ID, AccountType: entity.AccountTypeArtist, Slug: "inky"}

		userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Once()
		profileRepo.EXPECT().FindByUserID(mock.Anything, entity.AccountTypeArtist, user.ID).Return(profile, nil).Once()

		out, err := srv.GetMine(context.Background(), user.ID, entity.AccountTypeArtist)

		require.NoError(t, err)
		assert.Equal(t, user, out.User)
		assert.Equal(t, profile, out.Profile)
	})

	t.Run("missing profile is created", func(t *testing.T) {
		srv, userRepo, profileRepo, _ := newTestProfileService(t)
		user := &entity.User{ID: uuid.New(), Username: "skin", AccountType: entity.AccountTypeModel}
		created := &entity.RoleProfile{ID: uuid.New(), UserID: user.ID, AccountType: entity.AccountTypeModel, Slug: "skin"}

		userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Once()
		profileRepo.EXPECT().FindByUserID(mock.Anything, entity.AccountTypeModel, user.ID).Return(nil, repository.ErrProfileNotFound).Once()
		profileRepo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(p *entity.RoleProfile) bool {
			return p.UserID == user.ID && p.AccountType == entity.AccountTypeModel && p.Slug == "skin"
		})).Return(created, nil).Once()

		out, err := srv.GetMine(context.Background(), user.ID, entity.AccountTypeModel)

		require.NoError(t, err)
		assert.Equal(t, created, out.Profile)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		srv, userRepo, _, _ := newTestProfileService(t)
		user := &entity.User{ID: uuid.New(), AccountType: entity.AccountTypeStudio}

		userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Once()

		_, err := srv.GetMine(context.Background(), user.ID, entity.AccountTypeArtist)

		requireAppError(t, err, "FORBIDDEN")
	})
}

func TestProfileService_UpdateMine(t *testing.T) {
	t.Run("patches profile and onboarding flag", func(t *testing.T) {
		srv, userRepo, profileRepo, _ := newTestProfileService(t)
		withTx(t, srv, userRepo, profileRepo)
		oldCity := "Riga"
		user := &entity.User{ID: uuid.New(), Username: "inkhouse", AccountType: entity.AccountTypeStudio}
		profile := &entity.RoleProfile{ID: uuid.New(), UserID: user.ID, AccountType: entity.AccountTypeStudio, City: &oldCity}
		name := "Ink House"
		done := true

		userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Once()
		profileRepo.EXPECT().FindByUserID(mock.Anything, entity.AccountTypeStudio, user.ID).Return(profile, nil).Once()
		profileRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(p *entity.RoleProfile) bool {
			return *p.DisplayName == "Ink House" && *p.City == "Riga"
		})).Return(nil).Once()
		userRepo.EXPECT().SetOnboardingCompleted(mock.Anything, user.ID, true).Return(nil).Once()

		out, err := srv.UpdateMine(context.Background(), user.ID, entity.AccountTypeStudio, entity.RoleProfilePatch{
			DisplayName:         &name,
			OnboardingCompleted: &done,
		})

		require.NoError(t, err)
		assert.True(t, out.User.OnboardingCompleted)
		assert.Equal(t, "Ink House", *out.Profile.DisplayName)
		assert.Nil(t, out.Profile.About)
	})

	t.Run("flag untouched when not sent", func(t *testing.T) {
		srv, userRepo, profileRepo, _ := newTestProfileService(t)
		withTx(t, srv, userRepo, profileRepo)
		user := &entity.User{ID: uuid.New(), AccountType: entity.AccountTypeArtist}
		about := "Blackwork only"

		userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Once()
		profileRepo.EXPECT().FindByUserID(mock.Anything, entity.AccountTypeArtist, user.ID).
			Return(&entity.RoleProfile{ID: uuid.New(), UserID: user.ID, AccountType: entity.AccountTypeArtist}, nil).Once()
		profileRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		out, err := srv.UpdateMine(context.Background(), user.ID, entity.AccountTypeArtist, entity.RoleProfilePatch{About: &about})

		require.NoError(t, err)
		assert.Equal(t, "Blackwork only", *out.Profile.About)
		userRepo.AssertNotCalled(t, "SetOnboardingCompleted", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		srv, userRepo, profileRepo, _ := newTestProfileService(t)
		withTx(t, srv, userRepo, profileRepo)
		user := &entity.User{ID: uuid.New(), AccountType: entity.AccountTypeArtist}

		userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Once()
		profileRepo.EXPECT().FindByUserID(mock.Anything, entity.AccountTypeArtist, user.ID).
			Return(&entity.RoleProfile{ID: uuid.New(), UserID: user.ID, AccountType: entity.AccountTypeArtist}, nil).Once()
		profileRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

		_, err := srv.UpdateMine(context.Background(), user.ID, entity.AccountTypeArtist, entity.RoleProfilePatch{})

		require.Error(t, err)
	})
}
