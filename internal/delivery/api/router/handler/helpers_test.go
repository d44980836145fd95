package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"inkq/config"
	apimiddleware "inkq/internal/delivery/api/middleware"
	"inkq/internal/delivery/api/validator"
	"inkq/internal/domain/entity"
	domainerrors "inkq/internal/domain/errors"
	mockUC "inkq/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "tok_abc"

type envelope struct {
	Data  json.RawMessage         `json:"data"`
	Error *domainerrors.ErrorInfo `json:"error"`
	Meta  *domainerrors.MetaInfo  `json:"meta"`
}

type testAPI struct {
	e         *echo.Echo
	authUC    *mockUC.MockAuthUsecase
	mediaUC   *mockUC.MockMediaUsecase
	profileUC *mockUC.MockProfileUsecase
	sessions  *mockUC.MockSessionUsecase
	userID    uuid.UUID
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth:  &config.AuthConfig{AccessTokenExpireMinutes: 15, SessionCookieName: "inkq_session"},
		Media: &config.MediaConfig{BucketURL: "mem://", URLPrefix: "/media", MaxUploadSizeMB: 1},
	}
}

// newTestAPI mounts the handlers the way the router does.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := newTestConfig()

	api := &testAPI{
		e:         echo.New(),
		authUC:    mockUC.NewMockAuthUsecase(t),
		mediaUC:   mockUC.NewMockMediaUsecase(t),
		profileUC: mockUC.NewMockProfileUsecase(t),
		sessions:  mockUC.NewMockSessionUsecase(t),
		userID:    uuid.New(),
	}
	api.e.Validator = validator.New()
	api.e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	authMW := apimiddleware.NewAuthMiddleware(api.sessions, cfg)
	authHandler := NewAuthHandler(AuthHandlerParams{AuthUC: api.authUC, AuthMiddleware: authMW, Config: cfg, Logger: logger})
	mediaHandler := NewMediaHandler(MediaHandlerParams{MediaUC: api.mediaUC, Config: cfg, Logger: logger})
	profileHandler := NewProfileHandler(ProfileHandlerParams{ProfileUC: api.profileUC})

	g := api.e.Group("/api/v1")
	g.POST("/auth/signup", authHandler.SignUp)
	g.POST("/auth/signin", authHandler.SignIn)
	g.GET("/auth/me", authHandler.Me, authMW.Authenticate)
	g.POST("/auth/signout", authHandler.SignOut, authMW.Authenticate)
	g.GET("/auth/me/share-code", profileHandler.ShareCode, authMW.Authenticate)
	g.GET("/:role/me", profileHandler.GetMine, authMW.Authenticate)
	g.PUT("/:role/me", profileHandler.UpdateMine, authMW.Authenticate)

	media := g.Group("/media", authMW.Authenticate)
	media.POST("/:role/me/avatar", mediaHandler.UploadAvatar)
	media.POST("/:role/me/banner", mediaHandler.UploadBanner)
	media.POST("/:role/me/portfolio", mediaHandler.UploadPortfolio)
	media.GET("/:role/me/portfolio", mediaHandler.ListPortfolio)
	media.PATCH("/portfolio/:id", mediaHandler.UpdatePortfolioImage)
	media.DELETE("/portfolio/:id", mediaHandler.DeletePortfolioImage)

	return api
}

// expectSession makes testToken resolve to the test user.
func (a *testAPI) expectSession() {
	a.sessions.EXPECT().Authenticate(mock.Anything, testToken).Return(&entity.Session{
		Token:     testToken,
		UserID:    a.userID,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}, nil)
}

func (a *testAPI) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func withBearer(req *http.Request) *http.Request {
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)

	return req
}

type formFile struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func multipartRequest(t *testing.T, target string, files []formFile, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())

	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}

	return nil
}
