package impl

import (
	"io"
	"log/slog"
	"testing"

	"inkq/config"
	domainerrors "inkq/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenExpireMinutes: 15,
			SessionCookieName:        "inkq_session",
		},
		Media: &config.MediaConfig{
			BucketURL:       "mem://",
			URLPrefix:       "/media",
			MaxUploadSizeMB: 1,
		},
	}
}

// requireAppError asserts err carries an AppError with the given business code.
func requireAppError(t *testing.T, err error, code string) domainerrors.AppError {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.ErrorCode())

	return appErr
}
