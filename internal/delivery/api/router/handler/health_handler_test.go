package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newHealthHandler(t *testing.T) (*HealthHandler, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	return NewHealthHandler(HealthHandlerParams{
		DB:     db,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), mock
}

func TestHealthHandler_Check(t *testing.T) {
	t.Run("ok when the database answers", func(t *testing.T) {
		h, mock := newHealthHandler(t)
		mock.ExpectPing()

		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

		require.NoError(t, h.Check(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unavailable when the ping fails", func(t *testing.T) {
		h, mock := newHealthHandler(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		rec := httptest.NewRecorder()
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

		require.NoError(t, h.Check(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "UNHEALTHY", decode(t, rec).Error.Code)
	})
}
