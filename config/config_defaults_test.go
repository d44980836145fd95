package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "/api/v1", cfg.HTTP.APIPrefix)
	assert.Equal(t, 15, cfg.Auth.AccessTokenExpireMinutes)
	assert.Equal(t, "inkq_session", cfg.Auth.SessionCookieName)
	assert.Equal(t, 10, cfg.Media.MaxUploadSizeMB)
	assert.Equal(t, "/media", cfg.Media.URLPrefix)
	assert.Equal(t, "http://localhost:4321", cfg.Profile.PublicBaseURL)
	assert.Equal(t, 256, cfg.Profile.QRCodeSize)
	assert.Equal(t, "M", cfg.Profile.QRCodeRecoveryLevel)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{AccessTokenExpireMinutes: 30, SessionCookieName: "sid"},
		Media:   &MediaConfig{MaxUploadSizeMB: 2, URLPrefix: "https://cdn.example.com/"},
		Profile: &ProfileConfig{PublicBaseURL: "https://inkq.app/", QRCodeSize: 512, QRCodeRecoveryLevel: "H"},
	}

	applyDefaults(cfg)

	assert.Equal(t, 30*time.Minute, cfg.Auth.SessionWindow())
	assert.Equal(t, "sid", cfg.Auth.SessionCookieName)
	assert.Equal(t, int64(2<<20), cfg.Media.MaxUploadBytes())
	assert.Equal(t, "https://cdn.example.com", cfg.Media.URLPrefix)
	assert.Equal(t, "https://inkq.app", cfg.Profile.PublicBaseURL)
	assert.Equal(t, 512, cfg.Profile.QRCodeSize)
	assert.Equal(t, "H", cfg.Profile.QRCodeRecoveryLevel)
}

func TestSessionWindow_NilConfig(t *testing.T) {
	var cfg *AuthConfig

	assert.Equal(t, 15*time.Minute, cfg.SessionWindow())
}
