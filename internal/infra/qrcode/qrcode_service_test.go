package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"inkq/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"h", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeGenerator_PNG(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(tt.size, "M")

			data, err := gen.PNG("https://inkq.app/artists/inkmaster")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
			assert.Equal(t, tt.size, img.Bounds().Dy())
		})
	}
}

func TestQRCodeGenerator_EmptyContent(t *testing.T) {
	_, err := NewGenerator(256, "M").PNG("")
	assert.Error(t, err)
}

func TestNew_UsesProfileConfig(t *testing.T) {
	gen := New(&config.Config{Profile: &config.ProfileConfig{QRCodeSize: 300, QRCodeRecoveryLevel: "Q"}})

	g, ok := gen.(*qrcodeGenerator)
	require.True(t, ok)
	assert.Equal(t, 300, g.size)
	assert.Equal(t, qrcode.High, g.recoveryLevel)

	fallback, ok := New(nil).(*qrcodeGenerator)
	require.True(t, ok)
	assert.Equal(t, defaultSize, fallback.size)
}
