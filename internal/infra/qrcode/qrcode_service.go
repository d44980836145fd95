// Package qrcode renders profile share links as PNG QR codes.
package qrcode

import (
	"strings"

	"inkq/config"
	"inkq/internal/domain/service"
	"inkq/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeGenerator struct {
	size          int
	recoveryLevel qrcode.RecoveryLevel
}

// New builds a generator from the profile section of the configuration.
func New(cfg *config.Config) service.QRCodeGenerator {
	if cfg == nil || cfg.Profile == nil {
		return NewGenerator(defaultSize, "M")
	}

	return NewGenerator(cfg.Profile.QRCodeSize, cfg.Profile.QRCodeRecoveryLevel)
}

// NewGenerator creates a generator producing size×size images.
func NewGenerator(size int, recoveryLevel string) service.QRCodeGenerator {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeGenerator{
		size:          size,
		recoveryLevel: parseRecoveryLevel(recoveryLevel),
	}
}

// PNG encodes content as a QR code image.
func (g *qrcodeGenerator) PNG(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr code content is empty")
	}

	code, err := qrcode.New(content, g.recoveryLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(g.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code")
	}

	return png, nil
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
