package auth

import (
	"crypto/rand"
	"encoding/base64"

	"inkq/internal/domain/service"
	"inkq/internal/errors"
)

// sessionTokenBytes is the entropy of a session token: 32 bytes, 43 base64url characters.
const sessionTokenBytes = 32

type randomTokenGenerator struct{}

// NewTokenGenerator returns a generator of URL-safe session tokens backed by crypto/rand.
func NewTokenGenerator() service.TokenGenerator {
	return &randomTokenGenerator{}
}

// Generate returns a fresh unpadded base64url token.
func (g *randomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
