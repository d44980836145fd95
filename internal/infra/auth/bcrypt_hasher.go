// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"

	"golang.org/x/crypto/bcrypt"

	domainerrors "inkq/internal/domain/errors"
	"inkq/internal/domain/service"
	"inkq/internal/errors"
)

// BcryptCost is the work factor for every stored credential.
const BcryptCost = 12

// bcryptHasher hashes a SHA-256 pre-digest of the password with bcrypt.
// The 32-byte pre-digest stays under bcrypt's 72-byte input limit for any password length.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: BcryptCost}
}

// NewBcryptHasherWithCost builds a hasher with a custom work factor.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt hash of the password's SHA-256 digest.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(preDigest(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrInvalidPassword, "bcrypt hash")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a stored hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	if hash == "" {
		return false
	}

	// err is nil only if the password and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), preDigest(password)) == nil
}

// preDigest returns the raw SHA-256 of the UTF-8 password bytes.
func preDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))

	return sum[:]
}
