package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Password    string `json:"password" validate:"required,min=8,max=128"`
	AccountType string `json:"account_type" validate:"required,oneof=artist studio model"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	valid := signupRequest{Email: "a@b.co", Username: "ink", Password: "12345678", AccountType: "artist"}
	assert.NoError(t, v.Validate(&valid))

	err := v.Validate(&signupRequest{Email: "nope", Username: "ab", Password: strings.Repeat("x", 129), AccountType: "collector"})
	if assert.Error(t, err) {
		msg := err.Error()
		assert.Contains(t, msg, "email must be a valid email address")
		assert.Contains(t, msg, "username must be at least 3 characters")
		assert.Contains(t, msg, "password must be at most 128 characters")
		assert.Contains(t, msg, "account_type must be one of: artist studio model")
	}
}

func TestRequestValidator_CountsCharactersNotBytes(t *testing.T) {
	v := New()

	// 128 two-byte runes is still 128 characters.
	req := signupRequest{Email: "a@b.co", Username: "ink", Password: strings.Repeat("ä", 128), AccountType: "model"}
	assert.NoError(t, v.Validate(&req))
}
