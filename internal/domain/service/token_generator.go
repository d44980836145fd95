package service

// TokenGenerator produces opaque, unguessable session tokens.
type TokenGenerator interface {
	Generate() (string, error)
}
