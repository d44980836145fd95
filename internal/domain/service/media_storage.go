package service

import "context"

// MediaStorage stores encoded media and resolves its public URL.
type MediaStorage interface {
	// Put writes data under key and returns the public URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the object. A missing object is not an error.
	Delete(ctx context.Context, key string) error
}
