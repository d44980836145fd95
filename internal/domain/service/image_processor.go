package service

import (
	"image"

	"inkq/internal/domain/entity"
)

// ImageProcessor decodes, normalizes and encodes uploaded rasters.
type ImageProcessor interface {
	// Accepts reports whether uploads declared with contentType can be decoded.
	Accepts(contentType string) bool
	// Decode checks the declared content type and decodes the bytes.
	Decode(data []byte, contentType string) (image.Image, error)

	// Process normalizes img to the profile for purpose and encodes it.
	Process(img image.Image, purpose entity.ImagePurpose) (*ProcessedImage, error)
}

// ProcessedImage is an encoded, normalized image ready for storage.
type ProcessedImage struct {
	Data        []byte
	Width       int
	Height      int
	ContentType string
	Extension   string
}
