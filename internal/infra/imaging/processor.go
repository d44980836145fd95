// Package imaging normalizes uploaded rasters to fixed, purpose-specific geometries.
package imaging

import (
	"image"

	"inkq/internal/domain/entity"
	domainerrors "inkq/internal/domain/errors"
	"inkq/internal/domain/service"
	"inkq/internal/errors"
)

// StorageFormat is the encoding of every stored upload.
const StorageFormat = FormatJPEG

type processor struct {
	format Format
}

// NewProcessor returns the image pipeline used by the media use cases.
func NewProcessor() service.ImageProcessor {
	return &processor{format: StorageFormat}
}

func (p *processor) Accepts(contentType string) bool {
	return IsAllowedContentType(contentType)
}

func (p *processor) Decode(data []byte, contentType string) (image.Image, error) {
	return Decode(data, contentType)
}

func (p *processor) Process(img image.Image, purpose entity.ImagePurpose) (*service.ProcessedImage, error) {
	profile, ok := ProfileFor(purpose, img.Bounds())
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInternalError, "unknown image purpose %q", purpose)
	}

	normalized := Normalize(img, profile.Width, profile.Height, profile.Mode)

	data, err := Encode(normalized, p.format)
	if err != nil {
		return nil, err
	}

	return &service.ProcessedImage{
		Data:        data,
		Width:       profile.Width,
		Height:      profile.Height,
		ContentType: p.format.ContentType(),
		Extension:   p.format.Extension(),
	}, nil
}
