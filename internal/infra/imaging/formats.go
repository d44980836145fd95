package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"mime"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // registers the webp decoder

	domainerrors "inkq/internal/domain/errors"
	"inkq/internal/errors"
)

const (
	MIMETypeJPEG = "image/jpeg"
	MIMETypeJPG  = "image/jpg"
	MIMETypePNG  = "image/png"
	MIMETypeWEBP = "image/webp"
)

// JPEGQuality is the fixed quality for every stored JPEG.
const JPEGQuality = 85

// maxPixels rejects images whose header claims more pixels than we will allocate.
const maxPixels = 64 << 20

// Format is an output encoding.
type Format string

const (
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
)

//nolint:gochecknoglobals
var (
	allowedContentTypes = map[string]struct{}{
		MIMETypeJPEG: {},
		MIMETypeJPG:  {},
		MIMETypePNG:  {},
		MIMETypeWEBP: {},
	}

	formatContentTypes = map[Format]string{
		FormatJPEG: MIMETypeJPEG,
		FormatPNG:  MIMETypePNG,
	}

	formatExtensions = map[Format]string{
		FormatJPEG: "jpg",
		FormatPNG:  "png",
	}
)

// IsAllowedContentType reports whether uploads with this content type are accepted.
func IsAllowedContentType(contentType string) bool {
	_, ok := allowedContentTypes[normalizeContentType(contentType)]

	return ok
}

// Decode checks the declared content type before touching the bytes, then decodes them.
// The decoder is chosen by sniffing the bytes, so a PNG declared as image/jpeg still decodes.
func Decode(data []byte, contentType string) (image.Image, error) {
	if !IsAllowedContentType(contentType) {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedMediaType, "content type %q", contentType)
	}

	if len(data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidImage, "empty upload")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrInvalidImage, "decode header: %v", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > maxPixels {
		return nil, errors.Wrapf(domainerrors.ErrInvalidImage, "unsupported dimensions %dx%d", cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrInvalidImage, "decode %s: %v", format, err)
	}

	return img, nil
}

// Encode writes img in the given format. JPEG output is flattened onto white first.
func Encode(img image.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer

	var err error
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(&buf, Flatten(img), &jpeg.Options{Quality: JPEGQuality})
	case FormatPNG:
		err = (&png.Encoder{CompressionLevel: png.BestCompression}).Encode(&buf, img)
	default:
		return nil, errors.Wrapf(domainerrors.ErrInvalidImage, "unknown format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrInvalidImage, "encode %s: %v", format, err)
	}

	return buf.Bytes(), nil
}

// ContentType returns the MIME type produced by format.
func (f Format) ContentType() string {
	return formatContentTypes[f]
}

// Extension returns the file extension, without the leading dot, for format.
func (f Format) Extension() string {
	return formatExtensions[f]
}

// Flatten composites img over an opaque white background using its alpha as the mask.
// Images without an alpha channel are simply converted to 8-bit RGBA.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)

	return dst
}

func normalizeContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}

	return mediaType
}
