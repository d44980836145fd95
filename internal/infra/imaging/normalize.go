package imaging

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"inkq/internal/domain/entity"
)

// Mode is the policy used to reach the target geometry.
type Mode int

const (
	// CenterCrop trims equal margins from the over-long side, then scales to the exact size.
	CenterCrop Mode = iota
	// FitPad shrinks to fit inside the target and centres the result on white.
	FitPad
)

func (m Mode) String() string {
	switch m {
	case CenterCrop:
		return "center-crop"
	case FitPad:
		return "fit-pad"
	default:
		return "unknown"
	}
}

// Profile is the fixed output geometry for a purpose.
type Profile struct {
	Width  int
	Height int
	Mode   Mode
}

//nolint:gochecknoglobals
var (
	AvatarProfile             = Profile{Width: 400, Height: 400, Mode: CenterCrop}
	BannerProfile             = Profile{Width: 1584, Height: 396, Mode: CenterCrop}
	PortfolioLandscapeProfile = Profile{Width: 1200, Height: 627, Mode: CenterCrop}
	PortfolioPortraitProfile  = Profile{Width: 1200, Height: 1200, Mode: CenterCrop}
)

// ProfileFor picks the profile for a purpose. Portfolio images choose by source aspect.
func ProfileFor(purpose entity.ImagePurpose, src image.Rectangle) (Profile, bool) {
	switch purpose {
	case entity.ImagePurposeAvatar:
		return AvatarProfile, true
	case entity.ImagePurposeBanner:
		return BannerProfile, true
	case entity.ImagePurposePortfolio:
		if src.Dy() > 0 && float64(src.Dx())/float64(src.Dy()) >= 1.0 {
			return PortfolioLandscapeProfile, true
		}

		return PortfolioPortraitProfile, true
	default:
		return Profile{}, false
	}
}

// Normalize produces a width x height image from img using mode.
func Normalize(img image.Image, width, height int, mode Mode) image.Image {
	if mode == FitPad {
		return fitPad(img, width, height)
	}

	return centerCrop(img, width, height)
}

func centerCrop(img image.Image, width, height int) image.Image {
	src := img.Bounds()
	crop := CropRect(src.Dx(), src.Dy(), width, height).Add(src.Min)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Src, nil)

	return dst
}

// CropRect returns the centred region of a w x h source with the target aspect ratio.
// The cropped extent is truncated toward zero.
func CropRect(w, h, targetW, targetH int) image.Rectangle {
	targetAspect := float64(targetW) / float64(targetH)
	srcAspect := float64(w) / float64(h)

	if srcAspect > targetAspect {
		newW := max(int(float64(h)*targetAspect), 1)
		left := (w - newW) / 2

		return image.Rect(left, 0, left+newW, h)
	}

	newH := max(int(float64(w)/targetAspect), 1)
	top := (h - newH) / 2

	return image.Rect(0, top, w, top+newH)
}

func fitPad(img image.Image, width, height int) image.Image {
	src := img.Bounds()
	fitW, fitH := FitSize(src.Dx(), src.Dy(), width, height)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	left := (width - fitW) / 2
	top := (height - fitH) / 2
	draw.CatmullRom.Scale(dst, image.Rect(left, top, left+fitW, top+fitH), img, src, draw.Over, nil)

	return dst
}

// FitSize returns the largest size with the source aspect that fits in the target box
// without enlarging the source.
func FitSize(w, h, targetW, targetH int) (int, int) {
	if w <= targetW && h <= targetH {
		return w, h
	}

	scale := min(float64(targetW)/float64(w), float64(targetH)/float64(h))
	fitW := min(max(int(float64(w)*scale+0.5), 1), targetW)
	fitH := min(max(int(float64(h)*scale+0.5), 1), targetH)

	return fitW, fitH
}
