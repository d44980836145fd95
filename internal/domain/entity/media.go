package entity

// ImagePurpose selects the fixed output geometry for an uploaded image.
type ImagePurpose string

const (
	ImagePurposeAvatar    ImagePurpose = "avatar"
	ImagePurposeBanner    ImagePurpose = "banner"
	ImagePurposePortfolio ImagePurpose = "portfolio"
)

// MediaUpload is the result of storing a single normalized image.
type MediaUpload struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
