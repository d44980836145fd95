package entity

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioKind separates finished work from "wannado" designs.
type PortfolioKind string

const (
	PortfolioKindPortfolio PortfolioKind = "portfolio"
	PortfolioKindWannado   PortfolioKind = "wannado"
)

// IsValid checks if the PortfolioKind is a valid value.
func (k PortfolioKind) IsValid() bool {
	switch k {
	case PortfolioKindPortfolio, PortfolioKindWannado:
		return true
	default:
		return false
	}
}

// PortfolioImage is a processed, stored image shown on a profile.
type PortfolioImage struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	Kind        PortfolioKind `json:"kind"`
	URL         string        `json:"url"`
	ObjectKey   string        `json:"-"` // Blob key, kept so deletion can remove the object.
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	MimeType    string        `json:"mime_type"`
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	ApproxPrice *string       `json:"approx_price"`
	Placement   *string       `json:"placement"`
	CreatedAt   time.Time     `json:"created_at"`
}

// PortfolioImagePatch carries a partial metadata update; nil fields are left untouched.
type PortfolioImagePatch struct {
	Title       *string
	Description *string
	ApproxPrice *string
	Placement   *string
}

// Apply copies every non-nil field onto img.
func (p PortfolioImagePatch) Apply(img *PortfolioImage) {
	if p.Title != nil {
		img.Title = p.Title
	}
	if p.Description != nil {
		img.Description = p.Description
	}
	if p.ApproxPrice != nil {
		img.ApproxPrice = p.ApproxPrice
	}
	if p.Placement != nil {
		img.Placement = p.Placement
	}
}
