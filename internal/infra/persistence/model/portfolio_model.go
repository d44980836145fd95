package model

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioImageModel mirrors the 'portfolio_images' table.
type PortfolioImageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_portfolio_user_kind"`
	Kind        string    `gorm:"type:varchar(20);not null;index:idx_portfolio_user_kind"`
	URL         string    `gorm:"type:text;not null"`
	ObjectKey   string    `gorm:"type:text;not null"`
	Width       int       `gorm:"not null"`
	Height      int       `gorm:"not null"`
	MimeType    string    `gorm:"type:varchar(50);not null"`
	Title       *string   `gorm:"type:varchar(200)"`
	Description *string   `gorm:"type:text"`
	ApproxPrice *string   `gorm:"type:varchar(50)"`
	Placement   *string   `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PortfolioImageModel) TableName() string {
	return "portfolio_images"
}
