package model

import (
	"time"

	"github.com/google/uuid"
)

// Role profile tables share one shape; the table is chosen per account type.
const (
	ArtistTableName = "artists"
	StudioTableName = "studios"
	ModelTableName  = "models"
)

// ProfileModel mirrors the 'artists', 'studios' and 'models' tables.
// It has no TableName; callers select the table with db.Table.
type ProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Slug        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	DisplayName *string   `gorm:"type:varchar(100)"`
	About       *string   `gorm:"type:text"`
	City        *string   `gorm:"type:varchar(100)"`
	Instagram   *string   `gorm:"type:varchar(100)"`
	Telegram    *string   `gorm:"type:varchar(100)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
