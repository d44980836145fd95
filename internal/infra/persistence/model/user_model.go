package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the repository (UUIDv7).
type UserModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username            string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PasswordHash        string    `gorm:"type:varchar(255);not null"`
	AccountType         string    `gorm:"type:varchar(20);not null"`
	OnboardingCompleted bool      `gorm:"not null;default:false"`
	AvatarURL           *string   `gorm:"type:text"`
	BannerURL           *string   `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
